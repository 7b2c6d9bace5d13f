package underscore

import (
	"bytes"
	"encoding/binary"
	"hash"
	"math"
	"reflect"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Equal reports whether a and b are structurally equal. Containers are equal
// when they hold equal values under the same keys in the same order; every
// other value is compared with reflect.DeepEqual. Like reflect.DeepEqual,
// Equal terminates on containers that hold themselves.
func Equal(a, b any) bool {
	return equal(a, b, nil)
}

func equal(a, b any, seen map[[2]*Container]bool) bool {
	ca, aIsContainer := a.(*Container)
	cb, bIsContainer := b.(*Container)
	if aIsContainer && bIsContainer {
		if ca == cb {
			return true
		}
		if ca == nil || cb == nil || ca.Count() != cb.Count() {
			return false
		}
		pair := [2]*Container{ca, cb}
		if seen[pair] {
			return true
		}
		if seen == nil {
			seen = make(map[[2]*Container]bool)
		}
		seen[pair] = true

		pa, pb := ca.entries.Oldest(), cb.entries.Oldest()
		for ; pa != nil; pa, pb = pa.Next(), pb.Next() {
			if pa.Key != pb.Key || !equal(pa.Value, pb.Value, seen) {
				return false
			}
		}
		return true
	}
	if aIsContainer || bIsContainer {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// fingerprint is a structural digest: Equal values always share a
// fingerprint, so it can bucket values before Equal confirms a match.
type fingerprint [blake2b.Size256]byte

const maxFingerprintDepth = 32

const (
	tagNil byte = iota
	tagBool
	tagInt
	tagUint
	tagFloat
	tagComplex
	tagString
	tagList
	tagMap
	tagStruct
	tagContainer
	tagPointer
	tagOpaque
	tagTruncated
	tagCycle
)

var containerType = reflect.TypeOf((*Container)(nil))

// reference identifies a shared map, slice or container.
type reference struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

type memoKey struct {
	ref   reference
	depth int
}

// fingerprinter walks one value. Maps, non-empty slices and containers are
// hashed into their own digest, memoised per reference and depth, and
// tracked on the current path: meeting one of them again below itself
// marks the value cyclic. Pointers contribute only their type.
type fingerprinter struct {
	onPath map[reference]bool
	memo   map[memoKey][]byte
	cyclic bool
}

func fingerprintOf(v any) fingerprint {
	f := fingerprinter{
		onPath: make(map[reference]bool),
		memo:   make(map[memoKey][]byte),
	}
	h, _ := blake2b.New256(nil)
	rv := reflect.ValueOf(v)
	f.write(h, rv, 0)

	// A cyclic value only equals another cyclic value of the same type, so
	// they all share one bucket per type.
	if f.cyclic {
		h.Reset()
		h.Write([]byte{tagCycle})
		writeString(h, rv.Type().String())
	}

	var fp fingerprint
	h.Sum(fp[:0])
	return fp
}

// shared writes the digest of the value behind ref, computed by walk.
func (f *fingerprinter) shared(h hash.Hash, ref reference, depth int, walk func(h hash.Hash)) {
	if f.onPath[ref] {
		f.cyclic = true
		return
	}
	key := memoKey{ref: ref, depth: depth}
	if d, ok := f.memo[key]; ok {
		h.Write(d)
		return
	}
	f.onPath[ref] = true
	sub, _ := blake2b.New256(nil)
	walk(sub)
	delete(f.onPath, ref)

	d := sub.Sum(nil)
	f.memo[key] = d
	h.Write(d)
}

func (f *fingerprinter) write(h hash.Hash, v reflect.Value, depth int) {
	if f.cyclic {
		return
	}
	if depth > maxFingerprintDepth {
		h.Write([]byte{tagTruncated})
		return
	}
	if !v.IsValid() {
		h.Write([]byte{tagNil})
		return
	}

	if v.Type() == containerType && !v.IsNil() && v.CanInterface() {
		c := v.Interface().(*Container)
		h.Write([]byte{tagContainer})
		writeLength(h, c.Count())
		f.shared(h, reference{ptr: v.Pointer(), typ: containerType}, depth, func(h hash.Hash) {
			for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
				writeString(h, pair.Key.String())
				h.Write([]byte{boolByte(pair.Key.named)})
				f.write(h, reflect.ValueOf(pair.Value), depth+1)
			}
		})
		return
	}

	// The dynamic type is part of reflect.DeepEqual's notion of equality.
	writeString(h, v.Type().String())

	var buf [8]byte
	switch v.Kind() {
	case reflect.Bool:
		h.Write([]byte{tagBool, boolByte(v.Bool())})
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.Write([]byte{tagInt})
		binary.BigEndian.PutUint64(buf[:], uint64(v.Int()))
		h.Write(buf[:])
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		h.Write([]byte{tagUint})
		binary.BigEndian.PutUint64(buf[:], v.Uint())
		h.Write(buf[:])
	case reflect.Float32, reflect.Float64:
		h.Write([]byte{tagFloat})
		writeFloat(h, v.Float())
	case reflect.Complex64, reflect.Complex128:
		h.Write([]byte{tagComplex})
		writeFloat(h, real(v.Complex()))
		writeFloat(h, imag(v.Complex()))
	case reflect.String:
		h.Write([]byte{tagString})
		writeString(h, v.String())
	case reflect.Slice, reflect.Array:
		h.Write([]byte{tagList})
		writeLength(h, v.Len())
		elems := func(h hash.Hash) {
			for i := 0; i < v.Len(); i++ {
				f.write(h, v.Index(i), depth+1)
			}
		}
		if v.Kind() == reflect.Slice && v.Len() > 0 {
			f.shared(h, reference{ptr: v.Pointer(), typ: v.Type(), n: v.Len()}, depth, elems)
		} else {
			elems(h)
		}
	case reflect.Map:
		h.Write([]byte{tagMap})
		writeLength(h, v.Len())
		if v.Len() == 0 {
			return
		}
		f.shared(h, reference{ptr: v.Pointer(), typ: v.Type()}, depth, func(h hash.Hash) {
			// Map iteration order is random; hash each entry on its own and
			// feed the sorted entry digests.
			digests := make([][]byte, 0, v.Len())
			it := v.MapRange()
			for it.Next() {
				eh, _ := blake2b.New256(nil)
				f.write(eh, it.Key(), depth+1)
				f.write(eh, it.Value(), depth+1)
				digests = append(digests, eh.Sum(nil))
			}
			sort.Slice(digests, func(i, j int) bool { return bytes.Compare(digests[i], digests[j]) < 0 })
			for _, d := range digests {
				h.Write(d)
			}
		})
	case reflect.Struct:
		h.Write([]byte{tagStruct})
		writeLength(h, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			f.write(h, v.Field(i), depth+1)
		}
	case reflect.Pointer:
		// Pointees are left to Equal.
		h.Write([]byte{tagPointer, boolByte(v.IsNil())})
	case reflect.Interface:
		if v.IsNil() {
			h.Write([]byte{tagNil})
			return
		}
		f.write(h, v.Elem(), depth+1)
	default:
		// Funcs, channels and unsafe pointers: DeepEqual compares them by
		// identity or nil-ness, the type alone is a valid coarse bucket.
		h.Write([]byte{tagOpaque})
	}
}

func writeFloat(h hash.Hash, f float64) {
	if f == 0 {
		f = 0 // -0 == +0
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))
	h.Write(buf[:])
}

func writeLength(h hash.Hash, n int) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(n))
	h.Write(buf[:])
}

func writeString(h hash.Hash, s string) {
	writeLength(h, len(s))
	h.Write([]byte(s))
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// valueSet is a set of values under structural equality.
type valueSet struct {
	buckets map[fingerprint][]any
}

func newValueSet(values []any) *valueSet {
	s := &valueSet{buckets: make(map[fingerprint][]any, len(values))}
	for _, v := range values {
		s.add(v)
	}
	return s
}

// add inserts v and reports whether it was absent.
func (s *valueSet) add(v any) bool {
	fp := fingerprintOf(v)
	for _, existing := range s.buckets[fp] {
		if Equal(existing, v) {
			return false
		}
	}
	s.buckets[fp] = append(s.buckets[fp], v)
	return true
}

func (s *valueSet) contains(v any) bool {
	for _, existing := range s.buckets[fingerprintOf(v)] {
		if Equal(existing, v) {
			return true
		}
	}
	return false
}
