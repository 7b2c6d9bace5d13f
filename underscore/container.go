package underscore

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"sort"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Container is an ordered, key-addressable collection of arbitrary values.
//
// Keys are integers or strings ([Key]) and insertion order is significant.
// Every operation that derives a new collection returns a *new* Container,
// leaving the receiver unchanged, so calls chain:
//
//	squares := underscore.New(1, 2, 3, 4).
//	    Select(func(v any, _ underscore.Key) underscore.Match {
//	        return underscore.Bool(v.(int)%2 == 0)
//	    }).
//	    Map(func(v any) any { return v.(int) * v.(int) })
//
// Only [Container.Push], [Container.Unshift], [Container.Pop],
// [Container.Shift], [Container.Set] and [Container.Remove] change the
// receiver. Concurrent reads of a container nobody mutates are safe;
// mutating calls on a shared container must be serialised by the caller.
type Container struct {
	entries *orderedmap.OrderedMap[Key, any]
	// next is the integer key Push hands out: the largest integer key seen
	// plus one, never negative.
	next int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Source is one of the input shapes a Container can be built from:
// [List], [Pairs] or another *Container.
type Source interface {
	fill(dst *Container) error
}

type listSource []any

// List is a Source of values keyed 0, 1, 2, ...
func List(values ...any) Source { return listSource(values) }

func (s listSource) fill(dst *Container) error {
	for _, v := range s {
		dst.append(v)
	}
	return nil
}

type pairSource []Entry

// Pairs is an ordered-mapping Source. A later entry with the same key
// overwrites the earlier value in place.
func Pairs(entries ...Entry) Source { return pairSource(entries) }

func (s pairSource) fill(dst *Container) error {
	for _, e := range s {
		dst.set(e.Key, e.Value)
	}
	return nil
}

func (c *Container) fill(dst *Container) error {
	if c == nil {
		return fmt.Errorf("%w: nil *Container", ErrInvalidInput)
	}
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		dst.entries.Set(pair.Key, pair.Value)
	}
	dst.next = c.next
	return nil
}

// Create builds a Container from src. The new container's entries are
// independent of src (values are copied shallowly). A nil src yields an
// empty container; a nil *Container fails with [ErrInvalidInput].
func Create(src Source) (*Container, error) {
	c := Empty()
	if src == nil {
		return c, nil
	}
	if err := src.fill(c); err != nil {
		return nil, err
	}
	return c, nil
}

// New creates a list Container from a variadic list of values.
func New(values ...any) *Container {
	return list(values)
}

// Empty creates an empty Container.
func Empty() *Container {
	return &Container{entries: orderedmap.New[Key, any]()}
}

// From builds a Container from a dynamically typed value. Accepted shapes:
//
//   - *Container or any [Source]
//   - []Entry (ordered mapping)
//   - []any, or any other slice or array except []byte (list)
//   - a map whose keys are strings or integers; since Go maps are unordered
//     the keys are sorted, integer keys first
//
// Every other value fails with [ErrInvalidInput].
func From(v any) (*Container, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrInvalidInput)
	case Source:
		return Create(val)
	case []Entry:
		return Create(Pairs(val...))
	case []any:
		return New(val...), nil
	case []byte:
		return nil, fmt.Errorf("%w: %T", ErrInvalidInput, v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		return list(values), nil
	case reflect.Map:
		return fromMap(rv)
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidInput, v)
}

func fromMap(rv reflect.Value) (*Container, error) {
	switch rv.Type().Key().Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, rv.Type())
	}

	entries := make([]Entry, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		k, err := KeyOf(it.Key().Interface())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		entries = append(entries, Entry{Key: k, Value: it.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Key, entries[j].Key
		if a.named != b.named {
			return !a.named
		}
		if a.named {
			return a.name < b.name
		}
		return a.index < b.index
	})
	return fromEntries(entries), nil
}

// Split builds a list Container from the pieces of text separated by
// separator. An empty separator splits text into its UTF-8 characters.
// Empty pieces are kept; Split("", ",") is [""] while Split("", "") is empty.
func Split(text, separator string) *Container {
	pieces := strings.Split(text, separator)
	values := make([]any, len(pieces))
	for i, p := range pieces {
		values[i] = p
	}
	return list(values)
}

func list(values []any) *Container {
	c := Empty()
	for _, v := range values {
		c.append(v)
	}
	return c
}

func fromEntries(entries []Entry) *Container {
	c := Empty()
	for _, e := range entries {
		c.set(e.Key, e.Value)
	}
	return c
}

// renumbered rebuilds entries with integer keys renumbered densely in order;
// string keys are kept.
func renumbered(entries []Entry) *Container {
	c := Empty()
	for _, e := range entries {
		if e.Key.named {
			c.set(e.Key, e.Value)
		} else {
			c.append(e.Value)
		}
	}
	return c
}

func valuesOf(entries []Entry) []any {
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

func (c *Container) set(k Key, v any) {
	c.entries.Set(k, v)
	if !k.named && k.index >= c.next {
		c.next = k.index + 1
	}
}

func (c *Container) append(v any) {
	c.set(IntKey(c.next), v)
}

// snapshot returns the entries in order. The slice is owned by the caller.
func (c *Container) snapshot() []Entry {
	out := make([]Entry, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexed access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key, or [ErrKeyNotFound].
func (c *Container) Get(key Key) (any, error) {
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return v, nil
}

// At is Get(IntKey(i)).
func (c *Container) At(i int) (any, error) { return c.Get(IntKey(i)) }

// Has reports whether key is present.
func (c *Container) Has(key Key) bool {
	_, ok := c.entries.Get(key)
	return ok
}

// Set stores value under key in place. An absent key is appended at the end.
// Returns c for chaining.
func (c *Container) Set(key Key, value any) *Container {
	c.set(key, value)
	return c
}

// Remove deletes key in place (a no-op when absent) and then renumbers the
// whole container to a dense 0-based list. String keys are renumbered too:
// after a removal the container is always list-shaped.
// Returns c for chaining.
func (c *Container) Remove(key Key) *Container {
	c.entries.Delete(key)
	c.normalize()
	return c
}

func (c *Container) normalize() {
	c.replace(list(valuesOf(c.snapshot())))
}

// Lookup resolves one property-path segment against c: the segment is
// converted with [KeyOf], so "0" addresses IntKey(0) and "name" addresses
// StringKey("name").
func (c *Container) Lookup(segment string) (any, bool) {
	v, ok := c.entries.Get(keyFromString(segment))
	return v, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of entries.
func (c *Container) Count() int { return c.entries.Len() }

// IsEmpty reports whether c has no entries.
func (c *Container) IsEmpty() bool { return c.entries.Len() == 0 }

// IsNotEmpty reports whether c has at least one entry.
func (c *Container) IsNotEmpty() bool { return c.entries.Len() > 0 }

// Keys returns the keys in order.
func (c *Container) Keys() []Key {
	out := make([]Key, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Values returns the values in order, discarding keys.
func (c *Container) Values() []any { return valuesOf(c.snapshot()) }

// Entries returns a copy of the (key, value) pairs in order.
func (c *Container) Entries() []Entry { return c.snapshot() }

// ToMap returns the entries as a Go map. Order is lost.
func (c *Container) ToMap() map[Key]any {
	out := make(map[Key]any, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}

// Iter returns an iterator over the entries in stored order. Each call
// starts a fresh traversal. Mutating c during iteration is not supported.
func (c *Container) Iter() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// IsList reports whether the keys are exactly 0, 1, ..., Count()-1 in order.
func (c *Container) IsList() bool {
	i := 0
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != IntKey(i) {
			return false
		}
		i++
	}
	return true
}

// MarshalJSON encodes list-shaped containers as JSON arrays and every other
// container as a JSON object in key order.
func (c *Container) MarshalJSON() ([]byte, error) {
	if c.IsList() {
		return json.Marshal(c.Values())
	}
	return c.entries.MarshalJSON()
}

// ToJSON is json.Marshal(c).
func (c *Container) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

// String returns a JSON representation of c.
// It implements [fmt.Stringer].
func (c *Container) String() string {
	b, err := c.ToJSON()
	if err != nil {
		parts := make([]string, 0, c.Count())
		for _, e := range c.snapshot() {
			parts = append(parts, e.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return string(b)
}

// GoString renders c for %#v.
func (c *Container) GoString() string {
	parts := make([]string, 0, c.Count())
	for _, e := range c.snapshot() {
		k := strconv.Quote(e.Key.String())
		if !e.Key.named {
			k = e.Key.String()
		}
		parts = append(parts, fmt.Sprintf("%s: %#v", k, e.Value))
	}
	return "underscore.Container{" + strings.Join(parts, ", ") + "}"
}
