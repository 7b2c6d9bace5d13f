package underscore

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Key addresses one entry of a Container. It is either an integer index or a
// string name; the zero Key is IntKey(0).
//
// Key is comparable, so it can be used directly as a Go map key.
type Key struct {
	name  string
	index int
	named bool
}

// IntKey returns the integer key i.
func IntKey(i int) Key { return Key{index: i} }

// StringKey returns the string key s. No numeric normalisation is applied;
// use [KeyOf] to turn "5" into IntKey(5).
func StringKey(s string) Key { return Key{name: s, named: true} }

// Int returns the index and true when k is an integer key.
func (k Key) Int() (int, bool) { return k.index, !k.named }

// Name returns the name and true when k is a string key.
func (k Key) Name() (string, bool) { return k.name, k.named }

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return !k.named }

// String renders k the way it appears in a dump: integers in decimal,
// names verbatim.
func (k Key) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// MarshalText implements encoding.TextMarshaler so keyed containers encode
// as JSON objects.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Value returns k as a plain Go value: an int or a string.
func (k Key) Value() any {
	if k.named {
		return k.name
	}
	return k.index
}

// KeyOf converts a dynamic value to a Key.
//
//   - integer kinds become integer keys
//   - canonical decimal strings ("5", "-3", but not "05" or "+3") become
//     integer keys, every other string stays a string key
//   - bool becomes 0 or 1
//   - floats are truncated toward zero
//   - nil becomes the empty string key
//   - a Key is returned unchanged
//
// Any other type fails with [ErrInvalidKey].
func KeyOf(v any) (Key, error) {
	switch val := v.(type) {
	case nil:
		return StringKey(""), nil
	case Key:
		return val, nil
	case string:
		return keyFromString(val), nil
	case bool:
		if val {
			return IntKey(1), nil
		}
		return IntKey(0), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntKey(int(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return IntKey(int(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Key{}, fmt.Errorf("%w: %v", ErrInvalidKey, f)
		}
		return IntKey(int(f)), nil
	case reflect.String:
		return keyFromString(rv.String()), nil
	}
	return Key{}, fmt.Errorf("%w: %T", ErrInvalidKey, v)
}

func keyFromString(s string) Key {
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return StringKey(s)
	}
	return IntKey(n)
}
