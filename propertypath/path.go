package propertypath

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Lookuper is implemented by values that resolve one path segment
// themselves.
type Lookuper interface {
	Lookup(segment string) (any, bool)
}

// Path is a parsed property path.
type Path []string

// Parse splits path into its segments.
//
//	Parse("orders[0].sku") // → Path{"orders", "0", "sku"}
func Parse(path string) (Path, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var segments Path
	for i := 0; i < len(path); {
		switch path[i] {
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed '[' at %d in %q", ErrInvalidPath, i, path)
			}
			seg := path[i+1 : i+end]
			if seg == "" {
				return nil, fmt.Errorf("%w: empty brackets at %d in %q", ErrInvalidPath, i, path)
			}
			segments = append(segments, seg)
			i += end + 1
			if i < len(path) && path[i] != '.' && path[i] != '[' {
				return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrInvalidPath, path[i], i, path)
			}
			if i < len(path) && path[i] == '.' {
				i++
				if i == len(path) {
					return nil, fmt.Errorf("%w: trailing '.' in %q", ErrInvalidPath, path)
				}
			}
		case '.', ']':
			return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrInvalidPath, path[i], i, path)
		default:
			end := strings.IndexAny(path[i:], ".[]")
			if end < 0 {
				end = len(path) - i
			}
			segments = append(segments, path[i:i+end])
			i += end
			if i < len(path) && path[i] == '.' {
				i++
				if i == len(path) {
					return nil, fmt.Errorf("%w: trailing '.' in %q", ErrInvalidPath, path)
				}
			}
		}
	}
	return segments, nil
}

// String renders p in canonical form: names joined by dots, integer
// segments in brackets.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Resolve walks value along p.
func (p Path) Resolve(value any) (any, error) {
	current := value
	for i, seg := range p {
		next, err := step(current, seg)
		if err != nil {
			return nil, fmt.Errorf("%w (at %s)", err, p[:i+1])
		}
		current = next
	}
	return current, nil
}

func step(value any, seg string) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil has no %q", ErrNotTraversable, seg)
	case Lookuper:
		if out, ok := v.Lookup(seg); ok {
			return out, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrNotFound, seg)
	case map[string]any:
		if out, ok := v[seg]; ok {
			return out, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrNotFound, seg)
	case []any:
		return index(len(v), seg, func(i int) any { return v[i] })
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		out := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		if !out.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, seg)
		}
		return out.Interface(), nil
	case reflect.Slice, reflect.Array:
		return index(rv.Len(), seg, func(i int) any { return rv.Index(i).Interface() })
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %T has no %q", ErrNotTraversable, value, seg)
		}
		if rv.Elem().Kind() != reflect.Struct {
			return step(rv.Elem().Interface(), seg)
		}
	}
	return nil, fmt.Errorf("%w: %T has no %q", ErrNotTraversable, value, seg)
}

func index(n int, seg string, at func(int) any) (any, error) {
	i, err := strconv.Atoi(seg)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an index", ErrNotFound, seg)
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrNotFound, i, n)
	}
	return at(i), nil
}

// Accessor resolves string paths. The zero value is ready to use.
type Accessor struct{}

// Resolve parses path and walks value along it.
func (Accessor) Resolve(value any, path string) (any, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return p.Resolve(value)
}

// Resolve is Accessor{}.Resolve.
func Resolve(value any, path string) (any, error) {
	return Accessor{}.Resolve(value, path)
}

// Get resolves path against value and returns def[0] (or nil) on any
// failure.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(value any, path string, def ...any) any {
	out, err := Resolve(value, path)
	if err != nil {
		if len(def) > 0 {
			return def[0]
		}
		return nil
	}
	return out
}

// Has reports whether path resolves against value.
func Has(value any, path string) bool {
	_, err := Resolve(value, path)
	return err == nil
}
