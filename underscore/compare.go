package underscore

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Compare orders two arbitrary values and returns -1, 0 or +1. It is the
// ordering behind Sort, SortBy, Max and Min.
//
// Rules, applied in order:
//
//   - two iterables (containers, slices, arrays) compare by length, then
//     element by element
//   - nil against a string compares as the empty string; nil against
//     anything else compares as false
//   - a bool against anything compares truthiness, false < true
//   - two numbers compare numerically; integers stay exact
//   - a number against a numeric string compares numerically, against any
//     other string compares as strings
//   - two strings compare numerically when both are numeric, lexically
//     otherwise
//   - anything else orders by kind (nil, bool, number, string, iterable,
//     other) and then by its fmt rendering
func Compare(a, b any) int {
	if ea, ok := elementsOf(a); ok {
		if eb, ok := elementsOf(b); ok {
			return compareElements(ea, eb)
		}
	}

	sa, aIsString := stringOf(a)
	sb, bIsString := stringOf(b)

	switch {
	case a == nil && b == nil:
		return 0
	case a == nil && bIsString:
		return strings.Compare("", sb)
	case b == nil && aIsString:
		return strings.Compare(sa, "")
	case a == nil || b == nil:
		return compareBools(truthy(a), truthy(b))
	}

	_, aIsBool := a.(bool)
	_, bIsBool := b.(bool)
	if aIsBool || bIsBool {
		return compareBools(truthy(a), truthy(b))
	}

	na, aIsNumber := numberOf(a)
	nb, bIsNumber := numberOf(b)
	switch {
	case aIsNumber && bIsNumber:
		return compareNumbers(na, nb)
	case aIsNumber && bIsString:
		if n, ok := numericString(sb); ok {
			return compareNumbers(na, n)
		}
		return strings.Compare(na.String(), sb)
	case aIsString && bIsNumber:
		if n, ok := numericString(sa); ok {
			return compareNumbers(n, nb)
		}
		return strings.Compare(sa, nb.String())
	case aIsString && bIsString:
		if x, ok := numericString(sa); ok {
			if y, ok := numericString(sb); ok {
				return compareNumbers(x, y)
			}
		}
		return strings.Compare(sa, sb)
	}

	if c := cmp.Compare(rankOf(a), rankOf(b)); c != 0 {
		return c
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compareElements(a, b []any) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// number keeps integers exact and falls back to float64 otherwise.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n number) String() string {
	if n.isFloat {
		return cast.ToString(n.f)
	}
	return cast.ToString(n.i)
}

func compareNumbers(a, b number) int {
	if !a.isFloat && !b.isFloat {
		return cmp.Compare(a.i, b.i)
	}
	return cmp.Compare(a.float(), b.float())
}

func numberOf(v any) (number, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return number{f: float64(u), isFloat: true}, true
		}
		return number{i: int64(u)}, true
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float(), isFloat: true}, true
	}
	return number{}, false
}

func numericString(s string) (number, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return number{}, false
	}
	if i, err := cast.ToInt64E(s); err == nil && cast.ToString(i) == strings.TrimPrefix(s, "+") {
		return number{i: i}, true
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return number{}, false
	}
	return number{f: f, isFloat: true}, true
}

func stringOf(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// truthy follows the usual dynamic-language rules: nil, false, zero numbers,
// "" and "0", and empty iterables are false; everything else is true.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	if n, ok := numberOf(v); ok {
		return n.float() != 0
	}
	if s, ok := stringOf(v); ok {
		return s != "" && s != "0"
	}
	if e, ok := elementsOf(v); ok {
		return len(e) > 0
	}
	return true
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankIterable
	rankOther
)

func rankOf(v any) int {
	if v == nil {
		return rankNil
	}
	if _, ok := v.(bool); ok {
		return rankBool
	}
	if _, ok := numberOf(v); ok {
		return rankNumber
	}
	if _, ok := stringOf(v); ok {
		return rankString
	}
	if _, ok := elementsOf(v); ok {
		return rankIterable
	}
	return rankOther
}

// elementsOf returns the values of v when v is iterable: a *Container, a
// []any, or any other slice or array except []byte. Strings and maps are
// not iterable here.
func elementsOf(v any) ([]any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case *Container:
		if val == nil {
			return nil, false
		}
		return val.Values(), true
	case []any:
		return val, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}
