package underscore

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Inject folds the values from the left, starting with seed.
//
//	underscore.New(1, 2, 3).Inject(0, func(acc, v any) any {
//	    return acc.(int) + v.(int)
//	}) // → 6
func (c *Container) Inject(seed any, fn func(acc, value any) any) any {
	acc := seed
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		acc = fn(acc, pair.Value)
	}
	return acc
}

// Reduce is Inject with the arguments swapped; initial may be nil, in which
// case fn first sees a nil accumulator.
func (c *Container) Reduce(fn func(acc, value any) any, initial any) any {
	return c.Inject(initial, fn)
}

// Sum coerces every value to float64 and adds them up, starting from 0.
// A value that is not numeric fails with [ErrTypeCoercion].
func (c *Container) Sum() (float64, error) {
	return c.fold(0, func(acc, n float64) float64 { return acc + n })
}

// Product coerces every value to float64 and multiplies them, starting
// from 1. A value that is not numeric fails with [ErrTypeCoercion].
func (c *Container) Product() (float64, error) {
	return c.fold(1, func(acc, n float64) float64 { return acc * n })
}

func (c *Container) fold(seed float64, fn func(acc, n float64) float64) (float64, error) {
	acc := seed
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		n, err := toFloat(pair.Value)
		if err != nil {
			return 0, fmt.Errorf("%w: %s => %v (%T)", ErrTypeCoercion, pair.Key, pair.Value, pair.Value)
		}
		acc = fn(acc, n)
	}
	return acc, nil
}

func toFloat(v any) (float64, error) {
	if s, ok := stringOf(v); ok {
		n, ok := numericString(s)
		if !ok {
			return 0, ErrTypeCoercion
		}
		return n.float(), nil
	}
	return cast.ToFloat64E(v)
}

// Max returns the value for which fn(value) is greatest under [Compare].
// On ties the first such value wins. An empty container fails with
// [ErrEmptyContainer].
func (c *Container) Max(fn func(value any) any) (any, error) {
	return c.extremum(fn, 1)
}

// Min returns the value for which fn(value) is smallest under [Compare].
// On ties the first such value wins. An empty container fails with
// [ErrEmptyContainer].
func (c *Container) Min(fn func(value any) any) (any, error) {
	return c.extremum(fn, -1)
}

func (c *Container) extremum(fn func(value any) any, sign int) (any, error) {
	first := c.entries.Oldest()
	if first == nil {
		return nil, ErrEmptyContainer
	}
	best, bestKey := first.Value, fn(first.Value)
	for pair := first.Next(); pair != nil; pair = pair.Next() {
		if k := fn(pair.Value); Compare(k, bestKey) == sign {
			best, bestKey = pair.Value, k
		}
	}
	return best, nil
}

// Join concatenates the string form of every value with sep in between.
// nil renders as "" and bools as "true"/"false"; values with no string
// conversion use their fmt rendering.
func (c *Container) Join(sep string) string {
	parts := make([]string, 0, c.Count())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		parts = append(parts, stringify(pair.Value))
	}
	return strings.Join(parts, sep)
}

func stringify(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
