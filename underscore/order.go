package underscore

import (
	"math/rand"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Ordering & randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns the entries in reverse order. Integer keys are renumbered
// in the new order; string keys are kept.
func (c *Container) Reverse() *Container {
	entries := c.snapshot()
	slices.Reverse(entries)
	return renumbered(entries)
}

// Sort returns the values in ascending [Compare] order, renumbered
// 0, 1, 2, ... The sort is stable.
func (c *Container) Sort() *Container {
	values := c.Values()
	slices.SortStableFunc(values, Compare)
	return list(values)
}

// SortBy returns the values ordered ascending by fn(value), renumbered
// 0, 1, 2, ... fn is called once per value. Values whose computed keys
// compare equal keep their original relative order.
func (c *Container) SortBy(fn func(value any) any) *Container {
	type keyed struct {
		sortKey any
		value   any
	}
	rows := make([]keyed, 0, c.Count())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		rows = append(rows, keyed{sortKey: fn(pair.Value), value: pair.Value})
	}
	slices.SortStableFunc(rows, func(a, b keyed) int { return Compare(a.sortKey, b.sortKey) })

	out := Empty()
	for _, r := range rows {
		out.append(r.value)
	}
	return out
}

// Rotate returns the values rotated left about pivot: Skip(pivot) followed
// by Snip(pivot). The pivot is taken modulo Count(), so a negative pivot
// rotates right and Rotate(k).Rotate(-k) restores the original order.
//
//	underscore.New(1, 2, 3, 4, 5, 6).Rotate(2)  // → [3 4 5 6 1 2]
//	underscore.New(1, 2, 3, 4, 5, 6).Rotate(-2) // → [5 6 1 2 3 4]
func (c *Container) Rotate(pivot int) *Container {
	n := c.Count()
	if n == 0 {
		return Empty()
	}
	pivot = ((pivot % n) + n) % n
	return c.Skip(pivot).Concat(c.Snip(pivot))
}

// Shuffle returns the values in a uniformly random order, renumbered
// 0, 1, 2, ... It draws from the global math/rand source.
func (c *Container) Shuffle() *Container {
	return c.shuffle(rand.Shuffle)
}

// ShuffleWith is Shuffle drawing from r, for reproducible results.
func (c *Container) ShuffleWith(r *rand.Rand) *Container {
	return c.shuffle(r.Shuffle)
}

func (c *Container) shuffle(shuffle func(n int, swap func(i, j int))) *Container {
	values := c.Values()
	shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	return list(values)
}

// Sample returns one value chosen uniformly at random, or
// [ErrEmptyContainer].
func (c *Container) Sample() (any, error) {
	return c.sample(rand.Intn)
}

// SampleWith is Sample drawing from r, for reproducible results.
func (c *Container) SampleWith(r *rand.Rand) (any, error) {
	return c.sample(r.Intn)
}

func (c *Container) sample(intn func(n int) int) (any, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyContainer
	}
	values := c.Values()
	return values[intn(len(values))], nil
}
