package underscore

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every value in order. Results equal to nil are dropped
// and the survivors are renumbered 0, 1, 2, ...
//
// Map is the only transform that filters nil; use Inject to keep them.
func (c *Container) Map(fn func(value any) any) *Container {
	out := Empty()
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if r := fn(pair.Value); r != nil {
			out.append(r)
		}
	}
	return out
}

// FlatMap applies fn to every value and concatenates the returned slices.
func (c *Container) FlatMap(fn func(value any) []any) *Container {
	out := Empty()
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		for _, v := range fn(pair.Value) {
			out.append(v)
		}
	}
	return out
}

// Flatten returns every non-iterable leaf value, depth first, in order.
// Nested containers, []any and other slices or arrays (except []byte) are
// descended into at any depth; strings and maps are leaves.
func (c *Container) Flatten() *Container {
	out := Empty()
	var walk func(values []any)
	walk = func(values []any) {
		for _, v := range values {
			if nested, ok := elementsOf(v); ok {
				walk(nested)
				continue
			}
			out.append(v)
		}
	}
	walk(c.Values())
	return out
}

// GroupBy buckets values by fn(value). Groups appear in first-seen order and
// each group is a []any of the values that produced its key, in order.
func (c *Container) GroupBy(fn func(value any) Key) *Container {
	groups := Empty()
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		k := fn(pair.Value)
		existing, _ := groups.entries.Get(k)
		group, _ := existing.([]any)
		groups.set(k, append(group, pair.Value))
	}
	return groups
}

// Partition splits the values into [pass, fail]: pass holds the values for
// which fn returned true, fail the rest. Both are []any and always present.
func (c *Container) Partition(fn func(value any) bool) *Container {
	pass := make([]any, 0)
	fail := make([]any, 0)
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if fn(pair.Value) {
			pass = append(pass, pair.Value)
		} else {
			fail = append(fail, pair.Value)
		}
	}
	return New(pass, fail)
}

// Combine builds a mapping whose keys are this container's values (see
// [KeyOf]) and whose values are taken positionally from values.
//
//	underscore.New(1, 2, 3).Combine([]any{"foo", "bar", "baz"})
//	// → {1: "foo", 2: "bar", 3: "baz"}
func (c *Container) Combine(values []any) (*Container, error) {
	if c.Count() != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, c.Count(), len(values))
	}
	out := Empty()
	i := 0
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		k, err := KeyOf(pair.Value)
		if err != nil {
			return nil, err
		}
		out.set(k, values[i])
		i++
	}
	return out, nil
}

// Dict treats every value as a [key, value] pair and folds them into one
// mapping; later duplicates overwrite earlier ones. A value that is not
// iterable, holds fewer than two elements, or whose first element cannot be
// a key fails with [ErrInvalidInput].
//
//	underscore.New([]any{1, 2}, []any{3, 4}).Dict() // → {1: 2, 3: 4}
func (c *Container) Dict() (*Container, error) {
	out := Empty()
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		kv, ok := elementsOf(pair.Value)
		if !ok || len(kv) < 2 {
			return nil, fmt.Errorf("%w: %s is not a [key, value] pair", ErrInvalidInput, pair.Key)
		}
		k, err := KeyOf(kv[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		out.set(k, kv[1])
	}
	return out, nil
}

// Concat returns the values of c followed by the values of other. Integer
// keys from both sides are renumbered; a string key in other overwrites the
// same string key in c, keeping c's position. A nil other, including a nil
// *Container, counts as empty.
func (c *Container) Concat(other Enumerable) *Container {
	entries := c.snapshot()
	if oc, ok := other.(*Container); ok && oc == nil {
		other = nil
	}
	if other != nil {
		for k, v := range other.Iter() {
			entries = append(entries, Entry{Key: k, Value: v})
		}
	}
	return renumbered(entries)
}

// Transpose treats the values as rows and returns the columns: row i,
// column j becomes row j, column i. Rows shorter than the longest row are
// padded with nil; a non-iterable row counts as a one-element row.
//
//	underscore.New([]any{1, 2, 3}, []any{4, 5, 6}).Transpose()
//	// → [[1 4] [2 5] [3 6]]
func (c *Container) Transpose() *Container {
	rows := make([][]any, 0, c.Count())
	width := 0
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		row, ok := elementsOf(pair.Value)
		if !ok {
			row = []any{pair.Value}
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}

	out := Empty()
	for j := 0; j < width; j++ {
		column := make([]any, len(rows))
		for i, row := range rows {
			if j < len(row) {
				column[i] = row[j]
			}
		}
		out.append(column)
	}
	return out
}
