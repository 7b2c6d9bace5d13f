package underscore

// ─────────────────────────────────────────────────────────────────────────────
// Set operations (structural equality, see [Equal])
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns c without duplicate values. The first occurrence of every
// value is kept together with its original key, so the result may have gaps
// in its integer keys.
func (c *Container) Uniq() *Container {
	seen := newValueSet(nil)
	out := Empty()
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if seen.add(pair.Value) {
			out.set(pair.Key, pair.Value)
		}
	}
	return out
}

// Distinct is an alias for [Container.Uniq].
func (c *Container) Distinct() *Container { return c.Uniq() }

// Without returns the values of c that are not equal to any of values,
// renumbered 0, 1, 2, ...
func (c *Container) Without(values ...any) *Container {
	drop := newValueSet(values)
	out := Empty()
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !drop.contains(pair.Value) {
			out.append(pair.Value)
		}
	}
	return out
}

// Contains reports whether any value of c equals value.
func (c *Container) Contains(value any) bool {
	_, ok := c.IndexOf(value)
	return ok
}

// IndexOf returns the key of the first value equal to value.
func (c *Container) IndexOf(value any) (Key, bool) {
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if Equal(pair.Value, value) {
			return pair.Key, true
		}
	}
	return Key{}, false
}
