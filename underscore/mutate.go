package underscore

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutators
//
// These are the only operations that change the receiver. Push and Unshift
// return it so they chain.
// ─────────────────────────────────────────────────────────────────────────────

// Push appends value under the next free integer key.
func (c *Container) Push(value any) *Container {
	c.append(value)
	return c
}

// Unshift inserts value at the front. Integer keys are renumbered from 0;
// string keys are kept.
func (c *Container) Unshift(value any) *Container {
	entries := append([]Entry{{Key: IntKey(0), Value: value}}, c.snapshot()...)
	c.replace(renumbered(entries))
	return c
}

// Pop removes and returns the last value. The bool is false when c is empty.
func (c *Container) Pop() (any, bool) {
	last := c.entries.Newest()
	if last == nil {
		return nil, false
	}
	c.entries.Delete(last.Key)
	c.next = 0
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Key.named && pair.Key.index >= c.next {
			c.next = pair.Key.index + 1
		}
	}
	return last.Value, true
}

// Shift removes and returns the first value. Integer keys are renumbered
// from 0; string keys are kept. The bool is false when c is empty.
func (c *Container) Shift() (any, bool) {
	entries := c.snapshot()
	if len(entries) == 0 {
		return nil, false
	}
	c.replace(renumbered(entries[1:]))
	return entries[0].Value, true
}

func (c *Container) replace(other *Container) {
	c.entries, c.next = other.entries, other.next
}
