package underscore

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
//
// Offsets and lengths follow the usual array-slice rules: a negative offset
// counts from the end, a negative length stops that many entries before the
// end, and anything out of range is clamped.
// ─────────────────────────────────────────────────────────────────────────────

// sliceBounds returns the half-open range [start, end) selected by offset and
// length over n entries. toEnd ignores length.
func sliceBounds(n, offset, length int, toEnd bool) (int, int) {
	start := offset
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)

	end := n
	switch {
	case toEnd:
	case length < 0:
		end = n + length
	default:
		end = start + length
	}
	end = min(max(end, start), n)
	return start, end
}

// First returns the first n entries. A negative n returns everything but the
// last -n entries. String keys are kept, integer keys renumbered.
func (c *Container) First(n int) *Container {
	start, end := sliceBounds(c.Count(), 0, n, false)
	return renumbered(c.snapshot()[start:end])
}

// Last returns the last n values, renumbered 0, 1, 2, ... n <= 0 returns an
// empty container and n >= Count() returns every value.
func (c *Container) Last(n int) *Container {
	total := c.Count()
	if n <= 0 {
		return Empty()
	}
	return list(c.Values()[max(total-n, 0):])
}

// Skip returns everything after the first n entries. A negative n keeps only
// the last -n entries. String keys are kept, integer keys renumbered.
func (c *Container) Skip(n int) *Container {
	start, end := sliceBounds(c.Count(), n, 0, true)
	return renumbered(c.snapshot()[start:end])
}

// Slice returns length values starting at offset, renumbered 0, 1, 2, ...
//
//	underscore.New(1, 2, 3, 4).Slice(1, 2)  // → [2 3]
//	underscore.New(1, 2, 3, 4).Slice(-3, -1) // → [2 3]
func (c *Container) Slice(offset, length int) *Container {
	start, end := sliceBounds(c.Count(), offset, length, false)
	return list(c.Values()[start:end])
}

// Snip cuts c at offset n and returns the head, renumbered 0, 1, 2, ...;
// everything from n onwards is dropped. A negative n cuts -n entries before
// the end, so Snip(-2) drops the last two values.
//
// Snip never modifies c.
//
//	underscore.New(1, 2, 3, 4, 5, 6).Snip(2)  // → [1 2]
//	underscore.New(1, 2, 3, 4, 5, 6).Snip(-2) // → [1 2 3 4]
func (c *Container) Snip(n int) *Container {
	total := c.Count()
	cut := n
	if cut < 0 {
		cut = max(total+cut, 0)
	}
	return list(c.Values()[:min(cut, total)])
}

// Chunk splits the values into consecutive []any groups of size. The last
// group may be shorter. size <= 0 fails with [ErrInvalidChunkSize].
func (c *Container) Chunk(size int) (*Container, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}
	values := c.Values()
	out := Empty()
	for i := 0; i < len(values); i += size {
		end := min(i+size, len(values))
		chunk := make([]any, end-i)
		copy(chunk, values[i:end])
		out.append(chunk)
	}
	return out, nil
}
