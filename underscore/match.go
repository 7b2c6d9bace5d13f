package underscore

// Match is the result of a predicate callback.
//
// Predicates are tri-state rather than boolean: Select keeps only MatchTrue,
// Reject keeps only MatchFalse, and Find accepts anything that is not
// MatchFalse. A predicate that returns MatchOther is therefore excluded by
// both Select and Reject but still satisfies Find.
type Match int

const (
	// MatchOther is neither an explicit true nor an explicit false.
	MatchOther Match = iota
	MatchTrue
	MatchFalse
)

// Bool lifts a Go bool into a Match.
func Bool(b bool) Match {
	if b {
		return MatchTrue
	}
	return MatchFalse
}

// String implements fmt.Stringer.
func (m Match) String() string {
	switch m {
	case MatchTrue:
		return "true"
	case MatchFalse:
		return "false"
	default:
		return "other"
	}
}

// Predicate is called with each value and its key.
type Predicate func(value any, key Key) Match

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & traversal
// ─────────────────────────────────────────────────────────────────────────────

// All returns false as soon as p returns MatchFalse, true otherwise.
// An empty container returns true.
func (c *Container) All(p Predicate) bool {
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if p(pair.Value, pair.Key) == MatchFalse {
			return false
		}
	}
	return true
}

// Any returns true as soon as p returns MatchTrue, false otherwise.
// An empty container returns false.
func (c *Container) Any(p Predicate) bool {
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if p(pair.Value, pair.Key) == MatchTrue {
			return true
		}
	}
	return false
}

// None is !Any(p).
func (c *Container) None(p Predicate) bool { return !c.Any(p) }

// Find returns the first value for which p does not return MatchFalse.
// The bool is false when nothing matched.
func (c *Container) Find(p Predicate) (any, bool) {
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if p(pair.Value, pair.Key) != MatchFalse {
			return pair.Value, true
		}
	}
	return nil, false
}

// Each calls fn(value, key, entries) for every entry in order. entries is a
// snapshot of the whole container taken before the first call.
func (c *Container) Each(fn func(value any, key Key, entries []Entry)) {
	entries := c.snapshot()
	for _, e := range entries {
		fn(e.Value, e.Key, entries)
	}
}

// Select returns the values for which p returns exactly MatchTrue,
// renumbered 0, 1, 2, ...
func (c *Container) Select(p Predicate) *Container {
	return c.keep(p, MatchTrue)
}

// Reject returns the values for which p returns exactly MatchFalse,
// renumbered 0, 1, 2, ...
func (c *Container) Reject(p Predicate) *Container {
	return c.keep(p, MatchFalse)
}

func (c *Container) keep(p Predicate, want Match) *Container {
	out := Empty()
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if p(pair.Value, pair.Key) == want {
			out.append(pair.Value)
		}
	}
	return out
}
