// Package underscore provides Container, a chainable collection of
// arbitrary values addressed by integer or string keys, with the usual
// higher-order toolkit: mapping, filtering, folding, grouping, set algebra,
// sorting, slicing and random sampling.
//
// # Overview
//
//	top := underscore.New(4, 1, 3, 2, 5).
//	    Select(func(v any, _ underscore.Key) underscore.Match {
//	        return underscore.Bool(v.(int) > 1)
//	    }).
//	    Sort().
//	    Last(2).
//	    Join(", ") // → "4, 5"
//
// # Keys
//
// A [Key] is either an integer index or a string name. Containers built
// with [New], [List] or [Split] are lists keyed 0, 1, 2, ...; [Pairs] builds
// an ordered mapping. Insertion order is always significant. Operations
// document what they do with keys: most derived lists are renumbered
// densely, while Uniq, GroupBy, Combine and Dict produce or keep explicit
// keys.
//
// # Immutability
//
// Every operation that derives a collection returns a *new* Container and
// leaves the receiver unchanged. The exceptions are the in-place mutators
// Push, Unshift, Pop, Shift, Set and Remove. Remove always renumbers the
// container to a dense 0-based list afterwards.
//
// # Predicates
//
// Predicates return a tri-state [Match] instead of a bool. Select keeps
// values that are exactly [MatchTrue], Reject keeps values that are exactly
// [MatchFalse], and Find accepts any result except MatchFalse. [Bool]
// converts an ordinary condition.
//
// # Dynamic values
//
// Values are untyped (any). Ordering uses [Compare], which unifies numbers
// and numeric strings; equality for Uniq, Without and Contains uses
// [Equal], which is structural. Sum and Product coerce values to float64
// and fail with [ErrTypeCoercion] when they cannot.
//
// # Plucking
//
// [Container.Pluck] reads a property path such as "user.address[0].city"
// from every value through [github.com/hasbyte1/go-underscore/propertypath].
// Any [Resolver] can be substituted with [Container.PluckWith].
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Container.Macro]:
//
//	underscore.RegisterMacro("double", func(c *underscore.Container, _ ...any) any {
//	    return c.Map(func(v any) any { return v.(int) * 2 })
//	})
//
//	doubled, _ := underscore.New(1, 2, 3).Macro("double")
package underscore
