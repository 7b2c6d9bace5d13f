package underscore

import "iter"

// Enumerable is the read-only surface of [Container].
//
// Accept Enumerable in your own functions when they only traverse or
// query a collection, so callers can pass a test double instead of a
// *Container.
type Enumerable interface {
	// Count returns the number of entries.
	Count() int

	// IsEmpty reports whether there are no entries.
	IsEmpty() bool

	// Iter returns a fresh iterator over the entries in order.
	Iter() iter.Seq2[Key, any]

	// Keys returns the keys in order.
	Keys() []Key

	// Values returns the values in order.
	Values() []any

	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key Key) (any, error)

	// Has reports whether key is present.
	Has(key Key) bool

	// Find returns the first value for which p does not return MatchFalse.
	Find(p Predicate) (any, bool)
}

var _ Enumerable = (*Container)(nil)
