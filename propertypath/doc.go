// Package propertypath resolves property paths against nested maps, slices
// and containers.
//
// # Syntax
//
// A path is a sequence of segments. A bare name is separated from the next
// by a dot; a bracketed segment addresses an index or a key and may follow a
// name directly:
//
//	username
//	address.city
//	[0]
//	[user][name]
//	orders[0].lines[2].sku
//
// # Resolution
//
// Each segment is applied to the current value:
//
//   - a [Lookuper] (such as *underscore.Container) resolves the segment
//     itself
//   - a map with string keys is indexed by the segment
//   - a slice or array is indexed by the segment parsed as a non-negative
//     integer
//
// Missing keys and out-of-range indices fail with [ErrNotFound]; values that
// cannot be descended into (including structs, which are never read by
// reflection) fail with [ErrNotTraversable].
//
//	v, err := propertypath.Resolve(order, "lines[0].sku")
//	sku := propertypath.Get(order, "lines[0].sku", "unknown")
package propertypath
