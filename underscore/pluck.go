package underscore

import "github.com/hasbyte1/go-underscore/propertypath"

// Resolver reads the value addressed by path inside value, or fails.
// [propertypath.Accessor] is the implementation Pluck uses.
type Resolver interface {
	Resolve(value any, path string) (any, error)
}

// Pluck resolves path against every value with [propertypath.Accessor] and
// returns the results like Map: failures count as nil, nils are dropped and
// the survivors renumbered 0, 1, 2, ...
//
//	users := underscore.New(
//	    map[string]any{"foo": "bar"},
//	    map[string]any{"username": "bob"},
//	    map[string]any{"username": "alice"},
//	)
//	users.Pluck("username") // → ["bob" "alice"]
func (c *Container) Pluck(path string) *Container {
	return c.PluckWith(propertypath.Accessor{}, path)
}

// PluckWith is Pluck using r to resolve path.
func (c *Container) PluckWith(r Resolver, path string) *Container {
	return c.Map(func(value any) any {
		out, err := r.Resolve(value, path)
		if err != nil {
			return nil
		}
		return out
	})
}
