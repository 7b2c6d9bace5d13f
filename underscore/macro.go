package underscore

import (
	"fmt"
	"sync"
)

// MacroFunc is the signature of a registered macro. It receives the
// container it was called on plus the caller's arguments.
type MacroFunc func(c *Container, args ...any) any

// macros is the package-level, goroutine-safe macro store.
var macros struct {
	mu    sync.RWMutex
	funcs map[string]MacroFunc
}

func init() {
	macros.funcs = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry, replacing any
// macro already registered under name. Safe to call from multiple
// goroutines.
//
//	underscore.RegisterMacro("evens", func(c *underscore.Container, _ ...any) any {
//	    return c.Select(func(v any, _ underscore.Key) underscore.Match {
//	        return underscore.Bool(v.(int)%2 == 0)
//	    })
//	})
//
//	res, _ := underscore.New(1, 2, 3, 4).Macro("evens") // *Container [2 4]
func RegisterMacro(name string, fn MacroFunc) {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	macros.funcs[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macros.mu.RLock()
	defer macros.mu.RUnlock()
	_, ok := macros.funcs[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	macros.funcs = make(map[string]MacroFunc)
}

// CallMacro calls the named macro on c with args.
// Returns (nil, ErrMacroNotFound) if no macro is registered under name.
func CallMacro(name string, c *Container, args ...any) (any, error) {
	macros.mu.RLock()
	fn, ok := macros.funcs[name]
	macros.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(c, args...), nil
}

// Macro calls the named registered macro on c, forwarding args.
func (c *Container) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
