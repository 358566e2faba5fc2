package collection

import (
	"fmt"
	"sync"
)

// MacroFunc is the function signature for a registered macro. Macros
// receive the collection they are invoked on plus any forwarded arguments.
type MacroFunc func(c *Collection, args ...any) any

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry, replacing any
// macro already registered under that name. Safe for concurrent use.
//
// Example – register a macro that keeps entries under even integer keys:
//
//	collection.RegisterMacro("evenKeys", func(c *collection.Collection, _ ...any) any {
//	    return c.Filter(func(v any) bool { n, ok := v.(int); return ok && n%2 == 0 })
//	})
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with the supplied collection and args.
// Returns [ErrMacroNotFound] if no macro is registered under name.
func CallMacro(name string, c *Collection, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(c, args...), nil
}

// Macro calls the named registered macro on c, forwarding args.
func (c *Collection) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
