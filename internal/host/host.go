// Package host is a small scripting-host runtime: native modules register
// named methods at startup and scripts call them with positional arguments.
package host

import (
	"fmt"
	"sort"
	"sync"
)

// Func is a native method. It returns a value the host hands to the script.
type Func func(args ...any) (any, error)

// Method binds a name to a Func.
type Method struct {
	Name string
	Fn   Func
}

// Runtime holds the modules registered by the hosting process. It is safe
// for concurrent use.
type Runtime struct {
	mu      sync.RWMutex
	modules map[string]map[string]Func
}

func NewRuntime() *Runtime {
	return &Runtime{modules: map[string]map[string]Func{}}
}

// Register adds a module and its methods. Registering a module twice, or a
// method twice within one call, is an error.
func (r *Runtime) Register(module string, methods ...Method) error {
	if module == "" {
		return fmt.Errorf("register: empty module name")
	}
	table := make(map[string]Func, len(methods))
	for _, m := range methods {
		if m.Name == "" || m.Fn == nil {
			return fmt.Errorf("register %s: method needs a name and a function", module)
		}
		if _, dup := table[m.Name]; dup {
			return fmt.Errorf("register %s: duplicate method %s", module, m.Name)
		}
		table[m.Name] = m.Fn
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.modules[module]; dup {
		return fmt.Errorf("register: module %s already registered", module)
	}
	r.modules[module] = table
	return nil
}

// Call invokes module.method with args.
func (r *Runtime) Call(module, method string, args ...any) (any, error) {
	r.mu.RLock()
	table, ok := r.modules[module]
	var fn Func
	if ok {
		fn = table[method]
	}
	r.mu.RUnlock()

	if !ok {
		return nil, &NameError{Name: module}
	}
	if fn == nil {
		return nil, &NameError{Name: module + "." + method}
	}
	return fn(args...)
}

// Modules lists registered module names, sorted.
func (r *Runtime) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.modules))
	for name := range r.modules {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Methods lists a module's method names, sorted.
func (r *Runtime) Methods(module string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table := r.modules[module]
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
