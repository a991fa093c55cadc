package variables

import (
	"sort"

	"github.com/calcwerk/apl360"
)

// Environment maps identifiers to their last-assigned value. It is owned by
// an interpreter instance, never shared between sessions, and accessed by a
// single evaluation goroutine only.
type Environment struct {
	vars map[string]apl360.Value
}

// New creates an empty environment.
func New() *Environment {
	return &Environment{
		vars: make(map[string]apl360.Value),
	}
}

// Lookup returns the value bound to name, if any.
func (env *Environment) Lookup(name string) (apl360.Value, bool) {
	v, ok := env.vars[name]
	return v, ok
}

// Bind creates or overwrites the binding for name. Bindings are never
// deleted.
func (env *Environment) Bind(name string, v apl360.Value) {
	tracer().P("var", name).Debugf("binding %s", v)
	env.vars[name] = v
}

// Names returns the bound identifiers in sorted order.
func (env *Environment) Names() []string {
	names := make([]string, 0, len(env.vars))
	for name := range env.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of bindings.
func (env *Environment) Size() int {
	return len(env.vars)
}
