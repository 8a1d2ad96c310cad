package monkey

import "sort"

// Environment is a scope mapping names to values. Lookups that miss the local
// scope continue in the enclosing one; definitions always go to the local
// scope.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
}

// NewEnvironment creates an outermost scope.
func NewEnvironment() *Environment {
	return &Environment{nil, make(map[string]Value)}
}

// NewEnclosedEnvironment creates an empty scope whose lookups fall back to
// enclosing.
func NewEnclosedEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]Value)}
}

// Get returns the value bound to name in the nearest scope that defines it.
func (env *Environment) Get(name string) (Value, bool) {
	if value, ok := env.values[name]; ok {
		return value, true
	}
	if env.enclosing != nil {
		return env.enclosing.Get(name)
	}
	return nil, false
}

// Set binds name in the local scope, shadowing any outer binding.
func (env *Environment) Set(name string, value Value) Value {
	env.values[name] = value
	return value
}

// Names returns the names bound in the local scope, sorted.
func (env *Environment) Names() []string {
	names := make([]string, 0, len(env.values))
	for name := range env.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
