package object

import "sort"

// IT is the implicit accumulator every table is seeded with
const IT = "IT"

// Environment is a flat symbol table. There is no outer scope: a function
// call gets a fresh table that only inherits IT from its caller.
type Environment struct {
	store map[string]Object
}

// NewEnvironment creates a table holding only IT = NOOB
func NewEnvironment() *Environment {
	return &Environment{store: map[string]Object{IT: NULL}}
}

// NewLocalEnvironment creates the table for one function call.
// IT is copied from the caller; nothing else is visible.
func NewLocalEnvironment(caller *Environment) *Environment {
	env := NewEnvironment()
	if caller != nil {
		env.store[IT] = caller.It()
	}
	return env
}

// Get looks up a variable by name
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	return obj, ok
}

// Has reports whether name has been declared
func (e *Environment) Has(name string) bool {
	_, ok := e.store[name]
	return ok
}

// Set creates or updates a variable
func (e *Environment) Set(name string, val Object) Object {
	if val == nil {
		val = NULL
	}
	e.store[name] = val
	return val
}

// It returns the current value of IT
func (e *Environment) It() Object {
	if obj, ok := e.store[IT]; ok {
		return obj
	}
	return NULL
}

// Names lists every declared variable in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len is the number of declared variables, IT included
func (e *Environment) Len() int { return len(e.store) }
