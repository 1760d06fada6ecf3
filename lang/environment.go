// Copyright © 2024 The Ember authors

package lang

import "github.com/emberlang/ember/token"

// Environment is one link in the chain of lexical scopes: a set of
// bindings plus a pointer to the enclosing scope. The global environment
// is the chain's root and has a nil enclosing pointer.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// NewEnvironment returns the global environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewChildEnvironment returns a new scope nested inside enclosing.
func NewChildEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]interface{})}
}

// Define binds name to value in this scope, shadowing any outer binding.
// Re-declaring an existing local name is permitted, matching top-level
// REPL semantics where a variable may be redefined.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name starting in this scope and walking outward, reporting
// a RuntimeError at tok if no scope defines it.
func (e *Environment) Get(tok *token.Token) (interface{}, error) {
	if v, ok := e.values[tok.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(tok)
	}
	return nil, newRuntimeError(tok, "Undefined variable '%s'.", tok.Lexeme)
}

// Assign rebinds an existing name found by walking outward from this
// scope, reporting a RuntimeError at tok if no scope defines it. Unlike
// Define, Assign never creates a new binding.
func (e *Environment) Assign(tok *token.Token, value interface{}) error {
	if _, ok := e.values[tok.Lexeme]; ok {
		e.values[tok.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(tok, value)
	}
	return newRuntimeError(tok, "Undefined variable '%s'.", tok.Lexeme)
}

// GetAt looks up name exactly distance scopes outward, per a resolver
// binding. It panics if distance is wrong, since that indicates a
// resolver/interpreter mismatch rather than a user-facing fault.
func (e *Environment) GetAt(distance int, name string) interface{} {
	env := e.ancestor(distance)
	v, ok := env.values[name]
	if !ok {
		panic("lang: resolved variable '" + name + "' missing at expected depth")
	}
	return v
}

// AssignAt rebinds name exactly distance scopes outward, per a resolver
// binding.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.ancestor(distance).values[name] = value
}

// Names returns every name bound directly in this scope, unordered. It
// exists for REPL completion and does not walk enclosing scopes.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	return names
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}
