// Copyright © 2024 The Ember authors

package lang

import "github.com/emberlang/ember/token"

// Instance is a runtime object: a class plus its own field bindings.
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

// NewInstance returns a fresh, field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]interface{})}
}

func (i *Instance) String() string {
	return i.class.Name + " instance"
}

// Get resolves a property access: fields shadow methods, and a zero-
// parameter-list method (a getter) is invoked immediately rather than
// returned as a bound method.
func (i *Instance) Get(tok *token.Token, interp *Interpreter) (interface{}, error) {
	if v, ok := i.fields[tok.Lexeme]; ok {
		return v, nil
	}

	if method := i.class.findMethod(tok.Lexeme); method != nil {
		bound := method.Bind(i)
		if method.method != nil && method.method.IsGetter {
			return bound.Call(interp, nil)
		}
		return bound, nil
	}

	return nil, newRuntimeError(tok, "Undefined property '%s'.", tok.Lexeme)
}

// Set assigns a field, creating it if absent. Ember has no notion of
// sealed instances: any property name may be assigned at any time.
func (i *Instance) Set(tok *token.Token, value interface{}) {
	i.fields[tok.Lexeme] = value
}
