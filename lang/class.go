// Copyright © 2024 The Ember authors

package lang

import "github.com/emberlang/ember/token"

// Class is a runtime class value: a name, an optional superclass, and the
// instance methods declared in its body. Class itself is Callable: calling
// it constructs and initializes a new Instance.
type Class struct {
	Name       string
	Superclass *Class
	methods    map[string]*Function
	statics    map[string]interface{}
}

// NewClass builds a class value. methods holds instance methods (including
// getters and `init`); statics holds the functions for `class foo() {}`
// declarations, keyed by name, installed by the interpreter at
// evaluation time and never bound to an instance.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, methods: methods, statics: make(map[string]interface{})}
}

func (c *Class) String() string {
	return c.Name
}

// findMethod looks up an instance method by name, searching the
// superclass chain outward, implementing single-inheritance override
// resolution.
func (c *Class) findMethod(name string) *Function {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil
}

// Get resolves a static property access on the class value itself (`class
// name() {}` declarations), searching the superclass chain.
func (c *Class) Get(tok *token.Token) (interface{}, error) {
	if v, ok := c.statics[tok.Lexeme]; ok {
		return v, nil
	}
	if c.Superclass != nil {
		return c.Superclass.Get(tok)
	}
	return nil, newRuntimeError(tok, "Undefined property '%s'.", tok.Lexeme)
}

// Arity is the arity of `init`, or 0 for a class with no initializer.
func (c *Class) Arity() int {
	init := c.findMethod("init")
	if init == nil {
		return 0
	}
	return init.Arity()
}

// Call constructs a new Instance and, if the class declares `init`, runs
// it bound to the new instance.
func (c *Class) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init := c.findMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
