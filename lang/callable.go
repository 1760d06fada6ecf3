// Copyright © 2024 The Ember authors

package lang

import (
	"fmt"

	"github.com/emberlang/ember/ast"
	"github.com/emberlang/ember/token"
)

// Callable is anything that can appear on the left of a call expression:
// user-defined functions and methods, bound methods, classes (acting as
// their own constructor), and native builtins such as clock.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// NativeFunction wraps a Go function as a callable Ember value, the
// mechanism by which builtins like clock are exposed to scripts.
type NativeFunction struct {
	name string
	arity int
	fn    func(interp *Interpreter, args []interface{}) (interface{}, error)
}

// NewNativeFunction returns a NativeFunction bound to fn. Every native
// function stringifies as `<native fn>`, whatever its name, and arity
// errors do not mention the name.
func NewNativeFunction(name string, arity int, fn func(interp *Interpreter, args []interface{}) (interface{}, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	return n.fn(interp, args)
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}

// Function is a user-defined function or method: an AST body closed over
// the environment in which it was declared.
type Function struct {
	decl          *ast.FunctionDecl
	method        *ast.Method
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps a top-level or nested function declaration.
func NewFunction(decl *ast.FunctionDecl, closure *Environment) *Function {
	return &Function{decl: decl, closure: closure}
}

// NewMethod wraps a class method declaration. isInitializer marks `init`,
// whose implicit return value is always the bound instance.
func NewMethod(method *ast.Method, closure *Environment, isInitializer bool) *Function {
	return &Function{method: method, closure: closure, isInitializer: isInitializer}
}

func (f *Function) name() string {
	if f.decl != nil {
		return f.decl.Name.Lexeme
	}
	return f.method.Name.Lexeme
}

func (f *Function) params() []*token.Token {
	if f.decl != nil {
		return f.decl.Params
	}
	return f.method.Params
}

func (f *Function) body() []ast.Stmt {
	if f.decl != nil {
		return f.decl.Body
	}
	return f.method.Body
}

func (f *Function) Arity() int { return len(f.params()) }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.name())
}

// Bind returns a copy of the method closed over an environment where
// `this` refers to instance, implementing the per-instance method-binding
// step of property access.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewChildEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{method: f.method, decl: f.decl, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	env := NewChildEnvironment(f.closure)
	for i, param := range f.params() {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.body(), env)
	if ret, ok := err.(returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}
