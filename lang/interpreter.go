// Copyright © 2024 The Ember authors

// Package lang implements the tree-walking evaluator: the runtime value
// model (Environment, Function, Class, Instance) and the Interpreter that
// executes a resolved statement list.
package lang

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/emberlang/ember/ast"
	"github.com/emberlang/ember/token"
)

// Interpreter walks a statement list, threading a chain of Environments
// and a resolver-populated depth map. It implements resolver.Binder so a
// driver can feed resolution results directly into the same instance that
// will execute the program.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[int]int
	stdout  io.Writer
}

// New returns an Interpreter that writes `print` output to stdout and
// installs the host-provided clock built-in.
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	interp := &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[int]int),
		stdout:  stdout,
	}
	globals.Define("clock", NewNativeFunction("clock", 0, func(*Interpreter, []interface{}) (interface{}, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	}))
	return interp
}

// Globals returns the global environment, primarily so a REPL can inspect
// top-level bindings for completion.
func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// Resolve installs a depth binding produced by the resolver. It satisfies
// resolver.Binder.
func (in *Interpreter) Resolve(expr ast.Expr, depth int) {
	in.locals[expr.ID()] = depth
}

// Interpret executes stmts in the global environment, returning the first
// RuntimeError encountered. A returnSignal or breakSignal reaching this
// level is returned like any other error; it would indicate a resolver
// bug (return/break outside their proper context) rather than a
// user-facing fault, and does not occur for resolver-checked input.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return in.executeBlock(s.Stmts, NewChildEnvironment(in.env))
	case *ast.Class:
		return in.executeClass(s)
	case *ast.ExpressionStmt:
		_, err := in.eval(s.Expression)
		return err
	case *ast.FunctionDecl:
		in.env.Define(s.Name.Lexeme, NewFunction(s, in.env))
		return nil
	case *ast.If:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if truthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil
	case *ast.Print:
		v, err := in.eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, stringify(v))
		return nil
	case *ast.Return:
		var value interface{}
		if s.Value != nil {
			v, err := in.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{Value: value}
	case *ast.Break:
		return breakSignal{}
	case *ast.Var:
		var value interface{}
		if s.Initializer != nil {
			v, err := in.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil
	case *ast.While:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return err
			}
			if !truthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				if _, ok := err.(breakSignal); ok {
					return nil
				}
				return err
			}
		}
	default:
		panic("lang: unknown statement type")
	}
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// environment on every exit path including an error or control-flow
// signal unwinding through it.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, nil)

	methodEnv := in.env
	if superclass != nil {
		methodEnv = NewChildEnvironment(in.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	class := NewClass(s.Name.Lexeme, superclass, methods)
	for _, m := range s.Methods {
		fn := NewMethod(m, methodEnv, m.Name.Lexeme == "init" && !m.IsStatic)
		if m.IsStatic {
			class.statics[m.Name.Lexeme] = fn
			continue
		}
		methods[m.Name.Lexeme] = fn
	}

	return in.env.Assign(s.Name, class)
}

func (in *Interpreter) eval(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.eval(e.Inner)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Variable:
		return in.lookupVariable(e.Name, e)
	case *ast.Assign:
		return in.evalAssign(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Get:
		return in.evalGet(e)
	case *ast.Set:
		return in.evalSet(e)
	case *ast.This:
		return in.lookupVariable(e.Keyword, e)
	case *ast.Super:
		return in.evalSuper(e)
	default:
		panic("lang: unknown expression type")
	}
}

func (in *Interpreter) lookupVariable(name *token.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := in.locals[expr.ID()]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evalAssign(e *ast.Assign) (interface{}, error) {
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[e.ID()]; ok {
		in.env.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if err := in.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) evalUnary(e *ast.Unary) (interface{}, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.BANG:
		return !truthy(right), nil
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic("lang: unknown unary operator")
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) (interface{}, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if truthy(left) {
			return left, nil
		}
	} else {
		if !truthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (interface{}, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case token.MINUS:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case token.STAR:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case token.SLASH:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case token.GREATER:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil
	case token.GREATER_EQUAL:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil
	case token.LESS:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil
	case token.LESS_EQUAL:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	default:
		panic("lang: unknown binary operator")
	}
}

func numberOperands(tok *token.Token, left, right interface{}) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, newRuntimeError(tok, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (interface{}, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) (interface{}, error) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	switch v := obj.(type) {
	case *Instance:
		return v.Get(e.Name, in)
	case *Class:
		return v.Get(e.Name)
	default:
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
}

func (in *Interpreter) evalSet(e *ast.Set) (interface{}, error) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

func (in *Interpreter) evalSuper(e *ast.Super) (interface{}, error) {
	distance := in.locals[e.ID()]
	superclass := in.env.GetAt(distance, "super").(*Class)
	instance := in.env.GetAt(distance-1, "this").(*Instance)

	method := superclass.findMethod(e.Method.Lexeme)
	if method == nil {
		return nil, newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

func truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// stringify renders a runtime value per the value-formatting rules:
// floats that happen to be integral print without a fractional part.
func stringify(v interface{}) string {
	if v == nil {
		return "nil"
	}
	switch t := v.(type) {
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return strings.TrimSuffix(s, ".0")
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
