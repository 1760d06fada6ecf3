// Copyright © 2024 The Ember authors

// Package resolver implements the static semantic pass that binds every
// variable-use expression to a lexical scope depth and enforces
// use-site rules (illegal `this`/`super`/`return`, self-referential
// initializers, duplicate declarations in a scope).
package resolver

import (
	"github.com/emberlang/ember/ast"
	"github.com/emberlang/ember/token"
)

// Reporter receives resolver diagnostics; shared with the scanner and
// parser so a driver can gate interpretation on any compile-time error.
type Reporter interface {
	Error(line int, message string)
	ErrorToken(tok *token.Token, message string)
}

// Binder is notified once per expression the resolver manages to bind to
// a lexical depth. The interpreter implements Binder so resolution can
// install depth information directly into the evaluator.
type Binder interface {
	Resolve(expr ast.Expr, depth int)
}

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// scope maps a name to whether its binding is fully defined ("ready").
// A name present with false is "declared but not defined" — referencing
// it from its own initializer is an error.
type scope map[string]bool

// Resolver walks a statement list exactly once, maintaining a stack of
// block scopes. Globals are never tracked in scopes; unresolved lookups
// fall through to the interpreter's global environment at runtime.
type Resolver struct {
	binder   Binder
	reporter Reporter

	scopes     []scope
	currentFn  functionKind
	currentCls classKind
	loopDepth  int

	// inStatic is true while resolving the body of a `class name() {}`
	// method. Static methods are dispatched on the Class value itself and
	// are never bound to an instance at runtime, so `this`/`super` have
	// nothing to resolve to.
	inStatic bool
}

// New returns a Resolver that installs depth bindings into binder and
// reports diagnostics to reporter.
func New(binder Binder, reporter Reporter) *Resolver {
	return &Resolver{binder: binder, reporter: reporter}
}

// Resolve resolves every statement in stmts.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()
	case *ast.Class:
		r.resolveClass(s)
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.FunctionDecl:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s.Params, s.Body, fnFunction)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.Print:
		r.resolveExpr(s.Expression)
	case *ast.Return:
		r.resolveReturn(s)
	case *ast.Break:
		r.resolveBreak(s)
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.loopDepth++
		r.resolveStmt(s.Body)
		r.loopDepth--
	default:
		panic("resolver: unknown statement type")
	}
}

func (r *Resolver) resolveReturn(s *ast.Return) {
	if r.currentFn == fnNone {
		r.error(s.Keyword, "Cannot return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFn == fnInitializer {
			r.error(s.Keyword, "Cannot return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
}

func (r *Resolver) resolveBreak(s *ast.Break) {
	if r.loopDepth == 0 {
		r.error(s.Keyword, "Cannot break outside of a loop.")
	}
}

func (r *Resolver) resolveClass(s *ast.Class) {
	r.declare(s.Name)
	r.define(s.Name)

	enclosingCls := r.currentCls
	r.currentCls = classClass
	defer func() { r.currentCls = enclosingCls }()

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name, "A class cannot inherit from itself.")
		}
		r.currentCls = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" && !method.IsStatic {
			kind = fnInitializer
		}
		enclosingStatic := r.inStatic
		r.inStatic = method.IsStatic
		r.resolveFunction(method.Params, method.Body, kind)
		r.inStatic = enclosingStatic
	}
}

func (r *Resolver) resolveFunction(params []*token.Token, body []ast.Stmt, kind functionKind) {
	enclosingFn := r.currentFn
	r.currentFn = kind
	enclosingLoop := r.loopDepth
	r.loopDepth = 0

	r.beginScope()
	for _, param := range params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFn = enclosingFn
	r.loopDepth = enclosingLoop
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.Literal:
		// no action
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Super:
		r.resolveSuper(e)
	case *ast.This:
		r.resolveThis(e)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Variable:
		r.resolveVariable(e)
	default:
		panic("resolver: unknown expression type")
	}
}

func (r *Resolver) resolveVariable(e *ast.Variable) {
	if len(r.scopes) > 0 {
		if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
			r.error(e.Name, "Cannot read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
}

func (r *Resolver) resolveThis(e *ast.This) {
	if r.currentCls == classNone {
		r.error(e.Keyword, "Cannot use 'this' outside of a class.")
		return
	}
	if r.inStatic {
		r.error(e.Keyword, "Cannot use 'this' in a static method.")
		return
	}
	r.resolveLocal(e, e.Keyword)
}

func (r *Resolver) resolveSuper(e *ast.Super) {
	switch r.currentCls {
	case classNone:
		r.error(e.Keyword, "Cannot use 'super' outside of a class.")
		return
	case classClass:
		r.error(e.Keyword, "Cannot use 'super' in a class with no superclass.")
		return
	}
	if r.inStatic {
		r.error(e.Keyword, "Cannot use 'super' in a static method.")
		return
	}
	r.resolveLocal(e, e.Keyword)
}

// resolveLocal walks the scope stack outward from the innermost scope,
// recording (expr identity -> distance) at the first scope containing
// name. Distance 0 means the innermost scope. A name found in no scope is
// left unresolved, i.e. a global.
func (r *Resolver) resolveLocal(expr ast.Expr, name *token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.binder.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
	// Unresolved: a global. No binding is recorded.
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name *token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.error(name, "Variable with this name already declared in this scope.")
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name *token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) error(tok *token.Token, message string) {
	if r.reporter != nil {
		r.reporter.ErrorToken(tok, message)
	}
}
