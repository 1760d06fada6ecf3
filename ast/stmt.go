// Copyright © 2024 The Ember authors

package ast

import "github.com/emberlang/ember/token"

// Stmt is any statement node. Unlike Expr, statements are never used as
// resolver map keys, so they carry no identity beyond their Go pointer.
type Stmt interface {
	stmtNode()
}

type stmtBase struct{}

func (stmtBase) stmtNode() {}

// Block is `{ stmts... }`.
type Block struct {
	stmtBase
	Stmts []Stmt
}

// Method is a function declared inside a class body. IsStatic marks a
// `class name() {}` declaration, bound to the class itself rather than
// to instances. IsGetter marks a zero-parameter-list `name {}`
// declaration invoked automatically on property access.
type Method struct {
	Name     *token.Token
	Params   []*token.Token
	Body     []Stmt
	IsStatic bool
	IsGetter bool
}

// Class is `class Name ( < Superclass )? { methods... }`.
type Class struct {
	stmtBase
	Name       *token.Token
	Superclass *Variable // nil unless "<" was consumed
	Methods    []*Method
}

// ExpressionStmt is a bare expression used as a statement.
type ExpressionStmt struct {
	stmtBase
	Expression Expr
}

// FunctionDecl is `fun name(params) { body }`.
type FunctionDecl struct {
	stmtBase
	Name   *token.Token
	Params []*token.Token
	Body   []Stmt
}

// If is `if (cond) then (else else)?`.
type If struct {
	stmtBase
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when absent
}

// Print is `print expr;`.
type Print struct {
	stmtBase
	Expression Expr
}

// Return is `return expr?;`.
type Return struct {
	stmtBase
	Keyword *token.Token
	Value   Expr // nil when absent
}

// Break is `break;`.
type Break struct {
	stmtBase
	Keyword *token.Token
}

// Var is `var name (= initializer)?;`.
type Var struct {
	stmtBase
	Name        *token.Token
	Initializer Expr // nil when absent
}

// While is `while (cond) body`.
type While struct {
	stmtBase
	Condition Expr
	Body      Stmt
}
