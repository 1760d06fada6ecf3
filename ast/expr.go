// Copyright © 2024 The Ember authors

package ast

import "github.com/emberlang/ember/token"

// Expr is any expression node. ID distinguishes expression identity from
// structural equality and is used to key the resolver's depth map.
type Expr interface {
	ID() int
}

type exprID struct {
	id int
}

func (e exprID) ID() int { return e.id }

func newExprID() exprID {
	return exprID{id: newID()}
}

// Assign is `name = value`.
type Assign struct {
	exprID
	Name  *token.Token
	Value Expr
}

func NewAssign(name *token.Token, value Expr) *Assign {
	return &Assign{exprID: newExprID(), Name: name, Value: value}
}

// Binary is `left op right`.
type Binary struct {
	exprID
	Left     Expr
	Operator *token.Token
	Right    Expr
}

func NewBinary(left Expr, operator *token.Token, right Expr) *Binary {
	return &Binary{exprID: newExprID(), Left: left, Operator: operator, Right: right}
}

// Call is `callee(args...)`, anchored at the closing paren for error
// reporting.
type Call struct {
	exprID
	Callee Expr
	Paren  *token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren *token.Token, args []Expr) *Call {
	return &Call{exprID: newExprID(), Callee: callee, Paren: paren, Args: args}
}

// Get is `object.name`.
type Get struct {
	exprID
	Object Expr
	Name   *token.Token
}

func NewGet(object Expr, name *token.Token) *Get {
	return &Get{exprID: newExprID(), Object: object, Name: name}
}

// Grouping is `( inner )`.
type Grouping struct {
	exprID
	Inner Expr
}

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{exprID: newExprID(), Inner: inner}
}

// Literal is a constant nil/boolean/number/string value.
type Literal struct {
	exprID
	Value interface{}
}

func NewLiteral(value interface{}) *Literal {
	return &Literal{exprID: newExprID(), Value: value}
}

// Logical is `left (and|or) right`.
type Logical struct {
	exprID
	Left     Expr
	Operator *token.Token
	Right    Expr
}

func NewLogical(left Expr, operator *token.Token, right Expr) *Logical {
	return &Logical{exprID: newExprID(), Left: left, Operator: operator, Right: right}
}

// Set is `object.name = value`.
type Set struct {
	exprID
	Object Expr
	Name   *token.Token
	Value  Expr
}

func NewSet(object Expr, name *token.Token, value Expr) *Set {
	return &Set{exprID: newExprID(), Object: object, Name: name, Value: value}
}

// Super is `super.method`.
type Super struct {
	exprID
	Keyword *token.Token
	Method  *token.Token
}

func NewSuper(keyword, method *token.Token) *Super {
	return &Super{exprID: newExprID(), Keyword: keyword, Method: method}
}

// This is the `this` keyword used as an expression.
type This struct {
	exprID
	Keyword *token.Token
}

func NewThis(keyword *token.Token) *This {
	return &This{exprID: newExprID(), Keyword: keyword}
}

// Unary is `op right`.
type Unary struct {
	exprID
	Operator *token.Token
	Right    Expr
}

func NewUnary(operator *token.Token, right Expr) *Unary {
	return &Unary{exprID: newExprID(), Operator: operator, Right: right}
}

// Variable is a bare identifier used as an expression.
type Variable struct {
	exprID
	Name *token.Token
}

func NewVariable(name *token.Token) *Variable {
	return &Variable{exprID: newExprID(), Name: name}
}
