// Copyright © 2024 The Ember authors

package parser

import (
	"testing"

	"github.com/emberlang/ember/ast"
	"github.com/emberlang/ember/scanner"
	"github.com/emberlang/ember/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collectingReporter struct {
	errors []string
}

func (r *collectingReporter) Error(line int, message string) {
	r.errors = append(r.errors, message)
}

func (r *collectingReporter) ErrorToken(tok *token.Token, message string) {
	r.errors = append(r.errors, message)
}

func parse(t *testing.T, src string) ([]ast.Stmt, *collectingReporter) {
	t.Helper()
	r := &collectingReporter{}
	tokens := scanner.New(src, r).ScanTokens()
	stmts := New(tokens, r).Parse()
	return stmts, r
}

func TestParse_VarDeclaration(t *testing.T) {
	stmts, r := parse(t, "var a = 1;")
	require.Empty(t, r.errors)
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name.Lexeme)
	lit, ok := v.Initializer.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 1.0, lit.Value)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, r := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Empty(t, r.errors)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok, "for loop should desugar to a block")
	require.Len(t, outer.Stmts, 2)

	_, ok = outer.Stmts[0].(*ast.Var)
	assert.True(t, ok, "first statement should be the initializer")

	while, ok := outer.Stmts[1].(*ast.While)
	require.True(t, ok, "second statement should be the while loop")

	body, ok := while.Body.(*ast.Block)
	require.True(t, ok, "while body should be a block when an increment is present")
	require.Len(t, body.Stmts, 2)
	_, ok = body.Stmts[1].(*ast.ExpressionStmt)
	assert.True(t, ok, "increment should be appended as an expression statement")
}

func TestParse_ForWithNoClausesDefaultsConditionToTrue(t *testing.T) {
	stmts, r := parse(t, "for (;;) break;")
	require.Empty(t, r.errors)
	outer := stmts[0].(*ast.Block)
	while := outer.Stmts[0].(*ast.While)
	lit, ok := while.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts, r := parse(t, `class B < A { init(n) { this.n = n; } greet() { print this.n; } }`)
	require.Empty(t, r.errors)
	require.Len(t, stmts, 1)

	class, ok := stmts[0].(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "B", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
	assert.False(t, class.Methods[0].IsGetter)
}

func TestParse_ClassWithNoSuperclassHasNilSuperclass(t *testing.T) {
	stmts, r := parse(t, `class A { }`)
	require.Empty(t, r.errors)
	class := stmts[0].(*ast.Class)
	assert.Nil(t, class.Superclass)
}

func TestParse_GetterMethod(t *testing.T) {
	stmts, r := parse(t, `class Circle { area { return 1; } }`)
	require.Empty(t, r.errors)
	class := stmts[0].(*ast.Class)
	require.Len(t, class.Methods, 1)
	assert.True(t, class.Methods[0].IsGetter)
	assert.Nil(t, class.Methods[0].Params)
}

func TestParse_StaticMethod(t *testing.T) {
	stmts, r := parse(t, `class Math { class square(x) { return x * x; } }`)
	require.Empty(t, r.errors)
	class := stmts[0].(*ast.Class)
	require.Len(t, class.Methods, 1)
	assert.True(t, class.Methods[0].IsStatic)
}

func TestParse_AssignmentTargetRewrite(t *testing.T) {
	stmts, r := parse(t, "a.b = 1;")
	require.Empty(t, r.errors)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	set, ok := exprStmt.Expression.(*ast.Set)
	require.True(t, ok)
	assert.Equal(t, "b", set.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetReportsButContinues(t *testing.T) {
	stmts, r := parse(t, "1 = 2; print 3;")
	require.Len(t, r.errors, 1)
	assert.Contains(t, r.errors[0], "Invalid assignment target.")
	// Parsing should continue past the bad declaration and pick up the
	// following print statement.
	require.Len(t, stmts, 2)
}

func TestParse_SynchronizeAfterError(t *testing.T) {
	stmts, r := parse(t, "var ; print 1;")
	require.NotEmpty(t, r.errors)
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.Print)
	assert.True(t, ok)
}

func TestParse_TooManyArguments(t *testing.T) {
	_, r := parse(t, "f(1,2,3,4,5,6,7,8,9);")
	require.NotEmpty(t, r.errors)
	assert.Contains(t, r.errors[0], "Can't have more than 8 arguments.")
}

func TestParse_BreakStatement(t *testing.T) {
	stmts, r := parse(t, "while (true) break;")
	require.Empty(t, r.errors)
	while := stmts[0].(*ast.While)
	_, ok := while.Body.(*ast.Break)
	assert.True(t, ok)
}

func TestParse_PrecedenceClimbing(t *testing.T) {
	stmts, r := parse(t, "print 1 + 2 * 3;")
	require.Empty(t, r.errors)
	exprStmt := stmts[0].(*ast.Print)
	bin, ok := exprStmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, bin.Operator.Type)
	right, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, token.STAR, right.Operator.Type)
}
