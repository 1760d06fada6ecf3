// Copyright © 2024 The Ember authors

package scanner

import (
	"testing"

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

func scanTypes(t *testing.T, src string) []token.Type {
	t.Helper()
	r := &collectingReporter{}
	s := New(src, r)
	tokens := s.ScanTokens()
	require.Empty(t, r.errors, "unexpected scan errors: %v", r.errors)
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanTokens_Punctuation(t *testing.T) {
	types := scanTypes(t, "(){},.-+;*!= == <= >= < >")
	assert.Equal(t, []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.EOF,
	}, types)
}

func TestScanTokens_Comment(t *testing.T) {
	types := scanTypes(t, "1 // a comment\n2")
	assert.Equal(t, []token.Type{token.NUMBER, token.NUMBER, token.EOF}, types)
}

func TestScanTokens_String(t *testing.T) {
	r := &collectingReporter{}
	s := New(`"hello world"`, r)
	tokens := s.ScanTokens()
	require.Empty(t, r.errors)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	r := &collectingReporter{}
	New(`"unterminated`, r).ScanTokens()
	require.Len(t, r.errors, 1)
	assert.Equal(t, "Unterminated string.", r.errors[0])
}

func TestScanTokens_Number(t *testing.T) {
	r := &collectingReporter{}
	s := New("123.45", r)
	tokens := s.ScanTokens()
	require.Empty(t, r.errors)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, 123.45, tokens[0].Literal)
}

func TestScanTokens_TrailingDotNotConsumed(t *testing.T) {
	r := &collectingReporter{}
	s := New("123.", r)
	tokens := s.ScanTokens()
	require.Empty(t, r.errors)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, token.DOT, tokens[1].Type)
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	types := scanTypes(t, "var x = orchard break")
	assert.Equal(t, []token.Type{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.BREAK, token.EOF,
	}, types)
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	r := &collectingReporter{}
	New("@", r).ScanTokens()
	require.Len(t, r.errors, 1)
	assert.Equal(t, "Unexpected character.", r.errors[0])
}

func TestScanTokens_LineTracking(t *testing.T) {
	r := &collectingReporter{}
	s := New("1\n2\n3", r)
	tokens := s.ScanTokens()
	require.Empty(t, r.errors)
	require.Len(t, tokens, 4)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}
