// Copyright © 2024 The Ember authors

package lang

import (
	"fmt"

	"github.com/emberlang/ember/token"
)

// RuntimeError is raised by the interpreter for any failure that can only
// be detected at evaluation time (type mismatches, undefined names, wrong
// arity). It carries the token nearest the fault so a driver can render
// the two-line `MSG` / `[line L]` diagnostic format.
type RuntimeError struct {
	Token   *token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func newRuntimeError(tok *token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds the Go call stack back to the enclosing
// Function.Call invocation, carrying the returned value. It is never surfaced to a
// caller outside the interpreter.
type returnSignal struct {
	Value interface{}
}

func (returnSignal) Error() string { return "uncaught return signal" }

// breakSignal unwinds back to the nearest enclosing while loop. The
// resolver guarantees one never escapes a loop, so the interpreter only
// needs to catch it at the loop boundary.
type breakSignal struct{}

func (breakSignal) Error() string { return "uncaught break signal" }
