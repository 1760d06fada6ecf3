// Copyright © 2024 The Ember authors

// Package embertest provides test helpers for driving the interpreter
// from a source string and capturing its output.
package embertest

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/emberlang/ember/ember"
)

// Runner runs Ember source against a fresh driver per call, teeing
// stdout and stderr through a Logger so output is attributed to the
// calling subtest, while also capturing it for assertions.
type Runner struct{}

// Result is the outcome of running one source string.
type Result struct {
	Stdout          string
	Stderr          string
	HadCompileError bool
	HadRuntimeError bool
}

// Run scans, parses, resolves, and interprets source against a fresh
// driver (a fresh global environment), returning captured output.
func (r *Runner) Run(t testing.TB, source string) *Result {
	t.Helper()

	logger := NewLogger(t)
	defer logger.Flush()

	var stdout, stderr bytes.Buffer
	d := ember.New(io.MultiWriter(&stdout, logger), io.MultiWriter(&stderr, logger))
	d.Run(source)

	return &Result{
		Stdout:          stdout.String(),
		Stderr:          stderr.String(),
		HadCompileError: d.HadCompileError,
		HadRuntimeError: d.HadRuntimeError,
	}
}

// RunFile reads path and runs it the same way Run does.
func (r *Runner) RunFile(t testing.TB, path string) *Result {
	t.Helper()
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("embertest: reading %s: %v", path, err)
	}
	return r.Run(t, string(src))
}
