// Copyright © 2024 The Ember authors

// Package ember wires the scanner, parser, resolver, and interpreter
// into a single root driver, threading the had-compile-error/had-runtime-
// error flags as fields on that driver rather than as process-wide
// globals, and rendering diagnostics in the exact wire format the
// Language's external interface contract requires.
package ember

import (
	"fmt"
	"io"
	"os"

	"github.com/emberlang/ember/diagnostic"
	"github.com/emberlang/ember/lang"
	"github.com/emberlang/ember/parser"
	"github.com/emberlang/ember/resolver"
	"github.com/emberlang/ember/scanner"
	"github.com/emberlang/ember/token"
)

// wireRenderer always writes the plain, uncolored contract text: the
// driver's stderr output must stay byte-identical to the Language's
// wire format regardless of the CLI's --color flag, which only affects
// the supplementary annotated view a command renders on top of it.
var wireRenderer = diagnostic.Renderer{Color: diagnostic.ColorNever}

// Exit codes for the `ember run` CLI surface.
const (
	ExitSuccess      = 0
	ExitUsage        = 64
	ExitCompileError = 65
	ExitRuntimeError = 70
	ExitFileNotFound = 127
)

// Driver runs source through scan -> parse -> resolve -> interpret,
// gating each phase on the previous phase's success and tracking
// whether a compile-time or runtime error occurred. A single Driver may
// run multiple top-level sources against the same interpreter (and so
// the same global environment), the mode a REPL uses; HadCompileError
// and HadRuntimeError are reset at the start of every Run.
type Driver struct {
	Stdout io.Writer
	Stderr io.Writer

	interp *lang.Interpreter

	// phase tracks which pipeline stage is currently reporting, so a
	// Diagnostic records which of scan/parse/resolve/runtime raised it.
	phase diagnostic.Phase

	// CurrentFile names the source for diagnostic spans; "<stdin>" when
	// running REPL input.
	CurrentFile string

	HadCompileError bool
	HadRuntimeError bool

	// Diagnostics accumulates a rendering-ready record of every error
	// reported during the most recent Run, letting a CLI command render
	// an annotated source snippet in addition to the canonical
	// stderr text below.
	Diagnostics []diagnostic.Diagnostic
}

// New returns a Driver that writes `print` output to stdout and shares a
// single interpreter (and thus global environment) across every Run.
func New(stdout, stderr io.Writer) *Driver {
	return &Driver{
		Stdout: stdout,
		Stderr: stderr,
		interp: lang.New(stdout),
	}
}

// Run scans, parses, resolves, and interprets source, reporting
// diagnostics as it goes. It returns once the whole pipeline has run or
// stopped at the first failing phase.
func (d *Driver) Run(source string) {
	d.HadCompileError = false
	d.HadRuntimeError = false
	d.Diagnostics = nil

	d.phase = diagnostic.PhaseScan
	sc := scanner.New(source, d)
	tokens := sc.ScanTokens()
	if d.HadCompileError {
		return
	}

	d.phase = diagnostic.PhaseParse
	p := parser.New(tokens, d)
	stmts := p.Parse()
	if d.HadCompileError {
		return
	}

	d.phase = diagnostic.PhaseResolve
	res := resolver.New(d.interp, d)
	res.Resolve(stmts)
	if d.HadCompileError {
		return
	}

	if err := d.interp.Interpret(stmts); err != nil {
		d.reportRuntimeError(err)
	}
}

// Error reports a scanner diagnostic, which names no specific token,
// formatted per the Language's `[line L] Error: MSG` contract.
func (d *Driver) Error(line int, message string) {
	d.report(line, "", message)
}

// ErrorToken reports a parser/resolver diagnostic anchored at tok,
// formatted per the Language's `[line L] Error at 'LEXEME': MSG` (or
// `Error at end: MSG` for EOF) contract.
func (d *Driver) ErrorToken(tok *token.Token, message string) {
	if tok.Type == token.EOF {
		d.report(tok.Line, "end", message)
		return
	}
	d.report(tok.Line, "'"+tok.Lexeme+"'", message)
}

func (d *Driver) report(line int, where, message string) {
	d.HadCompileError = true
	diag := diagnostic.Diagnostic{
		Phase:   d.phase,
		Where:   where,
		Message: message,
		Spans:   []diagnostic.Span{{File: d.CurrentFile, Line: line, Col: 1}},
	}
	_ = wireRenderer.Render(d.Stderr, diag)
	d.Diagnostics = append(d.Diagnostics, diag)
}

func (d *Driver) reportRuntimeError(err error) {
	d.HadRuntimeError = true
	rerr, ok := err.(*lang.RuntimeError)
	if !ok {
		fmt.Fprintln(d.Stderr, err)
		return
	}
	diag := diagnostic.Diagnostic{
		Phase:   diagnostic.PhaseRuntime,
		Message: rerr.Message,
		Spans:   []diagnostic.Span{{File: d.CurrentFile, Line: rerr.Token.Line, Col: 1}},
	}
	_ = wireRenderer.Render(d.Stderr, diag)
	d.Diagnostics = append(d.Diagnostics, diag)
}

// RunFile reads path and runs it, returning the process exit code: 0 on
// success, 65 if any compile-time error occurred, 70 if a runtime error
// occurred, 127 if the file could not be read.
func (d *Driver) RunFile(path string) int {
	d.CurrentFile = path
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(d.Stderr, "Error: could not read file %q: %v\n", path, err)
		return ExitFileNotFound
	}

	d.Run(string(src))
	switch {
	case d.HadCompileError:
		return ExitCompileError
	case d.HadRuntimeError:
		return ExitRuntimeError
	default:
		return ExitSuccess
	}
}

// Globals exposes the interpreter's global environment, used by the REPL
// to drive variable/class/function-name completion.
func (d *Driver) Globals() *lang.Environment {
	return d.interp.Globals()
}
