// Copyright © 2024 The Ember authors

package repl

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/emberlang/ember/ember"
	"github.com/ergochat/readline"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output to the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// RunRepl runs a read-eval-print loop against a fresh driver, sharing a
// single global environment across every line so later lines can use
// variables, functions, and classes declared by earlier ones.
func RunRepl(prompt string, opts ...Option) {
	cfg := newConfig(opts...)

	// A REPL has one output stream: `print` results and diagnostics are
	// interleaved on whatever stderr is configured for, matching how a
	// terminal session displays both as they happen.
	var stderr io.Writer = os.Stderr
	if cfg.stderr != nil {
		stderr = cfg.stderr
	}
	d := ember.New(stderr, stderr)
	d.CurrentFile = "<stdin>"

	histFile := historyPath()
	ensureHistoryFilePermissions(histFile)

	rlCfg := &readline.Config{
		Stdout:            stderr,
		Stderr:            stderr,
		Prompt:            prompt,
		HistoryFile:       histFile,
		HistorySearchFold: true,
		AutoComplete:      &symbolCompleter{driver: d},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		d.Run(line)
		if d.HadCompileError || d.HadRuntimeError {
			renderError(stderr, d)
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ember_history")
}

// ensureHistoryFilePermissions restricts the REPL history file to
// user-only read/write, creating it first if necessary, since it may
// capture values a script printed during an interactive session.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return
		}
		f.Close() //nolint:errcheck // best-effort creation
	}
	_ = os.Chmod(path, 0o600)
}
