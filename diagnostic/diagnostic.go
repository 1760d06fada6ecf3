// Copyright © 2024 The Ember authors

// Package diagnostic turns a pipeline-stage fault into the exact
// `[line L] Error...` wire text the Language's external interface
// contract fixes, and, when asked to annotate, an underlined source
// snippet beneath it. A Diagnostic carries the phase that produced it
// (scan/parse/resolve have one wire shape, runtime has another) so a
// single Renderer produces both the canonical contract text and the
// richer annotated view instead of the two being written by separate,
// independently-drifting code paths.
package diagnostic

// Phase identifies which stage of the scan -> parse -> resolve ->
// interpret pipeline raised a Diagnostic. It selects which of the two
// wire formats the renderer writes: the three compile-time phases all
// use `[line L] Error...`; PhaseRuntime uses the two-line
// `MSG` / `[line L]` form.
type Phase int

const (
	PhaseScan Phase = iota
	PhaseParse
	PhaseResolve
	PhaseRuntime
)

func (p Phase) String() string {
	switch p {
	case PhaseScan:
		return "scan"
	case PhaseParse:
		return "parse"
	case PhaseResolve:
		return "resolve"
	case PhaseRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Span identifies a region of source code to annotate with an
// underline in the annotated rendering.
type Span struct {
	File   string // path for reading source; display name if unreadable
	Line   int    // 1-based source line
	Col    int    // 1-based start column
	EndCol int    // 1-based end column (0 = auto-detect from source)
	Label  string // text shown under the underline
}

// Diagnostic is a single compile-time or runtime fault raised while
// running a source string through the pipeline.
type Diagnostic struct {
	Phase Phase

	// Where names the offending token, already formatted the way the
	// wire contract expects it ("'lexeme'", or "end" for a fault
	// anchored at EOF). Empty for a scanner fault (which names no
	// specific token) and for every PhaseRuntime fault (whose wire
	// format has no "at ..." clause at all).
	Where string

	Message string
	Spans   []Span
	Notes   []string // "= note:" lines shown only in the annotated view
}
