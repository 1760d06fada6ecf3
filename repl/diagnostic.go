// Copyright © 2024 The Ember authors

package repl

import (
	"io"

	"github.com/emberlang/ember/diagnostic"
	"github.com/emberlang/ember/ember"
)

// renderError renders a supplementary annotated view of a driver's
// accumulated diagnostics for REPL output. The driver has already
// written the canonical plain-text `[line L] Error...` message to w as
// the line ran; since a REPL line has no backing file to read back
// (CurrentFile is "<stdin>"), the snippet degrades to a bare location
// line with no source to underline.
func renderError(w io.Writer, d *ember.Driver) {
	if len(d.Diagnostics) == 0 {
		return
	}
	r := &diagnostic.Renderer{Color: diagnostic.ColorAuto}
	_ = r.RenderAllSnippets(w, d.Diagnostics)
}
