// Copyright © 2024 The Ember authors

package cmd

import (
	"os"

	"github.com/emberlang/ember/diagnostic"
	"github.com/emberlang/ember/ember"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// renderDiagnostics renders an annotated source snippet for each of a
// driver's accumulated diagnostics, supplementing (never repeating) the
// canonical plain-text errors the driver already wrote to stderr while
// running.
func renderDiagnostics(d *ember.Driver) {
	if len(d.Diagnostics) == 0 {
		return
	}
	r := newRenderer()
	_ = r.RenderAllSnippets(os.Stderr, d.Diagnostics)
}
