// Copyright © 2024 The Ember authors

package repl

import (
	"bytes"
	"testing"

	"github.com/emberlang/ember/ember"
)

func TestSymbolCompleter(t *testing.T) {
	var buf bytes.Buffer
	d := ember.New(&buf, &buf)
	d.Run(`var height = 1; var width = 2; fun area() { return height * width; }`)

	c := &symbolCompleter{driver: d}

	// "h" should match "height".
	candidates, offset := c.Do([]rune("print h"), 7)
	if offset != 1 {
		t.Errorf("offset = %d, want 1", offset)
	}
	if len(candidates) == 0 {
		t.Error("expected completions for 'h', got none")
	}

	// "w" should match "width".
	candidates, offset = c.Do([]rune("print w"), 7)
	if offset != 1 {
		t.Errorf("offset = %d, want 1", offset)
	}
	if len(candidates) == 0 {
		t.Error("expected completions for 'w', got none")
	}

	// "zzznonexistent" should have no completions.
	candidates, _ = c.Do([]rune("zzznonexistent"), 14)
	if len(candidates) != 0 {
		t.Errorf("expected no completions for 'zzznonexistent', got %d", len(candidates))
	}
}
