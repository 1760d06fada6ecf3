// Copyright © 2024 The Ember authors

package repl

import (
	"sort"
	"strings"

	"github.com/emberlang/ember/ember"
)

// symbolCompleter implements readline.AutoCompleter by enumerating
// global variable, function, and class names bound in the driver's
// interpreter.
type symbolCompleter struct {
	driver *ember.Driver
}

func (c *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace,
	// '(' or '.').
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' || ch == '(' || ch == '.' || ch == '\n' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	candidates := c.collectNames(prefix)
	if len(candidates) == 0 {
		return nil, 0
	}

	result := make([][]rune, 0, len(candidates))
	for _, name := range candidates {
		suffix := name[len(prefix):]
		result = append(result, []rune(suffix))
	}
	return result, len(prefix)
}

func (c *symbolCompleter) collectNames(prefix string) []string {
	var result []string
	for _, name := range c.driver.Globals().Names() {
		if strings.HasPrefix(name, prefix) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}
