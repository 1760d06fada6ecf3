// Copyright © 2024 The Ember authors

// Package ast defines the tagged-variant tree produced by the parser.
//
// Every Expr carries a unique id, stamped at construction time, so that
// the resolver can key its lexical-depth map by expression identity
// rather than by structural equality: two textually identical expressions
// parsed at different positions in the source are distinct keys.
package ast

import "sync/atomic"

var nextID int64

func newID() int {
	return int(atomic.AddInt64(&nextID, 1))
}
