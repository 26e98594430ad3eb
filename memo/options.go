// SPDX-License-Identifier: MIT

// Package memo: functional configuration for Solver construction.
// Same conventions as matrix/options.go: constructors panic only on
// nonsensical values (programmer error), setters are idempotent.

package memo

import "github.com/apex/log"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLoggerNil = "memo: WithLogger: logger must be non-nil"
	panicInvertNil = "memo: WithInvertFunc: fn must be non-nil"
)

// Option mutates a Solver during NewSolver. Applied in order; later
// options win.
type Option func(*Solver)

// WithLogger injects the diagnostic sink used for cache-hit/miss messages.
// Tests typically pass a logger backed by apex/log's memory handler to
// assert on emission; production callers can route it anywhere apex/log
// can write.
//
// Panics when l is nil; silencing is spelled explicitly with a discard
// handler, not a nil logger.
// Complexity: O(1).
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(s *Solver) { s.log = l }
}

// WithInvertFunc substitutes the inversion routine. The Solver treats the
// routine as opaque: results are cached verbatim, errors propagate
// unchanged. Intended for tests (invocation counting) and for callers with
// their own factorization.
//
// Panics when fn is nil.
// Complexity: O(1).
func WithInvertFunc(fn InvertFunc) Option {
	if fn == nil {
		panic(panicInvertNil)
	}

	return func(s *Solver) { s.invert = fn }
}
