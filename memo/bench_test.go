// Package memo_test benchmarks the memoized path against recomputation,
// quantifying what the single-slot cache actually buys.
package memo_test

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/memo"
)

// benchSize keeps the O(n³) inversion measurable without dominating CI time.
const benchSize = 64

// benchMatrix builds a diagonally dominant benchSize×benchSize matrix, which
// keeps every pivot comfortably nonzero for the non-pivoting LU.
func benchMatrix(b *testing.B) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(benchSize, benchSize)
	if err != nil {
		b.Fatal(err)
	}
	var i, j int
	for i = 0; i < benchSize; i++ {
		for j = 0; j < benchSize; j++ {
			if i == j {
				_ = m.Set(i, j, float64(benchSize)) // dominant diagonal
			} else {
				_ = m.Set(i, j, 1.0/float64(1+i+j)) // small off-diagonal mass
			}
		}
	}

	return m
}

// benchSolver returns a solver with silenced diagnostics so logging does not
// show up in the measurement.
func benchSolver() *memo.Solver {
	return memo.NewSolver(memo.WithLogger(&log.Logger{
		Handler: discard.Default,
		Level:   log.InfoLevel,
	}))
}

// BenchmarkSolveRecompute measures the uncached path: every iteration resets
// the slot and pays the full O(n³) inversion.
func BenchmarkSolveRecompute(b *testing.B) {
	m := benchMatrix(b)
	s := benchSolver()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset() // force a miss
		if _, err := s.Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolveHit measures the cached path: the equality scan plus the
// diagnostic, O(n²) against the O(n³) recompute above.
func BenchmarkSolveHit(b *testing.B) {
	m := benchMatrix(b)
	s := benchSolver()
	if _, err := s.Solve(m); err != nil { // warm the slot once
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInverseDirect is the baseline without the memo layer at all.
func BenchmarkInverseDirect(b *testing.B) {
	m := benchMatrix(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Inverse(m); err != nil {
			b.Fatal(err)
		}
	}
}
