// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test fixtures and assertion helpers.
//
// Purpose:
//   • Provide small, deterministic builders for square/symmetric matrices.
//   • Keep all fixture data finite so the numeric-policy validators stay out
//     of the way unless a test exercises them on purpose.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/interlace/matrix"
)

// hide WRAPS any Matrix to mask its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Defeats the "*Dense" fast path selected by type switch in code under test.
//
// Inputs:
//   - matrix.Matrix: any implementation.
//
// Returns:
//   - hide: wrapper that still satisfies Matrix but masks the concrete type.
//
// Errors:
//   - None.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Wrap ONLY the operand you want to de-opt; keep others *Dense to isolate
//     path differences.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or aborts the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice or aborts.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// MustSymmetric BUILDS an n×n symmetric *Dense from row-major data or aborts.
// Implementation:
//   - Stage 1: Call matrix.NewSymmetricDense(n, vals).
//   - Stage 2: t.Fatalf on any constructor error.
//
// Behavior highlights:
//   - One-liner for fixtures that must pass the symmetry validator.
//
// Inputs:
//   - n: order; vals: row-major data of length n*n, symmetric within SymTol.
//
// Returns:
//   - *matrix.Dense holding a private copy of vals.
//
// Errors:
//   - Fatal test failure if validation rejects the data.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func MustSymmetric(t *testing.T, n int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSymmetricDense(n, vals)
	if err != nil {
		t.Fatalf("NewSymmetricDense(%d): %v", n, err)
	}

	return m
}

// MustSet writes v to m[i,j] or aborts the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or aborts the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts strict equality between a 2D literal and a Matrix.
// Use only for integer-like or carefully crafted values; no tolerances.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// InDelta reports whether |a-b| ≤ delta (boolean, non-fatal).
func InDelta(a, b, delta float64) bool {
	return math.Abs(a-b) <= delta
}

// AssertErrorIs wraps errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ---------- bench helpers ----------

func mustSymmetricBench(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.RandomSymmetric(n, seed)
	if err != nil {
		b.Fatalf("RandomSymmetric(%d,%d): %v", n, seed, err)
	}

	return m
}
