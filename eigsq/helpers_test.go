// SPDX-License-Identifier: MIT
// Package eigsq_test contains shared fixtures for the reconstruction tests.
//
// Purpose:
//   • Deterministic symmetric matrices (explicit data or seeded random).
//   • A rotated-diagonal builder whose eigenvectors are known in closed form,
//     so orientation and degeneracy tests can assert against exact targets.

package eigsq_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/interlace/matrix"
)

// hide wraps any Matrix to mask its concrete type, forcing interface
// fallback paths in code under test.
type hide struct{ matrix.Matrix }

// Rotation angles for the rotated-diagonal fixture. Arbitrary but fixed:
// both rotations must be nontrivial so the eigenvector grid is asymmetric.
const (
	theta01 = 0.6 // rotation in the (0,1) coordinate plane
	theta12 = 0.9 // rotation in the (1,2) coordinate plane
)

// mustSym builds an n×n symmetric Dense from row-major data or aborts.
func mustSym(t *testing.T, n int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSymmetricDense(n, vals)
	if err != nil {
		t.Fatalf("NewSymmetricDense(%d): %v", n, err)
	}

	return m
}

// randomSym returns a seeded random symmetric n×n matrix or aborts.
func randomSym(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.RandomSymmetric(n, seed)
	if err != nil {
		t.Fatalf("RandomSymmetric(%d,%d): %v", n, seed, err)
	}

	return m
}

// rotatedDiag BUILDS M = Q·diag(d)·Qᵀ for a fixed 3×3 rotation Q, giving a
// symmetric matrix whose eigenpairs are known exactly.
// Implementation:
//   - Stage 1: Assemble Q = R01(theta01)·R12(theta12); column k of Q is the
//     unit eigenvector paired with d[k].
//   - Stage 2: Accumulate M[i,j] = Σ_k d[k]·Q[i,k]·Q[j,k] on the upper
//     triangle and mirror, so M is exactly symmetric as floats.
//
// Behavior highlights:
//   - Q[2][0] == 0 by construction: eigenvector 0 has no third component.
//     That zero pins the output orientation in tests.
//
// Inputs:
//   - d: eigenvalue targets in ascending order (callers keep d[0]≤d[1]≤d[2]
//     so Q's column order matches the ascending-spectrum convention).
//
// Returns:
//   - the assembled matrix and Q itself (Q[i][k] = component i of vector k).
//
// Complexity:
//   - O(1) (fixed 3×3).
func rotatedDiag(t *testing.T, d [3]float64) (*matrix.Dense, [3][3]float64) {
	t.Helper()

	c1, s1 := math.Cos(theta01), math.Sin(theta01)
	c2, s2 := math.Cos(theta12), math.Sin(theta12)

	// Columns of Q: the exact unit eigenvectors of the assembled matrix.
	q := [3][3]float64{
		{c1, -s1 * c2, s1 * s2},
		{s1, c1 * c2, -c1 * s2},
		{0, s2, c2},
	}

	// M = Σ_k d[k]·q_k·q_kᵀ, mirrored for exact float symmetry.
	data := make([]float64, 9)
	var (
		i, j, k int     // indices
		acc     float64 // entry accumulator
	)
	for i = 0; i < 3; i++ {
		for j = i; j < 3; j++ {
			acc = 0
			for k = 0; k < 3; k++ {
				acc += d[k] * q[i][k] * q[j][k]
			}
			data[i*3+j] = acc
			data[j*3+i] = acc
		}
	}

	return mustSym(t, 3, data), q
}

// columnSum adds up column col of m.
func columnSum(t *testing.T, m matrix.Matrix, col int) float64 {
	t.Helper()
	var (
		row int
		v   float64
		sum float64
		err error
	)
	for row = 0; row < m.Rows(); row++ {
		v, err = m.At(row, col)
		if err != nil {
			t.Fatalf("At(%d,%d): %v", row, col, err)
		}
		sum += v
	}

	return sum
}

// maxAbsDiff returns max_{r,c} |a[r,c] − b[r,c]|. NaN entries propagate:
// any NaN difference makes the result NaN, which callers treat as "beyond
// every threshold".
func maxAbsDiff(t *testing.T, a, b matrix.Matrix) float64 {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var (
		r, c   int
		av, bv float64
		d, max float64
	)
	for r = 0; r < a.Rows(); r++ {
		for c = 0; c < a.Cols(); c++ {
			av, _ = a.At(r, c)
			bv, _ = b.At(r, c)
			d = math.Abs(av - bv)
			if math.IsNaN(d) {
				return d
			}
			if d > max {
				max = d
			}
		}
	}

	return max
}

// assertErrorIs wraps errors.Is with consistent failure text.
func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}
