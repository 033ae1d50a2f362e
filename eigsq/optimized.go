// SPDX-License-Identifier: MIT
// Package eigsq - the ScalarOptimized variant.

package eigsq

import "github.com/katalvlaran/interlace/matrix"

// componentSquaredFused is the micro-optimized form of componentSquared:
// the same identity, the same per-call spectrum recomputation, but the
// target eigenvalue is hoisted into a register once and both products are
// accumulated in a single fused pass over k. No intermediate slices, no
// repeated spectrum indexing.
//
// Both accumulators still see their factors in ascending k order, so the
// result is bit-identical to the Scalar kernel; only the computational
// layout changes.
//
// Complexity: O(n³) per call, dominated by the two eigenvalue problems.
func componentSquaredFused(m matrix.Matrix, i, j int) (float64, error) {
	n := m.Rows()

	// Spectra recomputed per call, matching the baseline's call-level cost.
	lambda, err := eigenvaluesOf(m)
	if err != nil {
		return 0, err
	}
	mj, err := matrix.Minor(m, j)
	if err != nil {
		return 0, err
	}
	mu, err := eigenvaluesOf(mj)
	if err != nil {
		return 0, err
	}
	if len(mu) != n-1 {
		return 0, ErrSpectrumLength
	}

	// One fused pass: k < n−1 feeds the numerator, k ≠ i the denominator.
	var (
		k           int     // fused product index
		li          float64 // hoisted λ_i
		numerator   float64 // running Π (λ_i − μ_k)
		denominator float64 // running Π_{k≠i} (λ_i − λ_k)
	)
	li = lambda[i]
	numerator, denominator = 1.0, 1.0
	for k = 0; k < n; k++ {
		if k < n-1 {
			numerator *= li - mu[k]
		}
		if k != i {
			denominator *= li - lambda[k]
		}
	}

	return numerator / denominator, nil
}

// reconstructOptimized mirrors reconstructScalar exactly, entry for entry,
// swapping in the fused kernel. Same transpose on assignment: out[j][i]
// holds component j of eigenvector i.
func reconstructOptimized(m matrix.Matrix) (*matrix.Dense, error) {
	n := m.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int     // i = eigenvector index, j = component index
		v    float64 // |v_i[j]|²
	)
	for i = 0; i < n; i++ { // deterministic i→j order
		for j = 0; j < n; j++ {
			v, err = componentSquaredFused(m, i, j)
			if err != nil {
				return nil, err
			}
			if err = out.Set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
