// SPDX-License-Identifier: MIT
// Package eigsq - the Scalar (naive baseline) variant.

package eigsq

import "github.com/katalvlaran/interlace/matrix"

// componentSquared evaluates the interlacing identity for one
// (eigenvector i, component j) pair:
//
//	|v_i[j]|² = Π_{k=0}^{n-2} (λ_i − μ_k) / Π_{k≠i} (λ_i − λ_k)
//
// where λ is the full spectrum and μ the spectrum of the j-deleted minor.
//
// The full spectrum AND the minor spectrum are recomputed on every call.
// That is deliberate: this kernel is the naive baseline whose cost and
// numerical behavior the other variants are measured against. Do not cache
// here.
//
// Inputs: m — validated upstream (square, symmetric, n ≥ 2); i, j ∈ [0, n).
// Returns: the squared component magnitude; may be huge or non-finite when
// the spectrum is (near-)degenerate — that is a measured condition, not an
// error.
// Errors: ErrEigenFailed, ErrSpectrumLength, minor-extraction sentinels.
// Determinism: both products accumulate in ascending k order.
// Complexity: O(n³) per call (two dense eigenvalue problems).
func componentSquared(m matrix.Matrix, i, j int) (float64, error) {
	n := m.Rows()

	// Full spectrum (ascending), recomputed per call by design.
	lambda, err := eigenvaluesOf(m)
	if err != nil {
		return 0, err
	}

	// j-deleted principal minor and its spectrum.
	mj, err := matrix.Minor(m, j)
	if err != nil {
		return 0, err
	}
	mu, err := eigenvaluesOf(mj)
	if err != nil {
		return 0, err
	}
	// Shape invariant: a minor of an n×n matrix has exactly n−1 eigenvalues.
	if len(mu) != n-1 {
		return 0, ErrSpectrumLength
	}

	// Numerator: Π_k (λ_i − μ_k) over all minor eigenvalues, ascending k.
	var (
		k         int     // product index
		numerator float64 // running numerator product
	)
	numerator = 1.0
	for k = 0; k < n-1; k++ {
		numerator *= lambda[i] - mu[k]
	}

	// Denominator: Π_{k≠i} (λ_i − λ_k), ascending k. Factors may be
	// arbitrarily small for crowded spectra; division proceeds regardless.
	var denominator float64
	denominator = 1.0
	for k = 0; k < n; k++ {
		if k == i {
			continue
		}
		denominator *= lambda[i] - lambda[k]
	}

	return numerator / denominator, nil
}

// reconstructScalar fills the result matrix one entry at a time through
// componentSquared. Loop convention: i indexes the eigenvector, j the
// component; the assignment out[j][i] applies the transpose that makes the
// returned matrix obey result.At(row, col) == |v_col[row]|².
//
// Complexity: O(n²) kernel calls, each O(n³) — O(n⁵) total. The waste is
// the point of the baseline.
func reconstructScalar(m matrix.Matrix) (*matrix.Dense, error) {
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
			v, err = componentSquared(m, i, j)
			if err != nil {
				return nil, err
			}
			// Component j of eigenvector i lands in row j, column i.
			if err = out.Set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
