// SPDX-License-Identifier: MIT
// Package eigsq - the Batched variant.

package eigsq

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/interlace/matrix"
)

// reconstructBatched computes the whole result from spectra tables: the full
// matrix is decomposed once, every minor exactly once, and all numerators
// and denominators are then assembled with slice kernels over those tables.
// No per-entry eigen work remains, which is what makes this the "vectorized"
// layout of the identity.
//
// Implementation:
//   - Stage 1: full spectrum λ (ascending), one decomposition.
//   - Stage 2: minor spectra table — row j holds the ascending spectrum of
//     the j-deleted minor (matrix.AllMinors + one decomposition each).
//   - Stage 3: reduced spectra table — row i holds λ with entry i removed,
//     built alongside so the denominator step repeats no deletions.
//   - Stage 4: numerator table num[i][j] = Π_k (λ_i − μ^{(j)}_k) and
//     denominator vector den[i] = Π_{k≠i} (λ_i − λ_k), both via
//     floats.ScaleTo/AddConst/Prod over a shared scratch slice.
//   - Stage 5: transpose-divide into the result: out[j][i] = num[i][j]/den[i],
//     which lands component j of eigenvector i in row j, column i per the
//     output contract.
//
// Determinism: ascending i→j table order; floats.Prod folds factors in
// ascending index order, so every product sees its factors exactly as the
// scalar kernels do and the variants agree to the last bit for identical
// spectra.
//
// Errors: ErrEigenFailed, ErrSpectrumLength, minor-extraction sentinels.
// Complexity: n+1 eigenvalue problems (O(n⁴) total) + O(n³) assembly,
// O(n³) space for the minor family.
func reconstructBatched(m matrix.Matrix) (*matrix.Dense, error) {
	n := m.Rows()

	// Stage 1 - full spectrum, once.
	lambda, err := eigenvaluesOf(m)
	if err != nil {
		return nil, err
	}

	// Stage 2 - the whole minor family, then one spectrum per minor.
	minors, err := matrix.AllMinors(m)
	if err != nil {
		return nil, err
	}
	var (
		i, j         int         // table indices
		mu           []float64   // spectrum of the current minor
		minorSpectra [][]float64 // [j][k] = μ^{(j)}_k, ascending k
	)
	minorSpectra = make([][]float64, n)
	for j = 0; j < n; j++ { // ascending deletion order
		mu, err = eigenvaluesOf(minors[j])
		if err != nil {
			return nil, err
		}
		// Shape invariant: every minor contributes exactly n−1 eigenvalues.
		if len(mu) != n-1 {
			return nil, ErrSpectrumLength
		}
		minorSpectra[j] = mu
	}

	// Stage 3 - reduced spectra: row i = λ with entry i deleted. Built once
	// here so Stage 4 never repeats a deletion.
	reduced := make([][]float64, n)
	var row []float64
	for i = 0; i < n; i++ {
		row = make([]float64, 0, n-1)
		row = append(row, lambda[:i]...)
		row = append(row, lambda[i+1:]...)
		reduced[i] = row
	}

	// Stage 4 - numerator table and denominator vector via slice kernels.
	// diffs is the shared scratch: ScaleTo writes −spectrum, AddConst shifts
	// by λ_i, Prod folds the factors. Negation is exact in IEEE arithmetic,
	// so λ_i + (−x) equals the scalar kernels' λ_i − x bitwise.
	var (
		numerator   = mat.NewDense(n, n, nil) // [i][j] = Π_k (λ_i − μ^{(j)}_k)
		denominator = make([]float64, n)      // [i]    = Π_{k≠i} (λ_i − λ_k)
		diffs       = make([]float64, n-1)    // shared scratch, length n−1
		li          float64                   // hoisted λ_i
	)
	for i = 0; i < n; i++ {
		li = lambda[i]
		for j = 0; j < n; j++ {
			floats.ScaleTo(diffs, -1, minorSpectra[j]) // diffs = −μ^{(j)}
			floats.AddConst(li, diffs)                 // diffs = λ_i − μ^{(j)}
			numerator.Set(i, j, floats.Prod(diffs))    // fold ascending k
		}
		floats.ScaleTo(diffs, -1, reduced[i])
		floats.AddConst(li, diffs)
		denominator[i] = floats.Prod(diffs)
	}

	// Stage 5 - transpose-divide into the result. Division proceeds even for
	// (near-)zero denominators: degeneracy is a measured condition here.
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = out.Set(j, i, numerator.At(i, j)/denominator[i]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
