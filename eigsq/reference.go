// SPDX-License-Identifier: MIT
// Package eigsq - the direct-decomposition reference.

package eigsq

import "github.com/katalvlaran/interlace/matrix"

// Reference computes the ground-truth squared component magnitudes by
// forming the eigenvectors directly: entry (row, col) is the square of
// component row of the basis column col. The reconstruction variants are
// judged against this matrix.
//
// The basis comes from Eigendecompose, so the column order is the same
// ascending-eigenvalue order every variant uses — entries are comparable
// positionally with no re-sorting.
//
// Inputs: m — non-nil, square, symmetric within matrix.SymTol.
// Returns: fresh n×n *matrix.Dense; each column sums to 1 up to roundoff.
// Errors: structural sentinels from the decomposition boundary;
// ErrEigenFailed on non-convergence. Wrapped with opReference.
// Complexity: O(n³) decomposition + O(n²) squaring.
func Reference(m matrix.Matrix) (*matrix.Dense, error) {
	// Eigendecompose validates the structural contract.
	_, basis, err := Eigendecompose(m)
	if err != nil {
		return nil, eigsqErrorf(opReference, err)
	}

	n := m.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, eigsqErrorf(opReference, err)
	}

	// Square every basis entry in place-order: |v_col[row]|² = basis[row][col]².
	var (
		row, col int     // result indices
		v        float64 // basis entry
	)
	for row = 0; row < n; row++ { // fixed row-major order
		for col = 0; col < n; col++ {
			v = basis.At(row, col)
			if err = out.Set(row, col, v*v); err != nil {
				return nil, eigsqErrorf(opReference, err)
			}
		}
	}

	return out, nil
}
