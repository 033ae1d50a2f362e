// SPDX-License-Identifier: MIT
// Package eigsq - the eigenvalue primitive boundary.
//
// This file is the only place the module talks to the numerical backend
// (gonum's symmetric eigensolver). Everything above it consumes plain
// ascending []float64 spectra, so the backend could be swapped without
// touching any reconstruction code.
//
// Ordering contract (the linchpin invariant): gonum returns eigenvalues in
// ascending order, and VectorsTo pairs column i of the basis with value i.
// The full spectrum, every minor spectrum, and the reference basis all share
// this ordering; nothing downstream may re-sort locally.

package eigsq

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/interlace/matrix"
)

// toSym copies m into a gonum SymDense. No structural validation happens
// here: callers either validated already (internal kernels) or validate at
// their public boundary. Deterministic row-major copy order.
//
// Complexity: O(n²) time and space.
func toSym(m matrix.Matrix) *mat.SymDense {
	n := m.Rows()
	data := make([]float64, n*n)
	var (
		i, j int     // matrix indices
		v    float64 // element under copy
	)
	for i = 0; i < n; i++ { // fixed row-major order
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // bounds valid inside loop ranges
			data[i*n+j] = v
		}
	}

	return mat.NewSymDense(n, data)
}

// eigenvaluesOf returns the ascending spectrum of an already-validated
// symmetric matrix. Internal: public callers go through Eigenvalues.
func eigenvaluesOf(m matrix.Matrix) ([]float64, error) {
	var es mat.EigenSym
	if ok := es.Factorize(toSym(m), false); !ok {
		return nil, ErrEigenFailed
	}

	// Values(nil) allocates and fills in ascending order per gonum contract.
	return es.Values(nil), nil
}

// Eigenvalues returns the eigenvalues of a symmetric matrix in ascending
// order.
//
// Inputs: m — non-nil, square, symmetric within matrix.SymTol.
// Returns: ascending spectrum of length m.Rows().
// Errors: matrix.ErrNilMatrix/ErrNonSquare/ErrAsymmetry on structural
// violations; ErrEigenFailed if the solver does not converge.
// Complexity: O(n³) (dense symmetric eigenvalue problem).
func Eigenvalues(m matrix.Matrix) ([]float64, error) {
	// Validate the full structural contract at the public boundary.
	if err := matrix.ValidateSymmetric(m, matrix.SymTol); err != nil {
		return nil, eigsqErrorf(opEigenvalues, err)
	}

	vals, err := eigenvaluesOf(m)
	if err != nil {
		return nil, eigsqErrorf(opEigenvalues, err)
	}

	return vals, nil
}

// Eigendecompose returns the ascending eigenvalues of a symmetric matrix
// together with the matching eigenvector basis: column i of the returned
// matrix is the unit eigenvector paired with value i.
//
// Inputs: m — non-nil, square, symmetric within matrix.SymTol.
// Returns: (ascending spectrum, n×n eigenvector basis).
// Errors: structural sentinels as in Eigenvalues; ErrEigenFailed on
// non-convergence.
// Complexity: O(n³).
func Eigendecompose(m matrix.Matrix) ([]float64, *mat.Dense, error) {
	if err := matrix.ValidateSymmetric(m, matrix.SymTol); err != nil {
		return nil, nil, eigsqErrorf(opEigendecompose, err)
	}

	var es mat.EigenSym
	if ok := es.Factorize(toSym(m), true); !ok {
		return nil, nil, eigsqErrorf(opEigendecompose, ErrEigenFailed)
	}

	// Extract values and vectors from the factorization.
	vals := es.Values(nil)
	var basis mat.Dense
	es.VectorsTo(&basis)

	return vals, &basis, nil
}
