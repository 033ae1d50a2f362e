// SPDX-License-Identifier: MIT
// Package eigsq - unified dispatcher for the reconstruction variants.
//
// This file provides the canonical entry point to run a reconstruction:
//
//   - Reconstruct: validate the variant selector and the input matrix, then
//     route to the requested implementation (Scalar / ScalarOptimized /
//     Batched).
//
// Design principles:
//   - Deterministic: fixed loop orders everywhere; no randomness.
//   - Strict sentinels: only errors from types.go and the matrix package;
//     no fmt.Errorf where a sentinel suffices.
//   - Identical semantics: all variants compute the same identity and obey
//     the same output contract; they differ only in computational layout.
package eigsq

import (
	"fmt"

	"github.com/katalvlaran/interlace/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opEigenvalues    = "Eigenvalues"
	opEigendecompose = "Eigendecompose"
	opReconstruct    = "Reconstruct"
	opReference      = "Reference"
	opCompare        = "Compare"
)

// eigsqErrorf wraps err with an operation tag, preserving the original error
// via %w. Keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func eigsqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateInput verifies the shared structural contract of every
// reconstruction: non-nil, square, order ≥ 2, symmetric within
// matrix.SymTol. Minor extraction on a 1×1 matrix would leave an empty
// spectrum, so order 2 is the smallest meaningful problem.
//
// Complexity: O(n²) (symmetry scan dominates).
func validateInput(m matrix.Matrix) error {
	// Nil and squareness first; the symmetry validator would catch them too,
	// but the dedicated composite reports the more precise sentinel.
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return err
	}
	if m.Rows() < 2 {
		return matrix.ErrTooSmall
	}

	return matrix.ValidateSymmetric(m, matrix.SymTol)
}

// Reconstruct computes the n×n matrix of squared eigenvector component
// magnitudes of a symmetric matrix using eigenvalue spectra only, routed
// through the requested variant.
//
// Output contract (all variants, pinned by tests):
//
//	result.At(row, col) == |v_col[row]|²
//
// — the column index selects the eigenvector (ascending-eigenvalue order),
// the row index selects the component within it. Each column of the result
// sums to 1 up to floating-point error (squared magnitudes of a unit
// eigenvector).
//
// Near-duplicate eigenvalues make denominator factors of the identity
// nearly vanish. Reconstruct does NOT detect or mask that regime: entries
// may grow arbitrarily large or become non-finite, and callers measuring
// numerical sensitivity rely on seeing those values unaltered.
//
// Inputs:
//   - m: symmetric matrix of order n ≥ 2 (non-nil).
//   - v: member of the closed variant set {Scalar, ScalarOptimized, Batched}.
//
// Returns: a fresh n×n *matrix.Dense obeying the output contract.
//
// Errors:
//   - ErrUnknownVariant for a selector outside the enumeration.
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare / matrix.ErrTooSmall /
//     matrix.ErrAsymmetry for structural violations.
//   - ErrEigenFailed if the eigenvalue primitive does not converge.
//   - ErrSpectrumLength if a minor spectrum arrives with length ≠ n−1.
//
// Complexity: per variant — see the package documentation.
func Reconstruct(m matrix.Matrix, v Variant) (*matrix.Dense, error) {
	// Stage 1 - variant membership. The set is closed; reject anything else
	// before touching the input.
	switch v {
	case Scalar, ScalarOptimized, Batched:
		// ok
	default:
		return nil, eigsqErrorf(opReconstruct, ErrUnknownVariant)
	}

	// Stage 2 - unified input validation (nil, square, order, symmetry).
	if err := validateInput(m); err != nil {
		return nil, eigsqErrorf(opReconstruct, err)
	}

	// Stage 3 - route by variant.
	var (
		out *matrix.Dense
		err error
	)
	switch v {
	case Scalar:
		out, err = reconstructScalar(m)
	case ScalarOptimized:
		out, err = reconstructOptimized(m)
	case Batched:
		out, err = reconstructBatched(m)
	}
	if err != nil {
		return nil, eigsqErrorf(opReconstruct, err)
	}

	return out, nil
}
