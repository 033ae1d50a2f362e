// SPDX-License-Identifier: MIT
// Package eigsq - entrywise agreement against the reference.

package eigsq

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/interlace/matrix"
)

// DefaultCompareTolerance is the absolute entrywise tolerance for agreement
// between a reconstruction variant and the direct-decomposition reference.
// Well-conditioned inputs agree far below it; near-degenerate spectra blow
// through it, which is the signal the comparison exists to expose.
const DefaultCompareTolerance = 1e-12

// Compare runs the chosen reconstruction variant and the reference on m and
// reports entrywise agreement within DefaultCompareTolerance: cell (r, c) of
// the returned grid is true iff |variant[r][c] − reference[r][c]| < tol.
//
// Errors: ErrUnknownVariant for a selector outside the closed set (checked
// before any computation); otherwise whatever Reconstruct/Reference surface.
// Complexity: one Reconstruct + one Reference + O(n²) comparison.
func Compare(m matrix.Matrix, v Variant) ([][]bool, error) {
	return CompareWithTolerance(m, v, DefaultCompareTolerance)
}

// CompareWithTolerance is Compare with a caller-chosen absolute tolerance.
// The tolerance must be finite; a negative value is folded to its absolute
// value (mirroring the symmetry validator's policy).
func CompareWithTolerance(m matrix.Matrix, v Variant, tol float64) ([][]bool, error) {
	// Tolerance sanity: NaN/Inf is a numeric policy violation.
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, eigsqErrorf(opCompare, matrix.ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	// Reconstruct validates the variant selector first, so an unknown
	// variant surfaces before any eigen work regardless of the input matrix.
	rec, err := Reconstruct(m, v)
	if err != nil {
		return nil, eigsqErrorf(opCompare, err)
	}
	ref, err := Reference(m)
	if err != nil {
		return nil, eigsqErrorf(opCompare, err)
	}

	// Entrywise |Δ| < tol grid in fixed row-major order.
	n := m.Rows()
	agree := make([][]bool, n)
	var (
		r, c   int     // grid indices
		rv, fv float64 // variant and reference entries
	)
	for r = 0; r < n; r++ {
		agree[r] = make([]bool, n)
		for c = 0; c < n; c++ {
			rv, _ = rec.At(r, c) // fresh matrices of known shape; errors impossible
			fv, _ = ref.At(r, c)
			agree[r][c] = scalar.EqualWithinAbs(rv, fv, tol)
		}
	}

	return agree, nil
}
