// SPDX-License-Identifier: MIT
// Package matrix: principal-minor extraction kernels.
//
// Purpose:
//   - Declare the minor-extraction kernels used by the spectral packages:
//     Minor (single index) and AllMinors (the whole family, index order).
//   - Define operation tags shared by this package's kernels for uniform
//     error reporting.
//
// Notes:
//   - All kernels use the central validators and return plain sentinels
//     wrapped via matrixErrorf with the operation tag.
//   - Minors are always fresh allocations; the source matrix is never
//     aliased or mutated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMinor     = "Minor"
	opAllMinors = "AllMinors"
	opFrobenius = "FrobeniusNorm"
	opRandom    = "RandomSymmetric"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Minor returns the (n−1)×(n−1) principal submatrix of m obtained by deleting
// row j and column j. This is the deletion that pairs a full-spectrum index
// with its interlacing minor spectrum, so exactness here is load-bearing for
// everything downstream.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); require n ≥ 2; ValidateIndexInRange(m, j).
//   - Stage 2: Allocate the (n−1)×(n−1) result.
//   - Stage 3: Fast-path if m is *Dense — copy the two row segments around
//     column j for every surviving row. Otherwise, fallback At/Set with
//     fixed i→k order and index shifting past the deleted pair.
//
// Behavior highlights:
//   - Fresh allocation; m is never mutated or aliased.
//   - Entries are copied, not recomputed, so symmetry survives exactly.
//
// Inputs:
//   - m: square matrix of order n ≥ 2 (non-nil).
//   - j: index of the row/column pair to delete, 0 ≤ j < n.
//
// Returns:
//   - *Dense: newly allocated minor.
//   - error : validation failures wrapped with opMinor.
//
// Errors:
//   - ErrNilMatrix  (nil input).
//   - ErrNonSquare  (rows != cols).
//   - ErrTooSmall   (n < 2; the minor would be empty).
//   - ErrOutOfRange (j outside [0, n)).
//
// Determinism:
//   - Fast-path: per-row segment copies in ascending row order.
//   - Fallback: fixed nested loops i=0..n−1, k=0..n−1 skipping j.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the new minor.
func Minor(m Matrix, j int) (*Dense, error) {
	// Validate structure first: nil and squareness.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	// A 1×1 matrix has no minors; deletion would leave a 0×0 matrix.
	if n < 2 {
		return nil, matrixErrorf(opMinor, ErrTooSmall)
	}
	// The deleted index must address an existing row/column pair.
	if err := ValidateIndexInRange(m, j); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	// Allocate the reduced matrix.
	out, err := NewDense(n-1, n-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	// Fast path: *Dense source → copy row segments around the deleted column.
	if dm, ok := m.(*Dense); ok {
		var (
			i   int // source row index
			dst int // running write offset into out.data
		)
		for i = 0; i < n; i++ { // ascending row order
			if i == j {
				continue // deleted row contributes nothing
			}
			// Left segment: columns [0, j) of row i.
			copy(out.data[dst:dst+j], dm.data[i*n:i*n+j])
			dst += j
			// Right segment: columns (j, n) of row i.
			copy(out.data[dst:dst+n-1-j], dm.data[i*n+j+1:(i+1)*n])
			dst += n - 1 - j
		}

		return out, nil
	}

	// Fallback: interface access with explicit index shifting.
	var (
		i, k   int     // source row/column indices
		ri, ck int     // destination row/column indices
		v      float64 // element under copy
	)
	ri = 0
	for i = 0; i < n; i++ { // deterministic i→k order
		if i == j {
			continue // skip deleted row
		}
		ck = 0
		for k = 0; k < n; k++ {
			if k == j {
				continue // skip deleted column
			}
			v, err = m.At(i, k)
			if err != nil {
				return nil, matrixErrorf(opMinor, err)
			}
			if err = out.Set(ri, ck, v); err != nil {
				return nil, matrixErrorf(opMinor, err)
			}
			ck++
		}
		ri++
	}

	return out, nil
}

// AllMinors returns all n principal minors of m in index order:
// element j of the result is Minor(m, j). The batched reconstruction variant
// consumes this family in one pass instead of re-deleting per entry.
//
// Inputs: square matrix of order n ≥ 2 (non-nil).
// Returns: slice of n fresh (n−1)×(n−1) minors.
// Errors: same set as Minor, wrapped with opAllMinors.
// Determinism: ascending j order.
// Complexity: O(n³) time, O(n³) space across the family.
func AllMinors(m Matrix) ([]*Dense, error) {
	// Validate once; Minor re-checks are O(1) and keep it safely callable alone.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAllMinors, err)
	}
	n := m.Rows()
	if n < 2 {
		return nil, matrixErrorf(opAllMinors, ErrTooSmall)
	}

	minors := make([]*Dense, n)
	var (
		j   int // deleted index
		err error
	)
	for j = 0; j < n; j++ { // ascending deletion order
		minors[j], err = Minor(m, j)
		if err != nil {
			return nil, matrixErrorf(opAllMinors, err)
		}
	}

	return minors, nil
}
