// SPDX-License-Identifier: MIT
// Package matrix: matrix norm kernels.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FrobeniusNorm returns √(Σᵢⱼ m[i,j]²), the entrywise L2 norm of the matrix.
// The sensitivity harness uses it to collapse an entire result matrix into
// one comparable scalar.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: Fast-path if m is *Dense — delegate to floats.Norm over the
//     flat backing slice. Otherwise, fallback At accumulation in fixed
//     i→j order with a final square root.
//
// Inputs: any Matrix (non-nil); zero-sized shapes are impossible by construction.
// Returns: the Frobenius norm (0 for an all-zero matrix).
// Errors: ErrNilMatrix, wrapped with opFrobenius.
// Determinism: fixed accumulation order in both paths.
// Complexity: O(r*c) time, O(1) space.
func FrobeniusNorm(m Matrix) (float64, error) {
	// Guard nil before any method call.
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	// Fast path: flat slice L2 norm.
	if dm, ok := m.(*Dense); ok {
		return floats.Norm(dm.data, 2), nil
	}

	// Fallback: accumulate squares in deterministic order.
	var (
		i, j int     // loop indices
		v    float64 // element under accumulation
		sum  float64 // running Σ v²
	)
	rows, cols := m.Rows(), m.Cols()
	for i = 0; i < rows; i++ { // fixed row-major order
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // bounds are valid inside the loop ranges
			sum += v * v
		}
	}

	return math.Sqrt(sum), nil
}
