// SPDX-License-Identifier: MIT
// Package sensitivity - the single-matrix entry point.

package sensitivity

import (
	"github.com/katalvlaran/interlace/eigsq"
	"github.com/katalvlaran/interlace/matrix"
)

// RunSingleComparison draws one seeded random symmetric matrix of order n
// and computes every reconstruction variant alongside the reference, so a
// caller can inspect full grids or spot-check the probe cell.
//
// Size policy: n == 0 selects DefaultSingleSize; n < 0 is rejected with
// matrix.ErrInvalidDimensions; n == 1 is rejected with matrix.ErrTooSmall
// (a 1×1 matrix has no usable minors).
//
// Inputs:
//   - n: matrix order (0 for the default).
//   - opts: WithSeed and WithProbe apply; WithSizeRange is ignored here.
//
// Returns: a Comparison holding all four grids and the probe coordinates.
//
// Errors:
//   - matrix.ErrInvalidDimensions / matrix.ErrTooSmall for bad orders.
//   - matrix.ErrOutOfRange when the probe cell does not fit the matrix.
//   - anything eigsq.Reconstruct / eigsq.Reference surface.
//
// Determinism: fixed seed ⇒ identical matrices and grids on every run.
// Complexity: dominated by the Scalar variant, O(n⁵).
func RunSingleComparison(n int, opts ...Option) (*Comparison, error) {
	o := gatherOptions(opts...)

	// Size policy mirrors the seed policy: zero means "the default".
	if n == 0 {
		n = DefaultSingleSize
	}
	if n < 0 {
		return nil, sensitivityErrorf(opSingle, matrix.ErrInvalidDimensions)
	}
	if n < 2 {
		return nil, sensitivityErrorf(opSingle, matrix.ErrTooSmall)
	}

	// One matrix shared by all variants; the comparison is only meaningful
	// when every implementation sees identical input.
	m, err := matrix.RandomSymmetric(n, o.seed)
	if err != nil {
		return nil, sensitivityErrorf(opSingle, err)
	}

	// The probe must address a real cell of this matrix.
	if err = matrix.ValidateIndexInRange(m, o.probeRow); err != nil {
		return nil, sensitivityErrorf(opSingle, err)
	}
	if err = matrix.ValidateIndexInRange(m, o.probeCol); err != nil {
		return nil, sensitivityErrorf(opSingle, err)
	}

	out := &Comparison{
		Size:     n,
		ProbeRow: o.probeRow,
		ProbeCol: o.probeCol,
	}

	// Fixed variant order; fail fast on the first broken reconstruction.
	if out.Scalar, err = eigsq.Reconstruct(m, eigsq.Scalar); err != nil {
		return nil, sensitivityErrorf(opSingle, err)
	}
	if out.ScalarOptimized, err = eigsq.Reconstruct(m, eigsq.ScalarOptimized); err != nil {
		return nil, sensitivityErrorf(opSingle, err)
	}
	if out.Batched, err = eigsq.Reconstruct(m, eigsq.Batched); err != nil {
		return nil, sensitivityErrorf(opSingle, err)
	}
	if out.Reference, err = eigsq.Reference(m); err != nil {
		return nil, sensitivityErrorf(opSingle, err)
	}

	return out, nil
}
