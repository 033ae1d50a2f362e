// Package interlace computes squared eigenvector components of real
// symmetric matrices from eigenvalues alone: the spectrum of the matrix
// itself plus the spectra of its principal minors.
//
// 🚀 What is interlace?
//
//	A deterministic numerical library built around one identity:
//		• |v_i[j]|² · Π_{k≠i} (λ_i(M) − λ_k(M)) = Π_k (λ_i(M) − λ_k(M_j))
//		• M_j is M with row j and column j deleted
//		• three reconstruction variants: scalar, scalar-opt, batched
//		• a reference grid from a direct eigendecomposition
//		• a sensitivity harness that measures how far each variant drifts
//
// ✨ Why choose interlace?
//
//   - Deterministic – every randomized path takes an explicit seed
//   - Honest numerics – degenerate spectra are measured, never papered over
//   - Pure Go – gonum under the hood, no cgo
//   - Inspectable – full grids, probe cells, error series, a ready chart
//
// Under the hood, everything is organized under three subpackages and one
// command:
//
//	matrix/        — symmetric dense matrices, principal minors, norms, seeded generators
//	eigsq/         — reconstruction variants, reference grid, tolerance comparator
//	sensitivity/   — single-matrix comparison, size sweep, scatter chart
//	cmd/interlace/ — the `single` and `sweep` workflows as a CLI
//
// Quick worked example:
//
//	M = [2 1]   λ(M)  = (5∓√5)/2
//	    [1 3]   λ(M₀) = 3,  λ(M₁) = 2
//
//	|v_0[0]|² = (λ_0 − λ(M₀)) / (λ_0 − λ_1) = (5+√5)/10 ≈ 0.7236
//
// and the column for eigenvector 0 sums to exactly 1 with its complement
// (5−√5)/10 at position 1.
//
//	go get github.com/katalvlaran/interlace
package interlace
