// Package eigsq recovers the squared magnitude of every eigenvector
// component of a symmetric matrix from eigenvalue spectra alone — the
// eigenvectors themselves are never formed.
//
// 🚀 What is eigsq?
//
//	For a symmetric (real Hermitian) matrix M with ascending eigenvalues
//	λ₀…λₙ₋₁ and the principal minor Mⱼ (row/column j deleted) with
//	eigenvalues μ₀…μₙ₋₂, the interlacing identity
//
//	  |v_i[j]|² = Π_{k=0}^{n-2} (λ_i − μ_k)  /  Π_{k≠i} (λ_i − λ_k)
//
//	expresses every squared component purely through eigenvalues. The
//	identity is exact in infinite precision; in floating point the
//	denominator shrinks as eigenvalues crowd together, which is exactly
//	the sensitivity this package lets you measure.
//
// ✨ Key features:
//   - three reconstruction variants behind one closed enumeration:
//     Scalar (naive baseline), ScalarOptimized (fused running products),
//     Batched (spectra tables + slice kernels, no per-entry eigen work)
//   - Reference: the direct |eigenvector|² matrix from a full decomposition
//   - Compare: entrywise agreement of any variant against Reference
//   - strict output contract: result.At(row, col) == |v_col[row]|²
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interlace/eigsq"
//
//	m, _ := matrix.RandomSymmetric(8, 42)
//	res, err := eigsq.Reconstruct(m, eigsq.Batched)
//	ok,  err := eigsq.Compare(m, eigsq.Scalar) // true where |Δ| < 1e-12
//
// Numerical notes:
//
//	Near-duplicate eigenvalues drive denominator factors toward zero and
//	blow up the reconstruction. That regime is NOT an error: division
//	proceeds and the degradation propagates into the output for the
//	sensitivity harness to record.
//
// Performance:
//
//   - Scalar/ScalarOptimized: O(n²) eigen-decompositions (deliberately
//     redundant; they are the baselines the Batched variant is judged against)
//   - Batched: n+1 decompositions, then O(n²) slice-kernel assembly
//
// See examples in example_test.go.
package eigsq
