// Package matrix offers the dense, real-symmetric matrix primitives that the
// eigenvalue-interlacing packages build on.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) with Dense, a
//     row-major flat-slice implementation tuned for cache friendliness.
//   - Principal-minor extraction: Minor deletes one row/column pair, and
//     AllMinors materializes the full family of n minors in index order for
//     batched spectral work.
//   - RandomSymmetric, a seeded generator of symmetric matrices with entries
//     drawn from U(0,1) and symmetrized as (A+Aᵀ)/2.
//   - FrobeniusNorm and the canonical validators (nil/square/symmetry/index)
//     shared by every consumer.
//
// A real symmetric matrix is exactly the real case of a Hermitian matrix, so
// every eigenvalue produced downstream is real and the spectral machinery in
// eigsq applies unchanged.
//
// All operations return fresh allocations; inputs are never mutated.
package matrix
