// Package sensitivity measures how eigenvalue-only reconstruction degrades
// as matrix size grows, by sweeping random symmetric matrices through every
// reconstruction variant and comparing Frobenius norms against the direct
// eigendecomposition.
//
// 🚀 What does it measure?
//
//	For each matrix order n in a configured range the harness draws one
//	seeded random symmetric matrix, reconstructs the squared-eigenvector
//	grid with each variant, and records the relative norm error
//
//	  FPE(n) = 100 · (‖variant‖_F − ‖reference‖_F) / ‖variant‖_F
//
//	in percent. Well-conditioned spectra keep FPE near machine precision;
//	crowded spectra make it spike — that spike is the measurement.
//
// ✨ Key features:
//   - RunSweep: one Report with parallel per-variant series over n_min…n_max
//   - RunSingleComparison: all three variants plus the reference for one
//     matrix, with a probe cell for spot-checking individual entries
//   - SavePlot: scatter chart of all series (PNG and friends via extension)
//   - deterministic: a base seed expands into independent per-size streams,
//     so identical options always reproduce identical numbers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interlace/sensitivity"
//
//	rep, err := sensitivity.RunSweep(
//	    sensitivity.WithSizeRange(2, 50),
//	    sensitivity.WithSeed(42),
//	)
//	if err == nil {
//	    err = sensitivity.SavePlot(rep, "sensitivity_analysis.png")
//	}
//
// The two entry points are independent: RunSingleComparison inspects one
// matrix in depth, RunSweep walks the size axis. Neither shares state with
// the other.
//
// See examples in example_test.go.
package sensitivity
