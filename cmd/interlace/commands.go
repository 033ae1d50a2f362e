// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/interlace/sensitivity"
)

// --- Global Command Variables ---
var (
	baseSeed   int64  // base RNG seed, shared by both subcommands
	singleSize int    // matrix order for `single`
	probeRow   int    // probed eigenvector component
	probeCol   int    // probed eigenvector index
	sweepMin   int    // smallest order for `sweep`
	sweepMax   int    // largest order for `sweep`
	chartPath  string // sweep chart destination

	rootCmd = &cobra.Command{
		Use:   "interlace",
		Short: "Eigenvector component reconstruction from eigenvalue interlacing",
		Long: `interlace computes squared eigenvector components of real symmetric
matrices from eigenvalues alone - the matrix's own spectrum plus the spectra
of its principal minors - and compares three reconstruction variants against
a direct eigendecomposition.`,
	}

	singleCmd = &cobra.Command{
		Use:   "single",
		Short: "Reconstruct one seeded matrix with every variant and probe a cell",
		Run:   runSingle, // Defined in cmd_single.go
	}

	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Sweep matrix orders, record per-variant errors, render a chart",
		Run:   runSweep, // Defined in cmd_sweep.go
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().Int64Var(&baseSeed, "seed", 0,
		"Base RNG seed (0 keeps the fixed default stream)")

	rootCmd.AddCommand(singleCmd)
	singleCmd.Flags().IntVar(&singleSize, "size", sensitivity.DefaultSingleSize,
		"Matrix order")
	singleCmd.Flags().IntVar(&probeRow, "row", sensitivity.DefaultProbeRow,
		"Probed component index (grid row)")
	singleCmd.Flags().IntVar(&probeCol, "col", sensitivity.DefaultProbeCol,
		"Probed eigenvector index (grid column)")

	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepMin, "min", sensitivity.DefaultMinSize,
		"Smallest matrix order (inclusive)")
	sweepCmd.Flags().IntVar(&sweepMax, "max", sensitivity.DefaultMaxSize,
		"Largest matrix order (inclusive)")
	sweepCmd.Flags().StringVar(&chartPath, "out", "sensitivity_analysis.png",
		"Chart destination (format follows the extension)")
}
