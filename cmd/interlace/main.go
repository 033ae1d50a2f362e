// SPDX-License-Identifier: MIT
// Command interlace reconstructs squared eigenvector components of symmetric
// matrices from eigenvalue interlacing and measures how the reconstruction
// variants drift from a direct eigendecomposition.
//
// Two subcommands, two workflows:
//
//	interlace single — one matrix, every variant, a probed cell.
//	interlace sweep  — a size range, per-variant error series, a PNG chart.

package main

import (
	"log/slog"
	"os"
)

// logger writes human-readable progress to stderr; numeric results go to
// stdout so they survive piping.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// fatal reports err and stops with a non-zero status.
func fatal(msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		fatal("command failed", err)
	}
}
