// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/interlace/eigsq"
	"github.com/katalvlaran/interlace/sensitivity"
)

// summarize reduces one error series to its largest finite magnitude and the
// number of entries that fell off the number line entirely.
func summarize(series []float64) (maxAbs float64, nonFinite int) {
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			nonFinite++

			continue
		}
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	return maxAbs, nonFinite
}

// runSweep walks the size range, logs a summary per variant and renders the
// scatter chart.
func runSweep(cmd *cobra.Command, args []string) {
	// WithSizeRange treats nonsensical bounds as programmer error; flag
	// input is user error, so reject it here with an exit instead of a panic.
	if sweepMin < 2 || sweepMax < sweepMin {
		fatal("invalid size range", fmt.Errorf("min=%d max=%d: need 2 <= min <= max", sweepMin, sweepMax))
	}

	logger.Info("sweeping", "min", sweepMin, "max", sweepMax, "seed", baseSeed)

	rep, err := sensitivity.RunSweep(
		sensitivity.WithSizeRange(sweepMin, sweepMax),
		sensitivity.WithSeed(baseSeed))
	if err != nil {
		fatal("sweep failed", err)
	}

	for _, v := range eigsq.Variants() {
		series, err := rep.Series(v)
		if err != nil {
			fatal("series lookup failed", err)
		}
		maxAbs, nonFinite := summarize(series)
		logger.Info("series",
			"variant", v.String(),
			"points", len(series),
			"max_abs_fpe_pct", maxAbs,
			"non_finite", nonFinite)
	}

	if err = sensitivity.SavePlot(rep, chartPath); err != nil {
		fatal("chart rendering failed", err)
	}
	logger.Info("chart written", "path", chartPath)
}
