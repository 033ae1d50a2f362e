// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/interlace/eigsq"
	"github.com/katalvlaran/interlace/sensitivity"
)

// runSingle reconstructs one seeded matrix with every variant and prints the
// probed cell of each grid next to the reference value.
func runSingle(cmd *cobra.Command, args []string) {
	// WithProbe treats negative coordinates as programmer error; flag input
	// is user error, so reject it here with an exit instead of a panic.
	if probeRow < 0 || probeCol < 0 {
		fatal("invalid probe cell", fmt.Errorf("row=%d col=%d: indices must be non-negative", probeRow, probeCol))
	}

	logger.Info("reconstructing", "order", singleSize, "seed", baseSeed, "row", probeRow, "col", probeCol)

	c, err := sensitivity.RunSingleComparison(singleSize,
		sensitivity.WithSeed(baseSeed),
		sensitivity.WithProbe(probeRow, probeCol))
	if err != nil {
		fatal("comparison failed", err)
	}

	// One line per method: the squared component of eigenvector `col` at
	// position `row`.
	for _, v := range eigsq.Variants() {
		val, err := c.Probe(v)
		if err != nil {
			fatal("probe failed", err)
		}
		fmt.Printf("%-12s |v_%d[%d]|^2 = %.12f\n", v, c.ProbeCol, c.ProbeRow, val)
	}

	ref, err := c.ReferenceProbe()
	if err != nil {
		fatal("probe failed", err)
	}
	fmt.Printf("%-12s |v_%d[%d]|^2 = %.12f\n", "reference", c.ProbeCol, c.ProbeRow, ref)
}
