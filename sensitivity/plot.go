// SPDX-License-Identifier: MIT
// Package sensitivity - chart rendering for sweep reports.

package sensitivity

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/interlace/eigsq"
)

// Chart geometry and captions.
const (
	plotTitle  = "Sensitivity analysis"
	plotXLabel = "Matrix size, n"
	plotYLabel = "FPE, %"

	plotWidth  = 15 * vg.Inch
	plotHeight = 10 * vg.Inch
)

// glyphFor maps a variant to its scatter style: the naive baseline in black,
// the fused layout as small red points, the batched layout as grey rings.
func glyphFor(v eigsq.Variant) (color.Color, vg.Length, draw.GlyphDrawer) {
	switch v {
	case eigsq.ScalarOptimized:
		return color.RGBA{R: 0xff, A: 0xff}, vg.Points(1.5), draw.CircleGlyph{}
	case eigsq.Batched:
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, vg.Points(3), draw.RingGlyph{}
	default: // Scalar
		return color.RGBA{A: 0xff}, vg.Points(3), draw.CircleGlyph{}
	}
}

// SavePlot renders a Report as one scatter chart with a series per variant
// and writes it to path. The output format follows the file extension
// (".png" for the conventional sensitivity_analysis.png).
//
// Non-finite error values cannot be placed on an axis, so those points are
// left out of their series; the remaining points keep their positions.
//
// Errors: ErrNilReport / ErrEmptyReport / ErrSeriesLength for malformed
// reports; rendering and I/O failures propagate wrapped.
// Complexity: O(points) plus encoder work.
func SavePlot(rep *Report, path string) error {
	if err := rep.validate(); err != nil {
		return sensitivityErrorf(opPlot, err)
	}

	p := plot.New()
	p.Title.Text = plotTitle
	p.X.Label.Text = plotXLabel
	p.Y.Label.Text = plotYLabel
	p.Legend.Top = true

	var (
		series []float64   // current variant's error values
		xys    plotter.XYs // finite points of the current series
		k      int         // point index
	)
	for _, v := range eigsq.Variants() {
		series, _ = rep.Series(v) // validate() already vetted the report

		xys = make(plotter.XYs, 0, len(series))
		for k = 0; k < len(series); k++ {
			if math.IsNaN(series[k]) || math.IsInf(series[k], 0) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(rep.Sizes[k]), Y: series[k]})
		}

		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return sensitivityErrorf(opPlot, err)
		}
		sc.GlyphStyle.Color, sc.GlyphStyle.Radius, sc.GlyphStyle.Shape = glyphFor(v)

		p.Add(sc)
		p.Legend.Add(v.String(), sc)
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return sensitivityErrorf(opPlot, err)
	}

	return nil
}
