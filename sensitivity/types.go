// SPDX-License-Identifier: MIT
// Package sensitivity: result containers and sentinel error set.
// Sentinels follow the module convention: "sensitivity: ..." prefix, matched
// with errors.Is, wrapped only with operation tags at entry points.

package sensitivity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/interlace/eigsq"
	"github.com/katalvlaran/interlace/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSingle = "RunSingleComparison"
	opSweep  = "RunSweep"
	opPlot   = "SavePlot"
	opSeries = "Series"
	opGrid   = "Grid"
	opProbe  = "Probe"
)

// sensitivityErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func sensitivityErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

var (
	// ErrNilReport is returned when a nil *Report reaches an operation that
	// needs its series.
	ErrNilReport = errors.New("sensitivity: nil report")

	// ErrEmptyReport is returned when a Report carries no data points.
	ErrEmptyReport = errors.New("sensitivity: report holds no data points")

	// ErrSeriesLength is returned when a Report's series disagree about the
	// number of data points. RunSweep never produces such a Report; the check
	// protects against hand-assembled ones.
	ErrSeriesLength = errors.New("sensitivity: series length mismatch")

	// ErrNilComparison is returned when a nil *Comparison is probed.
	ErrNilComparison = errors.New("sensitivity: nil comparison")
)

// Report holds the outcome of one sweep: the visited matrix orders and one
// relative-error series per reconstruction variant, index-aligned with Sizes.
// The sweep owns and grows these slices; callers treat a returned Report as
// read-only.
type Report struct {
	// Sizes lists the matrix orders in ascending visit order.
	Sizes []int

	// Scalar, ScalarOptimized and Batched are the per-variant FPE series in
	// percent: entry k belongs to the matrix of order Sizes[k].
	Scalar          []float64
	ScalarOptimized []float64
	Batched         []float64
}

// Len returns the number of recorded data points.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Sizes)
}

// Series returns the error series recorded for variant v.
//
// Errors: ErrNilReport on a nil receiver, eigsq.ErrUnknownVariant for a
// selector outside the closed set.
func (r *Report) Series(v eigsq.Variant) ([]float64, error) {
	if r == nil {
		return nil, sensitivityErrorf(opSeries, ErrNilReport)
	}
	switch v {
	case eigsq.Scalar:
		return r.Scalar, nil
	case eigsq.ScalarOptimized:
		return r.ScalarOptimized, nil
	case eigsq.Batched:
		return r.Batched, nil
	default:
		return nil, sensitivityErrorf(opSeries, eigsq.ErrUnknownVariant)
	}
}

// validate checks internal consistency: at least one point and all series
// aligned with Sizes.
func (r *Report) validate() error {
	if r == nil {
		return ErrNilReport
	}
	n := len(r.Sizes)
	if n == 0 {
		return ErrEmptyReport
	}
	if len(r.Scalar) != n || len(r.ScalarOptimized) != n || len(r.Batched) != n {
		return ErrSeriesLength
	}

	return nil
}

// Comparison holds one matrix's full reconstruction picture: each variant's
// grid, the reference grid, and a probe cell for spot-checking entries.
type Comparison struct {
	// Size is the matrix order n.
	Size int

	// ProbeRow and ProbeCol address the cell reported by Probe.
	ProbeRow, ProbeCol int

	// Scalar, ScalarOptimized and Batched are the per-variant grids.
	Scalar          *matrix.Dense
	ScalarOptimized *matrix.Dense
	Batched         *matrix.Dense

	// Reference is the direct-eigendecomposition grid.
	Reference *matrix.Dense
}

// Grid returns the reconstruction grid computed by variant v.
//
// Errors: ErrNilComparison on a nil receiver, eigsq.ErrUnknownVariant for a
// selector outside the closed set.
func (c *Comparison) Grid(v eigsq.Variant) (*matrix.Dense, error) {
	if c == nil {
		return nil, sensitivityErrorf(opGrid, ErrNilComparison)
	}
	switch v {
	case eigsq.Scalar:
		return c.Scalar, nil
	case eigsq.ScalarOptimized:
		return c.ScalarOptimized, nil
	case eigsq.Batched:
		return c.Batched, nil
	default:
		return nil, sensitivityErrorf(opGrid, eigsq.ErrUnknownVariant)
	}
}

// Probe returns variant v's value at the probe cell.
func (c *Comparison) Probe(v eigsq.Variant) (float64, error) {
	g, err := c.Grid(v)
	if err != nil {
		return 0, err
	}
	val, err := g.At(c.ProbeRow, c.ProbeCol)
	if err != nil {
		return 0, sensitivityErrorf(opProbe, err)
	}

	return val, nil
}

// ReferenceProbe returns the reference value at the probe cell.
func (c *Comparison) ReferenceProbe() (float64, error) {
	if c == nil {
		return 0, sensitivityErrorf(opProbe, ErrNilComparison)
	}
	val, err := c.Reference.At(c.ProbeRow, c.ProbeCol)
	if err != nil {
		return 0, sensitivityErrorf(opProbe, err)
	}

	return val, nil
}
