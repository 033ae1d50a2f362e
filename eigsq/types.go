// SPDX-License-Identifier: MIT
// Package eigsq: variant enumeration and sentinel error set.
// Sentinels follow the module convention: "eigsq: ..." prefix, matched with
// errors.Is, never wrapped except via eigsqErrorf at operation boundaries.

package eigsq

import (
	"errors"
	"fmt"
)

// Variant selects one of the three reconstruction implementations. The set
// is closed: every dispatcher in this package rejects values outside it
// with ErrUnknownVariant.
type Variant int

const (
	// Scalar is the naive baseline: every (eigenvector, component) pair
	// independently recomputes the full spectrum and the minor spectrum,
	// then multiplies factors with plain indexed loops.
	Scalar Variant = iota

	// ScalarOptimized computes the identical formula with the eigenvalue
	// hoisted and both products accumulated in one fused pass. Numerical
	// behavior is unchanged; only the computational layout differs.
	ScalarOptimized

	// Batched decomposes the full matrix once and every minor once,
	// collects the spectra into tables, and assembles all numerators and
	// denominators with slice kernels instead of per-entry loops.
	Batched
)

// String returns the canonical variant name (used in logs and plot legends).
func (v Variant) String() string {
	switch v {
	case Scalar:
		return "scalar"
	case ScalarOptimized:
		return "scalar-opt"
	case Batched:
		return "batched"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Variants returns the closed set in declaration order. Callers that sweep
// all implementations (the sensitivity harness, cross-variant tests) range
// over this slice instead of hard-coding the members.
func Variants() []Variant {
	return []Variant{Scalar, ScalarOptimized, Batched}
}

var (
	// ErrUnknownVariant is returned when a Variant value outside the closed
	// enumeration reaches a dispatcher.
	ErrUnknownVariant = errors.New("eigsq: unknown reconstruction variant")

	// ErrEigenFailed is returned when the eigenvalue primitive does not
	// converge for an input. Fatal: no retry path exists.
	ErrEigenFailed = errors.New("eigsq: eigendecomposition failed to converge")

	// ErrSpectrumLength is returned when a minor's spectrum does not have
	// exactly n−1 entries. This is a contract violation of the extraction
	// stage and should never occur for well-formed inputs.
	ErrSpectrumLength = errors.New("eigsq: minor spectrum length mismatch")
)
