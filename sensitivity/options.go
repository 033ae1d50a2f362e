// SPDX-License-Identifier: MIT

// Package sensitivity: functional configuration for the harness entry points.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults then setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error);
//     data-dependent failures surface as errors from the entry points.
//   - Options fields are unexported; public APIs consume ...Option.

package sensitivity

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinSize is the smallest matrix order the sweep visits. Order 2
	// is the smallest for which principal minors have a nonempty spectrum.
	DefaultMinSize = 2

	// DefaultMaxSize is the largest matrix order the sweep visits.
	DefaultMaxSize = 50

	// DefaultSingleSize is the matrix order RunSingleComparison uses when the
	// caller passes n == 0.
	DefaultSingleSize = 8

	// DefaultProbeRow / DefaultProbeCol address the default probe cell:
	// component 0 of eigenvector 1.
	DefaultProbeRow = 0
	DefaultProbeCol = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSizeRangeInvalid = "sensitivity: WithSizeRange: need 2 <= min <= max"
	panicProbeInvalid     = "sensitivity: WithProbe: indices must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque: public entry points accept ...Option and
// resolve them via gatherOptions.
type Options struct {
	minSize, maxSize   int   // sweep range, inclusive
	seed               int64 // base RNG seed; 0 folds to the matrix default
	probeRow, probeCol int   // probe cell for RunSingleComparison
}

// ---------- Constructors (WithX) ----------

// WithSizeRange sets the inclusive sweep range [min, max].
// Implementation:
//   - Stage 1: validate 2 ≤ min ≤ max.
//   - Stage 2: return a setter writing both bounds.
//
// Errors:
//   - Panics with a stable message when the bounds are nonsensical: orders
//     below 2 have no meaningful minors, and an empty range has no points.
//
// Complexity: O(1).
func WithSizeRange(min, max int) Option {
	if min < 2 || max < min {
		panic(panicSizeRangeInvalid)
	}

	return func(o *Options) { o.minSize, o.maxSize = min, max }
}

// WithSeed sets the base RNG seed for matrix generation. Seed 0 keeps the
// deterministic default stream (the same policy the matrix package applies),
// so every configuration remains reproducible.
//
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithProbe sets the probe cell reported by RunSingleComparison.
// Implementation:
//   - Stage 1: validate row ≥ 0 and col ≥ 0; the upper bound depends on the
//     matrix order and is checked at run time against the generated matrix.
//   - Stage 2: return a setter writing both coordinates.
//
// Errors:
//   - Panics with a stable message on negative coordinates.
//
// Complexity: O(1).
func WithProbe(row, col int) Option {
	if row < 0 || col < 0 {
		panic(panicProbeInvalid)
	}

	return func(o *Options) { o.probeRow, o.probeCol = row, col }
}

// gatherOptions applies user-provided setters on top of the defaults.
// Last-writer-wins; no derived invariants to finalize.
func gatherOptions(user ...Option) Options {
	o := Options{
		minSize:  DefaultMinSize,
		maxSize:  DefaultMaxSize,
		seed:     0, // matrix.RandomSymmetric folds 0 to its default stream
		probeRow: DefaultProbeRow,
		probeCol: DefaultProbeCol,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
