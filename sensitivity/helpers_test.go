// SPDX-License-Identifier: MIT
// Package sensitivity_test contains shared fixtures for the harness tests.
//
// Purpose:
//   • Thin must-wrappers around the two entry points (abort on error).
//   • Bitwise series comparison, so determinism checks stay NaN-safe.
//   • A panic asserter for the option constructors.

package sensitivity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/interlace/matrix"
	"github.com/katalvlaran/interlace/sensitivity"
)

// mustSingle runs RunSingleComparison or aborts.
func mustSingle(t *testing.T, n int, opts ...sensitivity.Option) *sensitivity.Comparison {
	t.Helper()
	c, err := sensitivity.RunSingleComparison(n, opts...)
	if err != nil {
		t.Fatalf("RunSingleComparison(%d): %v", n, err)
	}

	return c
}

// mustSweep runs RunSweep or aborts.
func mustSweep(t *testing.T, opts ...sensitivity.Option) *sensitivity.Report {
	t.Helper()
	rep, err := sensitivity.RunSweep(opts...)
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	return rep
}

// sameBits reports whether two series hold bit-identical values. Unlike ==,
// this treats NaN as equal to itself, so reproducibility checks cannot be
// fooled by a NaN entry.
func sameBits(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if math.Float64bits(a[k]) != math.Float64bits(b[k]) {
			return false
		}
	}

	return true
}

// maxAbsDiff returns max_{r,c} |a[r,c] − b[r,c]|. NaN entries propagate:
// any NaN difference makes the result NaN, which callers treat as "beyond
// every threshold".
func maxAbsDiff(t *testing.T, a, b matrix.Matrix) float64 {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var (
		r, c   int
		av, bv float64
		d, max float64
	)
	for r = 0; r < a.Rows(); r++ {
		for c = 0; c < a.Cols(); c++ {
			av, _ = a.At(r, c)
			bv, _ = b.At(r, c)
			d = math.Abs(av - bv)
			if math.IsNaN(d) {
				return d
			}
			if d > max {
				max = d
			}
		}
	}

	return max
}

// mustPanic runs fn and asserts it panics with exactly the wanted message.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("want panic %q; got none", want)
		}
		if msg, ok := r.(string); !ok || msg != want {
			t.Fatalf("want panic %q; got %v", want, r)
		}
	}()
	fn()
}

// assertErrorIs wraps errors.Is with consistent failure text.
func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}
