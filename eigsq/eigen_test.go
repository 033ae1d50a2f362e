// SPDX-License-Identifier: MIT
// Package eigsq_test verifies the eigenvalue primitive boundary: ascending
// order, value/vector pairing, and the structural error surface.

package eigsq_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/interlace/eigsq"
	"github.com/katalvlaran/interlace/matrix"
)

func TestEigenvalues_Known2x2(t *testing.T) {
	t.Parallel()

	// [[2,1],[1,3]] has eigenvalues (5∓√5)/2.
	m := mustSym(t, 2, []float64{2, 1, 1, 3})
	vals, err := eigsq.Eigenvalues(m)
	if err != nil {
		t.Fatalf("Eigenvalues(m): want err == nil, got: %v", err)
	}
	if len(vals) != 2 {
		t.Fatalf("want 2 eigenvalues, got %d", len(vals))
	}

	lo := (5 - math.Sqrt(5)) / 2
	hi := (5 + math.Sqrt(5)) / 2
	if math.Abs(vals[0]-lo) > 1e-12 {
		t.Fatalf("vals[0]: want %v, got %v", lo, vals[0])
	}
	if math.Abs(vals[1]-hi) > 1e-12 {
		t.Fatalf("vals[1]: want %v, got %v", hi, vals[1])
	}
}

func TestEigenvalues_AscendingOrder(t *testing.T) {
	t.Parallel()

	// Diagonal entries supplied out of order must come back sorted.
	m := mustSym(t, 3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})
	vals, err := eigsq.Eigenvalues(m)
	if err != nil {
		t.Fatalf("Eigenvalues(m): want err == nil, got: %v", err)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if math.Abs(vals[i]-want[i]) > 1e-12 {
			t.Fatalf("vals[%d]: want %v, got %v", i, want[i], vals[i])
		}
	}

	// The ascending contract also holds on a generic random spectrum.
	r := randomSym(t, 9, 42)
	vals, err = eigsq.Eigenvalues(r)
	if err != nil {
		t.Fatalf("Eigenvalues(r): want err == nil, got: %v", err)
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[i-1] {
			t.Fatalf("spectrum not ascending at %d: %v > %v", i, vals[i-1], vals[i])
		}
	}
}

func TestEigenvalues_Errors(t *testing.T) {
	t.Parallel()

	_, err := eigsq.Eigenvalues(nil)
	assertErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense(2,3): %v", err)
	}
	_, err = eigsq.Eigenvalues(rect)
	assertErrorIs(t, err, matrix.ErrNonSquare)

	asym, err := matrix.NewDense(2, 2)
	if err != nil {
		t.Fatalf("NewDense(2,2): %v", err)
	}
	_ = asym.Set(0, 1, 1)
	_ = asym.Set(1, 0, -1)
	_, err = eigsq.Eigenvalues(asym)
	assertErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestEigendecompose_OrthonormalBasis(t *testing.T) {
	t.Parallel()

	const n = 5
	m := randomSym(t, n, 7)

	vals, basis, err := eigsq.Eigendecompose(m)
	if err != nil {
		t.Fatalf("Eigendecompose(m): want err == nil, got: %v", err)
	}
	if len(vals) != n {
		t.Fatalf("want %d eigenvalues, got %d", n, len(vals))
	}
	if r, c := basis.Dims(); r != n || c != n {
		t.Fatalf("basis: want %dx%d, got %dx%d", n, n, r, c)
	}

	// Pairwise column dot products: δ_ij within 1e-9.
	var i, j, k int
	var dot float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			dot = 0
			for k = 0; k < n; k++ {
				dot += basis.At(k, i) * basis.At(k, j)
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(dot-want) > 1e-9 {
				t.Fatalf("column dot (%d,%d): want %v, got %v", i, j, want, dot)
			}
		}
	}

	// Eigen equation: ‖M·q_i − λ_i·q_i‖_∞ small for every column.
	var row int
	var acc, mv float64
	for i = 0; i < n; i++ {
		for row = 0; row < n; row++ {
			acc = 0
			for k = 0; k < n; k++ {
				mv, _ = m.At(row, k)
				acc += mv * basis.At(k, i)
			}
			if math.Abs(acc-vals[i]*basis.At(row, i)) > 1e-9 {
				t.Fatalf("eigen equation fails for pair %d at row %d", i, row)
			}
		}
	}
}

func TestEigendecompose_PairsValuesWithColumns(t *testing.T) {
	t.Parallel()

	// Rotated diagonal: eigenpairs are known exactly, ascending by design.
	m, q := rotatedDiag(t, [3]float64{1, 2, 4})

	vals, basis, err := eigsq.Eigendecompose(m)
	if err != nil {
		t.Fatalf("Eigendecompose(m): want err == nil, got: %v", err)
	}

	want := []float64{1, 2, 4}
	for i := range want {
		if math.Abs(vals[i]-want[i]) > 1e-10 {
			t.Fatalf("vals[%d]: want %v, got %v", i, want[i], vals[i])
		}
	}

	// Eigenvector signs are arbitrary; squared components are not.
	var row, col int
	var got float64
	for row = 0; row < 3; row++ {
		for col = 0; col < 3; col++ {
			got = basis.At(row, col) * basis.At(row, col)
			if math.Abs(got-q[row][col]*q[row][col]) > 1e-10 {
				t.Fatalf("|basis[%d,%d]|²: want %v, got %v", row, col, q[row][col]*q[row][col], got)
			}
		}
	}
}

func TestEigendecompose_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := eigsq.Eigendecompose(nil)
	assertErrorIs(t, err, matrix.ErrNilMatrix)
}
