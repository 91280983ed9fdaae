package solver

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSolveWellConditioned(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 1, 1, 3})
	b := mat.NewVecDense(2, []float64{5, 10})

	x, err := NewLeastSquares().Solve(a, b)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	// 2x + y = 5, x + 3y = 10 => x = 1, y = 3.
	if math.Abs(x[0]-1) > 1e-10 || math.Abs(x[1]-3) > 1e-10 {
		t.Errorf("got solution %v, want [1 3]", x)
	}
}

func TestSolveSingularMinimumNorm(t *testing.T) {
	// Rank-1 system with consistent rhs: solutions are x0+x1 = 2; the
	// minimum-norm one is [1, 1].
	a := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	b := mat.NewVecDense(2, []float64{2, 2})

	x, err := NewLeastSquares().Solve(a, b)
	if err != nil {
		t.Fatalf("singular solve should not fail: %v", err)
	}

	if math.Abs(x[0]-1) > 1e-10 || math.Abs(x[1]-1) > 1e-10 {
		t.Errorf("got solution %v, want minimum-norm [1 1]", x)
	}
}

func TestSolveZeroMatrix(t *testing.T) {
	a := mat.NewDense(3, 3, nil)
	b := mat.NewVecDense(3, []float64{1, 2, 3})

	x, err := NewLeastSquares().Solve(a, b)
	if err != nil {
		t.Fatalf("zero-matrix solve should not fail: %v", err)
	}
	for i, v := range x {
		if v != 0 {
			t.Errorf("x[%d] = %f, want 0", i, v)
		}
	}
}

func TestSolveInconsistent(t *testing.T) {
	// Residual cannot reach zero; least squares still returns a finite
	// minimizer.
	a := mat.NewDense(2, 2, []float64{1, 0, 1, 0})
	b := mat.NewVecDense(2, []float64{0, 2})

	x, err := NewLeastSquares().Solve(a, b)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	// Best fit minimizes (x0-0)^2 + (x0-2)^2 => x0 = 1; x1 free, min-norm 0.
	if math.Abs(x[0]-1) > 1e-10 {
		t.Errorf("x[0] = %f, want 1", x[0])
	}
	if math.Abs(x[1]) > 1e-10 {
		t.Errorf("x[1] = %f, want 0", x[1])
	}
}
