// Package solver solves the per-step equations of motion.
package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
)

// LeastSquares solves A x = b for the generalized accelerations via SVD.
// Near-singular and exactly singular systems are handled by truncating to the
// numerical rank and returning the minimum-norm least-squares solution, so a
// degenerate configuration on an isolated step never aborts a run.
//
// An instance is reusable across steps but not across goroutines.
type LeastSquares struct {
	// RCond is the relative singular-value cutoff for the rank decision.
	// Zero means full rank up to machine precision.
	RCond float64

	svd mat.SVD
	x   mat.VecDense
}

func NewLeastSquares() *LeastSquares {
	return &LeastSquares{RCond: 1e-12}
}

// Solve returns the minimum-norm least-squares solution of a x = b.
func (ls *LeastSquares) Solve(a *mat.Dense, b *mat.VecDense) ([]float64, error) {
	_, cols := a.Dims()
	if !ls.svd.Factorize(a, mat.SVDThin) {
		return nil, dynamo.ErrSolveFailed
	}

	rank := ls.svd.Rank(ls.RCond)
	out := make([]float64, cols)
	if rank == 0 {
		// All-zero matrix; the minimum-norm solution is zero.
		return out, nil
	}

	ls.svd.SolveVecTo(&ls.x, b, rank)
	copy(out, ls.x.RawVector().Data)
	return out, nil
}
