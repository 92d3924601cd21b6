package cranknicolson

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
)

// boundaryFn supplies the two Dirichlet values injected into the
// right-hand side at step n→n+1. col is the current layer (time slice
// n); the H equation's left boundary pins to col[0].
type boundaryFn func(n int, col []float64) (left, right float64)

// march runs the per-step solve loop over an already-initialized
// solution: factorize A once, then for each step form b = B·u(n),
// inject boundaries and solve A·u(n+1) = b.
func march(sol pde.Solution, a, b *mat.Dense, boundary boundaryFn, log *zap.Logger) error {
	m := len(sol.X)
	steps := len(sol.Tau) - 1

	var lu mat.LU
	lu.Factorize(a)

	col := make([]float64, m)
	rhs := mat.NewVecDense(m, nil)
	next := mat.NewVecDense(m, nil)
	warned := false

	for n := 0; n < steps; n++ {
		sol.Column(n, col)
		rhs.MulVec(b, mat.NewVecDense(m, col))

		left, right := boundary(n, col)
		rhs.SetVec(0, left)
		rhs.SetVec(m-1, right)

		if err := lu.SolveVecTo(next, false, rhs); err != nil {
			var cond mat.Condition
			if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
				return fmt.Errorf("step %d: %w", n, ErrSingularMatrix)
			}
			// Ill-conditioned but solvable; report once and keep marching.
			if !warned {
				log.Warn("cranknicolson: implicit operator is ill-conditioned",
					zap.Float64("condition", float64(cond)), zap.Int("step", n))
				warned = true
			}
		}

		for i := 0; i < m; i++ {
			sol.Values[i][n+1] = next.AtVec(i)
		}
	}

	return nil
}
