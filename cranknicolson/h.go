// SPDX-License-Identifier: MIT
package cranknicolson

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
)

// SolveH solves the H equation with the Crank–Nicolson scheme. The
// interior rows of the operators carry the half-weighted stencil with
//
//	Ã_m = A_m / (2σ²),  A_m = e^(−x_m)/T − r − σ²/2
//
// so that A[m,m] = 1+μ, A[m,m∓1] = −μ/2 ± λÃ_m, and B mirrors A with
// the signs of μ flipped. The left boundary pins u(n+1)[0] to u(n)[0]
// (zero gradient); the right boundary is 0 for a call and
// exp(x_max)−1 for a put.
//
// log may be nil.
func SolveH(p pde.Params, opt pde.Option, log *zap.Logger) (pde.Solution, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !opt.Valid() {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation H: %w", pde.ErrInvalidOptionKind)
	}

	grid, err := pde.BuildGrid(p)
	if err != nil {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation H: %w", err)
	}

	sol := pde.NewSolution(grid.X, grid.Tau)
	col0, err := pde.InitialCondition(pde.EquationH, opt, grid.X)
	if err != nil {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation H: %w", err)
	}
	for m := range col0 {
		sol.Values[m][0] = col0[m]
	}

	a, b := operatorsH(grid, p)

	right := pde.GrowthRightHPutCN(p.XMax)
	boundary := func(_ int, col []float64) (float64, float64) {
		if opt == pde.Call {
			return col[0], 0
		}
		return col[0], right
	}

	if err := march(sol, a, b, boundary, log); err != nil {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation H: %w", err)
	}
	if err := sol.EnsureFinite(); err != nil {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation H: %w", err)
	}

	return sol, nil
}

// operatorsH builds the implicit (A) and explicit (B) operators for the
// H equation, identity rows at both boundaries.
func operatorsH(grid pde.Grid, p pde.Params) (*mat.Dense, *mat.Dense) {
	m := len(grid.X)
	mu := grid.Mu()
	lamb := grid.Lambda()
	sigma2 := p.Sigma * p.Sigma

	a := mat.NewDense(m, m, nil)
	b := mat.NewDense(m, m, nil)

	for i := 1; i < m-1; i++ {
		am := pde.CoeffA(grid.X[i], p.T, p.Sigma, p.R) / (2 * sigma2)

		a.Set(i, i, 1+mu)
		a.Set(i, i-1, -mu/2+lamb*am)
		a.Set(i, i+1, -mu/2-lamb*am)

		b.Set(i, i, 1-mu)
		b.Set(i, i-1, mu/2-lamb*am)
		b.Set(i, i+1, mu/2+lamb*am)
	}

	a.Set(0, 0, 1)
	a.Set(m-1, m-1, 1)
	b.Set(0, 0, 1)
	b.Set(m-1, m-1, 1)

	return a, b
}
