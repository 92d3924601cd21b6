// SPDX-License-Identifier: MIT
package cranknicolson

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
)

// SolveW solves the W equation with the Crank–Nicolson scheme. The
// interior rows carry, with B_m = (2/σ²)(r − e^(x_m)/T),
//
//	A[m,m]   = 1 + μ + B_m·k/2
//	A[m,m∓1] = −μ/2 ± λ(B_m−1)/4
//
// and B mirrors A with the signs of μ and B_m·k/2 flipped. Boundaries:
// call pins 0 on the left and (2/σ²)·exp(x_max)/T on the right; put
// pins exp(−2rτ/σ²)/T on the left (time-dependent) and 0 on the right.
//
// log may be nil.
func SolveW(p pde.Params, opt pde.Option, log *zap.Logger) (pde.Solution, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !opt.Valid() {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation W: %w", pde.ErrInvalidOptionKind)
	}

	grid, err := pde.BuildGrid(p)
	if err != nil {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation W: %w", err)
	}

	sol := pde.NewSolution(grid.X, grid.Tau)
	col0, err := pde.InitialCondition(pde.EquationW, opt, grid.X)
	if err != nil {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation W: %w", err)
	}
	for m := range col0 {
		sol.Values[m][0] = col0[m]
	}

	a, b := operatorsW(grid, p)

	callRight := pde.GrowthRightWCallCN(p.XMax, p.Sigma, p.T)
	boundary := func(n int, _ []float64) (float64, float64) {
		if opt == pde.Call {
			return 0, callRight
		}
		return pde.DiscountLeftWPut(grid.Tau[n+1], p.Sigma, p.R, p.T), 0
	}

	if err := march(sol, a, b, boundary, log); err != nil {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation W: %w", err)
	}
	if err := sol.EnsureFinite(); err != nil {
		return pde.Solution{}, fmt.Errorf("cranknicolson: equation W: %w", err)
	}

	return sol, nil
}

// operatorsW builds the implicit (A) and explicit (B) operators for the
// W equation, identity rows at both boundaries.
func operatorsW(grid pde.Grid, p pde.Params) (*mat.Dense, *mat.Dense) {
	m := len(grid.X)
	mu := grid.Mu()
	lamb := grid.Lambda()
	k := grid.K

	a := mat.NewDense(m, m, nil)
	b := mat.NewDense(m, m, nil)

	for i := 1; i < m-1; i++ {
		bm := pde.CoeffB(grid.X[i], p.T, p.Sigma, p.R)

		a.Set(i, i, 1+mu+bm*k/2)
		a.Set(i, i-1, -mu/2+lamb*(bm-1)/4)
		a.Set(i, i+1, -mu/2-lamb*(bm-1)/4)

		b.Set(i, i, 1-mu-bm*k/2)
		b.Set(i, i-1, mu/2-lamb*(bm-1)/4)
		b.Set(i, i+1, mu/2+lamb*(bm-1)/4)
	}

	a.Set(0, 0, 1)
	a.Set(m-1, m-1, 1)
	b.Set(0, 0, 1)
	b.Set(m-1, m-1, 1)

	return a, b
}
