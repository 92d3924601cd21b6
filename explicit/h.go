// SPDX-License-Identifier: MIT
package explicit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
)

// SolveH marches the H equation forward in time with the explicit
// scheme. For each interior point m the update is
//
//	H[m,n+1] = (μ + (λ/σ²)A_m)·H[m+1,n] + (1−2μ)·H[m,n] + (μ − (λ/σ²)A_m)·H[m−1,n]
//
// with A_m = e^(−x_m)/T − r − σ²/2, followed by boundary injection at
// m=0 and m=M−1. A configured k above the stability bound is clamped
// (N is left untouched; see the package doc for the policy asymmetry).
//
// log may be nil. The returned matrix has exactly p.M rows and p.N+1
// columns and contains no NaN/Inf.
func SolveH(p pde.Params, opt pde.Option, log *zap.Logger) (pde.Solution, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !opt.Valid() {
		return pde.Solution{}, fmt.Errorf("explicit: equation H: %w", pde.ErrInvalidOptionKind)
	}

	grid, err := pde.BuildGrid(p)
	if err != nil {
		return pde.Solution{}, fmt.Errorf("explicit: equation H: %w", err)
	}

	sol := pde.NewSolution(grid.X, grid.Tau)
	col0, err := pde.InitialCondition(pde.EquationH, opt, grid.X)
	if err != nil {
		return pde.Solution{}, fmt.Errorf("explicit: equation H: %w", err)
	}
	for m := range col0 {
		sol.Values[m][0] = col0[m]
	}

	k := grid.K
	if bound := maxStableStepH(grid.X, grid.H, p.T, p.Sigma, p.R); k > bound {
		log.Info("explicit H: shrinking time step for stability",
			zap.Float64("configured_k", k), zap.Float64("k", bound))
		k = bound
	}

	lamb := k / grid.H
	mu := k / (grid.H * grid.H)
	sigma2 := p.Sigma * p.Sigma

	for n := 0; n < p.N; n++ {
		for m := 1; m < p.M-1; m++ {
			a := pde.CoeffA(grid.X[m], p.T, p.Sigma, p.R)
			sol.Values[m][n+1] = (mu+lamb/sigma2*a)*sol.Values[m+1][n] +
				(1-2*mu)*sol.Values[m][n] +
				(mu-lamb/sigma2*a)*sol.Values[m-1][n]
		}

		switch opt {
		case pde.Call:
			sol.Values[0][n+1] = pde.UpwindLeftHCall(
				sol.Values[0][n], sol.Values[1][n], k, grid.H, grid.X[0], p.T, p.Sigma)
			sol.Values[p.M-1][n+1] = 0
		case pde.Put:
			sol.Values[0][n+1] = 0
			sol.Values[p.M-1][n+1] = pde.GrowthRightHPut(p.XMax, grid.Tau[n+1], p.Sigma, p.R)
		}
	}

	if err := sol.EnsureFinite(); err != nil {
		return pde.Solution{}, fmt.Errorf("explicit: equation H: %w", err)
	}

	return sol, nil
}
