// SPDX-License-Identifier: MIT
package explicit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
)

// SolveW marches the W equation forward in time with the explicit
// scheme. For each interior point m the update is
//
//	W[m,n+1] = (μ + (λ/2)(B_m−1))·W[m+1,n] + (1−2μ−B_m·k)·W[m,n] + (μ − (λ/2)(B_m−1))·W[m−1,n]
//
// with B_m = (2/σ²)(r − e^(x_m)/T). The mesh is adjusted up front so
// that h·max|B₁−1| ≤ 2 and k/h² ≤ 1/2 hold; M and N may both change.
//
// log may be nil. The returned matrix has M rows and N+1 columns for
// the post-adjustment M and N.
func SolveW(p pde.Params, opt pde.Option, log *zap.Logger) (pde.Solution, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !opt.Valid() {
		return pde.Solution{}, fmt.Errorf("explicit: equation W: %w", pde.ErrInvalidOptionKind)
	}
	if err := p.Validate(); err != nil {
		return pde.Solution{}, fmt.Errorf("explicit: equation W: %w", err)
	}

	p, h, k := adjustMeshW(p, log)

	grid, err := pde.BuildGrid(p)
	if err != nil {
		return pde.Solution{}, fmt.Errorf("explicit: equation W: %w", err)
	}
	// The coefficients follow the adjusted steps, not the nominal ones a
	// rebuilt grid would carry.
	grid.H, grid.K = h, k

	sol := pde.NewSolution(grid.X, grid.Tau)
	col0, err := pde.InitialCondition(pde.EquationW, opt, grid.X)
	if err != nil {
		return pde.Solution{}, fmt.Errorf("explicit: equation W: %w", err)
	}
	for m := range col0 {
		sol.Values[m][0] = col0[m]
	}

	lamb := grid.Lambda()
	mu := grid.Mu()

	for n := 0; n < p.N; n++ {
		for m := 1; m < p.M-1; m++ {
			b := pde.CoeffB(grid.X[m], p.T, p.Sigma, p.R)
			sol.Values[m][n+1] = (mu+lamb/2*(b-1))*sol.Values[m+1][n] +
				(1-2*mu-b*k)*sol.Values[m][n] +
				(mu-lamb/2*(b-1))*sol.Values[m-1][n]
		}

		switch opt {
		case pde.Call:
			sol.Values[0][n+1] = 0
			sol.Values[p.M-1][n+1] = pde.GrowthRightWCall(p.XMax, p.T)
		case pde.Put:
			sol.Values[0][n+1] = pde.DiscountLeftWPut(grid.Tau[n+1], p.Sigma, p.R, p.T)
			sol.Values[p.M-1][n+1] = 0
		}
	}

	if err := sol.EnsureFinite(); err != nil {
		return pde.Solution{}, fmt.Errorf("explicit: equation W: %w", err)
	}

	return sol, nil
}
