package explicit

import (
	"math"

	"go.uber.org/zap"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
)

// maxStableStepH returns the largest admissible time step for the H
// equation: the minimum over every grid point of 1/(2A_m²) where
// A_m²h² ≥ 1, and h²/2 elsewhere.
func maxStableStepH(x []float64, h, t, sigma, r float64) float64 {
	minK := math.Inf(1)
	for _, xm := range x {
		a := pde.CoeffA(xm, t, sigma, r)
		bound := h * h / 2
		if a*a*h*h >= 1 {
			bound = 1 / (2 * a * a)
		}
		if bound < minK {
			minK = bound
		}
	}
	return minK
}

// adjustMeshW enforces the two W-equation stability conditions and
// returns the possibly-modified parameters together with the effective
// step sizes h and k.
//
// First h·max|B₁(x)−1| ≤ 2: if violated, h is clamped to 2/max|B₁−1|
// and M regrown to match (h is then re-derived as (x_max−x_min)/(M−1)).
// Then k/h² ≤ 1/2: if violated, k shrinks and N regrows from ceil(T/k)
// so the time axis keeps covering [0, σ²T/2]. Unlike the H policy, the
// point counts are recomputed here.
func adjustMeshW(p pde.Params, log *zap.Logger) (pde.Params, float64, float64) {
	h := (p.XMax - p.XMin) / float64(p.M)
	k := p.TauMax() / float64(p.N)

	grid, err := pde.BuildGrid(p)
	if err != nil {
		// Callers validate params before adjusting.
		return p, h, k
	}

	diffMax := 0.0
	for _, xm := range grid.X {
		if d := math.Abs(pde.CoeffBHalf(xm, p.T, p.Sigma, p.R) - 1); d > diffMax {
			diffMax = d
		}
	}
	if h*diffMax > 2 {
		h = 2 / diffMax
		p.M = int(math.Ceil((p.XMax-p.XMin)/h)) + 1
		h = (p.XMax - p.XMin) / float64(p.M-1)
		log.Info("explicit W: refining spatial mesh for stability",
			zap.Float64("h", h), zap.Int("m", p.M))
	}

	if k/(h*h) > 0.5 {
		k = 0.5 * h * h
		p.N = int(math.Ceil(p.T / k))
		k = p.TauMax() / float64(p.N)
		log.Info("explicit W: shrinking time step for stability",
			zap.Float64("k", k), zap.Int("n", p.N))
	}

	return p, h, k
}
