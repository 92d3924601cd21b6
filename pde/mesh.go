package pde

import (
	"gonum.org/v1/gonum/floats"
)

// Grid is the uniform discretization of one solver invocation.
//
// X holds M spatial points spanning [XMin, XMax] inclusive of both
// endpoints; Tau holds N+1 time points spanning [0, σ²T/2]. H and K are
// the step sizes the scheme coefficients are derived from:
//
//	h = (x_max − x_min) / M
//	k = (σ²T/2) / N
//
// Note that h is divided by M, not M−1, while X carries M equally spaced
// points; the spacing of X is therefore h·M/(M−1). The scheme
// coefficients follow the h definition above.
type Grid struct {
	X   []float64
	Tau []float64
	H   float64
	K   float64
}

// Lambda returns k/h, the first-order mesh ratio.
func (g Grid) Lambda() float64 { return g.K / g.H }

// Mu returns k/h², the second-order (diffusive) mesh ratio.
func (g Grid) Mu() float64 { return g.K / (g.H * g.H) }

// BuildGrid validates p and constructs the uniform mesh. The spatial
// axis has exactly p.M points and the time axis exactly p.N+1 points,
// both strictly increasing.
func BuildGrid(p Params) (Grid, error) {
	if err := p.Validate(); err != nil {
		return Grid{}, err
	}

	x := make([]float64, p.M)
	floats.Span(x, p.XMin, p.XMax)

	tau := make([]float64, p.N+1)
	floats.Span(tau, 0, p.TauMax())

	return Grid{
		X:   x,
		Tau: tau,
		H:   (p.XMax - p.XMin) / float64(p.M),
		K:   p.TauMax() / float64(p.N),
	}, nil
}
