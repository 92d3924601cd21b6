package pde_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
)

// TestParams_Validate covers the parameter domain: M needs interior
// points, N at least one step, sigma and T strictly positive and a
// non-empty spatial interval.
func TestParams_Validate(t *testing.T) {
	valid := pde.Params{M: 50, N: 100, XMin: -5, XMax: 5, T: 1, Sigma: 0.2, R: 0.05}
	require.NoError(t, valid.Validate())

	cases := map[string]func(p *pde.Params){
		"M too small":    func(p *pde.Params) { p.M = 2 },
		"N zero":         func(p *pde.Params) { p.N = 0 },
		"sigma zero":     func(p *pde.Params) { p.Sigma = 0 },
		"sigma negative": func(p *pde.Params) { p.Sigma = -0.2 },
		"T zero":         func(p *pde.Params) { p.T = 0 },
		"empty interval": func(p *pde.Params) { p.XMin, p.XMax = 5, -5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := valid
			mutate(&p)
			assert.ErrorIs(t, p.Validate(), pde.ErrBadParams)
		})
	}
}

// TestTags_Labels pins the labels used in configuration keys and logs.
func TestTags_Labels(t *testing.T) {
	assert.Equal(t, "H", pde.EquationH.String())
	assert.Equal(t, "W", pde.EquationW.String())
	assert.Equal(t, "call", pde.Call.String())
	assert.Equal(t, "put", pde.Put.String())
	assert.Equal(t, "explicit", pde.Explicit.String())
	assert.Equal(t, "cn", pde.CrankNicolson.String())

	assert.False(t, pde.Equation(7).Valid())
	assert.False(t, pde.Option(7).Valid())
	assert.False(t, pde.Scheme(7).Valid())
}

// TestSolution_EnsureFinite rejects NaN and ±Inf entries.
func TestSolution_EnsureFinite(t *testing.T) {
	sol := pde.NewSolution([]float64{0, 1, 2}, []float64{0, 1})
	require.NoError(t, sol.EnsureFinite())

	sol.Values[1][1] = math.NaN()
	assert.ErrorIs(t, sol.EnsureFinite(), pde.ErrNumericInstability)

	sol.Values[1][1] = math.Inf(-1)
	assert.ErrorIs(t, sol.EnsureFinite(), pde.ErrNumericInstability)
}

// TestSolution_Column copies a strided time slice.
func TestSolution_Column(t *testing.T) {
	sol := pde.NewSolution([]float64{0, 1, 2}, []float64{0, 1})
	for m := range sol.Values {
		sol.Values[m][1] = float64(10 * m)
	}

	col := make([]float64, 3)
	sol.Column(1, col)
	assert.Equal(t, []float64{0, 10, 20}, col)
}
