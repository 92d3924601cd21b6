package explicit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/explicit"
	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
)

const tol = 1e-12

// scenarioH is the baseline end-to-end configuration.
func scenarioH() pde.Params {
	return pde.Params{M: 50, N: 100, XMin: -5, XMax: 5, T: 1, Sigma: 0.2, R: 0.05}
}

// effectiveStepH recomputes the clamped time step the solver uses when
// the configured k violates the stability bound.
func effectiveStepH(t *testing.T, p pde.Params) (pde.Grid, float64) {
	t.Helper()
	grid, err := pde.BuildGrid(p)
	require.NoError(t, err)

	k := grid.K
	for _, xm := range grid.X {
		a := pde.CoeffA(xm, p.T, p.Sigma, p.R)
		bound := grid.H * grid.H / 2
		if a*a*grid.H*grid.H >= 1 {
			bound = 1 / (2 * a * a)
		}
		if bound < k {
			k = bound
		}
	}
	return grid, k
}

// TestSolveH_CallScenario runs the baseline scenario and checks mesh
// shape, the initial column, both boundary columns and finiteness.
func TestSolveH_CallScenario(t *testing.T) {
	p := scenarioH()

	sol, err := explicit.SolveH(p, pde.Call, nil)
	require.NoError(t, err)

	require.Len(t, sol.X, p.M)
	require.Len(t, sol.Tau, p.N+1)
	require.NoError(t, sol.EnsureFinite())

	// Initial column is the exact payoff.
	for m, xm := range sol.X {
		assert.Equal(t, math.Max(1-math.Exp(xm), 0), sol.Values[m][0], "payoff at x=%v", xm)
	}

	// Right boundary is zero for a call.
	for n := 1; n <= p.N; n++ {
		assert.Zero(t, sol.Values[p.M-1][n], "right boundary at step %d", n)
	}

	// Left boundary follows the upwind recurrence step by step, using
	// the clamped time step.
	grid, k := effectiveStepH(t, p)
	require.Less(t, k, grid.K, "this scenario violates the configured bound and must clamp")
	for n := 0; n < p.N; n++ {
		want := pde.UpwindLeftHCall(sol.Values[0][n], sol.Values[1][n], k, grid.H, sol.X[0], p.T, p.Sigma)
		assert.InDelta(t, want, sol.Values[0][n+1], tol, "left boundary at step %d", n+1)
	}
}

// TestSolveH_PutBoundaries checks the put boundary columns: zero on the
// left, the discounted growth asymptote on the right at every step.
func TestSolveH_PutBoundaries(t *testing.T) {
	p := scenarioH()

	sol, err := explicit.SolveH(p, pde.Put, nil)
	require.NoError(t, err)
	require.NoError(t, sol.EnsureFinite())

	for n := 1; n <= p.N; n++ {
		assert.Zero(t, sol.Values[0][n], "left boundary at step %d", n)
		want := pde.GrowthRightHPut(p.XMax, sol.Tau[n], p.Sigma, p.R)
		assert.InDelta(t, want, sol.Values[p.M-1][n], tol, "right boundary at step %d", n)
	}
}

// TestSolveH_BadInput surfaces tag and parameter errors.
func TestSolveH_BadInput(t *testing.T) {
	_, err := explicit.SolveH(scenarioH(), pde.Option(9), nil)
	assert.ErrorIs(t, err, pde.ErrInvalidOptionKind)

	bad := scenarioH()
	bad.Sigma = 0
	_, err = explicit.SolveH(bad, pde.Call, nil)
	assert.ErrorIs(t, err, pde.ErrBadParams)
}

// scenarioW needs a tighter x_max: the W coefficient grows like eˣ and
// would force an enormous refined mesh over [−5, 5].
func scenarioW() pde.Params {
	return pde.Params{M: 50, N: 100, XMin: -5, XMax: -2, T: 1, Sigma: 0.2, R: 0.05}
}

// TestSolveW_CallScenario: a configuration that is stable as given, so
// the mesh keeps its configured shape.
func TestSolveW_CallScenario(t *testing.T) {
	p := scenarioW()

	sol, err := explicit.SolveW(p, pde.Call, nil)
	require.NoError(t, err)

	require.Len(t, sol.X, p.M)
	require.Len(t, sol.Tau, p.N+1)
	require.NoError(t, sol.EnsureFinite())

	for m, xm := range sol.X {
		assert.Equal(t, math.Max(math.Exp(xm)-1, 0), sol.Values[m][0], "payoff at x=%v", xm)
	}

	want := pde.GrowthRightWCall(p.XMax, p.T)
	for n := 1; n <= p.N; n++ {
		assert.Zero(t, sol.Values[0][n], "left boundary at step %d", n)
		assert.InDelta(t, want, sol.Values[p.M-1][n], tol, "right boundary at step %d", n)
	}
}

// TestSolveW_PutLeftBoundary: the put's left boundary is the discount
// curve exp(−2rτ/σ²)/T at every step, not a constant.
func TestSolveW_PutLeftBoundary(t *testing.T) {
	p := scenarioW()

	sol, err := explicit.SolveW(p, pde.Put, nil)
	require.NoError(t, err)

	steps := len(sol.Tau) - 1
	for n := 1; n <= steps; n++ {
		want := pde.DiscountLeftWPut(sol.Tau[n], p.Sigma, p.R, p.T)
		assert.InDelta(t, want, sol.Values[0][n], tol, "left boundary at step %d", n)
		assert.Zero(t, sol.Values[p.M-1][n], "right boundary at step %d", n)
	}
	assert.NotEqual(t, sol.Values[0][1], sol.Values[0][steps], "left boundary must decay with tau")
}

// TestSolveW_AdjustedMesh: a wide domain forces the spatial refinement
// path; the result is still finite and keeps the N+1-point time axis
// when only h needed adjusting.
func TestSolveW_AdjustedMesh(t *testing.T) {
	p := pde.Params{M: 50, N: 100, XMin: -5, XMax: 1, T: 1, Sigma: 0.2, R: 0.05}

	sol, err := explicit.SolveW(p, pde.Call, nil)
	require.NoError(t, err)
	require.NoError(t, sol.EnsureFinite())

	assert.Greater(t, len(sol.X), p.M, "spatial mesh must refine")
	assert.Len(t, sol.Tau, p.N+1)
}
