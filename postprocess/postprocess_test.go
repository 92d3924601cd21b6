package postprocess_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/postprocess"
)

func demoMatrix() ([]float64, [][]float64) {
	coord := []float64{-2, -1, 0, 1, 2}
	values := make([][]float64, len(coord))
	for i := range values {
		values[i] = []float64{float64(i), float64(i) + 10}
	}
	return coord, values
}

// TestBoundInterval_Window keeps rows with coordinate in [min, max],
// upper endpoint included.
func TestBoundInterval_Window(t *testing.T) {
	coord, values := demoMatrix()

	x, v, err := postprocess.BoundInterval(coord, values, -1, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{-1, 0, 1}, x)
	require.Len(t, v, 3)
	assert.Equal(t, 1.0, v[0][0])
	assert.Equal(t, 3.0, v[2][0])
}

// TestBoundInterval_Idempotent: bounding a bounded result with the
// same window is a no-op.
func TestBoundInterval_Idempotent(t *testing.T) {
	coord, values := demoMatrix()

	x1, v1, err := postprocess.BoundInterval(coord, values, -1, 1)
	require.NoError(t, err)
	x2, v2, err := postprocess.BoundInterval(x1, v1, -1, 1)
	require.NoError(t, err)

	assert.Equal(t, x1, x2)
	assert.Equal(t, v1, v2)
}

// TestBoundInterval_Empty returns empty slices for a window left of
// the axis, and the full data for an all-covering window.
func TestBoundInterval_Empty(t *testing.T) {
	coord, values := demoMatrix()

	x, v, err := postprocess.BoundInterval(coord, values, -10, -5)
	require.NoError(t, err)
	assert.Empty(t, x)
	assert.Empty(t, v)

	x, v, err = postprocess.BoundInterval(coord, values, -10, 10)
	require.NoError(t, err)
	assert.Equal(t, coord, x)
	assert.Equal(t, values, v)
}

// TestBoundInterval_LengthMismatch rejects a matrix whose row count
// differs from the axis.
func TestBoundInterval_LengthMismatch(t *testing.T) {
	coord, values := demoMatrix()
	_, _, err := postprocess.BoundInterval(coord[:3], values, -1, 1)
	assert.ErrorIs(t, err, postprocess.ErrLengthMismatch)
}

// TestUndoTimeChange_RoundTrip: composing with the forward transform
// τ = σ²(T−t)/2 recovers t.
func TestUndoTimeChange_RoundTrip(t *testing.T) {
	const (
		T     = 1.0
		sigma = 0.2
	)
	ts := []float64{0, 0.25, 0.5, 0.9, 1}

	tau := make([]float64, len(ts))
	for i, ti := range ts {
		tau[i] = sigma * sigma * (T - ti) / 2
	}

	got := postprocess.UndoTimeChange(T, sigma, tau)
	require.Len(t, got, len(ts))
	for i := range ts {
		assert.InDelta(t, ts[i], got[i], 1e-12)
	}
}

// TestUndoTimeChange_Monotonic: the map is decreasing in tau, with
// tau=0 at maturity.
func TestUndoTimeChange_Monotonic(t *testing.T) {
	got := postprocess.UndoTimeChange(1, 0.2, []float64{0, 0.01, 0.02})
	assert.Equal(t, 1.0, got[0])
	assert.Greater(t, got[0], got[1])
	assert.Greater(t, got[1], got[2])
}

// TestRatioMaps pins R_H = eˣ·T and R_W = eˣ/T.
func TestRatioMaps(t *testing.T) {
	x := []float64{-1, 0, 2}
	const T = 2.0

	rh := postprocess.RH(T, x)
	rw := postprocess.RW(T, x)
	require.Len(t, rh, 3)
	require.Len(t, rw, 3)

	for i, xi := range x {
		assert.InDelta(t, math.Exp(xi)*T, rh[i], 1e-12)
		assert.InDelta(t, math.Exp(xi)/T, rw[i], 1e-12)
	}
}
