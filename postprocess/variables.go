package postprocess

import "math"

// UndoTimeChange inverts the forward time transform τ = σ²(T−t)/2,
// mapping each tau back to calendar time via t = T − 2τ/σ². The map is
// monotonically decreasing: τ=0 is maturity, τ=σ²T/2 is t=0.
func UndoTimeChange(t, sigma float64, tau []float64) []float64 {
	out := make([]float64, len(tau))
	for i, v := range tau {
		out[i] = t - 2*v/(sigma*sigma)
	}
	return out
}

// RH maps the similarity variable x back to the asset-ratio coordinate
// for the H formulation: R_H(x) = eˣ·T.
func RH(t float64, x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(v) * t
	}
	return out
}

// RW maps x back to the asset-ratio coordinate for the W formulation:
// R_W(x) = eˣ/T.
func RW(t float64, x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(v) / t
	}
	return out
}
