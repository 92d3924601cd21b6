package pde

import "math"

// Closed-form boundary values at the spatial extremes. Each formula
// encodes the known asymptotic behavior of the transformed option value
// as x → ±∞ and is scheme-specific where the two schemes discretize the
// asymptote differently. The zero boundaries (H-put left, H-call right,
// W-call left, W-put right) are written inline by the schemes.

// UpwindLeftHCall is the H-equation call value at x → −∞ for the
// explicit scheme: a first-order upwind correction of the previous
// layer's edge value,
//
//	H₀ⁿ + (2/σ²)·k·(e^(−x₀)/T)·(H₁ⁿ − H₀ⁿ)/h.
//
// prev0 and prev1 are the previous layer at m=0 and m=1. The
// Crank–Nicolson scheme pins this boundary to the previous value
// instead (zero-gradient), which needs no helper.
func UpwindLeftHCall(prev0, prev1, k, h, x0, t, sigma float64) float64 {
	return prev0 + 2/(sigma*sigma)*k*(math.Exp(-x0)/t)*(prev1-prev0)/h
}

// GrowthRightHPut is the H-equation put value at x → +∞ for the
// explicit scheme: exp(−(2/σ²)·r·τ + x_max).
func GrowthRightHPut(xMax, tau, sigma, r float64) float64 {
	return math.Exp(-2/(sigma*sigma)*r*tau + xMax)
}

// GrowthRightHPutCN is the Crank–Nicolson discretization of the same
// asymptote, the time-independent exp(x_max) − 1.
func GrowthRightHPutCN(xMax float64) float64 {
	return math.Exp(xMax) - 1
}

// DiscountLeftWPut is the W-equation put value at x → −∞, shared by
// both schemes: exp(−2rτ/σ²)/T. It decays with τ.
func DiscountLeftWPut(tau, sigma, r, t float64) float64 {
	return math.Exp(-2*r*tau/(sigma*sigma)) / t
}

// GrowthRightWCall is the W-equation call value at x → +∞ for the
// explicit scheme: exp(x_max)/T.
func GrowthRightWCall(xMax, t float64) float64 {
	return math.Exp(xMax) / t
}

// GrowthRightWCallCN is the Crank–Nicolson variant, (2/σ²)·exp(x_max)/T.
func GrowthRightWCallCN(xMax, sigma, t float64) float64 {
	return 2 / (sigma * sigma) * math.Exp(xMax) / t
}
