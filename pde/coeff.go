package pde

import "math"

// CoeffA is the x-dependent first-order coefficient of the H equation:
//
//	A(x) = e^(−x)/T − r − σ²/2
//
// It drives both the interior stencil and the explicit scheme's
// stability bound.
func CoeffA(x, t, sigma, r float64) float64 {
	return math.Exp(-x)/t - r - sigma*sigma/2
}

// CoeffB is the x-dependent first-order coefficient of the W equation:
//
//	B(x) = (2/σ²)·(r − eˣ/T)
//
// The explicit scheme's mesh-ratio check uses the halved variant
// (r − eˣ/T)/σ²; see CoeffBHalf.
func CoeffB(x, t, sigma, r float64) float64 {
	return 2 / (sigma * sigma) * (r - math.Exp(x)/t)
}

// CoeffBHalf is (1/σ²)·(r − eˣ/T), the coefficient entering the W
// stability condition h·|B(x)−1| ≤ 2.
func CoeffBHalf(x, t, sigma, r float64) float64 {
	return (r - math.Exp(x)/t) / (sigma * sigma)
}
