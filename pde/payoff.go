package pde

import "math"

// Payoff evaluates the transformed option payoff at a single spatial
// point. H and W use swapped signs: they are reciprocal transforms of
// the same option, so the H-call payoff equals the W-put payoff and
// vice versa.
//
//	H, call: max(1 − eˣ, 0)    H, put: max(eˣ − 1, 0)
//	W, call: max(eˣ − 1, 0)    W, put: max(1 − eˣ, 0)
func Payoff(eq Equation, opt Option, x float64) (float64, error) {
	if !eq.Valid() {
		return 0, ErrInvalidEquationKind
	}
	if !opt.Valid() {
		return 0, ErrInvalidOptionKind
	}

	ex := math.Exp(x)
	// (H, call) and (W, put) share one sign; (H, put) and (W, call) the other.
	if (eq == EquationH) == (opt == Call) {
		return math.Max(1-ex, 0), nil
	}
	return math.Max(ex-1, 0), nil
}

// InitialCondition fills the tau=0 column of the solution from the
// payoff over the whole spatial axis. An unrecognized equation or
// option tag is an error; the column is never silently left at zero.
func InitialCondition(eq Equation, opt Option, x []float64) ([]float64, error) {
	col := make([]float64, len(x))
	for m, xm := range x {
		v, err := Payoff(eq, opt, xm)
		if err != nil {
			return nil, err
		}
		col[m] = v
	}
	return col, nil
}
