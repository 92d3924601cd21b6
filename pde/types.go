// Package pde defines core tags, model parameters and result types
// for the finite-difference engine.
package pde

import (
	"math"
)

// Equation selects one of the two equivalent PDE formulations.
// H and W are reciprocal transforms of the same Asian option, so their
// payoffs carry swapped signs and their boundary roles are mirrored.
type Equation int

const (
	// EquationH solves the H-formulation of the transformed PDE.
	EquationH Equation = iota
	// EquationW solves the W-formulation of the transformed PDE.
	EquationW
)

// String returns the conventional one-letter label, "H" or "W".
func (e Equation) String() string {
	switch e {
	case EquationH:
		return "H"
	case EquationW:
		return "W"
	default:
		return "?"
	}
}

// Valid reports whether e is one of the two known formulations.
func (e Equation) Valid() bool { return e == EquationH || e == EquationW }

// Option selects the payoff sign and which spatial extreme carries the
// active (non-zero) boundary condition.
type Option int

const (
	// Call option: payoff active as the underlying ratio falls (H) or rises (W).
	Call Option = iota
	// Put option: the mirrored payoff.
	Put
)

// String returns "call" or "put", the labels used in configuration keys.
func (o Option) String() string {
	switch o {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "?"
	}
}

// Valid reports whether o is Call or Put.
func (o Option) Valid() bool { return o == Call || o == Put }

// Scheme selects the time-stepping method.
type Scheme int

const (
	// Explicit is the forward-difference scheme; conditionally stable.
	Explicit Scheme = iota
	// CrankNicolson is the implicit/explicit-averaged scheme; needs a
	// linear solve per step but has no step-size bound.
	CrankNicolson
)

// String returns the configuration label, "explicit" or "cn".
func (s Scheme) String() string {
	switch s {
	case Explicit:
		return "explicit"
	case CrankNicolson:
		return "cn"
	default:
		return "?"
	}
}

// Valid reports whether s is a known scheme.
func (s Scheme) Valid() bool { return s == Explicit || s == CrankNicolson }

// Params are the immutable model inputs of one solver invocation.
//
//   - M — number of spatial points (≥ 3; the stencil needs interior points).
//   - N — number of time steps (≥ 1); the time axis has N+1 points.
//   - XMin, XMax — spatial domain bounds in the similarity variable x.
//   - T — option maturity (> 0).
//   - Sigma — volatility (> 0).
//   - R — risk-free rate.
type Params struct {
	M     int
	N     int
	XMin  float64
	XMax  float64
	T     float64
	Sigma float64
	R     float64
}

// Validate checks the parameter domain and returns ErrBadParams on any
// violation.
func (p Params) Validate() error {
	if p.M < 3 || p.N < 1 {
		return ErrBadParams
	}
	if !(p.Sigma > 0) || !(p.T > 0) {
		return ErrBadParams
	}
	if !(p.XMax > p.XMin) {
		return ErrBadParams
	}
	return nil
}

// TauMax returns the transformed time horizon σ²T/2; the time axis runs
// over [0, TauMax].
func (p Params) TauMax() float64 {
	return p.Sigma * p.Sigma / 2 * p.T
}

// Solution is the result triple of one solver invocation. Values is
// indexed [spatial][temporal]: Values[m][n] holds the approximation at
// (X[m], Tau[n]). Column 0 is the initial condition. The matrix is owned
// by its invocation and never mutated after return.
type Solution struct {
	X      []float64
	Tau    []float64
	Values [][]float64
}

// NewSolution allocates an all-zero M×(N+1) solution matrix over the
// given axes, with rows = len(x) and columns = len(tau).
func NewSolution(x, tau []float64) Solution {
	values := make([][]float64, len(x))
	for m := range values {
		values[m] = make([]float64, len(tau))
	}
	return Solution{X: x, Tau: tau, Values: values}
}

// EnsureFinite scans the matrix for NaN or ±Inf and returns
// ErrNumericInstability on the first hit.
func (s Solution) EnsureFinite() error {
	for _, row := range s.Values {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNumericInstability
			}
		}
	}
	return nil
}

// Column copies time slice n into dst (len(dst) must equal len(s.X)).
// The matrix is stored row-major by spatial index, so a time slice is
// strided; schemes that need contiguous layers copy through here.
func (s Solution) Column(n int, dst []float64) {
	for m := range s.Values {
		dst[m] = s.Values[m][n]
	}
}
