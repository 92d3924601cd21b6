// Package asianfd approximates Asian option values by finite
// differences on a transformed Black–Scholes PDE.
//
// The option value is reduced to a 1-D PDE in a similarity variable x
// under two equivalent formulations, H and W, and each is solved with
// two competing time-stepping schemes:
//
//   - explicit — forward differences, cheap per step but conditionally
//     stable; a stability adjuster clamps the time step when needed.
//   - cranknicolson — implicit/explicit averaged, one dense linear
//     solve per step, unconditionally stable.
//
// Package map:
//
//	pde/           — tags, parameters, mesh, payoff, coefficients, boundary formulas
//	explicit/      — forward-difference solvers for H and W + stability control
//	cranknicolson/ — Crank–Nicolson solvers for H and W (gonum LU solve)
//	postprocess/   — interval bounding and the inverse changes of variables
//	config/        — YAML configuration and the bounding-formula evaluator
//	export/        — CSV solution tables
//	pipeline/      — the eight (equation × scheme × option) runs, isolated failures
//	cmd/asianfd/   — command-line front end
package asianfd
