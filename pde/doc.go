// Package pde holds the shared primitives of the Asian-option
// finite-difference engine: equation/option/scheme tags, model
// parameters, mesh construction, payoff (initial condition) policy,
// stencil coefficients and the closed-form boundary values.
//
// What:
//
//   - Params — immutable model inputs (M, N, x_min, x_max, T, sigma, r).
//   - Grid — uniform spatial axis x (M points) and time axis tau (N+1
//     points) together with the step sizes h and k.
//   - Solution — dense M×(N+1) matrix, Values[m][n] = value at (x[m], tau[n]).
//   - Equation — the two equivalent PDE formulations H and W.
//   - Option — call or put; selects payoff sign and boundary roles.
//   - InitialCondition — fills the tau=0 column from the payoff.
//   - CoeffA / CoeffB — x-dependent stencil coefficients for H and W.
//   - Boundary value formulas shared between the explicit and
//     Crank–Nicolson schemes.
//
// Why:
//
//	Both time-stepping schemes (explicit and Crank–Nicolson) march the
//	same transformed Black–Scholes PDE on the same mesh with the same
//	initial and boundary data; only the update rule differs. Keeping the
//	common pieces here lets the two scheme packages stay focused on the
//	marching loop itself.
//
// Errors:
//
//   - ErrBadParams — sigma ≤ 0, T ≤ 0, M < 3 or N < 1.
//   - ErrInvalidOptionKind — option tag other than Call/Put.
//   - ErrInvalidEquationKind — equation tag other than H/W.
//   - ErrNumericInstability — NaN or ±Inf detected in a finished matrix.
package pde
