// Package cranknicolson implements the implicit/explicit-averaged
// time-stepping scheme for the H and W formulations of the
// Asian-option PDE.
//
// What:
//
//   - SolveH / SolveW — build the two M×M operators once per
//     invocation: A carries the implicit half-weighted stencil, B the
//     explicit half, and both get identity boundary rows. Each time step
//     computes b = B·u(n), overwrites b[0] and b[M−1] with the boundary
//     values, and solves A·u(n+1) = b directly (LU, gonum mat). A is
//     constant across steps, so it is factorized once.
//
// Why Crank–Nicolson:
//
//	The scheme is unconditionally stable in this formulation, so no
//	step-size adjustment is needed; the price is a dense solve per step.
//
// Complexity: O(M³) for the factorization, O(M²) per step, N steps.
//
// Errors: pde.ErrBadParams, pde.ErrInvalidOptionKind, and
// ErrSingularMatrix when the implicit operator cannot be solved. A
// singular A should never occur for σ>0, h>0, k>0, but it is surfaced
// rather than swallowed.
package cranknicolson
