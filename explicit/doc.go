// Package explicit implements the forward-difference time-stepping
// scheme for the H and W formulations of the Asian-option PDE.
//
// What:
//
//   - SolveH / SolveW — march the solution from the payoff at tau=0 to
//     tau=σ²T/2 with a three-point spatial stencil whose coefficients
//     vary with x, injecting the closed-form boundary values each step.
//   - A stability adjuster per equation. The scheme is conditionally
//     stable, so a configured time step that violates the local bound is
//     shrunk automatically (logged, not surfaced as an error).
//
// Stability policy (asymmetric between the equations, kept as-is):
//
//   - H: k is clamped to min over m of 1/(2A_m²) when A_m²h² ≥ 1, else
//     h²/2. N and the already-built time axis are NOT recomputed, so a
//     clamped k no longer matches the tau spacing; downstream consumers
//     rely on the N+1-point axis.
//   - W: first h is clamped so h·max|B₁(x)−1| ≤ 2 (M regrown to match),
//     then k shrinks with N regrown so the axis still covers [0, σ²T/2].
//
// Complexity: O(M·N) time, O(M·N) memory for the solution matrix.
//
// Errors: pde.ErrBadParams, pde.ErrInvalidOptionKind,
// pde.ErrNumericInstability (post-march finiteness check).
package explicit
