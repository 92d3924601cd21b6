// SPDX-License-Identifier: MIT
package pde

import "errors"

// Sentinel errors for the shared PDE primitives. Callers match them
// with errors.Is; packages wrapping them add context via fmt.Errorf
// and %w.
var (
	// ErrBadParams indicates model parameters outside their domain:
	// sigma ≤ 0, T ≤ 0, M < 3 (the stencil needs interior points) or N < 1.
	ErrBadParams = errors.New("pde: invalid model parameters")

	// ErrInvalidOptionKind indicates an option tag other than Call or Put.
	// An unrecognized tag must fail loudly, never leave a zero payoff column.
	ErrInvalidOptionKind = errors.New("pde: unknown option kind")

	// ErrInvalidEquationKind indicates an equation tag other than H or W.
	ErrInvalidEquationKind = errors.New("pde: unknown equation kind")

	// ErrInvalidScheme indicates a scheme tag other than Explicit or CrankNicolson.
	ErrInvalidScheme = errors.New("pde: unknown scheme")

	// ErrNumericInstability indicates a NaN or ±Inf entry in a finished
	// solution matrix.
	ErrNumericInstability = errors.New("pde: non-finite value in solution matrix")
)
