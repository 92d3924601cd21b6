// Package config loads the solver configuration consumed by the
// pipeline: one block per equation with the model parameters and the
// bounding-interval formulas used by post-processing.
//
// What:
//
//   - File / EquationConfig — YAML mapping with required numerics
//     (M, N, x_min, x_max, T, sigma, r) and a bounds table keyed
//     "{scheme}_{option}" and "canvi_{scheme}_{option}", each entry a
//     two-element list of formula strings.
//   - Eval — a constrained formula evaluator over the named parameters:
//     numbers, x_min/x_max/T/sigma/r, + − * /, unary minus, parentheses
//     and exp/log/sqrt. Nothing else evaluates; in particular no
//     general expression execution.
//
// Why a formula grammar:
//
//	The bounding endpoints in configuration files are written as
//	expressions over the model parameters ("x_max", "exp(x_min)", …).
//	Evaluating them through a closed grammar keeps them data, and a
//	bad formula is a load-time error instead of arbitrary behavior.
//
// Errors: ErrConfigurationMissing, ErrBadFormula, ErrUnknownName.
package config
