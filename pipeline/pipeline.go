// SPDX-License-Identifier: MIT
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/config"
	"github.com/1570590/mn-valoracio-d-opcions-financeres/cranknicolson"
	"github.com/1570590/mn-valoracio-d-opcions-financeres/explicit"
	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
	"github.com/1570590/mn-valoracio-d-opcions-financeres/postprocess"
)

// Combo identifies one solver invocation.
type Combo struct {
	Equation pde.Equation
	Scheme   pde.Scheme
	Option   pde.Option
}

// String returns "H/explicit/call"-style labels for logs and filenames.
func (c Combo) String() string {
	return fmt.Sprintf("%s/%s/%s", c.Equation, c.Scheme, c.Option)
}

// AllCombos returns the eight supported combinations in a stable order.
func AllCombos() []Combo {
	var combos []Combo
	for _, eq := range []pde.Equation{pde.EquationH, pde.EquationW} {
		for _, s := range []pde.Scheme{pde.Explicit, pde.CrankNicolson} {
			for _, o := range []pde.Option{pde.Call, pde.Put} {
				combos = append(combos, Combo{Equation: eq, Scheme: s, Option: o})
			}
		}
	}
	return combos
}

// Result is the outcome of one combination. On failure only Combo and
// Err are populated.
type Result struct {
	Combo

	// Solution is the raw solver output over the full mesh.
	Solution pde.Solution

	// BoundedX / Bounded restrict the solution to the configured x window.
	BoundedX []float64
	Bounded  [][]float64

	// Time is the calendar-time axis t = T − 2τ/σ².
	Time []float64

	// R / RBounded hold the variable-changed view: the solution bounded
	// by the "canvi_" window with x mapped to the ratio coordinate.
	R        []float64
	RBounded [][]float64

	Err error
}

// SolverFunc is the shared signature of the four scheme entry points.
type SolverFunc func(pde.Params, pde.Option, *zap.Logger) (pde.Solution, error)

// SolverFor dispatches on the (equation, scheme) pair. The switch is
// exhaustive over the known tags; anything else errors.
func SolverFor(eq pde.Equation, scheme pde.Scheme) (SolverFunc, error) {
	switch {
	case eq == pde.EquationH && scheme == pde.Explicit:
		return explicit.SolveH, nil
	case eq == pde.EquationH && scheme == pde.CrankNicolson:
		return cranknicolson.SolveH, nil
	case eq == pde.EquationW && scheme == pde.Explicit:
		return explicit.SolveW, nil
	case eq == pde.EquationW && scheme == pde.CrankNicolson:
		return cranknicolson.SolveW, nil
	case !eq.Valid():
		return nil, pde.ErrInvalidEquationKind
	default:
		return nil, pde.ErrInvalidScheme
	}
}

// Run executes every combination concurrently and returns one Result
// per combo, in AllCombos order. log may be nil.
func Run(ctx context.Context, cfg *config.File, log *zap.Logger) []Result {
	if log == nil {
		log = zap.NewNop()
	}

	combos := AllCombos()
	results := make([]Result, len(combos))

	var wg sync.WaitGroup
	for i, c := range combos {
		wg.Add(1)
		go func(i int, c Combo) {
			defer wg.Done()
			results[i] = runOne(ctx, cfg, c, log)
		}(i, c)
	}
	wg.Wait()

	return results
}

// runOne solves and post-processes a single combination. Every failure
// is logged and recorded on the Result; nothing propagates further.
func runOne(ctx context.Context, cfg *config.File, c Combo, log *zap.Logger) Result {
	res := Result{Combo: c}

	fail := func(err error) Result {
		log.Error("combination failed",
			zap.String("combo", c.String()), zap.Error(err))
		res.Err = fmt.Errorf("pipeline: %s: %w", c, err)
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	ec, err := cfg.Equation(c.Equation)
	if err != nil {
		return fail(err)
	}
	p, err := ec.Params()
	if err != nil {
		return fail(err)
	}
	solver, err := SolverFor(c.Equation, c.Scheme)
	if err != nil {
		return fail(err)
	}

	log.Info("solving", zap.String("combo", c.String()),
		zap.Int("m", p.M), zap.Int("n", p.N))

	sol, err := solver(p, c.Option, log)
	if err != nil {
		return fail(err)
	}
	res.Solution = sol

	minV, maxV, err := ec.Interval(c.Scheme, c.Option, false)
	if err != nil {
		return fail(err)
	}
	res.BoundedX, res.Bounded, err = postprocess.BoundInterval(sol.X, sol.Values, minV, maxV)
	if err != nil {
		return fail(err)
	}

	res.Time = postprocess.UndoTimeChange(p.T, p.Sigma, sol.Tau)

	minC, maxC, err := ec.Interval(c.Scheme, c.Option, true)
	if err != nil {
		return fail(err)
	}
	changedX, changedVals, err := postprocess.BoundInterval(sol.X, sol.Values, minC, maxC)
	if err != nil {
		return fail(err)
	}
	switch c.Equation {
	case pde.EquationH:
		res.R = postprocess.RH(p.T, changedX)
	case pde.EquationW:
		res.R = postprocess.RW(p.T, changedX)
	}
	res.RBounded = changedVals

	return res
}
