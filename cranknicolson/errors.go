package cranknicolson

import "errors"

var (
	// ErrSingularMatrix indicates the implicit operator A could not be
	// solved. Valid parameters (σ>0, h>0, k>0) never produce it; if it
	// appears, the invocation fails rather than returning garbage.
	ErrSingularMatrix = errors.New("cranknicolson: implicit operator is singular")
)
