package config

import "errors"

var (
	// ErrConfigurationMissing indicates a required parameter or bounds
	// entry is absent from the loaded file.
	ErrConfigurationMissing = errors.New("config: required parameter missing")

	// ErrBadFormula indicates a bounding formula that does not parse
	// under the supported grammar.
	ErrBadFormula = errors.New("config: malformed formula")

	// ErrUnknownName indicates a formula references a variable or
	// function outside the supported set.
	ErrUnknownName = errors.New("config: unknown name in formula")
)
