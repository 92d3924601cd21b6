// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/pde"
)

// File is the root configuration: one block per equation.
type File struct {
	H *EquationConfig `yaml:"H"`
	W *EquationConfig `yaml:"W"`
}

// Equation returns the block for eq, or ErrConfigurationMissing when
// the file has no such block.
func (f *File) Equation(eq pde.Equation) (*EquationConfig, error) {
	var c *EquationConfig
	switch eq {
	case pde.EquationH:
		c = f.H
	case pde.EquationW:
		c = f.W
	default:
		return nil, fmt.Errorf("config: equation %s: %w", eq, pde.ErrInvalidEquationKind)
	}
	if c == nil {
		return nil, fmt.Errorf("config: equation %s block: %w", eq, ErrConfigurationMissing)
	}
	return c, nil
}

// EquationConfig carries the model parameters and bounding formulas for
// one equation. The numeric fields are pointers so an absent key is
// distinguishable from zero and reported as ErrConfigurationMissing.
type EquationConfig struct {
	M     *int     `yaml:"M"`
	N     *int     `yaml:"N"`
	XMin  *float64 `yaml:"x_min"`
	XMax  *float64 `yaml:"x_max"`
	T     *float64 `yaml:"T"`
	Sigma *float64 `yaml:"sigma"`
	R     *float64 `yaml:"r"`

	// ExportUnbounded requests tables for the raw, unbounded solution in
	// addition to the bounded ones.
	ExportUnbounded bool `yaml:"export_unbounded"`

	// Bounds maps "{scheme}_{option}" and "canvi_{scheme}_{option}" keys
	// to [min, max] formula pairs; "canvi_" entries bound the
	// variable-changed solution.
	Bounds map[string][2]string `yaml:"bounds"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a YAML configuration stream.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &f, nil
}

// Params validates the required numerics and assembles the solver
// parameters.
func (c *EquationConfig) Params() (pde.Params, error) {
	required := []struct {
		name string
		ok   bool
	}{
		{"M", c.M != nil},
		{"N", c.N != nil},
		{"x_min", c.XMin != nil},
		{"x_max", c.XMax != nil},
		{"T", c.T != nil},
		{"sigma", c.Sigma != nil},
		{"r", c.R != nil},
	}
	for _, f := range required {
		if !f.ok {
			return pde.Params{}, fmt.Errorf("config: %s: %w", f.name, ErrConfigurationMissing)
		}
	}
	return pde.Params{
		M:     *c.M,
		N:     *c.N,
		XMin:  *c.XMin,
		XMax:  *c.XMax,
		T:     *c.T,
		Sigma: *c.Sigma,
		R:     *c.R,
	}, nil
}

// Vars exposes the model parameters to the formula evaluator.
func (c *EquationConfig) Vars() Vars {
	v := Vars{}
	if c.XMin != nil {
		v["x_min"] = *c.XMin
	}
	if c.XMax != nil {
		v["x_max"] = *c.XMax
	}
	if c.T != nil {
		v["T"] = *c.T
	}
	if c.Sigma != nil {
		v["sigma"] = *c.Sigma
	}
	if c.R != nil {
		v["r"] = *c.R
	}
	return v
}

// BoundsKey returns the bounds-table key for a scheme/option pair;
// changed selects the "canvi_" entry used after the variable change.
func BoundsKey(scheme pde.Scheme, opt pde.Option, changed bool) string {
	key := fmt.Sprintf("%s_%s", scheme, opt)
	if changed {
		key = "canvi_" + key
	}
	return key
}

// Interval evaluates the [min, max] bounding formulas for a
// scheme/option pair. A missing table entry is ErrConfigurationMissing.
func (c *EquationConfig) Interval(scheme pde.Scheme, opt pde.Option, changed bool) (minVal, maxVal float64, err error) {
	key := BoundsKey(scheme, opt, changed)
	pair, ok := c.Bounds[key]
	if !ok {
		return 0, 0, fmt.Errorf("config: bounds[%s]: %w", key, ErrConfigurationMissing)
	}

	vars := c.Vars()
	if minVal, err = Eval(pair[0], vars); err != nil {
		return 0, 0, fmt.Errorf("config: bounds[%s] min: %w", key, err)
	}
	if maxVal, err = Eval(pair[1], vars); err != nil {
		return 0, 0, fmt.Errorf("config: bounds[%s] max: %w", key, err)
	}
	return minVal, maxVal, nil
}
