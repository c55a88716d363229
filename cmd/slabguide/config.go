// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slabguide/modesolver"
	"github.com/katalvlaran/slabguide/report"
	"github.com/katalvlaran/slabguide/scalarmin"
	"github.com/katalvlaran/slabguide/slab"
)

var errInvalidConfig = errors.New("invalid config")

// Config is the YAML run configuration. Missing keys keep their defaults.
//
//	geometry:
//	  n_core: 1.5
//	  n_clad: 1.0
//	  thickness: 1.0
//	  wavelength: 1.0
//	solver:
//	  method: brent
//	output:
//	  unit: deg
type Config struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Solver   SolverConfig   `yaml:"solver"`
	Output   OutputConfig   `yaml:"output"`
}

// GeometryConfig holds the slab parameters; lengths in microns.
type GeometryConfig struct {
	CoreIndex      float64 `yaml:"n_core"`
	CladdingIndex  float64 `yaml:"n_clad"`
	SubstrateIndex float64 `yaml:"n_sub"`
	Thickness      float64 `yaml:"thickness"`
	Wavelength     float64 `yaml:"wavelength"`
}

// SolverConfig mirrors modesolver.Options.
type SolverConfig struct {
	Method         string  `yaml:"method"`
	InitialOffset  float64 `yaml:"initial_offset"`
	BoundMargin    float64 `yaml:"bound_margin"`
	AbsTol         float64 `yaml:"abs_tol"`
	MaxEvaluations int     `yaml:"max_evaluations"`
	Tolerance      float64 `yaml:"tolerance"`
}

// OutputConfig controls reporting.
type OutputConfig struct {
	Unit   string `yaml:"unit"`
	Points int    `yaml:"points"`
}

func defaultConfig() Config {
	return Config{
		Geometry: GeometryConfig{
			CoreIndex:     1.5,
			CladdingIndex: 1.0,
			Thickness:     1.0,
			Wavelength:    slab.DefaultWavelength,
		},
		Solver: SolverConfig{
			Method:         scalarmin.Brent.String(),
			InitialOffset:  modesolver.DefaultInitialOffset,
			BoundMargin:    modesolver.DefaultBoundMargin,
			AbsTol:         scalarmin.DefaultAbsTol,
			MaxEvaluations: scalarmin.DefaultMaxEvaluations,
			Tolerance:      modesolver.DefaultTolerance,
		},
		Output: OutputConfig{
			Unit:   report.Degrees.String(),
			Points: 400,
		},
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the solver and output sections. Geometry is checked by
// slab.Geometry.Validate.
func (c Config) Validate() error {
	if _, err := scalarmin.ParseMethod(c.Solver.Method); err != nil {
		return err
	}
	if _, err := report.ParseAngleUnit(c.Output.Unit); err != nil {
		return err
	}
	switch {
	case !nonNegative(c.Solver.InitialOffset):
		return fmt.Errorf("initial_offset %g: %w", c.Solver.InitialOffset, errInvalidConfig)
	case !nonNegative(c.Solver.BoundMargin):
		return fmt.Errorf("bound_margin %g: %w", c.Solver.BoundMargin, errInvalidConfig)
	case !nonNegative(c.Solver.AbsTol) || c.Solver.AbsTol == 0:
		return fmt.Errorf("abs_tol %g: %w", c.Solver.AbsTol, errInvalidConfig)
	case c.Solver.MaxEvaluations < 3:
		return fmt.Errorf("max_evaluations %d: %w", c.Solver.MaxEvaluations, errInvalidConfig)
	case !nonNegative(c.Solver.Tolerance) || c.Solver.Tolerance == 0:
		return fmt.Errorf("tolerance %g: %w", c.Solver.Tolerance, errInvalidConfig)
	case c.Output.Points < 2:
		return fmt.Errorf("points %d: %w", c.Output.Points, errInvalidConfig)
	}

	return nil
}

// nonNegative is false for NaN and +Inf.
func nonNegative(v float64) bool { return v >= 0 && !math.IsInf(v, 1) }

func (c Config) geometry() (slab.Geometry, error) {
	g := slab.Geometry{
		CoreIndex:      c.Geometry.CoreIndex,
		CladdingIndex:  c.Geometry.CladdingIndex,
		SubstrateIndex: c.Geometry.SubstrateIndex,
		Thickness:      c.Geometry.Thickness,
		Wavelength:     c.Geometry.Wavelength,
	}
	if err := g.Validate(); err != nil {
		return slab.Geometry{}, err
	}

	return g, nil
}

// solverOptions assumes Validate passed.
func (c Config) solverOptions() []modesolver.Option {
	method, _ := scalarmin.ParseMethod(c.Solver.Method)

	return []modesolver.Option{
		modesolver.WithMethod(method),
		modesolver.WithInitialOffset(c.Solver.InitialOffset),
		modesolver.WithBoundMargin(c.Solver.BoundMargin),
		modesolver.WithAbsTol(c.Solver.AbsTol),
		modesolver.WithMaxEvaluations(c.Solver.MaxEvaluations),
	}
}

func (c Config) unit() report.AngleUnit {
	u, _ := report.ParseAngleUnit(c.Output.Unit)

	return u
}

// commonFlags are shared by every subcommand. Explicitly set flags override
// the config file.
type commonFlags struct {
	config     string
	nCore      float64
	nClad      float64
	nSub       float64
	thickness  float64
	wavelength float64
	method     string
	unit       string
	tolerance  float64
}

func bindCommon(fs *flag.FlagSet) *commonFlags {
	d := defaultConfig()
	c := &commonFlags{}
	fs.StringVar(&c.config, "config", "", "YAML config file")
	fs.Float64Var(&c.nCore, "n-core", d.Geometry.CoreIndex, "core refractive index")
	fs.Float64Var(&c.nClad, "n-clad", d.Geometry.CladdingIndex, "cladding refractive index")
	fs.Float64Var(&c.nSub, "n-sub", 0, "substrate refractive index (0: same as cladding)")
	fs.Float64Var(&c.thickness, "thickness", d.Geometry.Thickness, "core thickness in microns")
	fs.Float64Var(&c.wavelength, "wavelength", d.Geometry.Wavelength, "vacuum wavelength in microns")
	fs.StringVar(&c.method, "method", d.Solver.Method, "minimizer: brent|nelder-mead")
	fs.StringVar(&c.unit, "unit", d.Output.Unit, "angle unit: deg|rad")
	fs.Float64Var(&c.tolerance, "tol", d.Solver.Tolerance, "residual tolerance for a guided mode")

	return c
}

// resolve loads the config file (if any) and applies the flags that were set.
func (c *commonFlags) resolve(fs *flag.FlagSet) (Config, error) {
	cfg := defaultConfig()
	if c.config != "" {
		var err error
		if cfg, err = loadConfig(c.config); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n-core":
			cfg.Geometry.CoreIndex = c.nCore
		case "n-clad":
			cfg.Geometry.CladdingIndex = c.nClad
		case "n-sub":
			cfg.Geometry.SubstrateIndex = c.nSub
		case "thickness":
			cfg.Geometry.Thickness = c.thickness
		case "wavelength":
			cfg.Geometry.Wavelength = c.wavelength
		case "method":
			cfg.Solver.Method = c.method
		case "unit":
			cfg.Output.Unit = c.unit
		case "tol":
			cfg.Solver.Tolerance = c.tolerance
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
