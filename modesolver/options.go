// SPDX-License-Identifier: MIT

package modesolver

import (
	"math"

	"github.com/katalvlaran/slabguide/scalarmin"
)

const (
	// DefaultInitialOffset is ε in the initial guess θc·(1+ε).
	DefaultInitialOffset = 1e-4

	// DefaultBoundMargin keeps the search off θc and π/2, where γ or κ vanish.
	DefaultBoundMargin = 1e-6

	// DefaultTolerance is the residual below which a solution counts as a mode.
	DefaultTolerance = 1e-6

	// LegacyInitialGuess is the historical 45° start of the legacy ray search.
	LegacyInitialGuess = math.Pi / 4
)

// Option configures Solve and friends.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	Method         scalarmin.Method
	InitialOffset  float64
	BoundMargin    float64
	AbsTol         float64
	MaxEvaluations int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Method:         scalarmin.Brent,
		InitialOffset:  DefaultInitialOffset,
		BoundMargin:    DefaultBoundMargin,
		AbsTol:         scalarmin.DefaultAbsTol,
		MaxEvaluations: scalarmin.DefaultMaxEvaluations,
	}
}

// WithMethod selects the minimization backend.
func WithMethod(m scalarmin.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithInitialOffset sets ε in the initial guess θc·(1+ε). Panics on ε < 0.
func WithInitialOffset(eps float64) Option {
	if !finite(eps) || eps < 0 {
		panic(panicOffsetInvalid)
	}

	return func(o *Options) { o.InitialOffset = eps }
}

// WithBoundMargin sets the distance kept from θc and π/2, in radians.
// Panics on margin < 0.
func WithBoundMargin(margin float64) Option {
	if !finite(margin) || margin < 0 {
		panic(panicMarginInvalid)
	}

	return func(o *Options) { o.BoundMargin = margin }
}

// WithAbsTol sets the absolute angle tolerance of the minimizer.
func WithAbsTol(tol float64) Option {
	if !finite(tol) || tol <= 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.AbsTol = tol }
}

// WithMaxEvaluations caps residual evaluations per solve.
func WithMaxEvaluations(n int) Option {
	if n < 3 {
		panic(panicMaxEvalsInvalid)
	}

	return func(o *Options) { o.MaxEvaluations = n }
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

func (o Options) minimizer() []scalarmin.Option {
	return []scalarmin.Option{
		scalarmin.WithMethod(o.Method),
		scalarmin.WithAbsTol(o.AbsTol),
		scalarmin.WithMaxEvaluations(o.MaxEvaluations),
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
