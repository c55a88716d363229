// SPDX-License-Identifier: MIT

package scalarmin

import "math"

// Defaults.
const (
	// DefaultAbsTol is the absolute abscissa tolerance.
	DefaultAbsTol = 1e-12

	// DefaultRelTol is the relative abscissa tolerance.
	DefaultRelTol = 1e-12

	// DefaultMaxEvaluations caps objective calls.
	DefaultMaxEvaluations = 500
)

const (
	panicAbsTolInvalid   = "scalarmin: WithAbsTol: tolerance must be finite and > 0"
	panicRelTolInvalid   = "scalarmin: WithRelTol: tolerance must be finite and >= 0"
	panicMaxEvalsInvalid = "scalarmin: WithMaxEvaluations: limit must be >= 3"
)

// Option configures Minimize.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	Method         Method
	AbsTol         float64
	RelTol         float64
	MaxEvaluations int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Method:         Brent,
		AbsTol:         DefaultAbsTol,
		RelTol:         DefaultRelTol,
		MaxEvaluations: DefaultMaxEvaluations,
	}
}

// WithMethod selects the algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithAbsTol sets the absolute abscissa tolerance. Panics on tol ≤ 0.
func WithAbsTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.AbsTol = tol }
}

// WithRelTol sets the relative abscissa tolerance. Panics on tol < 0.
func WithRelTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.RelTol = tol }
}

// WithMaxEvaluations caps objective calls. Panics on n < 3.
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
