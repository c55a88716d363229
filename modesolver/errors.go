// SPDX-License-Identifier: MIT

package modesolver

import "errors"

var (
	// ErrNegativeOrder is returned when Request.Order < 0.
	ErrNegativeOrder = errors.New("modesolver: mode order must be >= 0")

	// ErrUndefinedResidual is returned when the residual was NaN at every
	// angle the minimizer sampled.
	ErrUndefinedResidual = errors.New("modesolver: residual undefined on the search interval")

	// ErrEmptyInterval is returned when the bound margin leaves no room
	// between the lower and upper search bounds.
	ErrEmptyInterval = errors.New("modesolver: empty search interval")

	// ErrTooFewPoints is returned by Profile for fewer than two samples.
	ErrTooFewPoints = errors.New("modesolver: profile needs at least 2 points")
)

const (
	panicOffsetInvalid   = "modesolver: WithInitialOffset: offset must be finite and >= 0"
	panicMarginInvalid   = "modesolver: WithBoundMargin: margin must be finite and >= 0"
	panicAbsTolInvalid   = "modesolver: WithAbsTol: tolerance must be finite and > 0"
	panicMaxEvalsInvalid = "modesolver: WithMaxEvaluations: limit must be >= 3"
)
