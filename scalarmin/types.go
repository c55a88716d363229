// SPDX-License-Identifier: MIT

package scalarmin

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilFunc is returned when the objective is nil.
	ErrNilFunc = errors.New("scalarmin: objective function is nil")

	// ErrInvalidBounds is returned when a bound is not finite or Lower ≥ Upper.
	ErrInvalidBounds = errors.New("scalarmin: invalid bounds")

	// ErrUnknownMethod is returned when Options.Method is not a known Method.
	ErrUnknownMethod = errors.New("scalarmin: unknown method")
)

// Func is a scalar objective.
type Func func(x float64) float64

// Bounds is the closed search interval [Lower, Upper].
type Bounds struct {
	Lower float64
	Upper float64
}

// Validate returns ErrInvalidBounds unless both ends are finite and Lower < Upper.
func (b Bounds) Validate() error {
	if !finite(b.Lower) || !finite(b.Upper) || b.Lower >= b.Upper {
		return fmt.Errorf("[%g, %g]: %w", b.Lower, b.Upper, ErrInvalidBounds)
	}

	return nil
}

// Clamp moves x into [Lower, Upper]. NaN maps to the midpoint.
func (b Bounds) Clamp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0.5 * (b.Lower + b.Upper)
	case x < b.Lower:
		return b.Lower
	case x > b.Upper:
		return b.Upper
	}

	return x
}

// Width returns Upper − Lower.
func (b Bounds) Width() float64 { return b.Upper - b.Lower }

// Result is the outcome of a minimization.
//
//   - X           — best abscissa found, always inside the bounds.
//   - F           — objective value at X, as returned by the function (may be NaN
//     if the function was undefined everywhere it was sampled).
//   - Evaluations — number of objective calls.
//   - Converged   — the method's tolerance was met before the evaluation budget ran out.
type Result struct {
	X           float64
	F           float64
	Evaluations int
	Converged   bool
}

// Method selects the minimization algorithm.
type Method int

const (
	// Brent is the bounded Brent search (default).
	Brent Method = iota
	// NelderMead delegates to gonum's Nelder–Mead on a tanh-mapped variable.
	NelderMead
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Brent:
		return "brent"
	case NelderMead:
		return "nelder-mead"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "brent" and "nelder-mead" (also "neldermead", "nm").
func ParseMethod(s string) (Method, error) {
	switch s {
	case "brent", "":
		return Brent, nil
	case "nelder-mead", "neldermead", "nm":
		return NelderMead, nil
	}

	return 0, fmt.Errorf("method %q: %w", s, ErrUnknownMethod)
}

// rank orders objective values with NaN above +Inf.
func rank(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(1)
	}

	return v
}

// better reports whether a ranks strictly below b, with NaN worst.
func better(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}

	return a < b
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
