// SPDX-License-Identifier: MIT

package modesolver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/slabguide/scalarmin"
	"github.com/katalvlaran/slabguide/slab"
)

// Solution is the outcome of one solve.
//
//   - Angle          — best propagation angle, radians, inside [Lower, Upper].
//   - Residual       — residual at Angle; ~0 for a guided mode.
//   - EffectiveIndex — n_core·sin(Angle).
//   - Lower, Upper   — the search interval actually used.
//   - Evaluations    — residual evaluations spent.
type Solution struct {
	Request        Request
	Angle          float64
	Residual       float64
	EffectiveIndex float64
	Lower          float64
	Upper          float64
	Evaluations    int
}

// Converged reports Residual ≤ tol.
func (s Solution) Converged(tol float64) bool { return s.Residual <= tol }

// Guided reports a converged solution whose effective index lies strictly
// between the guiding floor and the core index of g.
func (s Solution) Guided(g slab.Geometry, tol float64) bool {
	return s.Converged(tol) && s.EffectiveIndex > g.GuidingFloor() && s.EffectiveIndex < g.CoreIndex
}

// Degrees returns Angle in degrees.
func (s Solution) Degrees() float64 { return slab.Degrees(s.Angle) }

// Interval returns the search bounds for theory in radians.
//
// Errors: geometry validation sentinels; ErrEmptyInterval when the margin
// swallows the interval.
func Interval(g slab.Geometry, theory slab.Theory, opts ...Option) (scalarmin.Bounds, error) {
	return interval(g, theory, gatherOptions(opts...))
}

// InitialGuess returns the starting angle for theory, clamped into Interval.
func InitialGuess(g slab.Geometry, theory slab.Theory, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	b, err := interval(g, theory, o)
	if err != nil {
		return 0, err
	}

	return initialGuess(g, theory, b, o), nil
}

func interval(g slab.Geometry, theory slab.Theory, o Options) (scalarmin.Bounds, error) {
	theta, err := g.CriticalAngle()
	if err != nil {
		return scalarmin.Bounds{}, err
	}
	b := scalarmin.Bounds{Lower: theta + o.BoundMargin, Upper: math.Pi/2 - o.BoundMargin}
	if theory == slab.RayLegacy {
		b.Lower = o.BoundMargin
	}
	if b.Lower >= b.Upper {
		return scalarmin.Bounds{}, fmt.Errorf("[%g, %g]: %w", b.Lower, b.Upper, ErrEmptyInterval)
	}

	return b, nil
}

func initialGuess(g slab.Geometry, theory slab.Theory, b scalarmin.Bounds, o Options) float64 {
	if theory == slab.RayLegacy {
		return b.Clamp(LegacyInitialGuess)
	}
	theta := math.Asin(g.CladdingIndex / g.CoreIndex)

	return b.Clamp(theta * (1 + o.InitialOffset))
}

// Solve finds the angle minimizing the residual selected by req.
//
// Steps:
//  1. validate geometry (before any minimizer call);
//  2. validate request and pick the residual;
//  3. build the interval and the initial guess;
//  4. minimize and project the angle onto n_eff.
//
// Errors: slab sentinels, ErrNegativeOrder, ErrEmptyInterval,
// ErrUndefinedResidual. A non-zero residual is not an error.
func Solve(g slab.Geometry, req Request, opts ...Option) (Solution, error) {
	if err := g.Validate(); err != nil {
		return Solution{}, err
	}
	residual, err := ResidualFor(req)
	if err != nil {
		return Solution{}, err
	}
	o := gatherOptions(opts...)
	b, err := interval(g, req.Theory, o)
	if err != nil {
		return Solution{}, err
	}

	f := func(angle float64) float64 { return residual(angle, g, req.Order) }
	res, err := scalarmin.Minimize(f, initialGuess(g, req.Theory, b, o), b, o.minimizer()...)
	if err != nil {
		return Solution{}, fmt.Errorf("%v: %w", req, err)
	}
	if math.IsNaN(res.F) {
		return Solution{}, fmt.Errorf("%v: %w", req, ErrUndefinedResidual)
	}

	return Solution{
		Request:        req,
		Angle:          res.X,
		Residual:       res.F,
		EffectiveIndex: g.EffectiveIndex(res.X),
		Lower:          b.Lower,
		Upper:          b.Upper,
		Evaluations:    res.Evaluations,
	}, nil
}
