// SPDX-License-Identifier: MIT

package scalarmin

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// edge keeps atanh finite when x0 sits on a bound.
const edge = 1 - 1e-12

// nelderMead minimizes f through gonum's simplex method on an unbounded
// variable y with x = lo + (hi−lo)·(1+tanh y)/2.
func nelderMead(f Func, x0 float64, b Bounds, o Options) Result {
	toX := func(y float64) float64 {
		return b.Clamp(b.Lower + b.Width()*(1+math.Tanh(y))/2)
	}

	t := 2*(b.Clamp(x0)-b.Lower)/b.Width() - 1
	t = math.Max(-edge, math.Min(edge, t))
	y0 := math.Atanh(t)

	best := Result{X: b.Clamp(x0), F: math.NaN()}
	evals := 0
	problem := optimize.Problem{
		Func: func(y []float64) float64 {
			x := toX(y[0])
			v := f(x)
			evals++
			if evals == 1 || better(v, best.F) {
				best.X, best.F = x, v
			}
			if math.IsNaN(v) || math.IsInf(v, 1) {
				return math.MaxFloat64
			}

			return v
		},
	}
	settings := &optimize.Settings{
		FuncEvaluations: o.MaxEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   o.AbsTol,
			Relative:   o.RelTol,
			Iterations: 20,
		},
	}

	res, err := optimize.Minimize(problem, []float64{y0}, settings, &optimize.NelderMead{})
	best.Evaluations = evals
	if res != nil {
		switch res.Status {
		case optimize.FunctionConvergence, optimize.MethodConverge, optimize.Success:
			best.Converged = err == nil
		}
	}

	return best
}
