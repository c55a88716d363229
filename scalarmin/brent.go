// SPDX-License-Identifier: MIT

package scalarmin

import "math"

// goldenMean is (3 − √5)/2, the golden-section step fraction.
var goldenMean = 0.5 * (3.0 - math.Sqrt(5.0))

// brent runs the bounded Brent search on [b.Lower, b.Upper] starting at x0.
//
// The bookkeeping follows the classic fminbound layout: x is the best point,
// w the second best, v the previous w. A parabola through (v, w, x) is tried
// first; when it falls outside the bracket or does not shrink fast enough a
// golden-section step is taken instead. Comparisons use rank, so NaN values
// never displace a finite best point.
func brent(f Func, x0 float64, b Bounds, o Options) Result {
	lo, hi := b.Lower, b.Upper

	x := b.Clamp(x0)
	fxRaw := f(x)
	fx := rank(fxRaw)
	evals := 1

	v, w := x, x
	fv, fw := fx, fx
	var d, e float64

	tolerance := func(at float64) float64 { return o.RelTol*math.Abs(at) + o.AbsTol/3 }

	for {
		xm := 0.5 * (lo + hi)
		tol1 := tolerance(x)
		tol2 := 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(hi-lo) {
			return Result{X: x, F: fxRaw, Evaluations: evals, Converged: true}
		}
		if evals >= o.MaxEvaluations {
			return Result{X: x, F: fxRaw, Evaluations: evals, Converged: false}
		}

		golden := true
		if math.Abs(e) > tol1 {
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x - v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			prev := e
			e = d
			// NaN in p or q fails every comparison and falls through to golden.
			if math.Abs(p) < math.Abs(0.5*q*prev) && p > q*(lo-x) && p < q*(hi-x) {
				golden = false
				d = p / q
				u := x + d
				if u-lo < tol2 || hi-u < tol2 {
					d = tol1 * sign(xm-x)
				}
			}
		}
		if golden {
			if x >= xm {
				e = lo - x
			} else {
				e = hi - x
			}
			d = goldenMean * e
		}

		step := math.Max(math.Abs(d), tol1)
		u := b.Clamp(x + sign(d)*step)
		fuRaw := f(u)
		fu := rank(fuRaw)
		evals++

		if fu <= fx {
			if u < x {
				hi = x
			} else {
				lo = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx, fxRaw = u, fu, fuRaw
			continue
		}

		if u < x {
			lo = u
		} else {
			hi = u
		}
		switch {
		case fu <= fw || w == x:
			v, fv = w, fw
			w, fw = u, fu
		case fu <= fv || v == x || v == w:
			v, fv = u, fu
		}
	}
}

// sign returns −1 for negative v and +1 otherwise (zero included).
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}

	return 1
}
