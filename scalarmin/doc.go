// SPDX-License-Identifier: MIT

// Package scalarmin minimizes a scalar function of one variable over a
// closed interval.
//
// Contract (relied upon by modesolver):
//   - Deterministic: same function, start point, bounds and options give the
//     same result.
//   - Bounded: the objective is never evaluated outside [Lower, Upper].
//   - Best effort: the best point seen is always returned. Running out of
//     evaluations is reported through Result.Converged, never as an error.
//   - NaN objective values rank worse than any number, so a search started
//     next to an undefined region moves away from it.
//
// Methods:
//
//	Brent      — bounded Brent search (golden section with parabolic
//	             interpolation), seeded at x0. Default.
//	NelderMead — gonum's Nelder–Mead simplex on the unbounded variable y,
//	             x = lo + (hi−lo)·(1+tanh y)/2, so every trial point maps
//	             inside the interval.
//
// Usage:
//
//	res, err := scalarmin.Minimize(f, 0.73, scalarmin.Bounds{Lower: 0.72, Upper: 1.57})
//	if err != nil {
//		// ErrNilFunc / ErrInvalidBounds only
//	}
//	fmt.Println(res.X, res.F, res.Converged)
package scalarmin
