// SPDX-License-Identifier: MIT

package scalarmin

// Minimize searches [b.Lower, b.Upper] for the minimum of f, starting at x0.
// x0 outside the bounds is clamped onto them.
//
// Errors:
//   - ErrNilFunc       — f is nil.
//   - ErrInvalidBounds — a bound is not finite or Lower ≥ Upper.
//   - ErrUnknownMethod — the selected Method is not implemented.
//
// Non-convergence is not an error; see Result.Converged.
//
// Complexity: O(MaxEvaluations) objective calls, O(1) memory.
func Minimize(f Func, x0 float64, b Bounds, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if err := b.Validate(); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	switch o.Method {
	case Brent:
		return brent(f, x0, b, o), nil
	case NelderMead:
		return nelderMead(f, x0, b, o), nil
	default:
		return Result{}, ErrUnknownMethod
	}
}
