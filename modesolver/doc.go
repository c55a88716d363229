// SPDX-License-Identifier: MIT

// Package modesolver finds the propagation angle of a guided mode of a slab
// waveguide by minimizing an eigenvalue residual over the admissible angles.
//
// 🚀 What
//
//	For a validated slab.Geometry and a Request (polarization, theory,
//	parity, order) the solver selects the matching residual from package ray
//	or wave, searches the interval
//
//	  Ray, Wave:  [θc + margin, π/2 − margin]
//	  RayLegacy:  [margin,      π/2 − margin]
//
//	starting at θc·(1+ε) (π/4 for RayLegacy), and reports the best angle,
//	its residual and the effective index n_eff = n_core·sin(angle).
//
// ✨ Behaviour
//
//   - The geometry is validated before the minimizer runs; a cladding at
//     least as dense as the core yields slab.ErrInvalidGeometry and no search.
//   - A large residual is data: it means no mode of that order exists for the
//     geometry. Use Solution.Converged or Solution.Guided to decide.
//   - A residual that is NaN at every sampled angle yields ErrUndefinedResidual.
//   - Higher orders solve to smaller angles (lower n_eff).
//   - All functions are pure and safe for concurrent use.
//
// ⚙️ Options
//
//	WithMethod(scalarmin.Brent | scalarmin.NelderMead)
//	WithInitialOffset(ε)      default 1e-4
//	WithBoundMargin(margin)   default 1e-6 rad
//	WithAbsTol(tol)           default 1e-12 rad
//	WithMaxEvaluations(n)     default 500
//
// 🧪 Usage
//
//	g, _ := slab.New(1.5, 1.0, 1.0)
//	sol, err := modesolver.Solve(g, modesolver.Request{Polarization: slab.TE, Theory: slab.Ray})
//	if err != nil { ... }
//	fmt.Printf("%.6f° n_eff=%.6f\n", sol.Degrees(), sol.EffectiveIndex)
//
// Angles are radians throughout; convert with slab.Degrees at the edge.
package modesolver
