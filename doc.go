// Package slabguide finds the guided modes of a planar dielectric slab
// waveguide: a thin high-index core sandwiched between lower-index cladding.
//
// 🚀 What is slabguide?
//
//	A small numerical toolkit that, for a given core/cladding index pair,
//	core thickness and wavelength, finds the propagation angle (and hence the
//	effective index) of each guided mode by minimizing a transcendental
//	eigenvalue residual over the admissible angles:
//		• Ray optics: zig-zag ray, propagation plus total-internal-reflection phase
//		• Wave optics: even/odd transverse field profiles
//		• TE and TM polarizations, any mode order
//		• Bounded Brent search, or gonum Nelder–Mead on a tanh-mapped angle
//
// ✨ Why slabguide?
//
//   - Pure functions – residuals and solvers are stateless and concurrency-safe
//   - Radians inside – degrees only at the reporting edge
//   - Domain errors early – a cladding denser than the core fails before any search
//   - Missing modes are data – a large residual, never a panic
//
// Under the hood, everything is organized in small packages:
//
//	slab/       — Geometry, Polarization/Theory/Parity enums, critical angle, n_eff
//	ray/        — ray-optics residuals (and the legacy formulation)
//	wave/       — wave-optics residuals, even and odd
//	scalarmin/  — bounded one-dimensional minimizer
//	modesolver/ — interval, initial guess, Solve, SolveOrders, Profile
//	report/     — text, CSV, gonum/plot images, go-echarts HTML
//	cmd/slabguide — CLI: solve, sweep, profile
//
// Quick ASCII picture:
//
//	   n_clad
//	  ───────────────────────  ┐
//	     ╲  θ  ╱╲     ╱╲       │ d
//	      ╲   ╱  ╲   ╱  ╲      │  n_core > n_clad
//	  ───────────────────────  ┘
//	   n_clad
//
//	A mode exists where the round-trip phase is a multiple of 2π.
//
//	go install github.com/katalvlaran/slabguide/cmd/slabguide@latest
package slabguide
