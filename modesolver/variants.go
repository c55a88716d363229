// SPDX-License-Identifier: MIT

package modesolver

import "github.com/katalvlaran/slabguide/slab"

// solvePair runs Solve and flattens the result to (angle, residual).
func solvePair(g slab.Geometry, req Request, opts []Option) (angle, residual float64, err error) {
	sol, err := Solve(g, req, opts...)
	if err != nil {
		return 0, 0, err
	}

	return sol.Angle, sol.Residual, nil
}

// SolveTERay solves the ray-optics TE mode of the given order.
func SolveTERay(g slab.Geometry, order int, opts ...Option) (angle, residual float64, err error) {
	return solvePair(g, Request{Polarization: slab.TE, Theory: slab.Ray, Order: order}, opts)
}

// SolveTMRay solves the ray-optics TM mode of the given order.
func SolveTMRay(g slab.Geometry, order int, opts ...Option) (angle, residual float64, err error) {
	return solvePair(g, Request{Polarization: slab.TM, Theory: slab.Ray, Order: order}, opts)
}

// SolveTEWaveEven solves the even wave-optics TE mode.
func SolveTEWaveEven(g slab.Geometry, order int, opts ...Option) (angle, residual float64, err error) {
	return solvePair(g, Request{Polarization: slab.TE, Theory: slab.Wave, Parity: slab.Even, Order: order}, opts)
}

// SolveTEWaveOdd solves the odd wave-optics TE mode.
func SolveTEWaveOdd(g slab.Geometry, order int, opts ...Option) (angle, residual float64, err error) {
	return solvePair(g, Request{Polarization: slab.TE, Theory: slab.Wave, Parity: slab.Odd, Order: order}, opts)
}

// SolveTMWaveEven solves the even wave-optics TM mode.
func SolveTMWaveEven(g slab.Geometry, order int, opts ...Option) (angle, residual float64, err error) {
	return solvePair(g, Request{Polarization: slab.TM, Theory: slab.Wave, Parity: slab.Even, Order: order}, opts)
}

// SolveTMWaveOdd solves the odd wave-optics TM mode.
func SolveTMWaveOdd(g slab.Geometry, order int, opts ...Option) (angle, residual float64, err error) {
	return solvePair(g, Request{Polarization: slab.TM, Theory: slab.Wave, Parity: slab.Odd, Order: order}, opts)
}

// SolveTERayLegacy solves the legacy ray TE formulation. For guiding
// geometries it returns ErrUndefinedResidual.
func SolveTERayLegacy(g slab.Geometry, order int, opts ...Option) (angle, residual float64, err error) {
	return solvePair(g, Request{Polarization: slab.TE, Theory: slab.RayLegacy, Order: order}, opts)
}

// SolveTMRayLegacy solves the legacy ray TM formulation.
func SolveTMRayLegacy(g slab.Geometry, order int, opts ...Option) (angle, residual float64, err error) {
	return solvePair(g, Request{Polarization: slab.TM, Theory: slab.RayLegacy, Order: order}, opts)
}

// SolveMode builds the geometry from raw parameters and solves req.
// geo may carry slab.WithSubstrateIndex and slab.WithWavelength; both panic
// on non-positive values.
func SolveMode(req Request, core, cladding, thickness float64, geo ...slab.Option) (angle, residual float64, err error) {
	g, err := slab.New(core, cladding, thickness, geo...)
	if err != nil {
		return 0, 0, err
	}

	return solvePair(g, req, nil)
}
