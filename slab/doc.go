// SPDX-License-Identifier: MIT

// Package slab describes a three-region planar dielectric waveguide
// (substrate / core / cladding) and the vocabulary shared by every mode
// formulation in slabguide.
//
// 🚀 What lives here?
//
//   - Geometry: refractive indices, core thickness and wavelength (microns).
//   - Validation: a staged check that fails fast before any numeric search.
//   - Critical angle θc = arcsin(n_clad / n_core) and vacuum wave number k₀ = 2π/λ.
//   - Effective-index projector n_eff = n_core · sin(θ).
//   - Mode-request enums: Polarization (TE/TM), Theory (ray/wave/legacy ray), Parity.
//   - ResidualFunc: the pure (angle, geometry, order) → residual contract.
//
// ⚙️ Usage:
//
//	g, err := slab.New(1.5, 1.0, 1.0, slab.WithWavelength(1.55))
//	if err != nil {
//		// errors.Is(err, slab.ErrInvalidGeometry) when n_clad ≥ n_core
//	}
//	theta, _ := g.CriticalAngle()   // radians
//	neff := g.EffectiveIndex(1.2)    // n_core · sin(1.2)
//
// Units:
//
//	All angles are radians. Degrees appear only at the report/CLI boundary
//	through Degrees / Radians.
//
// Substrate:
//
//	SubstrateIndex == 0 means "same as cladding" (symmetric guide). The
//	resolved value is available through Geometry.Substrate.
package slab
