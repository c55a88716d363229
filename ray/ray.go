// SPDX-License-Identifier: MIT

// Package ray implements the ray-optics (zig-zag) eigenvalue residuals of a
// slab waveguide.
//
// A guided ray bouncing between the two core interfaces accumulates a
// propagation phase δp = n_core·k₀·d·cos(θ) per crossing and a phase δr at
// each total internal reflection. A mode exists where the round trip
//
//	Φ(θ) = 2·(δp − 2·δr)
//
// equals an integer multiple of 2π. The residual is |Φ(θ) − 2π·m|.
//
// Domain: the reflection phase contains sqrt(n_core²·sin²θ/n_clad² − 1), real
// only for θ ≥ θc. Below the critical angle the residual is NaN; searches must
// keep θ inside (θc, π/2).
//
// LegacyTE/LegacyTM keep the historical variant whose square-root argument
// inverts the index ratio (n_clad²/n_core²·sin²θ − 1). For any guiding
// geometry that argument is negative for every angle, so the legacy residual
// is NaN everywhere; it is retained for comparison with old results.
package ray

import (
	"math"

	"github.com/katalvlaran/slabguide/slab"
)

// PropagationPhase returns δp = n_core·k₀·d·cos(angle).
func PropagationPhase(angle float64, g slab.Geometry) float64 {
	return g.CoreIndex * g.WaveNumber() * g.Thickness * math.Cos(angle)
}

// ReflectionPhase returns the total-internal-reflection phase δr for one
// interface.
//
//	TE: arctan( n_clad/(n_core·cosθ) · sqrt(n_core²·sin²θ/n_clad² − 1) )
//	TM: arctan( n_core/(n_clad·cosθ) · sqrt(n_core²·sin²θ/n_clad² − 1) )
//
// NaN below the critical angle.
func ReflectionPhase(angle float64, g slab.Geometry, pol slab.Polarization) float64 {
	sin, cos := math.Sincos(angle)
	root := math.Sqrt(g.CoreIndex*g.CoreIndex*sin*sin/(g.CladdingIndex*g.CladdingIndex) - 1)

	return math.Atan(ratio(g, pol, cos) * root)
}

// RoundTripPhase returns Φ = 2·(δp − 2·δr).
func RoundTripPhase(angle float64, g slab.Geometry, pol slab.Polarization) float64 {
	return 2 * (PropagationPhase(angle, g) - 2*ReflectionPhase(angle, g, pol))
}

// Characteristic returns the signed eigenvalue expression Φ(θ) − 2π·order.
// It decreases monotonically in θ on (θc, π/2).
func Characteristic(angle float64, g slab.Geometry, pol slab.Polarization, order int) float64 {
	return RoundTripPhase(angle, g, pol) - 2*math.Pi*float64(order)
}

// TE is the ray-optics residual for transverse-electric modes.
func TE(angle float64, g slab.Geometry, order int) float64 {
	return math.Abs(Characteristic(angle, g, slab.TE, order))
}

// TM is the ray-optics residual for transverse-magnetic modes.
func TM(angle float64, g slab.Geometry, order int) float64 {
	return math.Abs(Characteristic(angle, g, slab.TM, order))
}

// Residual returns the ray residual for pol.
func Residual(pol slab.Polarization) slab.ResidualFunc {
	if pol == slab.TM {
		return TM
	}

	return TE
}

// ratio is the polarization-dependent prefactor of the reflection phase.
func ratio(g slab.Geometry, pol slab.Polarization, cos float64) float64 {
	if pol == slab.TM {
		return g.CoreIndex / (g.CladdingIndex * cos)
	}

	return g.CladdingIndex / (g.CoreIndex * cos)
}
