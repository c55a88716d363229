// SPDX-License-Identifier: MIT

// Package wave implements the wave-optics (field profile) eigenvalue
// residuals of a symmetric slab waveguide.
//
// For a propagation angle θ the effective index is n_eff = n_core·sinθ and
//
//	γ = k₀·sqrt(n_eff² − n_clad²)   decay constant in the cladding
//	κ = k₀·sqrt(n_core² − n_eff²)   transverse wavenumber in the core
//
// The characteristic equations, one per polarization and field parity, are
//
//	TE even:  κ·d/2 − arctan(γ/κ)              + m·π
//	TE odd:   κ·d/2 − arctan(−κ/γ)             + m·π
//	TM even:  κ·d/2 + m·π − arctan(γ·n_core²/κ)
//	TM odd:   κ·d/2 + m·π − arctan(−κ/(γ·n_core²))
//
// and each residual is the absolute value of its equation. γ is real only
// for θ above the critical angle; below it every residual is NaN.
//
// Every characteristic decreases monotonically on (θc, π/2). For orders
// where it never changes sign the minimum residual sits at an interval end
// and stays far from zero, which is how a missing mode shows up.
package wave

import (
	"math"

	"github.com/katalvlaran/slabguide/slab"
)

// Constants returns (κ, γ) for angle.
func Constants(angle float64, g slab.Geometry) (kappa, gamma float64) {
	k0 := g.WaveNumber()
	neff := g.EffectiveIndex(angle)
	gamma = k0 * math.Sqrt(neff*neff-g.CladdingIndex*g.CladdingIndex)
	kappa = k0 * math.Sqrt(g.CoreIndex*g.CoreIndex-neff*neff)

	return kappa, gamma
}

// Characteristic returns the signed eigenvalue expression for the given
// polarization, parity and order.
func Characteristic(angle float64, g slab.Geometry, pol slab.Polarization, parity slab.Parity, order int) float64 {
	kappa, gamma := Constants(angle, g)
	half := kappa * g.Thickness / 2
	m := float64(order) * math.Pi
	n2 := g.CoreIndex * g.CoreIndex

	switch {
	case pol == slab.TE && parity == slab.Even:
		return half - math.Atan(gamma/kappa) + m
	case pol == slab.TE:
		return half - math.Atan(-kappa/gamma) + m
	case parity == slab.Even:
		return half + m - math.Atan(gamma*n2/kappa)
	default:
		return half + m - math.Atan(-kappa/(gamma*n2))
	}
}

// TEEven is the residual of the even TE equation.
func TEEven(angle float64, g slab.Geometry, order int) float64 {
	return math.Abs(Characteristic(angle, g, slab.TE, slab.Even, order))
}

// TEOdd is the residual of the odd TE equation.
func TEOdd(angle float64, g slab.Geometry, order int) float64 {
	return math.Abs(Characteristic(angle, g, slab.TE, slab.Odd, order))
}

// TMEven is the residual of the even TM equation.
func TMEven(angle float64, g slab.Geometry, order int) float64 {
	return math.Abs(Characteristic(angle, g, slab.TM, slab.Even, order))
}

// TMOdd is the residual of the odd TM equation.
func TMOdd(angle float64, g slab.Geometry, order int) float64 {
	return math.Abs(Characteristic(angle, g, slab.TM, slab.Odd, order))
}

// Residual returns the residual for (pol, parity).
func Residual(pol slab.Polarization, parity slab.Parity) slab.ResidualFunc {
	switch {
	case pol == slab.TE && parity == slab.Even:
		return TEEven
	case pol == slab.TE:
		return TEOdd
	case parity == slab.Even:
		return TMEven
	default:
		return TMOdd
	}
}
