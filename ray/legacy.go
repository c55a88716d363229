// SPDX-License-Identifier: MIT

package ray

import (
	"math"

	"github.com/katalvlaran/slabguide/slab"
)

// LegacyReflectionPhase is the historical reflection phase with the index
// ratio inverted under the square root:
//
//	arctan( prefactor · sqrt(n_clad²/n_core²·sin²θ − 1) )
//
// Angles are radians; the old degree-based entry point is expressed by
// converting at the caller with slab.Radians.
func LegacyReflectionPhase(angle float64, g slab.Geometry, pol slab.Polarization) float64 {
	sin, cos := math.Sincos(angle)
	root := math.Sqrt(g.CladdingIndex*g.CladdingIndex/(g.CoreIndex*g.CoreIndex)*sin*sin - 1)

	return math.Atan(ratio(g, pol, cos) * root)
}

// LegacyCharacteristic is the signed legacy equation 2·(δp − 2·δr) − 2π·order.
func LegacyCharacteristic(angle float64, g slab.Geometry, pol slab.Polarization, order int) float64 {
	phi := 2 * (PropagationPhase(angle, g) - 2*LegacyReflectionPhase(angle, g, pol))

	return phi - 2*math.Pi*float64(order)
}

// LegacyTE is the historical TE residual. NaN for every guiding geometry.
func LegacyTE(angle float64, g slab.Geometry, order int) float64 {
	return math.Abs(LegacyCharacteristic(angle, g, slab.TE, order))
}

// LegacyTM is the historical TM residual. NaN for every guiding geometry.
func LegacyTM(angle float64, g slab.Geometry, order int) float64 {
	return math.Abs(LegacyCharacteristic(angle, g, slab.TM, order))
}

// LegacyResidual returns the legacy residual for pol.
func LegacyResidual(pol slab.Polarization) slab.ResidualFunc {
	if pol == slab.TM {
		return LegacyTM
	}

	return LegacyTE
}
