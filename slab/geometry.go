// SPDX-License-Identifier: MIT

package slab

import (
	"fmt"
	"math"
)

// DefaultWavelength is the illumination wavelength in microns used when
// WithWavelength is not supplied.
const DefaultWavelength = 1.0

// Geometry is an immutable description of a single slab waveguide.
//
// Fields:
//   - CoreIndex      — n_core, must exceed CladdingIndex.
//   - CladdingIndex  — n_clad, ≥ 1.
//   - SubstrateIndex — n_sub; 0 means "same as cladding".
//   - Thickness      — core thickness in microns, > 0.
//   - Wavelength     — vacuum wavelength in microns, > 0.
//
// A Geometry is a plain value; copying it is cheap and it carries no state
// beyond its fields.
type Geometry struct {
	CoreIndex      float64
	CladdingIndex  float64
	SubstrateIndex float64
	Thickness      float64
	Wavelength     float64
}

// Option configures optional Geometry fields in New.
type Option func(*Geometry)

// WithWavelength sets the vacuum wavelength in microns.
// Panics if um is not finite or not positive (programmer error).
func WithWavelength(um float64) Option {
	if math.IsNaN(um) || math.IsInf(um, 0) || um <= 0 {
		panic(panicWavelengthInvalid)
	}

	return func(g *Geometry) { g.Wavelength = um }
}

// WithSubstrateIndex sets an explicit substrate index (asymmetric guide).
// Panics if n is not finite or not positive.
func WithSubstrateIndex(n float64) Option {
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		panic(panicSubstrateInvalid)
	}

	return func(g *Geometry) { g.SubstrateIndex = n }
}

// New builds a validated Geometry. Optional settings are applied in order;
// the wavelength defaults to DefaultWavelength and the substrate to the
// cladding index.
//
// Errors: any sentinel returned by Validate.
func New(core, cladding, thickness float64, opts ...Option) (Geometry, error) {
	g := Geometry{
		CoreIndex:     core,
		CladdingIndex: cladding,
		Thickness:     thickness,
		Wavelength:    DefaultWavelength,
	}
	for _, set := range opts {
		set(&g)
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}

	return g, nil
}

// Validate checks the geometry in a fixed order and returns the first
// violated sentinel, wrapped with the offending value.
//
// Stages:
//  1. every field finite;
//  2. n_clad ≥ 1, explicit n_sub > 0;
//  3. n_core > n_clad (guiding condition);
//  4. thickness > 0;
//  5. wavelength > 0.
func (g Geometry) Validate() error {
	for _, v := range [...]float64{g.CoreIndex, g.CladdingIndex, g.SubstrateIndex, g.Thickness, g.Wavelength} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	if g.CladdingIndex < 1 {
		return fmt.Errorf("cladding index %g: %w", g.CladdingIndex, ErrInvalidIndex)
	}
	if g.SubstrateIndex < 0 {
		return fmt.Errorf("substrate index %g: %w", g.SubstrateIndex, ErrInvalidIndex)
	}
	if g.CoreIndex <= g.CladdingIndex {
		return fmt.Errorf("n_core=%g n_clad=%g: %w", g.CoreIndex, g.CladdingIndex, ErrInvalidGeometry)
	}
	if g.Thickness <= 0 {
		return fmt.Errorf("thickness %g: %w", g.Thickness, ErrInvalidThickness)
	}
	if g.Wavelength <= 0 {
		return fmt.Errorf("wavelength %g: %w", g.Wavelength, ErrInvalidWavelength)
	}

	return nil
}

// Substrate resolves the substrate index: SubstrateIndex when set, otherwise
// the cladding index.
func (g Geometry) Substrate() float64 {
	if g.SubstrateIndex == 0 {
		return g.CladdingIndex
	}

	return g.SubstrateIndex
}

// Symmetric reports whether substrate and cladding indices coincide.
func (g Geometry) Symmetric() bool { return g.Substrate() == g.CladdingIndex }

// GuidingFloor is the lower bound a guided effective index must exceed:
// max(n_clad, n_sub).
func (g Geometry) GuidingFloor() float64 {
	return math.Max(g.CladdingIndex, g.Substrate())
}

// WaveNumber returns the vacuum wave number k₀ = 2π/λ in rad/µm.
func (g Geometry) WaveNumber() float64 {
	return 2 * math.Pi / g.Wavelength
}

// CriticalAngle returns θc = arcsin(n_clad/n_core) in radians.
// The geometry is validated first so the arcsin domain error surfaces as
// ErrInvalidGeometry instead of NaN.
func (g Geometry) CriticalAngle() (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}

	return math.Asin(g.CladdingIndex / g.CoreIndex), nil
}

// EffectiveIndex projects a propagation angle onto n_eff = n_core·sin(angle).
func (g Geometry) EffectiveIndex(angle float64) float64 {
	return EffectiveIndex(g.CoreIndex, angle)
}

// EffectiveIndex returns core·sin(angle). NaN input propagates.
func EffectiveIndex(core, angle float64) float64 {
	return core * math.Sin(angle)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }
