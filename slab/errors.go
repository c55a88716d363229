// SPDX-License-Identifier: MIT

package slab

import "errors"

// Sentinel errors. Callers branch with errors.Is; messages are prefixed with
// "slab:" and are part of the public contract.
//
// Validation priority (first failure wins):
// non-finite -> index range -> guiding condition -> thickness -> wavelength.
var (
	// ErrNonFinite is returned when a geometry field is NaN or ±Inf.
	ErrNonFinite = errors.New("slab: non-finite geometry parameter")

	// ErrInvalidIndex is returned when the cladding index is below 1 or an
	// explicit substrate index is not positive.
	ErrInvalidIndex = errors.New("slab: refractive index out of range")

	// ErrInvalidGeometry is the domain error: the cladding is at least as dense
	// as the core, so arcsin(n_clad/n_core) is undefined and nothing is guided.
	ErrInvalidGeometry = errors.New("slab: invalid geometry, core index must exceed cladding index")

	// ErrInvalidThickness is returned for a non-positive core thickness.
	ErrInvalidThickness = errors.New("slab: thickness must be > 0")

	// ErrInvalidWavelength is returned for a non-positive wavelength.
	ErrInvalidWavelength = errors.New("slab: wavelength must be > 0")

	// ErrUnknownVariant is returned by the enum parsers and by validators when a
	// polarization, theory or parity value is not recognised.
	ErrUnknownVariant = errors.New("slab: unknown mode variant")
)

const (
	panicWavelengthInvalid = "slab: WithWavelength: wavelength must be finite and > 0"
	panicSubstrateInvalid  = "slab: WithSubstrateIndex: index must be finite and > 0"
)
