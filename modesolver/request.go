// SPDX-License-Identifier: MIT

package modesolver

import (
	"fmt"

	"github.com/katalvlaran/slabguide/ray"
	"github.com/katalvlaran/slabguide/slab"
	"github.com/katalvlaran/slabguide/wave"
)

// Request names one mode: polarization, formulation, field parity and order.
// Parity is only consulted for slab.Wave.
type Request struct {
	Polarization slab.Polarization
	Theory       slab.Theory
	Parity       slab.Parity
	Order        int
}

// Validate checks the enums and the order.
func (r Request) Validate() error {
	if !r.Polarization.Valid() {
		return fmt.Errorf("%v: %w", r.Polarization, slab.ErrUnknownVariant)
	}
	if !r.Theory.Valid() {
		return fmt.Errorf("%v: %w", r.Theory, slab.ErrUnknownVariant)
	}
	if r.Theory == slab.Wave && !r.Parity.Valid() {
		return fmt.Errorf("%v: %w", r.Parity, slab.ErrUnknownVariant)
	}
	if r.Order < 0 {
		return fmt.Errorf("order %d: %w", r.Order, ErrNegativeOrder)
	}

	return nil
}

// Label is the short variant name: "TE", "TM", "TE even", "TM odd (legacy)".
func (r Request) Label() string {
	switch r.Theory {
	case slab.Wave:
		return fmt.Sprintf("%s %s", r.Polarization, r.Parity)
	case slab.RayLegacy:
		return fmt.Sprintf("%s (legacy)", r.Polarization)
	default:
		return r.Polarization.String()
	}
}

// String implements fmt.Stringer, e.g. "TE ray m=0".
func (r Request) String() string {
	if r.Theory == slab.Wave {
		return fmt.Sprintf("%s %s %s m=%d", r.Polarization, r.Theory, r.Parity, r.Order)
	}

	return fmt.Sprintf("%s %s m=%d", r.Polarization, r.Theory, r.Order)
}

// ResidualFor selects the residual function for the request.
func ResidualFor(r Request) (slab.ResidualFunc, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	switch r.Theory {
	case slab.Wave:
		return wave.Residual(r.Polarization, r.Parity), nil
	case slab.RayLegacy:
		return ray.LegacyResidual(r.Polarization), nil
	default:
		return ray.Residual(r.Polarization), nil
	}
}
