// SPDX-License-Identifier: MIT

package slab

import (
	"fmt"
	"strings"
)

// Polarization selects the transverse field component of the guided light.
type Polarization int

const (
	// TE — transverse-electric.
	TE Polarization = iota
	// TM — transverse-magnetic.
	TM
)

// String implements fmt.Stringer.
func (p Polarization) String() string {
	switch p {
	case TE:
		return "TE"
	case TM:
		return "TM"
	default:
		return fmt.Sprintf("Polarization(%d)", int(p))
	}
}

// Valid reports whether p is TE or TM.
func (p Polarization) Valid() bool { return p == TE || p == TM }

// Theory selects the derivation of the eigenvalue equation.
//
//   - Ray       — zig-zag ray, propagation plus two reflection phases.
//   - Wave      — transverse field profile with even/odd parity.
//   - RayLegacy — historical ray variant with the inverted index ratio in the
//     reflection phase; kept for comparison only.
type Theory int

const (
	Ray Theory = iota
	Wave
	RayLegacy
)

// String implements fmt.Stringer.
func (t Theory) String() string {
	switch t {
	case Ray:
		return "ray"
	case Wave:
		return "wave"
	case RayLegacy:
		return "ray-legacy"
	default:
		return fmt.Sprintf("Theory(%d)", int(t))
	}
}

// Valid reports whether t is a known theory.
func (t Theory) Valid() bool { return t >= Ray && t <= RayLegacy }

// Parity is the symmetry of the transverse field. Only Wave uses it.
type Parity int

const (
	Even Parity = iota
	Odd
)

// String implements fmt.Stringer.
func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("Parity(%d)", int(p))
	}
}

// Valid reports whether p is Even or Odd.
func (p Parity) Valid() bool { return p == Even || p == Odd }

// ParsePolarization accepts "te"/"tm" in any case.
func ParsePolarization(s string) (Polarization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "te":
		return TE, nil
	case "tm":
		return TM, nil
	}

	return 0, fmt.Errorf("polarization %q: %w", s, ErrUnknownVariant)
}

// ParseTheory accepts "ray", "wave" and "ray-legacy" (also "legacy").
func ParseTheory(s string) (Theory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ray", "rays":
		return Ray, nil
	case "wave", "waves":
		return Wave, nil
	case "ray-legacy", "legacy":
		return RayLegacy, nil
	}

	return 0, fmt.Errorf("theory %q: %w", s, ErrUnknownVariant)
}

// ParseParity accepts "even"/"odd" in any case.
func ParseParity(s string) (Parity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	}

	return 0, fmt.Errorf("parity %q: %w", s, ErrUnknownVariant)
}

// ResidualFunc is the contract of every eigenvalue residual: a pure,
// deterministic map from (angle in radians, geometry, mode order) to the
// absolute value of the transcendental equation. Zero marks a guided mode.
// Outside the formulation's angular domain the result is NaN; callers keep
// the search inside the domain.
type ResidualFunc func(angle float64, g Geometry, order int) float64
