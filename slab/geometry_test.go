package slab_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slabguide/slab"
)

// TestNew_Defaults verifies the documented defaults: 1 µm wavelength and a
// substrate that resolves to the cladding index.
func TestNew_Defaults(t *testing.T) {
	g, err := slab.New(1.5, 1.0, 1.0)
	require.NoError(t, err)

	assert.Equal(t, slab.DefaultWavelength, g.Wavelength)
	assert.Equal(t, 0.0, g.SubstrateIndex, "substrate stays unset")
	assert.Equal(t, 1.0, g.Substrate(), "unset substrate resolves to cladding")
	assert.True(t, g.Symmetric())
	assert.Equal(t, 1.0, g.GuidingFloor())
}

func TestNew_Options(t *testing.T) {
	g, err := slab.New(3.5, 1.44, 0.22, slab.WithWavelength(1.55), slab.WithSubstrateIndex(1.0))
	require.NoError(t, err)

	assert.Equal(t, 1.55, g.Wavelength)
	assert.Equal(t, 1.0, g.Substrate())
	assert.False(t, g.Symmetric())
	assert.Equal(t, 1.44, g.GuidingFloor(), "floor is the larger of cladding and substrate")
	assert.InDelta(t, 2*math.Pi/1.55, g.WaveNumber(), 1e-15)
}

// TestValidate_Sentinels walks every validation stage.
func TestValidate_Sentinels(t *testing.T) {
	cases := []struct {
		name string
		g    slab.Geometry
		want error
	}{
		{"NaN core", slab.Geometry{CoreIndex: math.NaN(), CladdingIndex: 1, Thickness: 1, Wavelength: 1}, slab.ErrNonFinite},
		{"Inf thickness", slab.Geometry{CoreIndex: 1.5, CladdingIndex: 1, Thickness: math.Inf(1), Wavelength: 1}, slab.ErrNonFinite},
		{"cladding below vacuum", slab.Geometry{CoreIndex: 1.5, CladdingIndex: 0.9, Thickness: 1, Wavelength: 1}, slab.ErrInvalidIndex},
		{"negative substrate", slab.Geometry{CoreIndex: 1.5, CladdingIndex: 1, SubstrateIndex: -1, Thickness: 1, Wavelength: 1}, slab.ErrInvalidIndex},
		{"equal indices", slab.Geometry{CoreIndex: 1.5, CladdingIndex: 1.5, Thickness: 1, Wavelength: 1}, slab.ErrInvalidGeometry},
		{"cladding denser", slab.Geometry{CoreIndex: 1.4, CladdingIndex: 1.5, Thickness: 1, Wavelength: 1}, slab.ErrInvalidGeometry},
		{"zero thickness", slab.Geometry{CoreIndex: 1.5, CladdingIndex: 1, Thickness: 0, Wavelength: 1}, slab.ErrInvalidThickness},
		{"negative wavelength", slab.Geometry{CoreIndex: 1.5, CladdingIndex: 1, Thickness: 1, Wavelength: -1}, slab.ErrInvalidWavelength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.g.Validate(), tc.want)
		})
	}
}

// TestCriticalAngle_DomainError ensures θc fails fast instead of returning NaN.
func TestCriticalAngle_DomainError(t *testing.T) {
	g := slab.Geometry{CoreIndex: 1.0, CladdingIndex: 1.5, Thickness: 1, Wavelength: 1}
	theta, err := g.CriticalAngle()
	assert.ErrorIs(t, err, slab.ErrInvalidGeometry)
	assert.False(t, math.IsNaN(theta))
}

func TestCriticalAngle_Value(t *testing.T) {
	g, err := slab.New(1.5, 1.0, 1.0)
	require.NoError(t, err)

	theta, err := g.CriticalAngle()
	require.NoError(t, err)
	assert.InDelta(t, math.Asin(1/1.5), theta, 1e-15)
	assert.InDelta(t, 41.8103148957786, slab.Degrees(theta), 1e-9)
	// at θc the projected index equals the cladding index
	assert.InDelta(t, 1.0, g.EffectiveIndex(theta), 1e-12)
}

func TestEffectiveIndex(t *testing.T) {
	assert.InDelta(t, 1.5, slab.EffectiveIndex(1.5, math.Pi/2), 1e-15)
	assert.InDelta(t, 0.75, slab.EffectiveIndex(1.5, math.Pi/6), 1e-15)
	assert.True(t, math.IsNaN(slab.EffectiveIndex(1.5, math.NaN())), "NaN propagates")
}

func TestDegreesRadians(t *testing.T) {
	assert.InDelta(t, 90.0, slab.Degrees(math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/4, slab.Radians(45), 1e-15)
	assert.InDelta(t, 1.234, slab.Radians(slab.Degrees(1.234)), 1e-15)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { slab.WithWavelength(0) })
	assert.Panics(t, func() { slab.WithWavelength(math.NaN()) })
	assert.Panics(t, func() { slab.WithSubstrateIndex(-1.2) })
}
