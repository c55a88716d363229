package ray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slabguide/ray"
	"github.com/katalvlaran/slabguide/slab"
)

// Roots of the ray equations for n_core=1.5, n_clad=1, d=1 µm, λ=1 µm,
// regenerated by bisection of 2·(δp − 2·δr) − 2π·m on (θc, π/2).
const (
	rootTE0 = 1.3095848034495772
	rootTE1 = 1.0383224677260356
	rootTE2 = 0.7655078498669583
	rootTM0 = 1.2729927296509764
	rootTM1 = 0.9699283387496282
)

func reference(t *testing.T) slab.Geometry {
	t.Helper()
	g, err := slab.New(1.5, 1.0, 1.0)
	require.NoError(t, err)

	return g
}

// TestResidual_AtKnownRoots checks the residual vanishes at regenerated roots.
func TestResidual_AtKnownRoots(t *testing.T) {
	g := reference(t)
	cases := []struct {
		name  string
		fn    slab.ResidualFunc
		angle float64
		order int
	}{
		{"TE0", ray.TE, rootTE0, 0},
		{"TE1", ray.TE, rootTE1, 1},
		{"TE2", ray.TE, rootTE2, 2},
		{"TM0", ray.TM, rootTM0, 0},
		{"TM1", ray.TM, rootTM1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, 0, tc.fn(tc.angle, g, tc.order), 1e-9)
		})
	}
}

// TestReflectionPhase_Limits covers θc (zero phase) and near-grazing (π/2) limits.
func TestReflectionPhase_Limits(t *testing.T) {
	g := reference(t)
	theta, err := g.CriticalAngle()
	require.NoError(t, err)

	assert.InDelta(t, 0, ray.ReflectionPhase(theta+1e-12, g, slab.TE), 1e-5)
	assert.InDelta(t, math.Pi/2, ray.ReflectionPhase(math.Pi/2-1e-9, g, slab.TE), 1e-6)
	assert.InDelta(t, math.Pi/2, ray.ReflectionPhase(math.Pi/2-1e-9, g, slab.TM), 1e-6)
	assert.True(t, math.IsNaN(ray.ReflectionPhase(theta-0.05, g, slab.TE)), "below θc the phase is undefined")
}

// TestCharacteristic_Monotone verifies Φ(θ) − 2πm strictly decreases on the
// search interval, which makes the absolute residual unimodal.
func TestCharacteristic_Monotone(t *testing.T) {
	g := reference(t)
	theta, _ := g.CriticalAngle()
	for _, pol := range []slab.Polarization{slab.TE, slab.TM} {
		prev := math.Inf(1)
		for i := 1; i < 200; i++ {
			a := theta + (math.Pi/2-theta)*float64(i)/200
			v := ray.Characteristic(a, g, pol, 0)
			assert.Less(t, v, prev, "%s at %.6f", pol, a)
			prev = v
		}
	}
}

func TestResidual_NonNegativeAndPure(t *testing.T) {
	g := reference(t)
	for _, a := range []float64{0.8, 1.0, 1.2, 1.5} {
		for m := 0; m < 4; m++ {
			v := ray.TE(a, g, m)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Equal(t, v, ray.TE(a, g, m), "repeated evaluation is identical")
			assert.GreaterOrEqual(t, ray.TM(a, g, m), 0.0)
		}
	}
}

// TestTETMDiffer pins the birefringence of the reflection phase.
func TestTETMDiffer(t *testing.T) {
	g := reference(t)
	assert.NotEqual(t, ray.TE(1.1, g, 0), ray.TM(1.1, g, 0))
	assert.Greater(t, ray.ReflectionPhase(1.1, g, slab.TM), ray.ReflectionPhase(1.1, g, slab.TE),
		"TM prefactor n_core/n_clad exceeds TE prefactor n_clad/n_core")
}

func TestResidualSelector(t *testing.T) {
	g := reference(t)
	assert.Equal(t, ray.TE(1.0, g, 1), ray.Residual(slab.TE)(1.0, g, 1))
	assert.Equal(t, ray.TM(1.0, g, 1), ray.Residual(slab.TM)(1.0, g, 1))
	assert.True(t, math.IsNaN(ray.LegacyResidual(slab.TM)(1.0, g, 1)))
}

// TestLegacy_UndefinedForGuidingGeometry documents why the inverted-ratio
// formulation cannot be authoritative: its square-root argument is negative
// on the whole (0, π/2) domain whenever n_core > n_clad.
func TestLegacy_UndefinedForGuidingGeometry(t *testing.T) {
	geoms := [][2]float64{{1.5, 1.0}, {3.5, 1.44}, {1.46, 1.45}}
	for _, n := range geoms {
		g, err := slab.New(n[0], n[1], 1.0)
		require.NoError(t, err)
		for i := 1; i < 90; i++ {
			a := slab.Radians(float64(i))
			assert.True(t, math.IsNaN(ray.LegacyTE(a, g, 0)), "TE n=%v angle=%d°", n, i)
			assert.True(t, math.IsNaN(ray.LegacyTM(a, g, 0)), "TM n=%v angle=%d°", n, i)
		}
	}
}
