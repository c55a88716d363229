package scalarmin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slabguide/scalarmin"
)

var unit = scalarmin.Bounds{Lower: 0, Upper: 1}

func TestMinimize_Errors(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := scalarmin.Minimize(nil, 0.5, unit)
	assert.ErrorIs(t, err, scalarmin.ErrNilFunc)

	for _, b := range []scalarmin.Bounds{
		{Lower: 1, Upper: 1},
		{Lower: 2, Upper: 1},
		{Lower: math.NaN(), Upper: 1},
		{Lower: 0, Upper: math.Inf(1)},
	} {
		_, err = scalarmin.Minimize(f, 0.5, b)
		assert.ErrorIs(t, err, scalarmin.ErrInvalidBounds, "%+v", b)
	}

	_, err = scalarmin.Minimize(f, 0.5, unit, scalarmin.WithMethod(scalarmin.Method(9)))
	assert.ErrorIs(t, err, scalarmin.ErrUnknownMethod)
}

func TestBrent_Smooth(t *testing.T) {
	res, err := scalarmin.Minimize(func(x float64) float64 { return (x - 0.3) * (x - 0.3) }, 0.9, unit)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, res.X, 1e-7)
	assert.InDelta(t, 0, res.F, 1e-14)
	assert.True(t, res.Converged)
}

func TestBrent_Kink(t *testing.T) {
	res, err := scalarmin.Minimize(func(x float64) float64 { return math.Abs(x - 0.7) }, 0.01, unit)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, res.X, 1e-9)
	assert.Less(t, res.F, 1e-9)
	assert.True(t, res.Converged)
}

func TestBrent_MinimumOnBound(t *testing.T) {
	b := scalarmin.Bounds{Lower: 1, Upper: 2}
	res, err := scalarmin.Minimize(func(x float64) float64 { return x }, 1.5, b)
	require.NoError(t, err)
	assert.InDelta(t, 1, res.X, 1e-9)
	assert.GreaterOrEqual(t, res.X, 1.0)
}

func TestMinimize_StaysInBounds(t *testing.T) {
	b := scalarmin.Bounds{Lower: 0.25, Upper: 0.5}
	for _, m := range []scalarmin.Method{scalarmin.Brent, scalarmin.NelderMead} {
		calls := 0
		f := func(x float64) float64 {
			calls++
			assert.GreaterOrEqual(t, x, b.Lower, m.String())
			assert.LessOrEqual(t, x, b.Upper, m.String())

			return -x * x
		}
		res, err := scalarmin.Minimize(f, 10, b, scalarmin.WithMethod(m))
		require.NoError(t, err)
		assert.Equal(t, calls, res.Evaluations, m.String())
		assert.InDelta(t, 0.5, res.X, 1e-3, m.String())
	}
}

func TestBrent_EscapesNaNRegion(t *testing.T) {
	f := func(x float64) float64 {
		if x < 0.5 {
			return math.NaN()
		}

		return (x - 0.8) * (x - 0.8)
	}
	res, err := scalarmin.Minimize(f, 0.1, unit)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, res.X, 1e-6)
	assert.False(t, math.IsNaN(res.F))
}

func TestMinimize_AllNaN(t *testing.T) {
	for _, m := range []scalarmin.Method{scalarmin.Brent, scalarmin.NelderMead} {
		res, err := scalarmin.Minimize(func(float64) float64 { return math.NaN() }, 0.5, unit, scalarmin.WithMethod(m))
		require.NoError(t, err, m.String())
		assert.True(t, math.IsNaN(res.F), m.String())
		assert.GreaterOrEqual(t, res.X, 0.0)
		assert.LessOrEqual(t, res.X, 1.0)
	}
}

func TestBrent_EvaluationBudget(t *testing.T) {
	res, err := scalarmin.Minimize(func(x float64) float64 { return math.Abs(x - 0.7) }, 0.01, unit,
		scalarmin.WithMaxEvaluations(5))
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Evaluations, 5)
	assert.False(t, res.Converged)
}

func TestBrent_Deterministic(t *testing.T) {
	f := func(x float64) float64 { return math.Abs(math.Sin(3*x) - 0.2) }
	a, err := scalarmin.Minimize(f, 0.4, unit)
	require.NoError(t, err)
	b, err := scalarmin.Minimize(f, 0.4, unit)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNelderMead_Kink(t *testing.T) {
	res, err := scalarmin.Minimize(func(x float64) float64 { return math.Abs(x - 0.7) }, 0.2, unit,
		scalarmin.WithMethod(scalarmin.NelderMead))
	require.NoError(t, err)
	assert.InDelta(t, 0.7, res.X, 1e-3)
	assert.Less(t, res.F, 1e-3)
	assert.LessOrEqual(t, res.Evaluations, scalarmin.DefaultMaxEvaluations+1)
}

func TestBounds_Clamp(t *testing.T) {
	assert.Equal(t, 0.0, unit.Clamp(-3))
	assert.Equal(t, 1.0, unit.Clamp(3))
	assert.Equal(t, 0.25, unit.Clamp(0.25))
	assert.Equal(t, 0.5, unit.Clamp(math.NaN()))
	assert.Equal(t, 1.0, unit.Width())
}

func TestOptions(t *testing.T) {
	d := scalarmin.DefaultOptions()
	assert.Equal(t, scalarmin.Brent, d.Method)
	assert.Equal(t, scalarmin.DefaultAbsTol, d.AbsTol)
	assert.Equal(t, scalarmin.DefaultRelTol, d.RelTol)
	assert.Equal(t, scalarmin.DefaultMaxEvaluations, d.MaxEvaluations)

	assert.Panics(t, func() { scalarmin.WithAbsTol(0) })
	assert.Panics(t, func() { scalarmin.WithAbsTol(math.NaN()) })
	assert.Panics(t, func() { scalarmin.WithRelTol(-1) })
	assert.Panics(t, func() { scalarmin.WithMaxEvaluations(2) })
	assert.NotPanics(t, func() { scalarmin.WithRelTol(0) })
}

func TestParseMethod(t *testing.T) {
	cases := map[string]scalarmin.Method{
		"":            scalarmin.Brent,
		"brent":       scalarmin.Brent,
		"nelder-mead": scalarmin.NelderMead,
		"nm":          scalarmin.NelderMead,
	}
	for in, want := range cases {
		got, err := scalarmin.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := scalarmin.ParseMethod("lbfgs")
	assert.ErrorIs(t, err, scalarmin.ErrUnknownMethod)
	assert.Equal(t, "nelder-mead", scalarmin.NelderMead.String())
	assert.Equal(t, "Method(7)", scalarmin.Method(7).String())
}
