package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptecltd/fourier/quadrature"
)

func TestIntegrateKnownValues(t *testing.T) {
	testCases := []struct {
		name     string
		f        func(float64) float64
		a        float64
		b        float64
		expected float64
	}{
		{
			name:     "constant",
			f:        func(x float64) float64 { return 3.0 },
			a:        0,
			b:        10,
			expected: 30.0,
		},
		{
			name:     "linear",
			f:        func(x float64) float64 { return 2 * x },
			a:        0,
			b:        5,
			expected: 25.0,
		},
		{
			name:     "cubic",
			f:        func(x float64) float64 { return x * x * x },
			a:        -2,
			b:        2,
			expected: 0.0,
		},
		{
			name:     "sine over full period",
			f:        math.Sin,
			a:        0,
			b:        2 * math.Pi,
			expected: 0.0,
		},
		{
			name:     "sine over half period",
			f:        math.Sin,
			a:        0,
			b:        math.Pi,
			expected: 2.0,
		},
		{
			name:     "exponential",
			f:        math.Exp,
			a:        0,
			b:        1,
			expected: math.E - 1,
		},
	}

	in := quadrature.Default()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := in.Integrate(tc.f, tc.a, tc.b)
			assert.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 1e-8)
		})
	}
}

func TestIntegrateReversedLimits(t *testing.T) {
	in := quadrature.Default()

	forward, err := in.Integrate(math.Sin, 0, math.Pi)
	require.NoError(t, err)
	backward, err := in.Integrate(math.Sin, math.Pi, 0)
	require.NoError(t, err)

	assert.InDelta(t, forward, -backward, 1e-12)
}

func TestIntegrateEmptyInterval(t *testing.T) {
	in := quadrature.Default()
	result, err := in.Integrate(math.Exp, 1.5, 1.5)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, result)
}

func TestIntegrateStepFunction(t *testing.T) {
	step := func(x float64) float64 {
		if x < 0.3 {
			return 0
		}
		return 1
	}

	// A loose tolerance lets the bisection resolve the jump.
	in, err := quadrature.New(quadrature.Params{AbsTol: 1e-5})
	require.NoError(t, err)

	result, err := in.Integrate(step, 0, 1)
	assert.NoError(t, err)
	assert.InDelta(t, 0.7, result, 1e-4)
}

func TestIntegrateSegmentsResolvesJumpExactly(t *testing.T) {
	step := func(x float64) float64 {
		if x < 0.3 {
			return 0
		}
		return 1
	}

	in := quadrature.Default()
	result, err := in.IntegrateSegments(step, 0, 1, []float64{0.3})
	assert.NoError(t, err)
	assert.InDelta(t, 0.7, result, 1e-9)
}

func TestIntegrateSegmentsIgnoresOutsideBreakpoints(t *testing.T) {
	in := quadrature.Default()
	result, err := in.IntegrateSegments(func(x float64) float64 { return x }, 0, 2, []float64{-5, 1, 7})
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, result, 1e-9)
}

func TestIntegrateNotConverged(t *testing.T) {
	step := func(x float64) float64 {
		if x < math.Sqrt2/2 {
			return 0
		}
		return 100
	}

	// An impossible tolerance with almost no depth budget.
	in, err := quadrature.New(quadrature.Params{AbsTol: 1e-14, MaxDepth: 2})
	require.NoError(t, err)

	_, err = in.Integrate(step, 0, 1)
	assert.ErrorIs(t, err, quadrature.ErrNotConverged)
}

func TestNewInvalidParams(t *testing.T) {
	testCases := []struct {
		name   string
		params quadrature.Params
	}{
		{name: "negative tolerance", params: quadrature.Params{AbsTol: -1}},
		{name: "negative order", params: quadrature.Params{Order: -4}},
		{name: "negative depth", params: quadrature.Params{MaxDepth: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := quadrature.New(tc.params)
			assert.Error(t, err)
		})
	}
}

func TestDefaults(t *testing.T) {
	in := quadrature.Default()
	assert.Equal(t, quadrature.DefaultAbsTol, in.AbsTol())
	assert.Equal(t, quadrature.DefaultOrder, in.Order())
	assert.Equal(t, quadrature.DefaultMaxDepth, in.MaxDepth())
}
