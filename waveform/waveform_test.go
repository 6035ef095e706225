package waveform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/synaptecltd/fourier/waveform"
)

func TestDeterministicWaveforms(t *testing.T) {
	const A = 10.0
	const P = 8.0

	testCases := []struct {
		name     string  // name of the function, defined in the waveforms map
		x        float64 // position
		expected float64 // expected value of the function at x
		delta    float64 // comparison tolerance
		isError  bool    // true if an error is expected
	}{
		{
			name:    "not_a_waveform",
			isError: true,
		},
		{
			name:     "flat",
			x:        3.21,
			expected: A,
			delta:    0,
		},
		{
			name:     "sine",
			x:        P / 4,
			expected: A, // A*sin(pi/2) = A
			delta:    1e-12,
		},
		{
			name:     "cosine",
			x:        P / 2,
			expected: -A, // A*cos(pi) = -A
			delta:    1e-12,
		},
		{
			name:     "square",
			x:        P / 4,
			expected: A,
			delta:    0,
		},
		{
			name:     "square",
			x:        3 * P / 4,
			expected: -A,
			delta:    0,
		},
		{
			name:     "sawtooth",
			x:        P / 4,
			expected: A / 2, // (2A/pi)*atan(tan(pi/4)) = A/2
			delta:    1e-12,
		},
		{
			name:     "triangle",
			x:        0,
			expected: -A,
			delta:    1e-12,
		},
		{
			name:     "triangle",
			x:        P / 2,
			expected: A,
			delta:    1e-12,
		},
		{
			name:     "pulse",
			x:        P / 8,
			expected: A,
			delta:    0,
		},
		{
			name:     "pulse",
			x:        P / 2,
			expected: 0,
			delta:    0,
		},
		{
			name:     "halfrect",
			x:        3 * P / 4,
			expected: 0,
			delta:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := waveform.GetWaveformFromName(tc.name)
			if tc.isError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tc.expected, w(tc.x, A, P), tc.delta)
		})
	}
}

func TestWaveformsArePeriodic(t *testing.T) {
	const A = 1.0
	const P = 5.0

	for _, name := range waveform.GetWaveformNames() {
		w, err := waveform.GetWaveformFromName(name)
		assert.NoError(t, err)

		for _, x := range []float64{0.3, 1.1, 2.6, 4.9} {
			assert.InDelta(t, w(x, A, P), w(x+P, A, P), 1e-3, "%s at x=%g", name, x)
		}
	}
}

func TestGetWaveformNames(t *testing.T) {
	names := waveform.GetWaveformNames()
	assert.NotEmpty(t, names)
	assert.Contains(t, names, "sine")
	assert.Contains(t, names, "square")
}

func TestTriangleMidpoints(t *testing.T) {
	w, err := waveform.GetWaveformFromName("triangle")
	assert.NoError(t, err)

	// Rises through zero a quarter of the way in, falls through zero
	// three quarters in.
	assert.InDelta(t, 0.0, w(0.25, 1, 1), 1e-12)
	assert.InDelta(t, 0.0, w(0.75, 1, 1), 1e-12)
	assert.InDelta(t, math.Abs(w(0.5, 1, 1)), 1.0, 1e-12)
}
