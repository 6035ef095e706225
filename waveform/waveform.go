// Package waveform provides a registry of named periodic target
// functions for Fourier approximation. Every waveform applies its own
// periodic wraparound, so values are valid for any real argument.
package waveform

import (
	"errors"
	"math"

	"github.com/stevenblair/sigourney/fast"
)

// A periodic function y=f(x,A,P). Takes amplitude, A, and period, P, as
// inputs and returns the value of the function at position x.
type Waveform func(x, A, P float64) float64

// A map between string name and waveform pairs
var waveforms = map[string]Waveform{
	"flat":     flat,
	"sine":     Sine,
	"cosine":   Cosine,
	"square":   squareWave,
	"sawtooth": sawtoothWave,
	"triangle": triangleWave,
	"pulse":    pulseTrain,
	"halfrect": halfRectifiedSine,
}

func GetWaveformNames() []string {
	names := make([]string, 0, len(waveforms))
	for name := range waveforms {
		names = append(names, name)
	}
	return names
}

// Returns the named waveform.
func GetWaveformFromName(name string) (Waveform, error) {
	w, ok := waveforms[name]
	if !ok {
		return nil, errors.New("waveform not found")
	}

	return w, nil
}

// Returns a sine wave y=A*sin(2*pi*x/P) where A is the amplitude,
// P is the period, and x is position.
func Sine(x, A, P float64) float64 {
	return A * math.Sin(2*math.Pi*x/P)
}

// Returns a cosine wave y=A*cos(2*pi*x/P) where A is the amplitude,
// P is the period, and x is position.
func Cosine(x, A, P float64) float64 {
	return A * math.Cos(2*math.Pi*x/P)
}

// Returns a square wave y=A if sin(2*pi*x/P) >= 0, else -A.
// Its Fourier sine coefficients have the closed form b_n=4A/(n*pi) for
// odd n and 0 for even n, which the tests lean on.
func squareWave(x, A, P float64) float64 {
	if fast.Sin(2*math.Pi*x/P) >= 0 {
		return A
	} else {
		return -A
	}
}

// Returns a sawtooth wave y=(2*A/pi)*atan(tan(pi*x/P)),
// where A is the amplitude, P is the period, and x is position.
func sawtoothWave(x, A, P float64) float64 {
	return (2 * A / math.Pi) * math.Atan(math.Tan(math.Pi*x/P))
}

// Returns a triangle wave of amplitude A and period P, rising from -A at
// x=0 to A at x=P/2 and back.
func triangleWave(x, A, P float64) float64 {
	phase := math.Mod(x/P, 1)
	if phase < 0 {
		phase += 1
	}
	if phase < 0.5 {
		return A * (4*phase - 1)
	}
	return A * (3 - 4*phase)
}

// Returns a pulse train of amplitude A: high on the first quarter of each
// period, zero elsewhere.
func pulseTrain(x, A, P float64) float64 {
	phase := math.Mod(x/P, 1)
	if phase < 0 {
		phase += 1
	}
	if phase < 0.25 {
		return A
	}
	return 0
}

// Returns a half-wave rectified sine of amplitude A and period P.
func halfRectifiedSine(x, A, P float64) float64 {
	y := A * fast.Sin(2*math.Pi*x/P)
	if y < 0 {
		return 0
	}
	return y
}

// flat returns a constant value equal to A (amplitude), independent of
// position x or period P.
func flat(x, A, P float64) float64 {
	return A
}
