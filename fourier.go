// Package fourier estimates truncated Fourier series approximations of
// periodic functions. Coefficients are obtained by numerical quadrature
// of the standard projection integrals over one period, and the resulting
// partial sums can be evaluated at arbitrary points.
package fourier

import (
	"errors"
	"fmt"
	"math"

	"github.com/synaptecltd/fourier/quadrature"
)

// Func is a real-valued function of one real variable, defined on one
// period and extended to all reals by periodicity. The function itself is
// responsible for periodic wraparound (x mod P); the approximator never
// reduces its argument.
type Func func(x float64) float64

// ErrInvalidParameter is returned when approximation parameters fail
// validation before any computation begins.
var ErrInvalidParameter = errors.New("fourier: invalid parameter")

// Params configures an Approximator.
type Params struct {
	Period   float64 `yaml:"Period"`   // period of the target function, must be > 0
	Degree   int     `yaml:"Degree"`   // maximum harmonic order, must be >= 0
	LowLim   float64 `yaml:"LowLim"`   // lower integration limit, conventionally 0
	UpperLim float64 `yaml:"UpperLim"` // upper integration limit; UpperLim-LowLim must equal Period. Leaving both limits 0 selects [0, Period]

	// Known discontinuity locations of the target within [LowLim, UpperLim).
	// The projection integrals are split at these points so that only
	// smooth sub-intervals are handed to the quadrature.
	Breakpoints []float64 `yaml:"Breakpoints,omitempty,flow"`

	Quadrature quadrature.Params `yaml:"Quadrature,omitempty"`
}

// Approximator computes truncated Fourier series coefficients for
// periodic functions over a fixed interval. Construct with New; each
// computation is stateless beyond the configured parameters.
type Approximator struct {
	period      float64
	degree      int
	low, high   float64
	breakpoints []float64

	integrator *quadrature.Integrator
}

// New returns an Approximator with the requested parameters, checking for
// invalid values. All failures wrap ErrInvalidParameter.
func New(params Params) (*Approximator, error) {
	if params.Period <= 0 {
		return nil, fmt.Errorf("%w: Period must be greater than 0, got %g", ErrInvalidParameter, params.Period)
	}
	if params.Degree < 0 {
		return nil, fmt.Errorf("%w: Degree must be greater than or equal to 0, got %d", ErrInvalidParameter, params.Degree)
	}

	low := params.LowLim
	high := params.UpperLim
	if high == 0 && low == 0 {
		high = params.Period
	}
	if math.Abs((high-low)-params.Period) > 1e-9*params.Period {
		return nil, fmt.Errorf("%w: UpperLim-LowLim (%g) must equal Period (%g)", ErrInvalidParameter, high-low, params.Period)
	}

	integrator, err := quadrature.New(params.Quadrature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	return &Approximator{
		period:      params.Period,
		degree:      params.Degree,
		low:         low,
		high:        high,
		breakpoints: append([]float64(nil), params.Breakpoints...),
		integrator:  integrator,
	}, nil
}

// Period returns the configured period.
func (ap *Approximator) Period() float64 {
	return ap.period
}

// Degree returns the configured maximum harmonic order.
func (ap *Approximator) Degree() int {
	return ap.degree
}

func (ap *Approximator) integrate(f func(float64) float64) (float64, error) {
	return ap.integrator.IntegrateSegments(f, ap.low, ap.high, ap.breakpoints)
}

// A0 estimates the constant term of the series, the mean value of f over
// one period.
func (ap *Approximator) A0(f Func) (float64, error) {
	result, err := ap.integrate(f)
	if err != nil {
		return 0, err
	}
	return result / ap.period, nil
}

// An estimates the n-th cosine coefficient,
// (2/P) * integral of f(x)*cos(2*pi*n*x/P) over one period. n must be >= 1.
func (ap *Approximator) An(f Func, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: harmonic order must be greater than or equal to 1, got %d", ErrInvalidParameter, n)
	}
	w := 2 * math.Pi * float64(n) / ap.period
	result, err := ap.integrate(func(x float64) float64 { return f(x) * math.Cos(w*x) })
	if err != nil {
		return 0, err
	}
	return result * 2 / ap.period, nil
}

// Bn estimates the n-th sine coefficient,
// (2/P) * integral of f(x)*sin(2*pi*n*x/P) over one period. n must be >= 1.
func (ap *Approximator) Bn(f Func, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: harmonic order must be greater than or equal to 1, got %d", ErrInvalidParameter, n)
	}
	w := 2 * math.Pi * float64(n) / ap.period
	result, err := ap.integrate(func(x float64) float64 { return f(x) * math.Sin(w*x) })
	if err != nil {
		return 0, err
	}
	return result * 2 / ap.period, nil
}

// Compute estimates the full coefficient set up to the configured degree.
// Each coefficient is an independent integral, so coefficients for orders
// up to min(N, M) are identical between a degree-N and a degree-M run.
func (ap *Approximator) Compute(f Func) (*Series, error) {
	a0, err := ap.A0(f)
	if err != nil {
		return nil, err
	}

	s := &Series{
		A0:     a0,
		An:     make([]float64, ap.degree),
		Bn:     make([]float64, ap.degree),
		Period: ap.period,
	}
	for n := 1; n <= ap.degree; n++ {
		if s.An[n-1], err = ap.An(f, n); err != nil {
			return nil, err
		}
		if s.Bn[n-1], err = ap.Bn(f, n); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Package-level convenience wrappers using default quadrature settings.
// The period is taken as high-low.

// A0 estimates the mean value of f over [low, high].
func A0(f Func, low, high float64) (float64, error) {
	ap, err := New(Params{Period: high - low, LowLim: low, UpperLim: high})
	if err != nil {
		return 0, err
	}
	return ap.A0(f)
}

// An estimates the n-th cosine coefficient of f over [low, high].
func An(f Func, n int, low, high float64) (float64, error) {
	ap, err := New(Params{Period: high - low, LowLim: low, UpperLim: high})
	if err != nil {
		return 0, err
	}
	return ap.An(f, n)
}

// Bn estimates the n-th sine coefficient of f over [low, high].
func Bn(f Func, n int, low, high float64) (float64, error) {
	ap, err := New(Params{Period: high - low, LowLim: low, UpperLim: high})
	if err != nil {
		return 0, err
	}
	return ap.Bn(f, n)
}

// Compute estimates coefficients for f up to the given degree over
// [low, high].
func Compute(f Func, degree int, low, high float64) (*Series, error) {
	ap, err := New(Params{Period: high - low, Degree: degree, LowLim: low, UpperLim: high})
	if err != nil {
		return nil, err
	}
	return ap.Compute(f)
}
