// Package animation produces the frames of a Fourier approximation
// converging: a schedule of truncation degrees is swept over a fixed
// target function, and each frame holds the sampled partial-sum curve
// for one degree. Rendering writes each frame as a PNG image; video
// assembly, timing and playback are left to external tooling.
package animation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/synaptecltd/fourier"
	"github.com/synaptecltd/fourier/quadrature"
)

// DefaultDegrees is the degree schedule used when none is configured:
// every degree up to 5 to show the coarse shape forming, then strides of
// five towards the final approximation.
var DefaultDegrees = []int{1, 2, 3, 4, 5, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 95, 100}

// DefaultXIncrement is the default sampling stride along the x axis.
const DefaultXIncrement = 0.1

// SequenceParams configures a Sequence.
type SequenceParams struct {
	Period     float64 `yaml:"Period"`     // period of the target function, must be > 0
	Degrees    []int   `yaml:"Degrees"`    // truncation degree per frame, ascending; empty selects DefaultDegrees
	XIncrement float64 `yaml:"XIncrement"` // sampling stride along x, must be > 0; 0 selects DefaultXIncrement

	// Known discontinuity locations of the target, forwarded to the
	// approximator.
	Breakpoints []float64 `yaml:"Breakpoints,omitempty,flow"`

	Quadrature quadrature.Params `yaml:"Quadrature,omitempty"`
}

// Frame is one sampled partial-sum curve.
type Frame struct {
	Degree int       // truncation degree of the partial sum
	X, Y   []float64 // sampled curve over one period
}

// Sequence owns one render job: a target function, a degree schedule and
// the coefficient set shared by every frame. Construct with NewSequence.
type Sequence struct {
	id     uuid.UUID
	target fourier.Func

	period     float64
	degrees    []int
	xIncrement float64

	approximator *fourier.Approximator
	series       *fourier.Series // computed once at the final degree
}

// NewSequence returns a Sequence for the given target with the requested
// parameters, checking for invalid values.
func NewSequence(target fourier.Func, params SequenceParams) (*Sequence, error) {
	if target == nil {
		return nil, errors.New("target function must not be nil")
	}

	degrees := params.Degrees
	if len(degrees) == 0 {
		degrees = DefaultDegrees
	}
	maxDegree := 0
	for i, d := range degrees {
		if d < 0 {
			return nil, fmt.Errorf("degree schedule entries must be greater than or equal to 0, got %d", d)
		}
		if i > 0 && d <= degrees[i-1] {
			return nil, errors.New("degree schedule must be strictly ascending")
		}
		if d > maxDegree {
			maxDegree = d
		}
	}

	xIncrement := params.XIncrement
	if xIncrement == 0 {
		xIncrement = DefaultXIncrement
	}
	if xIncrement < 0 {
		return nil, fmt.Errorf("XIncrement must be greater than 0, got %g", xIncrement)
	}

	approximator, err := fourier.New(fourier.Params{
		Period:      params.Period,
		Degree:      maxDegree,
		Breakpoints: params.Breakpoints,
		Quadrature:  params.Quadrature,
	})
	if err != nil {
		return nil, err
	}

	return &Sequence{
		id:           uuid.New(),
		target:       target,
		period:       params.Period,
		degrees:      append([]int(nil), degrees...),
		xIncrement:   xIncrement,
		approximator: approximator,
	}, nil
}

// ID returns the identity of this render job. It is embedded in frame
// file names so concurrent jobs writing to one directory cannot collide.
func (s *Sequence) ID() uuid.UUID {
	return s.id
}

// Degrees returns the degree schedule, one entry per frame.
func (s *Sequence) Degrees() []int {
	return append([]int(nil), s.degrees...)
}

// Series returns the coefficient set shared by all frames, computing it
// on first use. The set is computed once at the final scheduled degree;
// earlier frames evaluate partial sums of the same set, since
// coefficients do not depend on the truncation degree.
func (s *Sequence) Series() (*fourier.Series, error) {
	if s.series != nil {
		return s.series, nil
	}

	series, err := s.approximator.Compute(s.target)
	if err != nil {
		return nil, err
	}
	s.series = series
	return s.series, nil
}

// samplesPerFrame returns the number of samples covering one period at
// the configured stride.
func (s *Sequence) samplesPerFrame() int {
	// the small epsilon keeps strides like 0.1 from losing their last
	// sample to float rounding
	n := int(s.period/s.xIncrement+1e-9) + 1
	if n < 2 {
		n = 2
	}
	return n
}

// Frames produces the full animation: one frame per scheduled degree,
// each sampling the partial sum over [0, Period].
func (s *Sequence) Frames() ([]Frame, error) {
	series, err := s.Series()
	if err != nil {
		return nil, err
	}

	count := s.samplesPerFrame()
	frames := make([]Frame, len(s.degrees))
	for i, degree := range s.degrees {
		xs, ys := series.SampleDegree(0, s.period, count, degree)
		frames[i] = Frame{Degree: degree, X: xs, Y: ys}
	}
	return frames, nil
}

// TargetFrame samples the target function itself on the same grid as the
// approximation frames, for drawing the reference curve alongside.
func (s *Sequence) TargetFrame() Frame {
	count := s.samplesPerFrame()
	xs := make([]float64, count)
	ys := make([]float64, count)
	step := s.period / float64(count-1)
	for i := range xs {
		xs[i] = float64(i) * step
		ys[i] = s.target(xs[i])
	}
	return Frame{X: xs, Y: ys}
}
