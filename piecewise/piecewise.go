// Package piecewise builds hand-authored piecewise periodic functions
// from constant and linear-ramp segments. A piecewise Func applies its
// own wraparound (x mod Period), so it is valid for any real argument and
// can be handed directly to a Fourier approximator. Gaps between
// segments evaluate to 0.
package piecewise

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Params describes a piecewise periodic function: the period and the
// segments covering (parts of) [0, Period).
type Params struct {
	Period   float64 `yaml:"Period"`
	Segments []Segment
}

// Func is a piecewise periodic function. Construct with New; immutable
// and safe for concurrent use thereafter.
type Func struct {
	period   float64
	segments []Segment // sorted by interval start
}

// New returns a Func with the requested parameters, checking that the
// period is positive and that segments fit within one period without
// overlapping.
func New(params Params) (*Func, error) {
	if params.Period <= 0 {
		return nil, fmt.Errorf("Period must be greater than 0, got %g", params.Period)
	}

	segments := append([]Segment(nil), params.Segments...)
	sort.Slice(segments, func(i, j int) bool {
		lo1, _ := segments[i].Interval()
		lo2, _ := segments[j].Interval()
		return lo1 < lo2
	})

	prevEnd := 0.0
	for _, seg := range segments {
		lo, hi := seg.Interval()
		if lo < prevEnd {
			return nil, fmt.Errorf("segment [%g, %g) overlaps a previous segment", lo, hi)
		}
		if hi > params.Period {
			return nil, fmt.Errorf("segment [%g, %g) extends beyond the period %g", lo, hi, params.Period)
		}
		prevEnd = hi
	}

	return &Func{period: params.Period, segments: segments}, nil
}

// Period returns the period of the function.
func (f *Func) Period() float64 {
	return f.period
}

// Eval returns the function value at x. The argument is reduced modulo
// the period first, so any real x is valid. Positions not covered by a
// segment evaluate to 0.
func (f *Func) Eval(x float64) float64 {
	x = math.Mod(x, f.period)
	if x < 0 {
		x += f.period
	}

	for _, seg := range f.segments {
		lo, hi := seg.Interval()
		if x < lo {
			break
		}
		if x < hi {
			return seg.Eval(x)
		}
	}
	return 0
}

// Breakpoints returns the segment boundaries strictly inside (0, Period),
// sorted and deduplicated. These are the only places the function can
// jump or kink, so an approximator can split its projection integrals at
// them.
func (f *Func) Breakpoints() []float64 {
	pts := make([]float64, 0, 2*len(f.segments))
	for _, seg := range f.segments {
		lo, hi := seg.Interval()
		pts = append(pts, lo, hi)
	}
	sort.Float64s(pts)

	out := pts[:0]
	for _, p := range pts {
		if p <= 0 || p >= f.period {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// errMissingType is returned when a YAML segment entry has no usable
// type field.
var errMissingType = errors.New("segment type field is missing or not a string")
