package piecewise

import (
	"errors"
)

// Segment is the interface for all segment types of a piecewise function.
type Segment interface {
	Eval(x float64) float64     // Returns the segment value at x, which must lie within the segment interval
	Interval() (lo, hi float64) // Returns the half-open interval [lo, hi) covered by the segment
	TypeAsString() string       // Returns the segment type as a string
}

// A segment holding a single constant value.
type constantSegment struct {
	segmentBase

	Value float64 // value over the whole interval
}

// A segment ramping linearly between two values.
type rampSegment struct {
	segmentBase

	From float64 // value at the start of the interval
	To   float64 // value at the end of the interval
}

// segmentBase is the base struct for all segment types.
type segmentBase struct {
	typeName string  // the type of segment
	start    float64 // start of the covered interval
	end      float64 // end of the covered interval, exclusive
}

// Returns the type of segment as a string.
func (s *segmentBase) TypeAsString() string {
	return s.typeName
}

// Returns the half-open interval [lo, hi) covered by the segment.
func (s *segmentBase) Interval() (lo, hi float64) {
	return s.start, s.end
}

// Sets the covered interval if end > start >= 0.
func (s *segmentBase) setInterval(start, end float64) error {
	if start < 0 {
		return errors.New("Start must be greater than or equal to 0")
	}
	if end <= start {
		return errors.New("End must be greater than Start")
	}
	s.start = start
	s.end = end
	return nil
}

// Parameters to use for a constant segment.
type ConstantParams struct {
	Start float64 `yaml:"Start" mapstructure:"Start"` // start of the covered interval
	End   float64 `yaml:"End" mapstructure:"End"`     // end of the covered interval, exclusive
	Value float64 `yaml:"Value" mapstructure:"Value"` // value over the whole interval
}

// Returns a constantSegment pointer with the requested parameters,
// checking for invalid values.
func NewConstant(params ConstantParams) (*constantSegment, error) {
	seg := &constantSegment{}
	seg.typeName = "constant"
	seg.Value = params.Value

	if err := seg.setInterval(params.Start, params.End); err != nil {
		return nil, err
	}
	return seg, nil
}

func (s *constantSegment) Eval(_ float64) float64 {
	return s.Value
}

// Initialise the internal fields of constantSegment when it is
// unmarshalled from yaml.
func (s *constantSegment) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params ConstantParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	seg, err := NewConstant(params)
	if err != nil {
		return err
	}

	*s = *seg
	return nil
}

// Parameters to use for a ramp segment.
type RampParams struct {
	Start float64 `yaml:"Start" mapstructure:"Start"` // start of the covered interval
	End   float64 `yaml:"End" mapstructure:"End"`     // end of the covered interval, exclusive
	From  float64 `yaml:"From" mapstructure:"From"`   // value at the start of the interval
	To    float64 `yaml:"To" mapstructure:"To"`       // value at the end of the interval
}

// Returns a rampSegment pointer with the requested parameters, checking
// for invalid values.
func NewRamp(params RampParams) (*rampSegment, error) {
	seg := &rampSegment{}
	seg.typeName = "ramp"
	seg.From = params.From
	seg.To = params.To

	if err := seg.setInterval(params.Start, params.End); err != nil {
		return nil, err
	}
	return seg, nil
}

// Eval interpolates linearly between From at the interval start and To at
// the interval end.
func (s *rampSegment) Eval(x float64) float64 {
	t := (x - s.start) / (s.end - s.start)
	return s.From + t*(s.To-s.From)
}

// Initialise the internal fields of rampSegment when it is unmarshalled
// from yaml.
func (s *rampSegment) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params RampParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	seg, err := NewRamp(params)
	if err != nil {
		return err
	}

	*s = *seg
	return nil
}
