package animation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/synaptecltd/fourier"
	"github.com/synaptecltd/fourier/piecewise"
	"github.com/synaptecltd/fourier/waveform"
)

// TargetConfig selects the function to approximate: either a named
// waveform from the registry, or a hand-authored piecewise definition.
// Exactly one of Waveform and Piecewise must be set.
type TargetConfig struct {
	Waveform  string            `yaml:"Waveform,omitempty"`  // name in the waveform registry
	Amplitude float64           `yaml:"Amplitude,omitempty"` // amplitude for registry waveforms, default 1
	Piecewise *piecewise.Params `yaml:"Piecewise,omitempty"`
}

// Config describes one full render job for loading from a yaml file.
type Config struct {
	Sequence SequenceParams `yaml:"Sequence"`
	Target   TargetConfig   `yaml:"Target"`
	Render   RenderParams   `yaml:"Render"`
}

// LoadConfig reads and parses a yaml render job description.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// BuildTarget resolves the configured target into a callable function.
// Piecewise targets also contribute their jump locations to the sequence
// parameters, so the projection integrals avoid integrating across
// discontinuities.
func (c *Config) BuildTarget() (fourier.Func, error) {
	switch {
	case c.Target.Waveform != "" && c.Target.Piecewise != nil:
		return nil, errors.New("config must set only one of Target.Waveform and Target.Piecewise")

	case c.Target.Waveform != "":
		w, err := waveform.GetWaveformFromName(c.Target.Waveform)
		if err != nil {
			return nil, err
		}
		amplitude := c.Target.Amplitude
		if amplitude == 0 {
			amplitude = 1
		}
		period := c.Sequence.Period
		return func(x float64) float64 { return w(x, amplitude, period) }, nil

	case c.Target.Piecewise != nil:
		pf, err := piecewise.New(*c.Target.Piecewise)
		if err != nil {
			return nil, err
		}
		if c.Sequence.Period == 0 {
			c.Sequence.Period = pf.Period()
		}
		if pf.Period() != c.Sequence.Period {
			return nil, fmt.Errorf("piecewise period %g does not match sequence period %g", pf.Period(), c.Sequence.Period)
		}
		if len(c.Sequence.Breakpoints) == 0 {
			c.Sequence.Breakpoints = pf.Breakpoints()
		}
		return pf.Eval, nil

	default:
		return nil, errors.New("config sets no target function")
	}
}

// NewSequenceFromConfig builds the ready-to-render sequence described by
// a config.
func NewSequenceFromConfig(cfg *Config) (*Sequence, error) {
	target, err := cfg.BuildTarget()
	if err != nil {
		return nil, err
	}
	return NewSequence(target, cfg.Sequence)
}
