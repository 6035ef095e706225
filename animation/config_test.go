package animation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptecltd/fourier/animation"
)

const pieceConfigYaml = `
Sequence:
  Degrees: [1, 5, 20, 100]
  XIncrement: 0.5
Target:
  Piecewise:
    Period: 400
    Segments:
      - type: ramp
        Start: 50
        End: 100
        From: 100
        To: 0
      - type: constant
        Start: 100
        End: 150
        Value: 100
Render:
  Width: 640
  Height: 360
  Counter: true
`

const waveConfigYaml = `
Sequence:
  Period: 2
  Degrees: [1, 3]
Target:
  Waveform: square
  Amplitude: 3
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigPiecewiseTarget(t *testing.T) {
	cfg, err := animation.LoadConfig(writeConfig(t, pieceConfigYaml))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 5, 20, 100}, cfg.Sequence.Degrees)
	assert.Equal(t, 0.5, cfg.Sequence.XIncrement)
	assert.Equal(t, 640, cfg.Render.Width)

	target, err := cfg.BuildTarget()
	require.NoError(t, err)

	// The piecewise target fills in the period and its jump locations.
	assert.Equal(t, 400.0, cfg.Sequence.Period)
	assert.Equal(t, []float64{50, 100, 150}, cfg.Sequence.Breakpoints)
	assert.InDelta(t, 100.0, target(125), 1e-9)
	assert.InDelta(t, 50.0, target(75), 1e-9)
}

func TestLoadConfigWaveformTarget(t *testing.T) {
	cfg, err := animation.LoadConfig(writeConfig(t, waveConfigYaml))
	require.NoError(t, err)

	target, err := cfg.BuildTarget()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, target(0.5), 1e-9)
	assert.InDelta(t, -3.0, target(1.5), 1e-9)
}

func TestBuildTargetRejectsAmbiguousConfig(t *testing.T) {
	ambiguous := `
Sequence:
  Period: 400
Target:
  Waveform: sine
  Piecewise:
    Period: 400
    Segments:
      - type: constant
        Start: 0
        End: 10
        Value: 1
`
	loaded, err := animation.LoadConfig(writeConfig(t, ambiguous))
	require.NoError(t, err)
	_, err = loaded.BuildTarget()
	assert.ErrorContains(t, err, "only one of")
}

func TestBuildTargetRejectsEmptyConfig(t *testing.T) {
	cfg := &animation.Config{Sequence: animation.SequenceParams{Period: 1}}
	_, err := cfg.BuildTarget()
	assert.ErrorContains(t, err, "no target")
}

func TestBuildTargetRejectsPeriodMismatch(t *testing.T) {
	mismatch := `
Sequence:
  Period: 100
Target:
  Piecewise:
    Period: 400
    Segments:
      - type: constant
        Start: 0
        End: 10
        Value: 1
`
	cfg, err := animation.LoadConfig(writeConfig(t, mismatch))
	require.NoError(t, err)
	_, err = cfg.BuildTarget()
	assert.ErrorContains(t, err, "does not match")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := animation.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSequenceFromConfigEndToEnd(t *testing.T) {
	cfg, err := animation.LoadConfig(writeConfig(t, waveConfigYaml))
	require.NoError(t, err)

	seq, err := animation.NewSequenceFromConfig(cfg)
	require.NoError(t, err)

	frames, err := seq.Frames()
	require.NoError(t, err)
	assert.Len(t, frames, 2)
	assert.Equal(t, 1, frames[0].Degree)
	assert.Equal(t, 3, frames[1].Degree)
}
