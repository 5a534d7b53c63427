package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/input"
	"github.com/SeamusWaldron/cubelet/pkg/types"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 16*time.Millisecond, cfg.Animation.FrameInterval)
	assert.Equal(t, 5.0, cfg.Animation.StepDegrees)
	assert.True(t, cfg.View.AutoSpin)
	assert.False(t, cfg.SliceTurns)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
animation:
  step_degrees: 10
  frame_interval: 33ms
view:
  auto_spin: false
slice_turns: true
bindings:
  - key: "x"
    axis: x
    layer: 0
    direction: ccw
`))
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Animation.StepDegrees)
	assert.Equal(t, 33*time.Millisecond, cfg.Animation.FrameInterval)
	assert.False(t, cfg.View.AutoSpin)
	assert.Equal(t, 5.0, cfg.View.TiltStep, "unset values keep their defaults")
	assert.True(t, cfg.History)

	cmd, ok := cfg.Keymap().Lookup("x")
	require.True(t, ok)
	assert.Equal(t, input.TurnCommand(types.AxisX, 0, types.CounterClockwise), cmd)

	_, ok = cfg.Keymap().Lookup("m")
	assert.True(t, ok, "slice keys are bound when slices are enabled")
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero step", "animation:\n  step_degrees: 0\n"},
		{"step above quarter turn", "animation:\n  step_degrees: 120\n"},
		{"negative interval", "animation:\n  frame_interval: -1s\n"},
		{"negative tilt", "view:\n  tilt_step: -2\n"},
		{"bad axis", "bindings:\n  - {key: q, axis: w, layer: 1, direction: cw}\n"},
		{"bad layer", "bindings:\n  - {key: q, axis: x, layer: 3, direction: cw}\n"},
		{"bad direction", "bindings:\n  - {key: q, axis: x, layer: 1, direction: up}\n"},
		{"missing key", "bindings:\n  - {axis: x, layer: 1, direction: cw}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSliceBindingsFollowSliceTurns(t *testing.T) {
	cfg, err := Parse([]byte("bindings:\n  - {key: x, axis: x, layer: 0, direction: cw}\n"))
	require.NoError(t, err, "slice bindings are valid even while slices are off")

	_, ok := cfg.Keymap().Lookup("x")
	assert.False(t, ok)

	cfg.SliceTurns = true
	cmd, ok := cfg.Keymap().Lookup("x")
	require.True(t, ok)
	assert.Equal(t, input.TurnCommand(types.AxisX, 0, types.Clockwise), cmd)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("animation: [oops"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.History)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit missing file is an error")
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestOptionsConfigureController(t *testing.T) {
	cfg := Default()
	cfg.SliceTurns = true
	cfg.View.AutoSpin = false

	ctrl := cubelet.New(cfg.Options()...)
	assert.True(t, ctrl.SliceTurns())
	assert.False(t, ctrl.Frame().View.Spinning)
	require.NoError(t, ctrl.Turn(types.Request{Axis: types.AxisY, Layer: 0, Direction: types.Clockwise}))
}
