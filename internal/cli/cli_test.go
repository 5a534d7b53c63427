package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/config"
	"github.com/SeamusWaldron/cubelet/internal/cube"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	configPath, verbose, logFile = "", false, ""
	applySlices, applyJSON, playSlices, keysRaw = false, false, false, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestApplySexyMoveSixTimes(t *testing.T) {
	out, err := run(t, "apply", strings.Repeat("ruRU", 6))
	require.NoError(t, err)

	assert.Contains(t, out, "Moves: 24")
	assert.Contains(t, out, "Verify: ok")
	assert.Contains(t, out, "Solved: yes")
}

func TestApplyPrintsNet(t *testing.T) {
	out, err := run(t, "apply", "f")
	require.NoError(t, err)

	assert.Contains(t, out, "Moves: 1  F\n")
	assert.Contains(t, out, "Solved: no")
	assert.True(t, strings.HasPrefix(out, "      "), "net starts with the indented top face")
}

func TestApplyRejectsUnboundKeys(t *testing.T) {
	_, err := run(t, "apply", "x")
	assert.ErrorIs(t, err, cubelet.ErrInvalidTurnRequest)

	_, err = run(t, "apply", " ")
	assert.ErrorIs(t, err, cubelet.ErrInvalidTurnRequest, "space toggles spin and is not a turn")

	_, err = run(t, "apply", "m")
	assert.ErrorIs(t, err, cubelet.ErrInvalidTurnRequest)
}

func TestApplySlices(t *testing.T) {
	out, err := run(t, "apply", "--slices", "m")
	require.NoError(t, err)
	assert.Contains(t, out, "Moves: 1  x0\n")
	assert.Contains(t, out, "Verify: ok")
}

func TestApplyShowsSimplified(t *testing.T) {
	out, err := run(t, "apply", "rrruU")
	require.NoError(t, err)
	assert.Contains(t, out, "Moves: 5  R R R U U'\n")
	assert.Contains(t, out, "Simplified: R'\n")
}

func TestApplySlicesFlagEnablesConfiguredSliceBinding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bindings:\n  - {key: x, axis: y, layer: 0, direction: ccw}\n"), 0o644))

	_, err := run(t, "--config", path, "apply", "x")
	assert.ErrorIs(t, err, cubelet.ErrInvalidTurnRequest)

	out, err := run(t, "--config", path, "apply", "--slices", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "Moves: 1  y0'\n")
}

func TestApplyJSON(t *testing.T) {
	out, err := run(t, "apply", "--json", "r")
	require.NoError(t, err)

	var cubelets []cube.Cubelet
	require.NoError(t, json.Unmarshal([]byte(out), &cubelets))
	assert.Len(t, cubelets, cube.Count)
}

func TestKeysRaw(t *testing.T) {
	out, err := run(t, "keys", "--raw")
	require.NoError(t, err)

	assert.Contains(t, out, "| `f` | Rotate Front layer clockwise |")
	assert.Contains(t, out, "| `U` | Rotate Top layer counter-clockwise |")
	assert.Contains(t, out, "| `space` | Pause/unpause auto-spinning |")
	assert.Contains(t, out, "| `q` | Quit |")
}

func TestKeysRendered(t *testing.T) {
	out, err := run(t, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "Rotate Front layer clockwise")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("animation:\n  step_degrees: 0\n"), 0o644))

	_, err := run(t, "--config", path, "apply", "f")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubelet.log")

	_, err := run(t, "--log-file", path, "--verbose", "apply", "f")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "turn committed")
}
