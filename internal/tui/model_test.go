package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/input"
	"github.com/SeamusWaldron/cubelet/internal/logging"
)

func newTestModel(opts ...cubelet.Option) (*Model, *cubelet.Controller) {
	ctrl := cubelet.New(append([]cubelet.Option{cubelet.WithAutoSpin(false)}, opts...)...)
	return New(ctrl, input.Default(5, false), time.Millisecond, logging.New(io.Discard, logging.Level(false))), ctrl
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyStartsAnimatedTurn(t *testing.T) {
	m, ctrl := newTestModel()

	_, cmd := m.Update(key("f"))
	assert.Nil(t, cmd)
	assert.True(t, ctrl.Animating())
	assert.Contains(t, m.View(), "Turning F")

	for i := 0; i < 18; i++ {
		_, cmd = m.Update(frameMsg(time.Now()))
		require.NotNil(t, cmd, "frames keep ticking")
	}

	assert.False(t, ctrl.Busy())
	assert.Len(t, ctrl.History(), 1)
	assert.Equal(t, "Turned F", m.status)
	assert.Contains(t, m.View(), "Moves: 1")
}

func TestKeyWhileTurning(t *testing.T) {
	m, ctrl := newTestModel()

	m.Update(key("r"))
	m.Update(key("u"))
	assert.Equal(t, "Wait for the current turn to finish", m.status)
	assert.False(t, m.failed)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, ctrl.Busy())
	assert.Equal(t, "Turn cancelled", m.status)
}

func TestSpinAndTiltKeys(t *testing.T) {
	m, ctrl := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, ctrl.Frame().View.Spinning)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.InDelta(t, 355, ctrl.Frame().View.RotX, 1e-9)
}

func TestUnboundKeyIgnored(t *testing.T) {
	m, ctrl := newTestModel()
	m.Update(key("z"))
	assert.False(t, ctrl.Busy())
	assert.Empty(t, m.status)
}

func TestResetKey(t *testing.T) {
	m, ctrl := newTestModel()
	require.NoError(t, ctrl.Turn(cubelet.Right))
	require.False(t, ctrl.IsSolved())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, ctrl.IsSolved())
	assert.Equal(t, "Cube reset", m.status)
	assert.Contains(t, m.View(), "Solved")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "Bye.\n", m.View())
}

func TestRenderNetMarksTurningLayer(t *testing.T) {
	m, ctrl := newTestModel()
	require.NoError(t, ctrl.Begin(cubelet.Front))

	net := renderNet(ctrl.Frame())
	// Front face (9) plus one edge row or column on each of its four neighbours.
	assert.Equal(t, 9+4*3, strings.Count(net, "··"))

	ctrl.Cancel()
	assert.NotContains(t, m.View(), "··")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[    ]", progressBar(0, 4))
	assert.Equal(t, "[##  ]", progressBar(0.5, 4))
	assert.Equal(t, "[####]", progressBar(1.5, 4))
}
