// Package tui draws the cube in the terminal and feeds key presses to a
// controller.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/cube"
	"github.com/SeamusWaldron/cubelet/internal/input"
	"github.com/SeamusWaldron/cubelet/pkg/types"
)

// Model is the bubbletea model of the interactive cube.
type Model struct {
	ctrl     *cubelet.Controller
	keys     *input.Keymap
	interval time.Duration
	logger   *slog.Logger

	status   string
	failed   bool
	quitting bool
}

// New creates a model driving ctrl with keys, ticking every interval.
func New(ctrl *cubelet.Controller, keys *input.Keymap, interval time.Duration, logger *slog.Logger) *Model {
	return &Model{
		ctrl:     ctrl,
		keys:     keys,
		interval: interval,
		logger:   logger,
	}
}

type frameMsg time.Time

// Init starts the frame clock.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles key presses and frame ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+r":
			if err := m.ctrl.Reset(); err != nil {
				m.setError(err)
			} else {
				m.setStatus("Cube reset")
			}
			return m, nil
		}
		m.handleKey(msg.String())

	case frameMsg:
		res, err := m.ctrl.Tick()
		if err != nil {
			m.setError(err)
		} else if res != nil {
			m.setStatus("Turned " + res.Request.Notation())
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) handleKey(key string) {
	cmd, ok := m.keys.Lookup(key)
	if !ok {
		return
	}

	err := input.Dispatch(m.ctrl, cmd)
	switch {
	case errors.Is(err, cubelet.ErrTurnInFlight):
		m.setStatus("Wait for the current turn to finish")
	case err != nil:
		m.logger.Error("command failed", "key", key, "error", err)
		m.setError(err)
	case cmd.Action == input.ActionTurn:
		m.setStatus("Turning " + cmd.Turn.Notation())
	case cmd.Action == input.ActionCancel:
		m.setStatus("Turn cancelled")
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.failed = true
}

// View renders the frame.
func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	f := m.ctrl.Frame()
	var b strings.Builder

	b.WriteString(titleStyle.Render("3D Rubik's Cube"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(f))
	b.WriteString("\n")

	spin := "off"
	if f.View.Spinning {
		spin = "on"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("View: %3.0f° x %3.0f°  spin %s", f.View.RotX, f.View.RotY, spin)))
	b.WriteString("\n")

	if f.Turn != nil {
		b.WriteString(turnStyle.Render(fmt.Sprintf("Turning %-3s %s %2.0f°",
			f.Turn.Request.Notation(), progressBar(f.Turn.Progress(), 18), f.Turn.Angle)))
	} else if m.ctrl.IsSolved() {
		b.WriteString(turnStyle.Render("Solved"))
	} else {
		b.WriteString(statusStyle.Render("Ready"))
	}
	b.WriteString("\n")

	history := m.ctrl.History()
	b.WriteString(fmt.Sprintf("Moves: %d", len(history)))
	if len(history) > 0 {
		start := 0
		prefix := ""
		if len(history) > 20 {
			start = len(history) - 20
			prefix = "... "
		}
		b.WriteString("  ")
		b.WriteString(moveStyle.Render(prefix + types.FormatRequests(history[start:])))
	}
	b.WriteString("\n")

	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u/d/r/l/f/b=turn (shift=reverse)  space=spin  arrows=tilt  esc=cancel  ctrl+r=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// renderNet draws the unfolded net. Stickers of a turning layer are marked.
func renderNet(f cubelet.Frame) string {
	var b strings.Builder

	for band, faces := range cube.NetRows {
		for row := 0; row < 3; row++ {
			if band != 1 {
				b.WriteString(strings.Repeat(" ", 7))
			}
			for _, face := range faces {
				stickers := cube.FaceStickers(f.Cubelets, face)
				for col := 0; col < 3; col++ {
					s := stickers[row*3+col]
					turning := f.Turn != nil && f.Turn.Contains(s.Position)
					cell := "  "
					if turning {
						cell = "··"
					}
					b.WriteString(stickerStyle(s.Color, turning).Render(cell))
				}
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func progressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(" ", width-filled) + "]"
}

// Run starts the interactive program and blocks until it exits.
func Run(ctrl *cubelet.Controller, keys *input.Keymap, interval time.Duration, logger *slog.Logger) error {
	p := tea.NewProgram(New(ctrl, keys, interval, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
