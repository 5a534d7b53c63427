package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubelet/pkg/types"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors maps sticker colors to 256-color terminal codes.
var stickerColors = map[types.Color]lipgloss.Color{
	types.None:   lipgloss.Color("0"),
	types.Red:    lipgloss.Color("196"),
	types.Orange: lipgloss.Color("208"),
	types.White:  lipgloss.Color("255"),
	types.Yellow: lipgloss.Color("226"),
	types.Green:  lipgloss.Color("34"),
	types.Blue:   lipgloss.Color("21"),
}

// stickerStyle returns the style for one sticker cell.
func stickerStyle(c types.Color, turning bool) lipgloss.Style {
	s := lipgloss.NewStyle().Background(stickerColors[c])
	if turning {
		s = s.Foreground(lipgloss.Color("0")).Bold(true)
	}
	return s
}
