// Package types contains shared type definitions for the cubelet engine.
package types

import (
	"errors"
	"strings"
)

// ErrInvalidNotation is returned when an axis or direction name cannot be parsed.
var ErrInvalidNotation = errors.New("types: invalid turn notation")

// Axis is one of the three lattice axes.
type Axis int

const (
	AxisX Axis = 0 // Left (-1) to Right (+1)
	AxisY Axis = 1 // Bottom (-1) to Top (+1)
	AxisZ Axis = 2 // Back (-1) to Front (+1)
)

// Axes lists every axis in index order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Valid reports whether a is one of X, Y or Z.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return 0, ErrInvalidNotation
	}
}

// Direction is the rotation sense of a quarter turn.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Valid reports whether d is Clockwise or CounterClockwise.
func (d Direction) Valid() bool {
	return d == Clockwise || d == CounterClockwise
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "?"
	}
}

// ParseDirection parses "cw"/"clockwise" or "ccw"/"counterclockwise".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cw", "clockwise":
		return Clockwise, nil
	case "ccw", "counterclockwise", "counter-clockwise":
		return CounterClockwise, nil
	default:
		return 0, ErrInvalidNotation
	}
}

// Request selects one quarter turn: the layer at coordinate Layer along Axis,
// turned in Direction as seen from outside that layer.
type Request struct {
	Axis      Axis      `json:"axis"`
	Layer     int       `json:"layer"`
	Direction Direction `json:"direction"`
}

// Inverse returns the request that undoes r.
func (r Request) Inverse() Request {
	inv := r
	inv.Direction = r.Direction.Reverse()
	return inv
}

// faceLetters maps (axis, layer+1) to the face letter of an outer layer.
var faceLetters = [3][3]string{
	AxisX: {"L", "", "R"},
	AxisY: {"D", "", "U"},
	AxisZ: {"B", "", "F"},
}

// Notation returns a short display form for this request.
// Outer layers use face letters: F, F', B, B', ...
// Middle slices use the axis name followed by 0: z0, z0'.
func (r Request) Notation() string {
	var name string
	if r.Axis.Valid() && r.Layer >= -1 && r.Layer <= 1 {
		name = faceLetters[r.Axis][r.Layer+1]
	}
	if name == "" {
		name = r.Axis.String() + "0"
		if r.Layer != 0 {
			name = r.Axis.String() + "?"
		}
	}
	if r.Direction == CounterClockwise {
		name += "'"
	}
	return name
}

// String returns the notation string (alias for Notation).
func (r Request) String() string {
	return r.Notation()
}

// FormatRequests formats a slice of requests as a space-separated notation string.
func FormatRequests(reqs []Request) string {
	if len(reqs) == 0 {
		return ""
	}

	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = r.Notation()
	}

	return strings.Join(parts, " ")
}
