package types

import "fmt"

// Color represents a sticker color.
// The zero value None marks a face slot that points into the cube.
type Color byte

const (
	None   Color = 0
	Red    Color = 1 // Front face when solved
	Orange Color = 2 // Back face when solved
	White  Color = 3 // Top face when solved
	Yellow Color = 4 // Bottom face when solved
	Green  Color = 5 // Left face when solved
	Blue   Color = 6 // Right face when solved
)

// Colors lists the six sticker colors (None excluded).
var Colors = [6]Color{Red, Orange, White, Yellow, Green, Blue}

func (c Color) String() string {
	switch c {
	case None:
		return "."
	case Red:
		return "R"
	case Orange:
		return "O"
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// FaceSlot identifies one of the six sticker slots of a cubelet.
type FaceSlot int

const (
	Front  FaceSlot = 0 // +Z
	Back   FaceSlot = 1 // -Z
	Top    FaceSlot = 2 // +Y
	Bottom FaceSlot = 3 // -Y
	Left   FaceSlot = 4 // -X
	Right  FaceSlot = 5 // +X
)

// FaceSlots lists every slot in index order.
var FaceSlots = [6]FaceSlot{Front, Back, Top, Bottom, Left, Right}

func (s FaceSlot) String() string {
	switch s {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "?"
	}
}

// Axis returns the axis the slot's normal lies on.
func (s FaceSlot) Axis() Axis {
	switch s {
	case Left, Right:
		return AxisX
	case Top, Bottom:
		return AxisY
	default:
		return AxisZ
	}
}

// Sign returns +1 for Front, Top and Right, -1 otherwise.
func (s FaceSlot) Sign() int {
	switch s {
	case Front, Top, Right:
		return 1
	default:
		return -1
	}
}

// Normal returns the outward unit vector of the slot.
func (s FaceSlot) Normal() Position {
	return Position{}.With(s.Axis(), s.Sign())
}

// SolvedColor returns the sticker color a slot carries on a fresh cube.
func (s FaceSlot) SolvedColor() Color {
	switch s {
	case Front:
		return Red
	case Back:
		return Orange
	case Top:
		return White
	case Bottom:
		return Yellow
	case Left:
		return Green
	case Right:
		return Blue
	default:
		return None
	}
}

// Faces holds the color of each face slot, indexed by FaceSlot.
type Faces [6]Color

// Position is a lattice coordinate with each component in {-1, 0, 1}.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Coord returns the component along axis a.
func (p Position) Coord(a Axis) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// With returns a copy of p with the component along a set to v.
func (p Position) With(a Axis, v int) Position {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	default:
		p.Z = v
	}
	return p
}

// IsCore reports whether p is the hidden center of the cube.
func (p Position) IsCore() bool {
	return p == Position{}
}

// Valid reports whether p is one of the 26 cubelet positions.
func (p Position) Valid() bool {
	for _, a := range Axes {
		if v := p.Coord(a); v < -1 || v > 1 {
			return false
		}
	}
	return !p.IsCore()
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}
