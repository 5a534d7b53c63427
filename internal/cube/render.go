package cube

import (
	"strings"

	"github.com/SeamusWaldron/cubelet/pkg/types"
)

// Sticker is one visible facelet of an outer face.
type Sticker struct {
	Position types.Position // cubelet carrying the sticker
	Color    types.Color
}

// FaceStickers returns the stickers of an outer face as seen from outside,
// indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Side faces are viewed upright; Top has its bottom row against Front and
// Bottom has its top row against Front, as in the unfolded net.
func FaceStickers(cubelets []Cubelet, slot types.FaceSlot) [9]Sticker {
	var out [9]Sticker
	for _, cl := range cubelets {
		p := cl.Position
		if p.Coord(slot.Axis()) != slot.Sign() {
			continue
		}
		row, col := faceCell(slot, p)
		out[row*3+col] = Sticker{Position: p, Color: cl.Faces[slot]}
	}
	return out
}

// FaceGrid returns only the colors of FaceStickers.
func FaceGrid(cubelets []Cubelet, slot types.FaceSlot) [9]types.Color {
	var out [9]types.Color
	for i, s := range FaceStickers(cubelets, slot) {
		out[i] = s.Color
	}
	return out
}

// faceCell maps a position on an outer face to its row and column.
func faceCell(slot types.FaceSlot, p types.Position) (row, col int) {
	switch slot {
	case types.Front:
		return 1 - p.Y, p.X + 1
	case types.Back:
		return 1 - p.Y, 1 - p.X
	case types.Right:
		return 1 - p.Y, 1 - p.Z
	case types.Left:
		return 1 - p.Y, p.Z + 1
	case types.Top:
		return p.Z + 1, p.X + 1
	default: // Bottom
		return 1 - p.Z, p.X + 1
	}
}

// NetRows lists the faces of each band of the unfolded net.
var NetRows = [3][]types.FaceSlot{
	{types.Top},
	{types.Left, types.Front, types.Right, types.Back},
	{types.Bottom},
}

// Net renders cubelets as an unfolded net:
//
//	      T
//	L F R B
//	      D
func Net(cubelets []Cubelet) string {
	var b strings.Builder

	for band, faces := range NetRows {
		for row := 0; row < 3; row++ {
			if band != 1 {
				b.WriteString("      ")
			}
			for _, face := range faces {
				grid := FaceGrid(cubelets, face)
				for col := 0; col < 3; col++ {
					b.WriteString(grid[row*3+col].String())
					b.WriteString(" ")
				}
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// String returns a text representation of the cube.
func (c *Cube) String() string {
	return Net(c.Cubelets())
}
