package cube

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubelet/pkg/types"
)

// ErrInvariant is returned by Verify when the cube state is not one a real cube can reach.
var ErrInvariant = errors.New("cube: invariant violated")

// Verify checks the structural invariants of the cube:
//   - 26 distinct valid positions
//   - a slot holds a color exactly when it faces outwards
//   - every cubelet is a rigid rotation of its solved piece, so stickers
//     never move between cubelets or mirror around one
//   - 9 stickers of each color
//   - every layer holds the expected number of cubelets
func (c *Cube) Verify() error {
	cubelets := c.Cubelets()

	seen := make(map[types.Position]int, Count)
	for _, cl := range cubelets {
		if !cl.Position.Valid() {
			return fmt.Errorf("%w: cubelet %d at %s", ErrInvariant, cl.Index, cl.Position)
		}
		if other, ok := seen[cl.Position]; ok {
			return fmt.Errorf("%w: cubelets %d and %d share %s", ErrInvariant, other, cl.Index, cl.Position)
		}
		seen[cl.Position] = cl.Index

		for _, s := range types.FaceSlots {
			outer := cl.Position.Coord(s.Axis()) == s.Sign()
			if outer != (cl.Faces[s] != types.None) {
				return fmt.Errorf("%w: cubelet %d at %s has %s on %s",
					ErrInvariant, cl.Index, cl.Position, cl.Faces[s], s)
			}
		}

		if !rigidlyMoved(solved[cl.Index], cl) {
			return fmt.Errorf("%w: cubelet %d at %s carries %v, not a rotation of its piece %v",
				ErrInvariant, cl.Index, cl.Position, cl.Faces, solved[cl.Index].Faces)
		}
	}

	counts := c.ColorCounts()
	for _, color := range types.Colors {
		if counts[color] != LayerSize {
			return fmt.Errorf("%w: %d %s stickers", ErrInvariant, counts[color], color)
		}
	}

	for _, a := range types.Axes {
		for layer := -1; layer <= 1; layer++ {
			if n := len(c.Members(a, layer)); n != ExpectedLayerSize(layer) {
				return fmt.Errorf("%w: layer %s=%d has %d cubelets", ErrInvariant, a, layer, n)
			}
		}
	}

	return nil
}

var (
	solved    = solvedCubelets()
	rotations = properRotations()
)

// rotation is a signed permutation matrix acting on lattice coordinates.
type rotation [3][3]int

func (r rotation) position(p types.Position) types.Position {
	var out types.Position
	for _, row := range types.Axes {
		v := 0
		for _, col := range types.Axes {
			v += r[row][col] * p.Coord(col)
		}
		out = out.With(row, v)
	}
	return out
}

// faces moves every sticker to the slot its normal rotates onto.
func (r rotation) faces(f types.Faces) types.Faces {
	var out types.Faces
	for _, s := range types.FaceSlots {
		out[slotFacing(r.position(s.Normal()))] = f[s]
	}
	return out
}

func slotFacing(n types.Position) types.FaceSlot {
	for _, s := range types.FaceSlots {
		if s.Normal() == n {
			return s
		}
	}
	panic(fmt.Sprintf("cube: %s is not a face normal", n))
}

// properRotations returns the 24 rotations of the cube: the signed
// permutation matrices with determinant +1.
func properRotations() []rotation {
	perms := [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	parity := [6]int{1, -1, -1, 1, 1, -1}

	out := make([]rotation, 0, 24)
	for k, p := range perms {
		for signs := 0; signs < 8; signs++ {
			det := parity[k]
			var r rotation
			for row := 0; row < 3; row++ {
				sign := 1
				if signs&(1<<row) != 0 {
					sign = -1
				}
				det *= sign
				r[row][p[row]] = sign
			}
			if det == 1 {
				out = append(out, r)
			}
		}
	}
	return out
}

// rigidlyMoved reports whether cl is ref turned by some rotation of the cube.
func rigidlyMoved(ref, cl Cubelet) bool {
	for _, r := range rotations {
		if r.position(ref.Position) == cl.Position && r.faces(ref.Faces) == cl.Faces {
			return true
		}
	}
	return false
}
