package turn

import "github.com/SeamusWaldron/cubelet/pkg/types"

// Permutation names, for each destination face slot, the slot whose color
// it receives: after a turn, Faces[s] = old Faces[p[s]].
type Permutation [6]types.FaceSlot

// Apply returns faces permuted by p.
func (p Permutation) Apply(faces types.Faces) types.Faces {
	var out types.Faces
	for s := range out {
		out[s] = faces[p[s]]
	}
	return out
}

// Inverse returns the permutation that undoes p.
func (p Permutation) Inverse() Permutation {
	var inv Permutation
	for dst, src := range p {
		inv[src] = types.FaceSlot(dst)
	}
	return inv
}

// Moved returns the slots whose color changes under p.
func (p Permutation) Moved() []types.FaceSlot {
	var out []types.FaceSlot
	for dst, src := range p {
		if types.FaceSlot(dst) != src {
			out = append(out, types.FaceSlot(dst))
		}
	}
	return out
}

const (
	front  = types.Front
	back   = types.Back
	top    = types.Top
	bottom = types.Bottom
	left   = types.Left
	right  = types.Right
)

// tables holds one permutation per axis and effective direction.
// Columns are the destination slots Front, Back, Top, Bottom, Left, Right.
// The two slots on the turn axis keep their colors; the other four cycle in
// the rotation direction.
var tables = [3][2]Permutation{
	types.AxisX: {
		cw:  {bottom, top, front, back, left, right}, // top -> back -> bottom -> front -> top
		ccw: {top, bottom, back, front, left, right}, // top -> front -> bottom -> back -> top
	},
	types.AxisY: {
		cw:  {right, left, top, bottom, front, back}, // front -> left -> back -> right -> front
		ccw: {left, right, top, bottom, back, front}, // front -> right -> back -> left -> front
	},
	types.AxisZ: {
		cw:  {front, back, left, right, bottom, top}, // top -> right -> bottom -> left -> top
		ccw: {front, back, right, left, top, bottom}, // top -> left -> bottom -> right -> top
	},
}

const (
	cw  = 0
	ccw = 1
)

// Table returns the face permutation for a turn about axis in the effective
// direction d (as seen from the positive end of the axis).
func Table(axis types.Axis, d types.Direction) Permutation {
	if d == types.Clockwise {
		return tables[axis][cw]
	}
	return tables[axis][ccw]
}
