package turn

import "github.com/SeamusWaldron/cubelet/pkg/types"

// projection maps the two coordinates perpendicular to a turn axis onto a
// 3x3 grid. Both are shifted from {-1,0,1} to {0,1,2}.
type projection struct {
	i, j types.Axis
}

// projections are chosen so that the clockwise grid rule turns every layer
// clockwise as seen from the positive end of its axis.
var projections = [3]projection{
	types.AxisX: {i: types.AxisZ, j: types.AxisY},
	types.AxisY: {i: types.AxisX, j: types.AxisZ},
	types.AxisZ: {i: types.AxisY, j: types.AxisX},
}

func (p projection) toGrid(pos types.Position) (i, j int) {
	return pos.Coord(p.i) + 1, pos.Coord(p.j) + 1
}

func (p projection) fromGrid(axis types.Axis, layer, i, j int) types.Position {
	return types.Position{}.
		With(axis, layer).
		With(p.i, i-1).
		With(p.j, j-1)
}

// rotateCell returns the cell that (i, j) moves to under a quarter turn.
func rotateCell(i, j int, d types.Direction) (int, int) {
	if d == types.Clockwise {
		return 2 - j, i
	}
	return j, 2 - i
}
