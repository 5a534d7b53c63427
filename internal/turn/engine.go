// Package turn computes the effect of a quarter turn on a cube.
//
// Compute is pure: it reads a consistent snapshot of one layer and returns
// the new position and faces of every cubelet in it. The cube only changes
// when the Result is passed to cube.ApplyTurn.
package turn

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubelet/internal/cube"
	"github.com/SeamusWaldron/cubelet/pkg/types"
)

// Result is a computed but not yet committed turn.
type Result struct {
	ID        uuid.UUID
	Request   types.Request
	Effective types.Direction // direction as seen from the positive axis
	Revision  uint64          // cube revision the layer was read at
	Updates   []cube.Update
}

// Clone returns a copy of r that shares no memory with it.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.Updates = append([]cube.Update(nil), r.Updates...)
	return &out
}

// Validate checks that req names an axis, a layer in {-1, 0, 1} and a direction.
func Validate(req types.Request) error {
	if !req.Axis.Valid() {
		return fmt.Errorf("%w: axis %d", ErrInvalidTurnRequest, req.Axis)
	}
	if req.Layer < -1 || req.Layer > 1 {
		return fmt.Errorf("%w: layer %d", ErrInvalidTurnRequest, req.Layer)
	}
	if !req.Direction.Valid() {
		return fmt.Errorf("%w: direction %d", ErrInvalidTurnRequest, req.Direction)
	}
	return nil
}

// EffectiveDirection converts the requested direction, seen from outside the
// turned layer, to the direction seen from the positive end of the axis.
// Negative layers are viewed from the opposite side, so their sense flips.
// The middle slice keeps the requested direction.
func EffectiveDirection(req types.Request) types.Direction {
	if req.Layer < 0 {
		return req.Direction.Reverse()
	}
	return req.Direction
}

// Compute returns the turn req applied to c without modifying c.
func Compute(c *cube.Cube, req types.Request) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	layer := c.Layer(req.Axis, req.Layer)
	if want := cube.ExpectedLayerSize(req.Layer); len(layer.Members) != want {
		return nil, fmt.Errorf("%w: layer %s=%d has %d cubelets, want %d",
			ErrTurnConsistency, req.Axis, req.Layer, len(layer.Members), want)
	}

	proj := projections[req.Axis]
	var grid [3][3]*cube.Cubelet
	for k := range layer.Members {
		m := &layer.Members[k]
		i, j := proj.toGrid(m.Position)
		if grid[i][j] != nil {
			return nil, fmt.Errorf("%w: cubelets %d and %d share %s",
				ErrTurnConsistency, grid[i][j].Index, m.Index, m.Position)
		}
		grid[i][j] = m
	}

	eff := EffectiveDirection(req)
	perm := Table(req.Axis, eff)
	updates := make([]cube.Update, 0, len(layer.Members))

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// The source is the cell that rotates onto (i, j).
			si, sj := rotateCell(i, j, eff.Reverse())
			src := grid[si][sj]
			if src == nil {
				if req.Layer == 0 && si == 1 && sj == 1 {
					continue // core
				}
				return nil, fmt.Errorf("%w: no cubelet rotates onto %s",
					ErrTurnConsistency, proj.fromGrid(req.Axis, req.Layer, i, j))
			}
			updates = append(updates, cube.Update{
				Index:    src.Index,
				Position: proj.fromGrid(req.Axis, req.Layer, i, j),
				Faces:    perm.Apply(src.Faces),
			})
		}
	}

	return &Result{
		ID:        uuid.New(),
		Request:   req,
		Effective: eff,
		Revision:  layer.Revision,
		Updates:   updates,
	}, nil
}

// Apply computes req and commits it to c.
func Apply(c *cube.Cube, req types.Request) error {
	res, err := Compute(c, req)
	if err != nil {
		return err
	}
	return c.ApplyTurn(res.Revision, res.Updates)
}
