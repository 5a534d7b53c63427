package cubelet

import "github.com/SeamusWaldron/cubelet/pkg/types"

// View is the orientation of the whole cube on screen.
type View struct {
	RotX     float64 // degrees around the screen X axis
	RotY     float64 // degrees around the screen Y axis
	Spinning bool
}

// ActiveTurn describes an animated turn that has not been committed yet.
type ActiveTurn struct {
	Request   types.Request
	Effective types.Direction
	Angle     float64 // degrees turned so far, 0 to QuarterTurn
}

// Contains reports whether the cubelet at p is part of the turning layer.
func (t ActiveTurn) Contains(p types.Position) bool {
	return p.Coord(t.Request.Axis) == t.Request.Layer
}

// SignedAngle returns the rotation so far about the positive axis,
// counter-clockwise positive. Clockwise turns give negative angles.
func (t ActiveTurn) SignedAngle() float64 {
	return -float64(t.Effective) * t.Angle
}

// Progress returns the completed fraction of the quarter turn.
func (t ActiveTurn) Progress() float64 {
	return t.Angle / QuarterTurn
}

// Frame is everything a renderer needs to draw one frame. The cubelets
// always reflect committed turns only; an animated layer is drawn rotated
// by Turn.SignedAngle.
type Frame struct {
	Revision uint64
	Cubelets []Cubelet
	View     View
	Turn     *ActiveTurn
}

// Frame returns a consistent snapshot for rendering.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := Frame{
		Revision: c.cube.Revision(),
		Cubelets: c.cube.Cubelets(),
		View:     c.view,
	}
	if c.anim != nil {
		f.Turn = &ActiveTurn{
			Request:   c.pending.Request,
			Effective: c.pending.Effective,
			Angle:     c.anim.angle,
		}
	}
	return f
}
