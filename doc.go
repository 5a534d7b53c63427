// Package cubelet models a 3x3x3 Rubik's cube as 26 cubelets and applies
// quarter turns of any layer to it.
//
// # Features
//
//   - Exact integer cubelet positions with six face colors each
//   - Outer layer and middle slice turns about X, Y and Z
//   - All-or-nothing commits with at most one turn in flight
//   - Animated turns driven by a frame clock, with cancellation
//   - A render feed carrying cubelets, view angles and the turning layer
//
// # Quick Start
//
//	ctrl := cubelet.New()
//
//	// Apply turns using predefined requests
//	ctrl.Apply(cubelet.Right, cubelet.Up, cubelet.RightPrime, cubelet.UpPrime)
//
//	fmt.Println("Solved:", ctrl.IsSolved())
//	fmt.Print(ctrl)
//
// # Two-step Turns
//
// A turn is computed first and committed later. Nothing changes until
// Commit, and no other turn is accepted in between:
//
//	res, err := ctrl.Compute(types.Request{Axis: types.AxisZ, Layer: 1, Direction: types.Clockwise})
//	if err != nil {
//	    return err
//	}
//	// ... show the turn ...
//	err = ctrl.Commit(res)
//
// # Animation
//
// Begin starts a turn that Tick advances by a fixed angle per frame. The
// turn commits on the frame that completes 90 degrees:
//
//	ctrl.Begin(cubelet.Front)
//	for ctrl.Animating() {
//	    ctrl.Tick()
//	    draw(ctrl.Frame())
//	}
//
// # Directions
//
// Clockwise is as seen looking at the turned layer from outside the cube.
// For the negative layers (Left, Bottom, Back) that view faces the negative
// axis, so the turn is counter-clockwise when seen from the positive axis.
// Middle slices are viewed from the positive axis. Middle slices are
// rejected unless WithSliceTurns(true) is given.
package cubelet
