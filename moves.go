package cubelet

import "github.com/SeamusWaldron/cubelet/pkg/types"

// Predefined turn requests for the six outer faces.
// Clockwise is as seen looking at the face from outside the cube.
//
// Example:
//
//	ctrl.Turn(cubelet.Front)
var (
	Front      = types.Request{Axis: types.AxisZ, Layer: 1, Direction: types.Clockwise}
	FrontPrime = types.Request{Axis: types.AxisZ, Layer: 1, Direction: types.CounterClockwise}

	Back      = types.Request{Axis: types.AxisZ, Layer: -1, Direction: types.Clockwise}
	BackPrime = types.Request{Axis: types.AxisZ, Layer: -1, Direction: types.CounterClockwise}

	Up      = types.Request{Axis: types.AxisY, Layer: 1, Direction: types.Clockwise}
	UpPrime = types.Request{Axis: types.AxisY, Layer: 1, Direction: types.CounterClockwise}

	Down      = types.Request{Axis: types.AxisY, Layer: -1, Direction: types.Clockwise}
	DownPrime = types.Request{Axis: types.AxisY, Layer: -1, Direction: types.CounterClockwise}

	Right      = types.Request{Axis: types.AxisX, Layer: 1, Direction: types.Clockwise}
	RightPrime = types.Request{Axis: types.AxisX, Layer: 1, Direction: types.CounterClockwise}

	Left      = types.Request{Axis: types.AxisX, Layer: -1, Direction: types.Clockwise}
	LeftPrime = types.Request{Axis: types.AxisX, Layer: -1, Direction: types.CounterClockwise}
)

// SexyMove is R U R' U'.
var SexyMove = []types.Request{Right, Up, RightPrime, UpPrime}
