package turn

import "errors"

var (
	// ErrInvalidTurnRequest means the axis, layer or direction is outside its
	// allowed values. It points at a bug in command translation.
	ErrInvalidTurnRequest = errors.New("turn: invalid turn request")

	// ErrTurnConsistency means the cube did not have the shape a turn expects.
	// Nothing is committed when it is returned.
	ErrTurnConsistency = errors.New("turn: inconsistent layer")
)
