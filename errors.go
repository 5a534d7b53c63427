package cubelet

import (
	"errors"

	"github.com/SeamusWaldron/cubelet/internal/turn"
)

// Sentinel errors for the cubelet package.
var (
	// Request errors
	ErrInvalidTurnRequest = turn.ErrInvalidTurnRequest
	ErrTurnConsistency    = turn.ErrTurnConsistency

	// Turn lifecycle errors
	ErrTurnInFlight  = errors.New("cubelet: a turn is already in flight")
	ErrNoTurnPending = errors.New("cubelet: no turn pending")
	ErrStaleTurn     = errors.New("cubelet: turn result is not the pending turn")
)
