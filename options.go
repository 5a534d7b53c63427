package cubelet

import (
	"log/slog"

	"github.com/SeamusWaldron/cubelet/internal/logging"
)

// Option configures Controller behavior.
type Option func(*config)

type config struct {
	sliceTurns    bool
	moveHistory   bool
	autoSpin      bool
	animationStep float64
	spinStep      float64
	logger        *slog.Logger
}

// Default steps per frame: 5 degrees of layer rotation and 1 degree of
// view spin.
const (
	DefaultAnimationStep = 5.0
	DefaultSpinStep      = 1.0
)

func defaultConfig() *config {
	return &config{
		sliceTurns:    false,
		moveHistory:   true,
		autoSpin:      true,
		animationStep: DefaultAnimationStep,
		spinStep:      DefaultSpinStep,
		logger:        logging.NewNop(),
	}
}

// WithSliceTurns allows or rejects middle-slice turns (layer 0).
// They are rejected by default.
func WithSliceTurns(enabled bool) Option {
	return func(c *config) {
		c.sliceTurns = enabled
	}
}

// WithMoveHistory enables or disables turn history tracking.
// When enabled (default), every committed turn is accessible via History().
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithAutoSpin sets whether the view starts spinning.
func WithAutoSpin(enabled bool) Option {
	return func(c *config) {
		c.autoSpin = enabled
	}
}

// WithAnimationStep sets how many degrees an animated turn advances per Tick.
// Non-positive values are ignored.
func WithAnimationStep(degrees float64) Option {
	return func(c *config) {
		if degrees > 0 {
			c.animationStep = degrees
		}
	}
}

// WithSpinStep sets how many degrees the view spins per Tick.
func WithSpinStep(degrees float64) Option {
	return func(c *config) {
		c.spinStep = degrees
	}
}

// WithLogger sets the logger used for turn events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
