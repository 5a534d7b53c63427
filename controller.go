package cubelet

import (
	"fmt"
	"math"
	"sync"

	"github.com/SeamusWaldron/cubelet/internal/cube"
	"github.com/SeamusWaldron/cubelet/internal/turn"
	"github.com/SeamusWaldron/cubelet/pkg/types"
)

// TurnResult is a computed turn waiting to be committed.
type TurnResult = turn.Result

// Cubelet is a snapshot of one sub-cube.
type Cubelet = cube.Cubelet

// QuarterTurn is the angle an animated turn covers before it commits.
const QuarterTurn = 90.0

// Controller owns one cube and serializes every change to it.
// At most one turn is in flight: computed (or animating) but not committed.
type Controller struct {
	mu      sync.Mutex
	cfg     *config
	cube    *cube.Cube
	pending *TurnResult
	anim    *animation
	view    View
	history []types.Request
}

// animation tracks the visual progress of the pending turn.
type animation struct {
	angle float64
}

// New creates a controller holding a solved cube.
func New(opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Controller{
		cfg:  cfg,
		cube: cube.New(),
		view: View{Spinning: cfg.autoSpin},
	}
}

// Compute validates req and computes its effect without changing the cube.
// The result stays pending until Commit or Discard.
func (c *Controller) Compute(req types.Request) (*TurnResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compute(req)
}

func (c *Controller) compute(req types.Request) (*TurnResult, error) {
	if c.pending != nil {
		c.cfg.logger.Warn("turn rejected", "turn", req.Notation(), "pending", c.pending.Request.Notation())
		return nil, fmt.Errorf("%w: %s", ErrTurnInFlight, c.pending.Request.Notation())
	}
	if err := c.checkRequest(req); err != nil {
		c.cfg.logger.Warn("turn rejected", "turn", req.Notation(), "error", err)
		return nil, err
	}

	res, err := turn.Compute(c.cube, req)
	if err != nil {
		c.cfg.logger.Error("turn failed", "turn", req.Notation(), "error", err)
		return nil, err
	}
	c.pending = res
	return res.Clone(), nil
}

// checkRequest applies the controller's turn policy on top of engine validation.
func (c *Controller) checkRequest(req types.Request) error {
	if err := turn.Validate(req); err != nil {
		return err
	}
	if req.Layer == 0 && !c.cfg.sliceTurns {
		return fmt.Errorf("%w: middle slice turns are disabled", ErrInvalidTurnRequest)
	}
	return nil
}

// Commit applies the pending result to the cube. Either every cubelet of the
// layer is updated or none is. res only identifies the turn: the updates
// committed are the ones computed by Compute, whatever res holds now.
func (c *Controller) Commit(res *TurnResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit(res)
}

func (c *Controller) commit(res *TurnResult) error {
	if c.pending == nil {
		return ErrNoTurnPending
	}
	if res == nil || res.ID != c.pending.ID {
		return ErrStaleTurn
	}

	res = c.pending
	c.pending = nil
	c.anim = nil
	if err := c.cube.ApplyTurn(res.Revision, res.Updates); err != nil {
		c.cfg.logger.Error("commit failed", "turn", res.Request.Notation(), "error", err)
		return err
	}

	if c.cfg.moveHistory {
		c.history = append(c.history, res.Request)
	}
	c.cfg.logger.Debug("turn committed",
		"turn", res.Request.Notation(),
		"effective", res.Effective,
		"revision", c.cube.Revision())
	return nil
}

// Discard abandons a pending result without touching the cube.
// It reports whether res was the pending turn.
func (c *Controller) Discard(res *TurnResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil || res == nil || res.ID != c.pending.ID {
		return false
	}
	c.pending = nil
	c.anim = nil
	c.cfg.logger.Debug("turn discarded", "turn", res.Request.Notation())
	return true
}

// Turn computes and commits req immediately.
func (c *Controller) Turn(req types.Request) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.compute(req)
	if err != nil {
		return err
	}
	return c.commit(res)
}

// Apply turns every request in order, stopping at the first error.
func (c *Controller) Apply(reqs ...types.Request) error {
	for _, req := range reqs {
		if err := c.Turn(req); err != nil {
			return err
		}
	}
	return nil
}

// Begin starts an animated turn. The turn is validated and computed now,
// and committed by the Tick that completes the quarter turn.
func (c *Controller) Begin(req types.Request) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.compute(req); err != nil {
		return err
	}
	c.anim = &animation{}
	c.cfg.logger.Debug("turn started", "turn", req.Notation())
	return nil
}

// Tick advances one animation frame: the view spins when auto-spin is on and
// the animated turn, if any, moves by the animation step. It returns the
// result committed by this frame, or nil.
func (c *Controller) Tick() (*TurnResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view.Spinning {
		c.view.RotX = wrapDegrees(c.view.RotX + c.cfg.spinStep)
		c.view.RotY = wrapDegrees(c.view.RotY + c.cfg.spinStep)
	}

	if c.anim == nil {
		return nil, nil
	}
	c.anim.angle += c.cfg.animationStep
	if c.anim.angle < QuarterTurn {
		return nil, nil
	}

	res := c.pending
	if err := c.commit(res); err != nil {
		return nil, err
	}
	return res.Clone(), nil
}

// Cancel abandons an animated turn before it commits.
// It reports whether a turn was cancelled.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.anim == nil {
		return false
	}
	c.cfg.logger.Debug("turn cancelled", "turn", c.pending.Request.Notation(), "angle", c.anim.angle)
	c.pending = nil
	c.anim = nil
	return true
}

// Busy reports whether a turn is pending or animating.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Animating reports whether an animated turn is in progress.
func (c *Controller) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.anim != nil
}

// ToggleSpin switches auto-spin and returns the new setting.
func (c *Controller) ToggleSpin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Spinning = !c.view.Spinning
	return c.view.Spinning
}

// Tilt rotates the view by dx degrees around X and dy degrees around Y.
func (c *Controller) Tilt(dx, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.RotX = wrapDegrees(c.view.RotX + dx)
	c.view.RotY = wrapDegrees(c.view.RotY + dy)
}

// Reset restores the solved cube and clears the history.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		return fmt.Errorf("%w: %s", ErrTurnInFlight, c.pending.Request.Notation())
	}
	c.cube.Reset()
	c.history = nil
	c.cfg.logger.Debug("cube reset")
	return nil
}

// History returns the committed turns in order.
func (c *Controller) History() []types.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Request, len(c.history))
	copy(out, c.history)
	return out
}

// SliceTurns reports whether middle-slice turns are accepted.
func (c *Controller) SliceTurns() bool {
	return c.cfg.sliceTurns
}

// Cubelets returns a snapshot of all cubelets.
func (c *Controller) Cubelets() []Cubelet {
	return c.cube.Cubelets()
}

// IsSolved returns true if the cube is in the solved state.
func (c *Controller) IsSolved() bool {
	return c.cube.IsSolved()
}

// Verify checks the cube's structural invariants.
func (c *Controller) Verify() error {
	return c.cube.Verify()
}

// String returns the cube as an unfolded net.
func (c *Controller) String() string {
	return c.cube.String()
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
