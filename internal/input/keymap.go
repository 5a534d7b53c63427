// Package input translates key presses into cube commands.
package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SeamusWaldron/cubelet/pkg/types"
)

// Action is the kind of command a key produces.
type Action int

const (
	ActionNone Action = iota
	ActionTurn
	ActionToggleSpin
	ActionTilt
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionTurn:
		return "turn"
	case ActionToggleSpin:
		return "toggle-spin"
	case ActionTilt:
		return "tilt"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Command is one discrete input event.
type Command struct {
	Action Action
	Turn   types.Request // for ActionTurn
	TiltX  float64       // for ActionTilt, degrees
	TiltY  float64
}

// TurnCommand returns the command that starts a turn.
func TurnCommand(axis types.Axis, layer int, d types.Direction) Command {
	return Command{Action: ActionTurn, Turn: types.Request{Axis: axis, Layer: layer, Direction: d}}
}

// Description returns a short human readable form of the command.
func (c Command) Description() string {
	switch c.Action {
	case ActionTurn:
		dir := "clockwise"
		if c.Turn.Direction == types.CounterClockwise {
			dir = "counter-clockwise"
		}
		return fmt.Sprintf("Rotate %s layer %s", layerName(c.Turn), dir)
	case ActionToggleSpin:
		return "Pause/unpause auto-spinning"
	case ActionTilt:
		switch {
		case c.TiltX < 0:
			return "Tilt cube up"
		case c.TiltX > 0:
			return "Tilt cube down"
		case c.TiltY < 0:
			return "Spin cube left"
		default:
			return "Spin cube right"
		}
	case ActionCancel:
		return "Cancel the turn in progress"
	default:
		return ""
	}
}

var layerNames = [3][3]string{
	types.AxisX: {"Left", "middle X", "Right"},
	types.AxisY: {"Bottom", "middle Y", "Top"},
	types.AxisZ: {"Back", "middle Z", "Front"},
}

func layerName(r types.Request) string {
	if !r.Axis.Valid() || r.Layer < -1 || r.Layer > 1 {
		return r.Notation()
	}
	return layerNames[r.Axis][r.Layer+1]
}

// Binding pairs a key with its command.
type Binding struct {
	Key     string
	Command Command
}

// Keymap maps key names (as reported by the terminal, e.g. "f", "F", "up",
// " ") to commands.
type Keymap struct {
	bindings map[string]Command
}

// NewKeymap returns an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[string]Command)}
}

type layerKey struct {
	key   string
	axis  types.Axis
	layer int
}

var faceKeys = []layerKey{
	{"u", types.AxisY, 1},
	{"d", types.AxisY, -1},
	{"r", types.AxisX, 1},
	{"l", types.AxisX, -1},
	{"f", types.AxisZ, 1},
	{"b", types.AxisZ, -1},
}

var sliceKeys = []layerKey{
	{"m", types.AxisX, 0},
	{"e", types.AxisY, 0},
	{"s", types.AxisZ, 0},
}

// Default returns the standard bindings: lowercase turns a layer clockwise,
// uppercase counter-clockwise, space toggles auto-spin, arrows tilt by
// tiltStep degrees and esc cancels. Middle slice keys m, e and s are bound
// only when slices is set.
func Default(tiltStep float64, slices bool) *Keymap {
	k := NewKeymap()

	keys := faceKeys
	if slices {
		keys = append(keys, sliceKeys...)
	}
	for _, f := range keys {
		k.Bind(f.key, TurnCommand(f.axis, f.layer, types.Clockwise))
		k.Bind(strings.ToUpper(f.key), TurnCommand(f.axis, f.layer, types.CounterClockwise))
	}

	k.Bind(" ", Command{Action: ActionToggleSpin})
	k.Bind("up", Command{Action: ActionTilt, TiltX: -tiltStep})
	k.Bind("down", Command{Action: ActionTilt, TiltX: tiltStep})
	k.Bind("left", Command{Action: ActionTilt, TiltY: -tiltStep})
	k.Bind("right", Command{Action: ActionTilt, TiltY: tiltStep})
	k.Bind("esc", Command{Action: ActionCancel})

	return k
}

// Bind maps key to cmd, replacing any previous binding.
func (k *Keymap) Bind(key string, cmd Command) {
	k.bindings[key] = cmd
}

// Unbind removes the binding for key.
func (k *Keymap) Unbind(key string) {
	delete(k.bindings, key)
}

// Lookup returns the command bound to key.
func (k *Keymap) Lookup(key string) (Command, bool) {
	cmd, ok := k.bindings[key]
	return cmd, ok
}

// Bindings returns every binding sorted by key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for key, cmd := range k.bindings {
		out = append(out, Binding{Key: key, Command: cmd})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// Target receives dispatched commands.
type Target interface {
	Begin(req types.Request) error
	ToggleSpin() bool
	Tilt(dx, dy float64)
	Cancel() bool
}

// Dispatch sends cmd to t.
func Dispatch(t Target, cmd Command) error {
	switch cmd.Action {
	case ActionTurn:
		return t.Begin(cmd.Turn)
	case ActionToggleSpin:
		t.ToggleSpin()
	case ActionTilt:
		t.Tilt(cmd.TiltX, cmd.TiltY)
	case ActionCancel:
		t.Cancel()
	}
	return nil
}
