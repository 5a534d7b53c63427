// Package notation compacts turn sequences for display.
package notation

import (
	"strings"

	"github.com/SeamusWaldron/cubelet/pkg/types"
)

// Simplify merges consecutive turns of the same layer. Four quarter turns
// cancel, three become one reverse turn, and a half turn is kept as two
// clockwise turns. Cancellations cascade, so R U U' R' simplifies to nothing.
func Simplify(reqs []types.Request) []types.Request {
	type run struct {
		axis  types.Axis
		layer int
		turns int // clockwise quarter turns, 1 to 3
	}

	var stack []run
	for _, r := range reqs {
		n := 1
		if r.Direction == types.CounterClockwise {
			n = 3
		}
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.axis == r.Axis && top.layer == r.Layer {
				top.turns = (top.turns + n) % 4
				if top.turns == 0 {
					stack = stack[:len(stack)-1]
				}
				continue
			}
		}
		stack = append(stack, run{axis: r.Axis, layer: r.Layer, turns: n})
	}

	out := make([]types.Request, 0, len(stack))
	for _, s := range stack {
		req := types.Request{Axis: s.axis, Layer: s.layer, Direction: types.Clockwise}
		switch s.turns {
		case 1:
			out = append(out, req)
		case 2:
			out = append(out, req, req)
		case 3:
			req.Direction = types.CounterClockwise
			out = append(out, req)
		}
	}
	return out
}

// Format writes reqs in notation, folding repeated turns into a 2 suffix.
func Format(reqs []types.Request) string {
	parts := make([]string, 0, len(reqs))
	for i := 0; i < len(reqs); i++ {
		if i+1 < len(reqs) && reqs[i+1] == reqs[i] {
			name := reqs[i].Notation()
			if reqs[i].Direction == types.CounterClockwise {
				name = strings.TrimSuffix(name, "'") + "2'"
			} else {
				name += "2"
			}
			parts = append(parts, name)
			i++
			continue
		}
		parts = append(parts, reqs[i].Notation())
	}
	return strings.Join(parts, " ")
}
