// Package cube provides the cubelet model of a 3x3x3 Rubik's cube.
package cube

import (
	"errors"
	"fmt"
	"sync"

	"github.com/SeamusWaldron/cubelet/pkg/types"
)

const (
	// Count is the number of visible cubelets (27 minus the hidden core).
	Count = 26
	// LayerSize is the number of cubelets in an outer layer.
	LayerSize = 9
	// SliceSize is the number of cubelets in a middle slice; its center is the core.
	SliceSize = 8
)

var (
	ErrInvalidUpdate = errors.New("cube: invalid turn update")
	ErrStaleRevision = errors.New("cube: turn computed against a stale revision")
)

// ExpectedLayerSize returns how many cubelets a layer at coordinate layer holds.
func ExpectedLayerSize(layer int) int {
	if layer == 0 {
		return SliceSize
	}
	return LayerSize
}

// Cubelet is a value snapshot of one sub-cube.
// Index is its stable identity within the cube.
type Cubelet struct {
	Index    int            `json:"index"`
	Position types.Position `json:"position"`
	Faces    types.Faces    `json:"faces"`
}

// Update is the new state of one cubelet after a turn.
type Update struct {
	Index    int
	Position types.Position
	Faces    types.Faces
}

// Layer is a consistent snapshot of the members of one layer.
type Layer struct {
	Axis     types.Axis
	Coord    int
	Revision uint64
	Members  []Cubelet
}

// Cube owns the 26 cubelets. It is safe for concurrent readers while a
// single writer commits turns.
type Cube struct {
	mu       sync.RWMutex
	cubelets [Count]Cubelet
	revision uint64
}

// New creates a solved cube: Red in front, White on top.
func New() *Cube {
	c := &Cube{}
	c.cubelets = solvedCubelets()
	return c
}

// FromCubelets creates a cube holding the given states. It does not check
// them; call Verify before trusting the result.
func FromCubelets(cubelets [Count]Cubelet) *Cube {
	c := &Cube{cubelets: cubelets}
	for i := range c.cubelets {
		c.cubelets[i].Index = i
	}
	return c
}

// solvedCubelets builds the initial cubelets in x, y, z order.
// A slot gets a color only if the cubelet touches that side of the lattice.
func solvedCubelets() [Count]Cubelet {
	var out [Count]Cubelet
	i := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				pos := types.Position{X: x, Y: y, Z: z}
				if pos.IsCore() {
					continue
				}
				var faces types.Faces
				for _, s := range types.FaceSlots {
					if pos.Coord(s.Axis()) == s.Sign() {
						faces[s] = s.SolvedColor()
					}
				}
				out[i] = Cubelet{Index: i, Position: pos, Faces: faces}
				i++
			}
		}
	}
	return out
}

// Reset returns every cubelet to its initial state.
func (c *Cube) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cubelets = solvedCubelets()
	c.revision++
}

// Revision returns a counter incremented by every committed change.
func (c *Cube) Revision() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revision
}

// Cubelets returns a snapshot of all cubelets in index order.
func (c *Cube) Cubelets() []Cubelet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Cubelet, Count)
	copy(out, c.cubelets[:])
	return out
}

// Cubelet returns the cubelet with the given index.
func (c *Cube) Cubelet(index int) (Cubelet, bool) {
	if index < 0 || index >= Count {
		return Cubelet{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cubelets[index], true
}

// At returns the cubelet currently at pos.
func (c *Cube) At(pos types.Position) (Cubelet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cl := range c.cubelets {
		if cl.Position == pos {
			return cl, true
		}
	}
	return Cubelet{}, false
}

// Members returns the cubelets whose coordinate along axis equals layer.
func (c *Cube) Members(axis types.Axis, layer int) []Cubelet {
	return c.Layer(axis, layer).Members
}

// Layer returns the members of a layer together with the revision they were read at.
func (c *Cube) Layer(axis types.Axis, layer int) Layer {
	c.mu.RLock()
	defer c.mu.RUnlock()

	l := Layer{Axis: axis, Coord: layer, Revision: c.revision}
	if !axis.Valid() {
		return l
	}
	l.Members = make([]Cubelet, 0, LayerSize)
	for _, cl := range c.cubelets {
		if cl.Position.Coord(axis) == layer {
			l.Members = append(l.Members, cl)
		}
	}
	return l
}

// ApplyTurn commits the updates of one turn. The whole batch is checked
// before any cubelet changes; on error the cube is left untouched.
func (c *Cube) ApplyTurn(revision uint64, updates []Update) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if revision != c.revision {
		return fmt.Errorf("%w: have %d, turn made at %d", ErrStaleRevision, c.revision, revision)
	}
	if err := c.checkUpdates(updates); err != nil {
		return err
	}

	for _, u := range updates {
		c.cubelets[u.Index].Position = u.Position
		c.cubelets[u.Index].Faces = u.Faces
	}
	c.revision++
	return nil
}

// checkUpdates requires the updated cubelets to trade places among
// themselves: the destination positions are exactly the current ones.
func (c *Cube) checkUpdates(updates []Update) error {
	if n := len(updates); n != LayerSize && n != SliceSize {
		return fmt.Errorf("%w: %d updates", ErrInvalidUpdate, n)
	}

	seen := make(map[int]bool, len(updates))
	from := make(map[types.Position]bool, len(updates))
	for _, u := range updates {
		if u.Index < 0 || u.Index >= Count {
			return fmt.Errorf("%w: index %d out of range", ErrInvalidUpdate, u.Index)
		}
		if seen[u.Index] {
			return fmt.Errorf("%w: cubelet %d updated twice", ErrInvalidUpdate, u.Index)
		}
		if !u.Position.Valid() {
			return fmt.Errorf("%w: position %s", ErrInvalidUpdate, u.Position)
		}
		seen[u.Index] = true
		from[c.cubelets[u.Index].Position] = true
	}

	to := make(map[types.Position]bool, len(updates))
	for _, u := range updates {
		if !from[u.Position] || to[u.Position] {
			return fmt.Errorf("%w: position %s is not a free destination", ErrInvalidUpdate, u.Position)
		}
		to[u.Position] = true
	}
	return nil
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Cube{cubelets: c.cubelets, revision: c.revision}
}

// Equal reports whether both cubes hold the same cubelet states.
func (c *Cube) Equal(other *Cube) bool {
	a, b := c.Cubelets(), other.Cubelets()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ColorCounts returns how many stickers of each color are on the cube.
func (c *Cube) ColorCounts() map[types.Color]int {
	counts := make(map[types.Color]int, len(types.Colors))
	for _, cl := range c.Cubelets() {
		for _, color := range cl.Faces {
			if color != types.None {
				counts[color]++
			}
		}
	}
	return counts
}

// IsSolved returns true if every outer face shows a single color.
func (c *Cube) IsSolved() bool {
	cubelets := c.Cubelets()
	for _, s := range types.FaceSlots {
		grid := FaceGrid(cubelets, s)
		for _, color := range grid {
			if color != grid[4] {
				return false
			}
		}
	}
	return true
}
