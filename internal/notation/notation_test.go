package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/pkg/types"
)

var (
	mSlice      = types.Request{Axis: types.AxisX, Layer: 0, Direction: types.Clockwise}
	mSlicePrime = types.Request{Axis: types.AxisX, Layer: 0, Direction: types.CounterClockwise}
)

func repeat(r types.Request, n int) []types.Request {
	out := make([]types.Request, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		in   []types.Request
		want string
	}{
		{"four cancel", repeat(cubelet.Right, 4), ""},
		{"three reverse", repeat(cubelet.Right, 3), "R'"},
		{"half turn", repeat(cubelet.Right, 2), "R2"},
		{"cascade", []types.Request{cubelet.Right, cubelet.Up, cubelet.UpPrime, cubelet.RightPrime}, ""},
		{"different layers", []types.Request{cubelet.Right, cubelet.Left, cubelet.Right}, "R L R"},
		{"three reverse prime", repeat(cubelet.FrontPrime, 3), "F"},
		{"slice", []types.Request{mSlice, mSlicePrime}, ""},
		{"nothing to merge", cubelet.SexyMove, "R U R' U'"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(Simplify(tt.in)))
		})
	}
}

func TestFormat(t *testing.T) {
	reqs := []types.Request{cubelet.Right, cubelet.Right, cubelet.UpPrime, cubelet.UpPrime, cubelet.Front, mSlice}
	assert.Equal(t, "R2 U2' F x0", Format(reqs))
	assert.Equal(t, "R R U' U' F x0", types.FormatRequests(reqs))
}

func TestSimplifiedSequenceHasSameEffect(t *testing.T) {
	var reqs []types.Request
	reqs = append(reqs, repeat(cubelet.Right, 3)...)
	reqs = append(reqs, cubelet.Up, cubelet.UpPrime)
	reqs = append(reqs, repeat(cubelet.Front, 4)...)
	reqs = append(reqs, cubelet.LeftPrime)

	full := cubelet.New(cubelet.WithAutoSpin(false))
	require.NoError(t, full.Apply(reqs...))
	short := cubelet.New(cubelet.WithAutoSpin(false))
	require.NoError(t, short.Apply(Simplify(reqs)...))

	assert.Equal(t, full.Cubelets(), short.Cubelets())
	assert.Equal(t, "R' L'", Format(Simplify(reqs)))
}
