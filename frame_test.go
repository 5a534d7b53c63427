package cubelet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubelet/pkg/types"
)

func TestFrameDuringAnimatedTurn(t *testing.T) {
	ctrl := New(WithAutoSpin(false))
	before := ctrl.Frame()
	require.Nil(t, before.Turn)
	require.Len(t, before.Cubelets, 26)

	require.NoError(t, ctrl.Begin(Back))
	_, _ = ctrl.Tick()
	_, _ = ctrl.Tick()

	f := ctrl.Frame()
	require.NotNil(t, f.Turn)
	assert.Equal(t, before.Revision, f.Revision)
	assert.Equal(t, before.Cubelets, f.Cubelets)
	assert.Equal(t, Back, f.Turn.Request)
	assert.Equal(t, types.CounterClockwise, f.Turn.Effective)
	assert.InDelta(t, 10, f.Turn.Angle, 1e-9)
	assert.InDelta(t, 10, f.Turn.SignedAngle(), 1e-9)
	assert.InDelta(t, 10.0/90.0, f.Turn.Progress(), 1e-9)

	members := 0
	for _, cl := range f.Cubelets {
		if f.Turn.Contains(cl.Position) {
			members++
			assert.Equal(t, -1, cl.Position.Z)
		}
	}
	assert.Equal(t, 9, members)
}

func TestSignedAngleClockwiseIsNegative(t *testing.T) {
	turn := ActiveTurn{Request: Front, Effective: types.Clockwise, Angle: 30}
	assert.InDelta(t, -30, turn.SignedAngle(), 1e-9)
	assert.True(t, turn.Contains(types.Position{X: 1, Y: 0, Z: 1}))
	assert.False(t, turn.Contains(types.Position{X: 1, Y: 0, Z: 0}))
}

func TestFrameRevisionAdvancesOnCommit(t *testing.T) {
	ctrl := New()
	rev := ctrl.Frame().Revision
	require.NoError(t, ctrl.Turn(Down))
	assert.Equal(t, rev+1, ctrl.Frame().Revision)
}
