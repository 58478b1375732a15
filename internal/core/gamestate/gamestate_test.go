package gamestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/makeescape/internal/entity"
	"chosenoffset.com/makeescape/internal/world/room"
)

func TestNewStartsInCenterEmptyHanded(t *testing.T) {
	gs := New()
	assert.Equal(t, room.Center, gs.Room)
	assert.Equal(t, SpawnPos, gs.Player.Pos)
	assert.False(t, gs.Player.Carrying())
	assert.False(t, gs.Escaped)
	assert.Equal(t, MsgNone, gs.Message)
	require.NoError(t, gs.Check())
}

func TestNewLayout(t *testing.T) {
	gs := New()
	for _, k := range []entity.Item{entity.Bridge, entity.PickAxe, entity.LongKnife, entity.Apple, entity.Coin, entity.Key} {
		assert.Equal(t, entity.Hidden, gs.Item(k).State, k.String())
	}
	assert.Equal(t, entity.Dormant, gs.Item(entity.Crystal).State)
	assert.True(t, gs.Item(entity.Board).State.CanInteract())

	for _, l := range []entity.Landmark{entity.BridgePlace, entity.Tree, entity.Hole} {
		assert.False(t, gs.Landmark(l).CanInteract, l.String())
	}
	for i := 0; i < entity.NumPillars; i++ {
		assert.True(t, gs.Landmark(entity.Pillar(i)).CanInteract)
		assert.Equal(t, entity.None, gs.Pillars[i])
	}
}

func TestSpawnTouchesNothing(t *testing.T) {
	gs := New()
	for i := range gs.Landmarks {
		f := &gs.Landmarks[i]
		if f.Room == room.Center {
			assert.False(t, entity.Touches(f, gs.Player.Pos), f.Kind.String())
		}
	}
}

func TestCopyIsDeep(t *testing.T) {
	a := New()
	b := a
	b.Item(entity.Board).State = entity.Carried
	b.Pillars[0] = entity.Coin
	assert.Equal(t, entity.Available, a.Item(entity.Board).State)
	assert.Equal(t, entity.None, a.Pillars[0])
}

func TestSyncCarried(t *testing.T) {
	gs := New()
	gs.Item(entity.Rope).State = entity.Carried
	gs.Player.Holding = entity.Rope
	gs.Player.Pos.X = 3

	gs.SyncCarried()
	assert.Equal(t, gs.Player.Pos, gs.Item(entity.Rope).Pos)
	assert.Equal(t, room.Center, gs.Item(entity.Rope).Room)
	require.NoError(t, gs.Check())
}

func TestCheckCatchesMismatchedHand(t *testing.T) {
	gs := New()
	gs.Player.Holding = entity.Board
	assert.Error(t, gs.Check())
}

func TestOfferingPosIsAbovePedestal(t *testing.T) {
	gs := New()
	p := gs.OfferingPos(entity.PillarUp)
	assert.Equal(t, gs.Landmark(entity.PillarUp).Pos.X, p.X)
	assert.InDelta(t, gs.Landmark(entity.PillarUp).Pos.Y+OfferingLift, p.Y, 1e-6)
}
