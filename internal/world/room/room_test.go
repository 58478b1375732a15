package room

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/makeescape/internal/core/geom"
)

func TestWalkWrapsCenterToRightAndBack(t *testing.T) {
	r, p := Walk(Center, geom.V(12.5, 0), geom.V(0.5, 0), false)
	assert.Equal(t, Right, r)
	assert.Equal(t, geom.V(-ExitX, 0), p)

	r, p = Walk(Right, geom.V(-12.5, 1), geom.V(-0.5, 0), false)
	assert.Equal(t, Center, r)
	assert.Equal(t, geom.V(ExitX, 1), p)
}

func TestWalkWrapsCenterToLeftAndBack(t *testing.T) {
	r, p := Walk(Center, geom.V(-12.5, 2), geom.V(-0.5, 0), false)
	assert.Equal(t, Left, r)
	assert.Equal(t, geom.V(ExitX, 2), p)

	r, p = Walk(Left, geom.V(12.5, 2), geom.V(0.5, 0), false)
	assert.Equal(t, Center, r)
	assert.Equal(t, geom.V(-ExitX, 2), p)
}

func TestRightRoomDoesNotReachLeft(t *testing.T) {
	r, p := Walk(Right, geom.V(11.5, 0), geom.V(0.5, 0), false)
	assert.Equal(t, Right, r)
	assert.Equal(t, RightWallX, p.X)
}

func TestRiverBankClampsUntilBridgeBuilt(t *testing.T) {
	r, p := Walk(Left, geom.V(-3.5, 0), geom.V(-0.5, 0), false)
	assert.Equal(t, Left, r)
	assert.Equal(t, RiverBankX, p.X)

	r, p = Walk(Left, geom.V(-3.5, 0), geom.V(-0.5, 0), true)
	assert.Equal(t, Left, r)
	assert.Equal(t, float32(-4), p.X)

	r, p = Walk(Left, geom.V(-12.5, 0), geom.V(-0.5, 0), true)
	assert.Equal(t, Left, r)
	assert.Equal(t, -ExitX, p.X)
}

func TestVerticalClampIsRoomIndependent(t *testing.T) {
	for _, r := range []Room{Center, Left, Right} {
		_, p := Walk(r, geom.V(0, MaxY), geom.V(0, 0.5), true)
		assert.Equal(t, MaxY, p.Y, r.String())
		_, p = Walk(r, geom.V(0, MinY), geom.V(0, -0.5), true)
		assert.Equal(t, MinY, p.Y, r.String())
	}
}

func TestInteriorStepIsUnclamped(t *testing.T) {
	r, p := Walk(Center, geom.V(0.5, 0), geom.V(0, -0.5), false)
	assert.Equal(t, Center, r)
	assert.Equal(t, geom.V(0.5, -0.5), p)
}
