package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/makeescape/internal/core/geom"
)

func TestTouchesBox(t *testing.T) {
	m := &Movable{Pos: geom.V(2, 2), Rad: geom.V(1, 0.5)}
	assert.True(t, Touches(m, geom.V(3, 2.5)))
	assert.False(t, Touches(m, geom.V(3.1, 2)))
	assert.False(t, Touches(m, geom.V(2, 1.4)))

	f := &Fixture{Pos: geom.V(0, 0), Rad: geom.V(2, 2)}
	assert.True(t, Touches(f, geom.V(-2, 2)))
}

func TestStateFlagsNeverShowWhileCarried(t *testing.T) {
	for s := Hidden; s <= Consumed; s++ {
		if s.IsCarried() {
			assert.False(t, s.Show(), s.String())
		}
		if s.CanInteract() {
			assert.True(t, s.Show(), s.String())
		}
	}
}

func TestMovableTransitions(t *testing.T) {
	m := &Movable{Kind: Apple, State: Hidden}

	require.NoError(t, m.To(Available))
	require.NoError(t, m.To(Carried))
	require.NoError(t, m.To(Placed))
	require.NoError(t, m.To(Carried))
	require.NoError(t, m.To(Placed))
	require.NoError(t, m.To(Locked))

	err := m.To(Carried)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, Locked, m.State)
}

func TestConsumedIsTerminal(t *testing.T) {
	m := &Movable{Kind: Board, State: Carried}
	require.NoError(t, m.To(Consumed))
	for s := Hidden; s <= Consumed; s++ {
		assert.False(t, CanTransition(Consumed, s), s.String())
	}
}

func TestCategories(t *testing.T) {
	for i := None; i < NumItems; i++ {
		n := 0
		if i.IsMaterial() {
			n++
		}
		if i.IsTool() {
			n++
		}
		if i.IsOffering() {
			n++
		}
		assert.LessOrEqual(t, n, 1, i.String())
	}
	assert.True(t, Rope.IsMaterial())
	assert.True(t, LongKnife.IsTool())
	assert.True(t, Coin.IsOffering())
	assert.False(t, Key.IsOffering())
}

func TestRecipeFor(t *testing.T) {
	r, ok := RecipeFor(Rope)
	require.True(t, ok)
	assert.Equal(t, Bridge, r.Tool)

	r, ok = RecipeFor(Knife)
	require.True(t, ok)
	assert.Equal(t, LongKnife, r.Tool)

	_, ok = RecipeFor(Apple)
	assert.False(t, ok)
}

func TestPillarIndex(t *testing.T) {
	for i := 0; i < NumPillars; i++ {
		l := Pillar(i)
		assert.True(t, l.IsPillar())
		assert.Equal(t, i, l.PillarIndex())
	}
	assert.False(t, Gate.IsPillar())
	assert.False(t, BridgePlace.IsPillar())
	assert.Equal(t, "pillar_center", PillarCenter.String())
}
