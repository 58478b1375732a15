package entity

import (
	"chosenoffset.com/makeescape/internal/core/geom"
	"chosenoffset.com/makeescape/internal/world/room"
)

// Body is anything with a position and an interaction box.
type Body interface {
	Center() geom.Vec2
	HalfExtent() geom.Vec2
}

// Touches is the proximity test used for every interactable: the player is
// inside the body's axis-aligned box, edges included.
func Touches(b Body, player geom.Vec2) bool {
	return b.Center().Within(player, b.HalfExtent())
}

// Movable is an item that can be carried.
type Movable struct {
	Kind  Item
	Room  room.Room
	Pos   geom.Vec2
	Rad   geom.Vec2
	State State

	// Touched is true when the player overlapped the item during the last
	// interaction pass.
	Touched bool
}

func (m *Movable) Center() geom.Vec2     { return m.Pos }
func (m *Movable) HalfExtent() geom.Vec2 { return m.Rad }

// To moves the item into state s. The state is unchanged on error.
func (m *Movable) To(s State) error {
	if !CanTransition(m.State, s) {
		return transitionError(m.Kind, m.State, s)
	}
	m.State = s
	return nil
}

// Fixture is a placed landmark. It never moves and is never carried.
type Fixture struct {
	Kind        Landmark
	Room        room.Room
	Pos         geom.Vec2
	Rad         geom.Vec2
	Show        bool
	CanInteract bool

	// Resolved marks a landmark whose puzzle step is finished: the tool was
	// applied, or the gate was opened.
	Resolved bool
	Touched  bool
}

func (f *Fixture) Center() geom.Vec2     { return f.Pos }
func (f *Fixture) HalfExtent() geom.Vec2 { return f.Rad }
