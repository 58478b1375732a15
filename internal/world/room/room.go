// Package room models the three horizontally tiled rooms and the rule that
// carries the player from one to the next.
package room

import "chosenoffset.com/makeescape/internal/core/geom"

// Room identifies which background is active and which entities can be reached.
type Room uint8

const (
	Center Room = iota
	Left
	Right
)

// NumRooms is the number of rooms in the world.
const NumRooms = 3

func (r Room) String() string {
	switch r {
	case Center:
		return "center"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Limits of the walkable area, in world units.
const (
	MinY float32 = -8.5
	MaxY float32 = 6.5

	// ExitX is the distance from the origin past which a room with an exit on
	// that side hands the player to its neighbour.
	ExitX float32 = 12.5

	// RightWallX is the hard right edge of the right room.
	RightWallX float32 = 11.5

	// RiverBankX is the left edge of the left room until the bridge is built.
	RiverBankX float32 = -3.5
)

// Bounds is the horizontal walkable span of a room and where its exits lead.
// An exit of "none" on a side means the span is a clamp on that side.
type Bounds struct {
	MinX, MaxX float32
	ExitLeft   Room
	ExitRight  Room
	HasLeft    bool
	HasRight   bool
}

// BoundsFor returns the horizontal limits of r. bridgeBuilt opens the river
// bank in the left room.
func BoundsFor(r Room, bridgeBuilt bool) Bounds {
	switch r {
	case Left:
		b := Bounds{MinX: RiverBankX, MaxX: ExitX, ExitRight: Center, HasRight: true}
		if bridgeBuilt {
			b.MinX = -ExitX
		}
		return b
	case Right:
		return Bounds{MinX: -ExitX, MaxX: RightWallX, ExitLeft: Center, HasLeft: true}
	default:
		return Bounds{
			MinX: -ExitX, MaxX: ExitX,
			ExitLeft: Left, HasLeft: true,
			ExitRight: Right, HasRight: true,
		}
	}
}

// Walk advances pos by delta inside room r and applies the clamp and
// wraparound rules. It returns the new room and position.
//
// Crossing an exit threshold in the direction of travel teleports the player
// to the mirrored threshold of the neighbouring room. Left and right never
// connect directly.
func Walk(r Room, pos, delta geom.Vec2, bridgeBuilt bool) (Room, geom.Vec2) {
	next := pos.Add(delta)
	next.Y = clamp(next.Y, MinY, MaxY)

	b := BoundsFor(r, bridgeBuilt)
	switch {
	case delta.X > 0 && next.X > b.MaxX:
		if b.HasRight {
			return b.ExitRight, geom.V(-ExitX, next.Y)
		}
		next.X = b.MaxX
	case delta.X < 0 && next.X < b.MinX:
		if b.HasLeft {
			return b.ExitLeft, geom.V(ExitX, next.Y)
		}
		next.X = b.MinX
	}
	return r, next
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
