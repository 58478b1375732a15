// Package gamestate holds the complete state of one run of the game.
//
// GameState contains only arrays and scalars, so assigning it copies it
// deeply. The simulation relies on this to step states by value.
package gamestate

import (
	"fmt"

	"chosenoffset.com/makeescape/internal/core/geom"
	"chosenoffset.com/makeescape/internal/entity"
	"chosenoffset.com/makeescape/internal/world/room"
)

// Message is the code shown by the overlay. MsgNone hides it.
type Message uint8

const (
	MsgNone Message = iota
	MsgNoMaterials
	MsgCannotCraft
	MsgGateLocked
	MsgRiverTooWide
	MsgNeedBridge
	MsgGroundTooHard
	MsgNeedPickAxe
	MsgAppleOutOfReach
	MsgNeedLongKnife
	MsgPondDeep
	MsgMapHint
	MsgScaleHint

	NumMessages
)

var messageNames = [NumMessages]string{
	MsgNone:            "none",
	MsgNoMaterials:     "no_materials",
	MsgCannotCraft:     "cannot_craft",
	MsgGateLocked:      "gate_locked",
	MsgRiverTooWide:    "river_too_wide",
	MsgNeedBridge:      "need_bridge",
	MsgGroundTooHard:   "ground_too_hard",
	MsgNeedPickAxe:     "need_pick_axe",
	MsgAppleOutOfReach: "apple_out_of_reach",
	MsgNeedLongKnife:   "need_long_knife",
	MsgPondDeep:        "pond_deep",
	MsgMapHint:         "map_hint",
	MsgScaleHint:       "scale_hint",
}

func (m Message) String() string {
	if m < NumMessages {
		return messageNames[m]
	}
	return "unknown"
}

// Player is the walking character.
type Player struct {
	Pos     geom.Vec2
	Holding entity.Item
	Facing  entity.Direction
	Walking bool
	Stride  bool // alternates every step for the walk animation
}

// Carrying reports whether the player's hand is full.
func (p Player) Carrying() bool {
	return p.Holding != entity.None
}

// GameState is the whole world.
type GameState struct {
	Player    Player
	Room      room.Room
	Items     [entity.NumItems]entity.Movable
	Landmarks [entity.NumLandmarks]entity.Fixture

	// Pillars records what sits on each pedestal, entity.None when empty.
	Pillars [entity.NumPillars]entity.Item

	// Interact is the one-shot action flag. Movement clears it and so does
	// the first handler that acts on it.
	Interact bool
	Message  Message
	Escaped  bool
	Quit     bool

	Tick uint64
}

// Item returns the movable for kind k.
func (gs *GameState) Item(k entity.Item) *entity.Movable {
	return &gs.Items[k]
}

// Landmark returns the fixture for l.
func (gs *GameState) Landmark(l entity.Landmark) *entity.Fixture {
	return &gs.Landmarks[l]
}

// BridgeBuilt reports whether the bridge has been laid over the river.
func (gs *GameState) BridgeBuilt() bool {
	return gs.Landmarks[entity.BridgePlace].Resolved
}

// SyncCarried snaps every carried item onto the player.
func (gs *GameState) SyncCarried() {
	for i := range gs.Items {
		if gs.Items[i].State.IsCarried() {
			gs.Items[i].Pos = gs.Player.Pos
			gs.Items[i].Room = gs.Room
		}
	}
}

// Check verifies the invariants that tie the player, items and pedestals
// together. It is used by tests and by the replay command.
func (gs *GameState) Check() error {
	carried := entity.None
	for k := entity.None + 1; k < entity.NumItems; k++ {
		m := &gs.Items[k]
		if m.Kind != k {
			return fmt.Errorf("item slot %s holds %s", k, m.Kind)
		}
		if m.State.IsCarried() {
			if carried != entity.None {
				return fmt.Errorf("both %s and %s are carried", carried, k)
			}
			carried = k
			if m.Pos != gs.Player.Pos {
				return fmt.Errorf("%s is carried but at %v, player at %v", k, m.Pos, gs.Player.Pos)
			}
		}
	}
	if carried != gs.Player.Holding {
		return fmt.Errorf("player holds %s but carried item is %s", gs.Player.Holding, carried)
	}
	for i, k := range gs.Pillars {
		if k == entity.None {
			continue
		}
		s := gs.Items[k].State
		if s != entity.Placed && s != entity.Locked {
			return fmt.Errorf("pillar %d records %s in state %s", i, k, s)
		}
	}
	return nil
}
