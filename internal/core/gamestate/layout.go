package gamestate

import (
	"chosenoffset.com/makeescape/internal/core/geom"
	"chosenoffset.com/makeescape/internal/entity"
	"chosenoffset.com/makeescape/internal/world/room"
)

// SpawnPos is where the player starts.
var SpawnPos = geom.V(0.5, 0)

// OfferingLift is how far above its pedestal a placed item rests.
const OfferingLift float32 = 1.2

var itemRad = geom.V(0.6, 0.6)

type itemSpawn struct {
	room  room.Room
	pos   geom.Vec2
	state entity.State
}

var itemLayout = [entity.NumItems]itemSpawn{
	entity.Board:       {room.Center, geom.V(6, -6), entity.Available},
	entity.Stick:       {room.Center, geom.V(10, -6), entity.Available},
	entity.Rope:        {room.Left, geom.V(2, -6), entity.Available},
	entity.Rock:        {room.Left, geom.V(8, -6), entity.Available},
	entity.PickAxeHead: {room.Right, geom.V(-6, -5), entity.Available},
	entity.Rod:         {room.Right, geom.V(0, 4), entity.Available},
	entity.Knife:       {room.Right, geom.V(-6, 3), entity.Available},

	entity.Bridge:    {room.Center, geom.V(-2.5, 3), entity.Hidden},
	entity.PickAxe:   {room.Center, geom.V(0, 3), entity.Hidden},
	entity.LongKnife: {room.Center, geom.V(2.5, 3), entity.Hidden},

	entity.Crystal: {room.Left, geom.V(-10, 0), entity.Dormant},
	entity.Apple:   {room.Left, geom.V(6, 1), entity.Hidden},
	entity.Coin:    {room.Right, geom.V(4, -4), entity.Hidden},
	entity.Key:     {room.Center, geom.V(-5, -4), entity.Hidden},
}

type landmarkSpawn struct {
	room        room.Room
	pos, rad    geom.Vec2
	canInteract bool
}

var landmarkLayout = [entity.NumLandmarks]landmarkSpawn{
	entity.Gate:      {room.Center, geom.V(10, 4.5), geom.V(1.5, 2), true},
	entity.Workbench: {room.Center, geom.V(0, 5), geom.V(2, 1.2), true},

	entity.PillarRight:  {room.Center, geom.V(-2, -4), geom.V(0.9, 0.9), true},
	entity.PillarUp:     {room.Center, geom.V(-5, -1), geom.V(0.9, 0.9), true},
	entity.PillarLeft:   {room.Center, geom.V(-8, -4), geom.V(0.9, 0.9), true},
	entity.PillarDown:   {room.Center, geom.V(-5, -7), geom.V(0.9, 0.9), true},
	entity.PillarCenter: {room.Center, geom.V(-5, -4), geom.V(0.9, 0.9), true},

	entity.Map: {room.Center, geom.V(8, -3), geom.V(1, 1), true},

	// Tool landmarks open up when their tool is crafted.
	entity.BridgePlace: {room.Left, geom.V(-3, 0), geom.V(1.5, 2.5), false},
	entity.Tree:        {room.Left, geom.V(6, 3), geom.V(1.5, 2.5), false},
	entity.Hole:        {room.Right, geom.V(4, -4), geom.V(1.2, 1.2), false},

	entity.Pond:  {room.Left, geom.V(-9, 4.5), geom.V(2.5, 1.5), true},
	entity.Scale: {room.Right, geom.V(8, 3), geom.V(1.5, 1.5), true},
}

// New returns the starting state of a run.
func New() GameState {
	var gs GameState
	gs.Room = room.Center
	gs.Player = Player{Pos: SpawnPos, Facing: entity.DirDown}

	for k := entity.None + 1; k < entity.NumItems; k++ {
		s := itemLayout[k]
		gs.Items[k] = entity.Movable{
			Kind:  k,
			Room:  s.room,
			Pos:   s.pos,
			Rad:   itemRad,
			State: s.state,
		}
	}
	for l := entity.Landmark(0); l < entity.NumLandmarks; l++ {
		s := landmarkLayout[l]
		gs.Landmarks[l] = entity.Fixture{
			Kind:        l,
			Room:        s.room,
			Pos:         s.pos,
			Rad:         s.rad,
			Show:        true,
			CanInteract: s.canInteract,
		}
	}
	return gs
}

// OfferingPos is where an item placed on pedestal p rests.
func (gs *GameState) OfferingPos(p entity.Landmark) geom.Vec2 {
	return gs.Landmarks[p].Pos.Add(geom.V(0, OfferingLift))
}
