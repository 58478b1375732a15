package interaction

import (
	"chosenoffset.com/makeescape/internal/core/gamestate"
	"chosenoffset.com/makeescape/internal/entity"
)

// pickup lifts an item off the ground into an empty hand.
func (e *Engine) pickup(gs *gamestate.GameState, m *entity.Movable) bool {
	if m.State != entity.Available || gs.Player.Carrying() {
		return false
	}
	if !e.move(m, entity.Carried) {
		return false
	}
	gs.Player.Holding = m.Kind
	return true
}

// workbench consumes a delivered material and reveals the tool once both
// halves of its recipe are in.
func (e *Engine) workbench(gs *gamestate.GameState) bool {
	held := gs.Player.Holding
	switch {
	case held == entity.None:
		return e.say(gs, gamestate.MsgNoMaterials)
	case !held.IsMaterial():
		return e.say(gs, gamestate.MsgCannotCraft)
	}

	if !e.move(gs.Item(held), entity.Consumed) {
		return false
	}
	takeFromHand(gs)

	r, _ := entity.RecipeFor(held)
	if gs.Item(r.A).State.Used() && gs.Item(r.B).State.Used() {
		if e.move(gs.Item(r.Tool), entity.Available) {
			gs.Landmark(r.Site).CanInteract = true
			e.log.Info("crafted", "tool", r.Tool, "for", r.Site)
		}
	}
	return true
}

type site struct {
	tool   entity.Item
	reward entity.Item
	hint   gamestate.Message // before the tool exists
	need   gamestate.Message // tool exists, wrong item held
}

var sites = map[entity.Landmark]site{
	entity.BridgePlace: {entity.Bridge, entity.Crystal, gamestate.MsgRiverTooWide, gamestate.MsgNeedBridge},
	entity.Hole:        {entity.PickAxe, entity.Coin, gamestate.MsgGroundTooHard, gamestate.MsgNeedPickAxe},
	entity.Tree:        {entity.LongKnife, entity.Apple, gamestate.MsgAppleOutOfReach, gamestate.MsgNeedLongKnife},
}

// toolSite applies a crafted tool to its landmark. Resolved sites no longer react.
func (e *Engine) toolSite(gs *gamestate.GameState, l entity.Landmark) bool {
	f := gs.Landmark(l)
	s := sites[l]
	switch {
	case f.Resolved:
		return false
	case !f.CanInteract:
		return e.say(gs, s.hint)
	case gs.Player.Holding != s.tool:
		return e.say(gs, s.need)
	}

	if !e.move(gs.Item(s.tool), entity.Consumed) {
		return false
	}
	takeFromHand(gs)
	f.Resolved = true
	f.CanInteract = false

	reward := gs.Item(s.reward)
	e.move(reward, entity.Available)
	e.log.Info("tool used", "tool", s.tool, "at", l, "reveals", s.reward)
	return true
}

// Solution is the pedestal assignment that opens the key, indexed by pillar
// slot (right, up, left, down, center). The center stays empty.
var Solution = [entity.NumPillars]entity.Item{
	entity.Coin,
	entity.Apple,
	entity.Crystal,
	entity.Rock,
	entity.None,
}

// pillar places an offering on an empty pedestal or takes one back into an
// empty hand.
func (e *Engine) pillar(gs *gamestate.GameState, l entity.Landmark) bool {
	f := gs.Landmark(l)
	if !f.CanInteract {
		return false
	}
	slot := l.PillarIndex()
	held := gs.Player.Holding
	onTop := gs.Pillars[slot]

	switch {
	case onTop == entity.None && held.IsOffering():
		m := gs.Item(held)
		if !e.move(m, entity.Placed) {
			return false
		}
		takeFromHand(gs)
		m.Pos = gs.OfferingPos(l)
		m.Room = f.Room
		gs.Pillars[slot] = held
	case onTop != entity.None && held == entity.None:
		if !e.move(gs.Item(onTop), entity.Carried) {
			return false
		}
		gs.Player.Holding = onTop
		gs.Pillars[slot] = entity.None
	default:
		return false
	}

	e.checkSolution(gs)
	return true
}

// checkSolution reveals the key and locks every pedestal once the offerings
// match Solution. The lock is permanent.
func (e *Engine) checkSolution(gs *gamestate.GameState) {
	if gs.Pillars != Solution {
		return
	}
	for i := 0; i < entity.NumPillars; i++ {
		gs.Landmark(entity.Pillar(i)).CanInteract = false
		if k := gs.Pillars[i]; k != entity.None {
			e.move(gs.Item(k), entity.Locked)
		}
	}
	e.move(gs.Item(entity.Key), entity.Available)
	e.log.Info("pedestals solved, key revealed")
}

// gate opens with the key and ends the run.
func (e *Engine) gate(gs *gamestate.GameState) bool {
	if gs.Player.Holding != entity.Key {
		return e.say(gs, gamestate.MsgGateLocked)
	}
	if !e.move(gs.Item(entity.Key), entity.Consumed) {
		return false
	}
	takeFromHand(gs)

	f := gs.Landmark(entity.Gate)
	f.Show = false
	f.CanInteract = false
	f.Resolved = true
	gs.Escaped = true
	e.log.Info("escaped", "tick", gs.Tick)
	return true
}
