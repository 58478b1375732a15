// Package interaction is the puzzle state machine. Each pass looks at what the
// player is touching in the active room and, if the interact flag is set,
// lets the first matching handler act on it.
//
// Precedence is fixed: landmarks before movables, each group in declaration
// order. The first handler that acts clears the flag, so at most one effect
// happens per press.
package interaction

import (
	"io"

	"github.com/charmbracelet/log"

	"chosenoffset.com/makeescape/internal/core/gamestate"
	"chosenoffset.com/makeescape/internal/entity"
)

// Engine runs interaction passes over a GameState.
type Engine struct {
	log *log.Logger
}

// NewEngine creates an engine. A nil logger discards output.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{log: logger}
}

// Run performs one interaction pass. Nothing changes once the player has escaped.
func (e *Engine) Run(gs *gamestate.GameState) {
	if gs.Escaped {
		return
	}
	defer gs.SyncCarried()

	e.markTouched(gs)
	if !gs.Interact {
		return
	}

	for l := entity.Landmark(0); l < entity.NumLandmarks; l++ {
		f := gs.Landmark(l)
		if !f.Show || !f.Touched {
			continue
		}
		if e.landmark(gs, l) {
			gs.Interact = false
			return
		}
	}

	for k := entity.None + 1; k < entity.NumItems; k++ {
		m := gs.Item(k)
		if !m.Touched {
			continue
		}
		if e.pickup(gs, m) {
			gs.Interact = false
			return
		}
	}
}

func (e *Engine) markTouched(gs *gamestate.GameState) {
	p := gs.Player.Pos
	for i := range gs.Landmarks {
		f := &gs.Landmarks[i]
		f.Touched = f.Room == gs.Room && entity.Touches(f, p)
	}
	for i := range gs.Items {
		m := &gs.Items[i]
		m.Touched = m.Kind != entity.None && m.Room == gs.Room && m.State.Show() && entity.Touches(m, p)
	}
}

// landmark dispatches to the handler for l and reports whether it acted.
func (e *Engine) landmark(gs *gamestate.GameState, l entity.Landmark) bool {
	switch l {
	case entity.Gate:
		return e.gate(gs)
	case entity.Workbench:
		return e.workbench(gs)
	case entity.PillarRight, entity.PillarUp, entity.PillarLeft, entity.PillarDown, entity.PillarCenter:
		return e.pillar(gs, l)
	case entity.BridgePlace, entity.Tree, entity.Hole:
		return e.toolSite(gs, l)
	case entity.Pond:
		return e.say(gs, gamestate.MsgPondDeep)
	case entity.Map:
		return e.say(gs, gamestate.MsgMapHint)
	case entity.Scale:
		return e.say(gs, gamestate.MsgScaleHint)
	default:
		e.log.Warn("no handler for landmark", "landmark", l)
		return false
	}
}

func (e *Engine) say(gs *gamestate.GameState, m gamestate.Message) bool {
	gs.Message = m
	e.log.Debug("message", "code", m, "room", gs.Room)
	return true
}

// move transitions m and logs the change. Illegal transitions leave m alone.
func (e *Engine) move(m *entity.Movable, s entity.State) bool {
	from := m.State
	if err := m.To(s); err != nil {
		e.log.Error("transition rejected", "err", err)
		return false
	}
	e.log.Debug("item", "kind", m.Kind, "from", from, "to", s)
	return true
}

// takeFromHand empties the player's hand. The caller moves the item out of
// the Carried state.
func takeFromHand(gs *gamestate.GameState) entity.Item {
	k := gs.Player.Holding
	gs.Player.Holding = entity.None
	return k
}
