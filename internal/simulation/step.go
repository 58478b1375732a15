package simulation

import (
	"chosenoffset.com/makeescape/internal/core/gamestate"
	"chosenoffset.com/makeescape/internal/interaction"
	"chosenoffset.com/makeescape/internal/world/room"
)

// Simulator advances game states frame by frame.
type Simulator struct {
	cfg    Config
	engine *interaction.Engine
}

// New creates a simulator. A nil engine gets a silent one.
func New(cfg Config, engine *interaction.Engine) *Simulator {
	if engine == nil {
		engine = interaction.NewEngine(nil)
	}
	return &Simulator{cfg: cfg, engine: engine}
}

// Step returns the state that follows gs after frame f. gs is not modified.
func (s *Simulator) Step(gs gamestate.GameState, f Frame) gamestate.GameState {
	s.Apply(&gs, f)
	return gs
}

// Apply advances gs in place by one frame.
func (s *Simulator) Apply(gs *gamestate.GameState, f Frame) {
	gs.Tick++
	for _, ev := range f.Events {
		if ev == EventQuit {
			gs.Quit = true
			continue
		}
		if gs.Escaped {
			continue
		}
		if ev == EventInteract {
			s.press(gs)
			continue
		}
		s.walk(gs, ev)
	}
	s.engine.Run(gs)
}

// Replay applies frames in order starting from gs and returns the result.
func (s *Simulator) Replay(gs gamestate.GameState, frames []Frame) gamestate.GameState {
	for _, f := range frames {
		if gs.Quit {
			break
		}
		s.Apply(&gs, f)
	}
	return gs
}

// press handles the action key. A visible message swallows the press.
func (s *Simulator) press(gs *gamestate.GameState) {
	if gs.Message != gamestate.MsgNone {
		gs.Message = gamestate.MsgNone
		gs.Interact = false
		return
	}
	gs.Interact = true
}

func (s *Simulator) walk(gs *gamestate.GameState, ev Event) {
	dir, unit, ok := ev.direction()
	if !ok {
		return
	}
	p := &gs.Player
	p.Facing = dir
	p.Stride = !p.Stride
	p.Walking = !p.Walking
	gs.Interact = false

	next, pos := room.Walk(gs.Room, p.Pos, unit.Scale(s.cfg.Step), gs.BridgeBuilt())
	if next != gs.Room {
		// Messages belong to the room they were raised in.
		gs.Message = gamestate.MsgNone
	}
	gs.Room = next
	p.Pos = pos
}
