// Package game is the frame loop glue: it polls input into simulation frames
// and draws the resulting state as one sprite batch per frame.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"chosenoffset.com/makeescape/internal/core/gamestate"
	"chosenoffset.com/makeescape/internal/render"
	"chosenoffset.com/makeescape/internal/simulation"
	"chosenoffset.com/makeescape/internal/ui/hud"
	"chosenoffset.com/makeescape/internal/world/atlas"
)

// ErrQuit ends the loop after the player quits.
var ErrQuit = fmt.Errorf("player quit: %w", render.ErrTerminate)

// tick is the fixed update interval at ebiten's default rate.
const tick = 1.0 / 60.0

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	InputMgr render.InputManager
	Bindings []Binding
	Sim      *simulation.Simulator
	State    gamestate.GameState

	Catalog *atlas.Catalog
	Atlas   render.Image
	AtlasW  float32
	AtlasH  float32
	HUD     *hud.HUD
	Camera  render.Camera

	batch render.Batch
	verts []render.Vertex
	log   *log.Logger

	lastMessage gamestate.Message
	escaped     bool
}

// Options configures New.
type Options struct {
	Width, Height int
	Input         render.InputManager
	Sim           *simulation.Simulator
	Catalog       *atlas.Catalog
	Atlas         render.Image
	Logger        *log.Logger
}

// New starts a fresh run.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := opts.Atlas.Size()
	return &Game{
		ScreenWidth:  opts.Width,
		ScreenHeight: opts.Height,
		InputMgr:     opts.Input,
		Bindings:     DefaultBindings,
		Sim:          opts.Sim,
		State:        gamestate.New(),
		Catalog:      opts.Catalog,
		Atlas:        opts.Atlas,
		AtlasW:       float32(w),
		AtlasH:       float32(h),
		HUD:          hud.New(hud.DefaultConfig()),
		Camera:       render.DefaultCamera(opts.Width, opts.Height),
		log:          logger,
	}
}

// Update polls input and advances the simulation by one frame.
func (g *Game) Update() error {
	f := Poll(g.InputMgr, g.Bindings, tick)
	g.Sim.Apply(&g.State, f)

	if m := g.State.Message; m != g.lastMessage {
		if m != gamestate.MsgNone {
			g.log.Debug("message", "code", m, "text", hud.Text(m))
		}
		g.lastMessage = m
	}
	if g.State.Escaped && !g.escaped {
		g.escaped = true
		g.log.Info("escaped", "ticks", g.State.Tick)
	}
	if g.State.Quit {
		return ErrQuit
	}
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
