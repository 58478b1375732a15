package game

import (
	"io"

	"github.com/charmbracelet/log"

	"chosenoffset.com/makeescape/internal/assets"
	"chosenoffset.com/makeescape/internal/render"
	"chosenoffset.com/makeescape/internal/simulation"
)

// Manager owns the running Game and starts a new run when the player asks
// for one after escaping.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager

	opts Options
	runs int
	log  *log.Logger
}

// NewManager uploads the atlas texture and starts the first run.
func NewManager(r render.Renderer, input render.InputManager, bundle *assets.Bundle, sim *simulation.Simulator, width, height int, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts := Options{
		Width:   width,
		Height:  height,
		Input:   input,
		Sim:     sim,
		Catalog: bundle.Catalog,
		Atlas:   r.NewImageFromImage(bundle.Atlas),
		Logger:  logger,
	}
	m := &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Renderer:     r,
		InputMgr:     input,
		opts:         opts,
		log:          logger,
	}
	m.Restart()
	return m
}

// Restart throws away the current run.
func (m *Manager) Restart() {
	m.runs++
	m.Game = New(m.opts)
	m.log.Info("run started", "run", m.runs)
}

// Runs counts started runs.
func (m *Manager) Runs() int {
	return m.runs
}

// Update updates the game state.
func (m *Manager) Update() error {
	if m.Game.State.Escaped && m.InputMgr.IsKeyJustPressed(render.KeyEnter) {
		m.Restart()
		return nil
	}
	return m.Game.Update()
}

// Draw draws the current run.
func (m *Manager) Draw(screen render.Image) {
	m.Game.Draw(screen)
}

// Layout returns the logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
