package main

import (
	"context"

	"github.com/spf13/cobra"

	"chosenoffset.com/makeescape/internal/assets"
	"chosenoffset.com/makeescape/internal/game"
	"chosenoffset.com/makeescape/internal/interaction"
	"chosenoffset.com/makeescape/internal/render/ebiten"
	"chosenoffset.com/makeescape/internal/simulation"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Opens the game window. Arrow keys walk, Z or Space interacts,
Escape quits. After escaping, Enter starts a new run.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	bundle, err := assets.Load(context.Background(), cfg.Assets, logger.WithPrefix("assets"))
	if err != nil {
		logger.Fatal("could not load assets", "err", err)
	}

	engine := interaction.NewEngine(logger.WithPrefix("interaction"))
	sim := simulation.New(cfg.Simulation, engine)
	mgr := game.NewManager(
		ebiten.NewRenderer(),
		ebiten.NewInputManager(),
		bundle,
		sim,
		cfg.Window.Width,
		cfg.Window.Height,
		logger.WithPrefix("game"),
	)

	eng := ebiten.NewEngine()
	eng.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	eng.SetWindowTitle(cfg.Window.Title)
	eng.SetWindowResizable(false)
	eng.SetWindowClosingHandled(true)

	if err := eng.RunGame(mgr); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}
	logger.Info("bye", "runs", mgr.Runs())
}
