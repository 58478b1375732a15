package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"chosenoffset.com/makeescape/internal/core/gamestate"
	"chosenoffset.com/makeescape/internal/entity"
	"chosenoffset.com/makeescape/internal/interaction"
	"chosenoffset.com/makeescape/internal/simulation"
	"chosenoffset.com/makeescape/internal/ui/hud"
)

var flagExpectEscape bool

var errNotEscaped = errors.New("script finished without escaping")

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run an input script without a window",
	Long: `Feeds the frames of a YAML script through the simulation and prints
the final state. Each frame is checked against the state invariants.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagExpectEscape, "expect-escape", false, "Fail unless the script escapes")
}

func runReplay(cmd *cobra.Command, args []string) error {
	script, err := simulation.LoadScript(args[0])
	if err != nil {
		return err
	}

	sim := simulation.New(cfg.Simulation, interaction.NewEngine(logger.WithPrefix("interaction")))
	gs := gamestate.New()
	for i, f := range script.Frames {
		if gs.Quit {
			break
		}
		sim.Apply(&gs, f)
		if err := gs.Check(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary(script, &gs))
	if flagExpectEscape && !gs.Escaped {
		return errNotEscaped
	}
	return nil
}

func summary(script *simulation.Script, gs *gamestate.GameState) string {
	name := script.Name
	if name == "" {
		name = "replay"
	}

	pillars := make([]string, 0, entity.NumPillars)
	for i, k := range gs.Pillars {
		pillars = append(pillars, fmt.Sprintf("%s=%s", entity.Pillar(i), k))
	}

	msg := gs.Message.String()
	if t := hud.Text(gs.Message); t != "" {
		msg = fmt.Sprintf("%s (%q)", msg, t)
	}

	result := badStyle.Render("still inside")
	if gs.Escaped {
		result = goodStyle.Render("ESCAPED")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(name),
		row("frames", fmt.Sprint(gs.Tick)),
		row("room", gs.Room.String()),
		row("position", fmt.Sprintf("(%g, %g)", gs.Player.Pos.X, gs.Player.Pos.Y)),
		row("holding", gs.Player.Holding.String()),
		row("message", msg),
		row("pedestals", strings.Join(pillars, " ")),
		row("result", result),
	)
	return boxStyle.Render(body)
}
