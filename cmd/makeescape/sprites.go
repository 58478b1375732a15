package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chosenoffset.com/makeescape/internal/world/atlas"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite catalog",
	Long:  `Loads the configured sprite table and prints every sprite the game draws.`,
	Args:  cobra.NoArgs,
	RunE:  runSprites,
}

func runSprites(cmd *cobra.Command, args []string) error {
	a := cfg.Assets
	c, err := atlas.LoadFile(a.SpritesPath(), float32(a.AtlasWidth), float32(a.AtlasHeight))
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d sprites from %s", atlas.NumSprites, a.SpritesPath())))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  %-16s  %-23s  %-23s  %s\n", "NAME", "UV MIN", "UV MAX", "RADIUS")
	for id := atlas.SpriteID(0); id < atlas.NumSprites; id++ {
		s := c.Sprite(id)
		fmt.Fprintf(&b, "  %-16s  (%9.5f, %9.5f)  (%9.5f, %9.5f)  (%.3f, %.3f)\n",
			s.Name, s.MinUV.X, s.MinUV.Y, s.MaxUV.X, s.MaxUV.Y, s.Rad.X, s.Rad.Y)
	}
	if n := c.Unused(); n > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%d table entries unused", n)))
		b.WriteByte('\n')
	}
	fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}
