// Package hud draws the message overlay: a panel of glyph sprites spelling
// out the active message code.
package hud

import (
	"strings"

	"chosenoffset.com/makeescape/internal/core/geom"
	"chosenoffset.com/makeescape/internal/core/gamestate"
	"chosenoffset.com/makeescape/internal/render"
	"chosenoffset.com/makeescape/internal/world/atlas"
)

var texts = [gamestate.NumMessages]string{
	gamestate.MsgNoMaterials:     "NO MATERIALS",
	gamestate.MsgCannotCraft:     "CANNOT CRAFT THAT",
	gamestate.MsgGateLocked:      "GATE LOCKED",
	gamestate.MsgRiverTooWide:    "TOO WIDE TO CROSS",
	gamestate.MsgNeedBridge:      "NEED A BRIDGE",
	gamestate.MsgGroundTooHard:   "GROUND TOO HARD",
	gamestate.MsgNeedPickAxe:     "NEED A PICK AXE",
	gamestate.MsgAppleOutOfReach: "APPLE OUT OF REACH",
	gamestate.MsgNeedLongKnife:   "NEED A LONG KNIFE",
	gamestate.MsgPondDeep:        "THE POND IS DEEP",
	gamestate.MsgMapHint:         "GOLD EAST FRUIT NORTH GEM WEST STONE SOUTH",
	gamestate.MsgScaleHint:       "LEAVE THE CENTER EMPTY",
}

// Text returns the overlay text for m, empty for MsgNone.
func Text(m gamestate.Message) string {
	if m < gamestate.NumMessages {
		return texts[m]
	}
	return ""
}

// Wrap breaks text into lines of at most cols runes at spaces. A word longer
// than cols gets a line of its own.
func Wrap(text string, cols int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > cols {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Config positions the overlay in world units.
type Config struct {
	Columns    int       // wrap width
	Top        float32   // y of the first line's center
	Advance    float32   // horizontal distance between glyph centers
	LineHeight float32   // vertical distance between lines
	GlyphRad   geom.Vec2 // half-extent of one glyph
	Padding    float32   // panel margin around the text
}

// DefaultConfig returns the layout used in the game window.
func DefaultConfig() Config {
	return Config{
		Columns:    24,
		Top:        8.9,
		Advance:    0.9,
		LineHeight: 1.1,
		GlyphRad:   geom.V(0.4, 0.45),
		Padding:    0.4,
	}
}

// Glyph is one placed letter.
type Glyph struct {
	Sprite atlas.SpriteID
	Pos    geom.Vec2
}

// Layout is the overlay geometry for one message.
type Layout struct {
	PanelCenter, PanelRad geom.Vec2
	Glyphs                []Glyph
}

// Empty reports whether there is nothing to draw.
func (l Layout) Empty() bool {
	return len(l.Glyphs) == 0
}

// HUD turns message codes into batch quads.
type HUD struct {
	cfg Config
}

func New(cfg Config) *HUD {
	return &HUD{cfg: cfg}
}

// Layout places each letter of m's text. Lines are centered on x = 0.
// Characters without a glyph sprite take up space but draw nothing.
func (h *HUD) Layout(m gamestate.Message) Layout {
	lines := Wrap(Text(m), h.cfg.Columns)
	if len(lines) == 0 {
		return Layout{}
	}

	var out Layout
	widest := 0
	for i, line := range lines {
		widest = max(widest, len(line))
		y := h.cfg.Top - float32(i)*h.cfg.LineHeight
		x0 := -float32(len(line)-1) * h.cfg.Advance / 2
		for j, r := range line {
			id, ok := atlas.Glyph(r)
			if !ok {
				continue
			}
			out.Glyphs = append(out.Glyphs, Glyph{Sprite: id, Pos: geom.V(x0+float32(j)*h.cfg.Advance, y)})
		}
	}

	n := float32(len(lines))
	out.PanelCenter = geom.V(0, h.cfg.Top-(n-1)*h.cfg.LineHeight/2)
	out.PanelRad = geom.V(
		float32(widest-1)*h.cfg.Advance/2+h.cfg.GlyphRad.X+h.cfg.Padding,
		(n-1)*h.cfg.LineHeight/2+h.cfg.GlyphRad.Y+h.cfg.Padding,
	)
	return out
}

// Draw appends the panel and glyphs for m. It emits nothing for MsgNone.
func (h *HUD) Draw(b *render.Batch, cat *atlas.Catalog, m gamestate.Message) {
	l := h.Layout(m)
	if l.Empty() {
		return
	}
	panel := cat.Sprite(atlas.SpriteMessagePanel)
	b.EmitQuad(l.PanelCenter, l.PanelRad, panel.MinUV, panel.MaxUV, render.White)
	for _, g := range l.Glyphs {
		s := cat.Sprite(g.Sprite)
		b.EmitQuad(g.Pos, h.cfg.GlyphRad, s.MinUV, s.MaxUV, render.White)
	}
}
