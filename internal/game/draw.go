package game

import (
	"image/color"

	"chosenoffset.com/makeescape/internal/core/geom"
	"chosenoffset.com/makeescape/internal/core/gamestate"
	"chosenoffset.com/makeescape/internal/entity"
	"chosenoffset.com/makeescape/internal/render"
	"chosenoffset.com/makeescape/internal/ui/hud"
	"chosenoffset.com/makeescape/internal/world/atlas"
	"chosenoffset.com/makeescape/internal/world/room"
)

var (
	backdrop = color.RGBA{30, 28, 25, 255}

	// BridgeEndPos is where the far end of the built bridge shows in Center.
	BridgeEndPos = geom.V(-room.ExitX, 0)
	// heldOffset lifts the carried item above the player's head.
	heldOffset = geom.V(0, 1.4)
	heldScale  = float32(0.7)
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backdrop)

	g.batch.Reset()
	Compose(&g.batch, g.Catalog, g.HUD, &g.State)

	idx, err := g.batch.Triangles()
	if err != nil {
		g.log.Error("dropping frame", "err", err)
		return
	}
	g.verts = g.batch.Project(g.Camera, g.AtlasW, g.AtlasH, g.verts)
	screen.DrawTriangles(g.verts, idx, g.Atlas, nil)
}

// Compose appends the whole frame for gs: background, landmarks and
// movables in interaction order, the player, then overlays.
func Compose(b *render.Batch, cat *atlas.Catalog, h *hud.HUD, gs *gamestate.GameState) {
	b.EmitSprite(cat.Sprite(background(gs.Room)), geom.Vec2{}, 0)

	for l := entity.Landmark(0); l < entity.NumLandmarks; l++ {
		f := gs.Landmark(l)
		if !f.Show || f.Room != gs.Room {
			continue
		}
		tint := render.White
		if f.Touched {
			tint = render.Highlight
		}
		b.EmitSpriteTint(cat.Sprite(landmarkSprite(f)), f.Pos, 0, tint)
	}
	if gs.Room == room.Center && gs.BridgeBuilt() {
		b.EmitSprite(cat.Sprite(atlas.SpriteBridgeEnd), BridgeEndPos, 0)
	}

	for k := entity.Item(1); k < entity.NumItems; k++ {
		m := gs.Item(k)
		if !m.State.Show() || m.Room != gs.Room {
			continue
		}
		tint := render.White
		if m.Touched && m.State.CanInteract() {
			tint = render.Highlight
		}
		b.EmitSpriteTint(cat.Sprite(ItemSprite(k)), m.Pos, 0, tint)
	}

	p := gs.Player
	b.EmitSprite(cat.Sprite(PlayerSprite(p)), p.Pos, 0)
	if p.Carrying() {
		s := cat.Sprite(ItemSprite(p.Holding))
		b.EmitQuad(p.Pos.Add(heldOffset), s.Rad.Scale(heldScale), s.MinUV, s.MaxUV, render.White)
	}

	if gs.Escaped {
		b.EmitSprite(cat.Sprite(atlas.SpriteEscaped), geom.Vec2{}, 0)
	}
	h.Draw(b, cat, gs.Message)
}

func background(r room.Room) atlas.SpriteID {
	switch r {
	case room.Left:
		return atlas.SpriteLeft
	case room.Right:
		return atlas.SpriteRight
	default:
		return atlas.SpriteCenter
	}
}

func landmarkSprite(f *entity.Fixture) atlas.SpriteID {
	switch f.Kind {
	case entity.Gate:
		return atlas.SpriteGate
	case entity.Workbench:
		return atlas.SpriteWorkbench
	case entity.PillarRight, entity.PillarUp, entity.PillarLeft, entity.PillarDown, entity.PillarCenter:
		return atlas.SpritePillar
	case entity.BridgePlace:
		if f.Resolved {
			return atlas.SpriteBridgeBuilt
		}
		return atlas.SpriteRiver
	case entity.Tree:
		if f.Resolved {
			return atlas.SpriteTreeCut
		}
		return atlas.SpriteTree
	case entity.Hole:
		if f.Resolved {
			return atlas.SpriteHoleDug
		}
		return atlas.SpriteHole
	case entity.Pond:
		return atlas.SpritePond
	case entity.Map:
		return atlas.SpriteMap
	case entity.Scale:
		return atlas.SpriteScale
	}
	return atlas.SpriteMessagePanel
}

// ItemSprite returns the sprite for a movable kind. Item and sprite enums
// share order from Board to Key.
func ItemSprite(k entity.Item) atlas.SpriteID {
	return atlas.SpriteBoard + atlas.SpriteID(k-entity.Board)
}

// PlayerSprite picks the walk frame for the player's facing and stride.
func PlayerSprite(p gamestate.Player) atlas.SpriteID {
	id := atlas.SpritePlayerRight0 + 2*atlas.SpriteID(p.Facing)
	if p.Stride {
		id++
	}
	return id
}
