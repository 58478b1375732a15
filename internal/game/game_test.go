package game

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/makeescape/internal/assets"
	"chosenoffset.com/makeescape/internal/core/gamestate"
	"chosenoffset.com/makeescape/internal/core/geom"
	"chosenoffset.com/makeescape/internal/entity"
	"chosenoffset.com/makeescape/internal/render"
	"chosenoffset.com/makeescape/internal/simulation"
	"chosenoffset.com/makeescape/internal/ui/hud"
	"chosenoffset.com/makeescape/internal/world/atlas"
	"chosenoffset.com/makeescape/internal/world/room"
)

type fakeInput struct {
	pressed map[render.Key]bool
	closing bool
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.pressed[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.pressed[k] }
func (f *fakeInput) IsWindowClosing() bool              { return f.closing }

func (f *fakeInput) press(keys ...render.Key) {
	f.pressed = map[render.Key]bool{}
	for _, k := range keys {
		f.pressed[k] = true
	}
}

type fakeImage struct {
	w, h     int
	fills    int
	vertices int
	indices  []uint16
}

func (i *fakeImage) Size() (int, int) { return i.w, i.h }
func (i *fakeImage) Fill(color.Color) { i.fills++ }
func (i *fakeImage) Clear()           {}
func (i *fakeImage) Dispose()         {}
func (i *fakeImage) DrawTriangles(v []render.Vertex, idx []uint16, _ render.Image, _ *render.DrawTrianglesOptions) {
	i.vertices = len(v)
	i.indices = idx
}

type fakeRenderer struct{}

func (fakeRenderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return &fakeImage{w: b.Dx(), h: b.Dy()}
}

func testCatalog(t *testing.T) *atlas.Catalog {
	t.Helper()
	sprites := make([]atlas.Sprite, 0, atlas.NumSprites)
	for id := atlas.SpriteID(0); id < atlas.NumSprites; id++ {
		sprites = append(sprites, atlas.Sprite{Name: id.Name(), Rad: geom.V(1, 1), MaxUV: geom.V(0.1, 0.1)})
	}
	c, err := atlas.Resolve(sprites)
	require.NoError(t, err)
	return c
}

func newTestGame(t *testing.T) (*Game, *fakeInput) {
	in := &fakeInput{}
	g := New(Options{
		Width:   800,
		Height:  600,
		Input:   in,
		Sim:     simulation.New(simulation.DefaultConfig(), nil),
		Catalog: testCatalog(t),
		Atlas:   &fakeImage{w: 512, h: 256},
	})
	return g, in
}

func TestPoll(t *testing.T) {
	in := &fakeInput{}
	in.press(render.KeyZ, render.KeyLeft, render.KeyUp)

	f := Poll(in, DefaultBindings, 0.5)
	assert.Equal(t, []simulation.Event{simulation.EventUp, simulation.EventLeft, simulation.EventInteract}, f.Events)
	assert.Equal(t, 0.5, f.Elapsed)

	in.press()
	in.closing = true
	f = Poll(in, DefaultBindings, 0)
	assert.Equal(t, []simulation.Event{simulation.EventQuit}, f.Events)
}

func TestUpdateMovesAndQuits(t *testing.T) {
	g, in := newTestGame(t)

	in.press(render.KeyRight)
	require.NoError(t, g.Update())
	assert.Equal(t, geom.V(1, 0), g.State.Player.Pos)
	assert.Equal(t, entity.DirRight, g.State.Player.Facing)

	in.press()
	require.NoError(t, g.Update())
	assert.Equal(t, geom.V(1, 0), g.State.Player.Pos)

	in.press(render.KeyEscape)
	err := g.Update()
	assert.ErrorIs(t, err, ErrQuit)
	assert.True(t, errors.Is(err, render.ErrTerminate))
}

func TestComposeStartingRoom(t *testing.T) {
	g, _ := newTestGame(t)
	var b render.Batch
	Compose(&b, g.Catalog, g.HUD, &g.State)

	// background, gate, workbench, five pillars, map, board, stick, player
	assert.Equal(t, 12*render.VertsPerQuad, b.Len())
}

func TestComposeOverlays(t *testing.T) {
	g, _ := newTestGame(t)
	gs := &g.State
	gs.Escaped = true
	gs.Message = gamestate.MsgGateLocked
	gs.Landmark(entity.BridgePlace).Resolved = true

	var b render.Batch
	Compose(&b, g.Catalog, g.HUD, gs)

	glyphs := len(hud.New(hud.DefaultConfig()).Layout(gamestate.MsgGateLocked).Glyphs)
	want := 12 + 1 /* bridge end */ + 1 /* escaped */ + 1 /* panel */ + glyphs
	assert.Equal(t, want*render.VertsPerQuad, b.Len())
}

func TestComposeHeldItem(t *testing.T) {
	g, _ := newTestGame(t)
	gs := &g.State
	board := gs.Item(entity.Board)
	require.NoError(t, board.To(entity.Carried))
	gs.Player.Holding = entity.Board
	gs.SyncCarried()

	var b render.Batch
	Compose(&b, g.Catalog, g.HUD, gs)
	// board leaves the floor and shows above the player instead
	assert.Equal(t, 12*render.VertsPerQuad, b.Len())
	last := b.Vertices()[b.Len()-1]
	assert.Greater(t, last.Pos.Y, gs.Player.Pos.Y)
}

func TestComposeOtherRooms(t *testing.T) {
	g, _ := newTestGame(t)
	gs := &g.State

	gs.Room = room.Left
	var b render.Batch
	Compose(&b, g.Catalog, g.HUD, gs)
	// background, bridge place, tree, pond, rope, rock, crystal, player
	assert.Equal(t, 8*render.VertsPerQuad, b.Len())
	assert.Equal(t, g.Catalog.Sprite(atlas.SpriteLeft).MinUV, b.Vertices()[0].UV)

	gs.Room = room.Right
	b.Reset()
	Compose(&b, g.Catalog, g.HUD, gs)
	// background, hole, scale, pick axe head, rod, knife, player
	assert.Equal(t, 7*render.VertsPerQuad, b.Len())
}

func TestDraw(t *testing.T) {
	g, _ := newTestGame(t)
	screen := &fakeImage{w: 800, h: 600}
	g.Draw(screen)

	assert.Equal(t, 1, screen.fills)
	assert.Equal(t, 12*render.VertsPerQuad, screen.vertices)
	assert.Len(t, screen.indices, 12*6)
}

func TestItemSpriteNames(t *testing.T) {
	for k := entity.Board; k < entity.NumItems; k++ {
		assert.Equal(t, k.String(), ItemSprite(k).Name())
	}
}

func TestPlayerSprite(t *testing.T) {
	tests := []struct {
		facing entity.Direction
		stride bool
		want   string
	}{
		{entity.DirRight, false, "player_right_0"},
		{entity.DirUp, true, "player_up_1"},
		{entity.DirLeft, false, "player_left_0"},
		{entity.DirDown, true, "player_down_1"},
	}
	for _, tt := range tests {
		p := gamestate.Player{Facing: tt.facing, Stride: tt.stride}
		assert.Equal(t, tt.want, PlayerSprite(p).Name())
	}
}

func TestLandmarkVariants(t *testing.T) {
	gs := gamestate.New()
	for _, tt := range []struct {
		l             entity.Landmark
		before, after atlas.SpriteID
	}{
		{entity.BridgePlace, atlas.SpriteRiver, atlas.SpriteBridgeBuilt},
		{entity.Tree, atlas.SpriteTree, atlas.SpriteTreeCut},
		{entity.Hole, atlas.SpriteHole, atlas.SpriteHoleDug},
	} {
		f := gs.Landmark(tt.l)
		assert.Equal(t, tt.before, landmarkSprite(f), tt.l.String())
		f.Resolved = true
		assert.Equal(t, tt.after, landmarkSprite(f), tt.l.String())
	}
	assert.Equal(t, atlas.SpritePillar, landmarkSprite(gs.Landmark(entity.PillarCenter)))
}

func TestManagerRestartsAfterEscape(t *testing.T) {
	in := &fakeInput{}
	bundle := &assets.Bundle{Atlas: image.NewRGBA(image.Rect(0, 0, 512, 256)), Catalog: testCatalog(t)}
	m := NewManager(fakeRenderer{}, in, bundle, simulation.New(simulation.DefaultConfig(), nil), 800, 600, nil)
	require.Equal(t, 1, m.Runs())
	assert.Equal(t, float32(512), m.Game.AtlasW)

	in.press(render.KeyEnter)
	require.NoError(t, m.Update())
	assert.Equal(t, 1, m.Runs(), "enter does nothing mid-run")

	m.Game.State.Escaped = true
	require.NoError(t, m.Update())
	assert.Equal(t, 2, m.Runs())
	assert.False(t, m.Game.State.Escaped)

	w, h := m.Layout(1, 1)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}
