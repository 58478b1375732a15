package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/makeescape/internal/core/geom"
	"chosenoffset.com/makeescape/internal/world/atlas"
)

func TestEmitQuadAppendsSixVertices(t *testing.T) {
	var b Batch
	b.EmitQuad(geom.V(1, 2), geom.V(0.5, 1), geom.V(0, 0), geom.V(0.25, 0.5), White)
	require.Equal(t, VertsPerQuad, b.Len())

	v := b.Vertices()
	assert.Equal(t, v[0], v[1], "leading vertex repeated")
	assert.Equal(t, v[4], v[5], "trailing vertex repeated")
	assert.Equal(t, geom.V(0.5, 1), v[1].Pos)
	assert.Equal(t, geom.V(1.5, 1), v[2].Pos)
	assert.Equal(t, geom.V(0.5, 3), v[3].Pos)
	assert.Equal(t, geom.V(1.5, 3), v[4].Pos)
	assert.Equal(t, geom.V(0, 0), v[1].UV)
	assert.Equal(t, geom.V(0.25, 0.5), v[4].UV)
}

func TestEmitSpriteUsesCatalogSize(t *testing.T) {
	s := atlas.Sprite{Name: "rock", MinUV: geom.V(0.1, 0.1), MaxUV: geom.V(0.2, 0.2), Rad: geom.V(2, 1)}

	var b Batch
	b.EmitSprite(s, geom.V(0, 0), 0)
	v := b.Vertices()
	assert.Equal(t, geom.V(-2, -1), v[1].Pos)
	assert.Equal(t, geom.V(2, 1), v[4].Pos)
	assert.Equal(t, White, v[0].Tint)

	b.Reset()
	assert.Zero(t, b.Len())

	b.EmitSpriteTint(s, geom.V(0, 0), math.Pi/2, Highlight)
	v = b.Vertices()
	require.Len(t, v, VertsPerQuad)
	// A quarter turn maps (-2,-1) to (1,-2).
	assert.InDelta(t, 1, v[1].Pos.X, 1e-5)
	assert.InDelta(t, -2, v[1].Pos.Y, 1e-5)
	assert.Equal(t, Highlight, v[1].Tint)
}

func TestTrianglesSkipDegenerateJoins(t *testing.T) {
	var b Batch
	for i := 0; i < 3; i++ {
		b.EmitQuad(geom.V(float32(i)*3, 0), geom.V(1, 1), geom.V(0, 0), geom.V(1, 1), White)
	}
	idx, err := b.Triangles()
	require.NoError(t, err)
	require.Len(t, idx, 3*2*3, "two triangles per quad")

	assert.Equal(t, []uint16{1, 2, 3, 2, 3, 4}, idx[:6])
	assert.Equal(t, []uint16{7, 8, 9, 8, 9, 10}, idx[6:12])
}

func TestTrianglesEmptyBatch(t *testing.T) {
	var b Batch
	idx, err := b.Triangles()
	require.NoError(t, err)
	assert.Empty(t, idx)
}

func TestCameraToScreen(t *testing.T) {
	cam := DefaultCamera(800, 600)

	x, y := cam.ToScreen(geom.V(0, 0))
	assert.InDelta(t, 400, x, 1e-3)
	assert.InDelta(t, 300, y, 1e-3)

	x, y = cam.ToScreen(geom.V(-40.0/3, 10))
	assert.InDelta(t, 0, x, 1e-3)
	assert.InDelta(t, 0, y, 1e-3)

	x, y = cam.ToScreen(geom.V(40.0/3, -10))
	assert.InDelta(t, 800, x, 1e-3)
	assert.InDelta(t, 600, y, 1e-3)
}

func TestProjectFlipsTexelY(t *testing.T) {
	var b Batch
	b.EmitQuad(geom.V(0, 0), geom.V(1, 1), geom.V(0.5, 0.25), geom.V(1, 0.75), Tint{0.5, 0.5, 0.5, 1})

	verts := b.Project(DefaultCamera(800, 600), 200, 100, nil)
	require.Len(t, verts, VertsPerQuad)

	assert.InDelta(t, 100, verts[1].SrcX, 1e-4)
	assert.InDelta(t, 75, verts[1].SrcY, 1e-4, "bottom-left corner samples low in the image")
	assert.InDelta(t, 200, verts[4].SrcX, 1e-4)
	assert.InDelta(t, 25, verts[4].SrcY, 1e-4)
	assert.Equal(t, float32(0.5), verts[0].ColorR)
	assert.Less(t, verts[4].DstY, verts[1].DstY, "world up is screen up")
}
