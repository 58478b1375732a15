package render

import (
	"fmt"
	"math"

	"chosenoffset.com/makeescape/internal/core/geom"
	"chosenoffset.com/makeescape/internal/world/atlas"
)

// Tint multiplies the sampled texel.
type Tint struct {
	R, G, B, A float32
}

var (
	White     = Tint{1, 1, 1, 1}
	Highlight = Tint{1, 1, 0.7, 1}
)

// BatchVertex is a world-space vertex with normalized UVs (v up).
type BatchVertex struct {
	Pos  geom.Vec2
	UV   geom.Vec2
	Tint Tint
}

// Batch is a caller-owned triangle strip rebuilt each frame. Every emitted
// quad is six vertices: its four corners with the first and last repeated,
// so successive quads join with degenerate triangles.
type Batch struct {
	verts []BatchVertex
}

// VertsPerQuad is the number of vertices each Emit call appends.
const VertsPerQuad = 6

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.verts = b.verts[:0]
}

func (b *Batch) Len() int {
	return len(b.verts)
}

// Vertices returns the strip. The slice is only valid until the next Reset.
func (b *Batch) Vertices() []BatchVertex {
	return b.verts
}

// EmitQuad appends an axis-aligned quad.
func (b *Batch) EmitQuad(center, rad, uvMin, uvMax geom.Vec2, tint Tint) {
	b.emit(center, [4]geom.Vec2{
		geom.V(-rad.X, -rad.Y),
		geom.V(rad.X, -rad.Y),
		geom.V(-rad.X, rad.Y),
		geom.V(rad.X, rad.Y),
	}, uvMin, uvMax, tint)
}

// EmitSprite appends a sprite at its catalog size rotated by angle radians.
func (b *Batch) EmitSprite(s atlas.Sprite, center geom.Vec2, angle float32) {
	b.EmitSpriteTint(s, center, angle, White)
}

// EmitSpriteTint is EmitSprite with a tint.
func (b *Batch) EmitSpriteTint(s atlas.Sprite, center geom.Vec2, angle float32, tint Tint) {
	r := s.Rad
	corners := [4]geom.Vec2{
		geom.V(-r.X, -r.Y),
		geom.V(r.X, -r.Y),
		geom.V(-r.X, r.Y),
		geom.V(r.X, r.Y),
	}
	if angle != 0 {
		for i := range corners {
			corners[i] = corners[i].Rotate(angle)
		}
	}
	b.emit(center, corners, s.MinUV, s.MaxUV, tint)
}

func (b *Batch) emit(center geom.Vec2, off [4]geom.Vec2, uvMin, uvMax geom.Vec2, tint Tint) {
	uv := [4]geom.Vec2{
		uvMin,
		geom.V(uvMax.X, uvMin.Y),
		geom.V(uvMin.X, uvMax.Y),
		uvMax,
	}
	var q [4]BatchVertex
	for i := range q {
		q[i] = BatchVertex{Pos: center.Add(off[i]), UV: uv[i], Tint: tint}
	}
	b.verts = append(b.verts, q[0], q[0], q[1], q[2], q[3], q[3])
}

// Triangles converts the strip into triangle-list indices, dropping the
// degenerate joins.
func (b *Batch) Triangles() ([]uint16, error) {
	n := len(b.verts)
	if n > math.MaxUint16+1 {
		return nil, fmt.Errorf("batch of %d vertices exceeds 16-bit indices", n)
	}
	indices := make([]uint16, 0, n/VertsPerQuad*6)
	for i := 0; i+2 < n; i++ {
		a, c, d := b.verts[i], b.verts[i+1], b.verts[i+2]
		if a == c || c == d || a == d {
			continue
		}
		indices = append(indices, uint16(i), uint16(i+1), uint16(i+2))
	}
	return indices, nil
}

// Camera maps world units onto a screen of Width x Height pixels. The world
// origin is the screen center with y up.
type Camera struct {
	Rad           geom.Vec2
	Width, Height int
}

// DefaultCamera matches an 800x600 window.
func DefaultCamera(width, height int) Camera {
	return Camera{Rad: geom.V(40.0/3, 10), Width: width, Height: height}
}

// ToScreen converts a world position to screen pixels.
func (c Camera) ToScreen(p geom.Vec2) (x, y float32) {
	x = (p.X/c.Rad.X + 1) / 2 * float32(c.Width)
	y = (1 - p.Y/c.Rad.Y) / 2 * float32(c.Height)
	return x, y
}

// Project converts the strip into screen vertices. atlasW and atlasH turn
// normalized UVs back into texel coordinates with y down.
func (b *Batch) Project(cam Camera, atlasW, atlasH float32, dst []Vertex) []Vertex {
	dst = dst[:0]
	for _, v := range b.verts {
		x, y := cam.ToScreen(v.Pos)
		dst = append(dst, Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   v.UV.X * atlasW,
			SrcY:   (1 - v.UV.Y) * atlasH,
			ColorR: v.Tint.R,
			ColorG: v.Tint.G,
			ColorB: v.Tint.B,
			ColorA: v.Tint.A,
		})
	}
	return dst
}
