package atlas

import (
	"errors"
	"fmt"
	"io"
	"os"

	"chosenoffset.com/makeescape/internal/core/geom"
)

// ErrSpriteNotFound is returned when the table lacks a sprite the game draws.
var ErrSpriteNotFound = errors.New("sprite not found")

// ReferenceRad is the on-screen half-extent of the reference sprite. Every
// other sprite is scaled by its pixel size relative to the reference.
var ReferenceRad = geom.V(13.3, 9.975)

// Sprite is a resolved descriptor. UVs are normalized with v growing upward.
type Sprite struct {
	Name         string
	MinUV, MaxUV geom.Vec2
	Rad          geom.Vec2
}

// Build converts raw records into descriptors for an atlas of the given
// pixel size. records[0] is the reference sprite.
func Build(records []Record, atlasW, atlasH float32) ([]Sprite, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}
	if atlasW <= 0 || atlasH <= 0 {
		return nil, fmt.Errorf("invalid atlas size %vx%v", atlasW, atlasH)
	}

	ref := records[0]
	refW, refH := ref.Right-ref.Left, ref.Bottom-ref.Top
	if refW <= 0 || refH <= 0 {
		return nil, fmt.Errorf("reference sprite %s has no area", ref.Name)
	}

	sprites := make([]Sprite, len(records))
	for i, r := range records {
		w, h := r.Right-r.Left, r.Bottom-r.Top
		sprites[i] = Sprite{
			Name:  r.Name,
			MinUV: geom.V(r.Left/atlasW, (atlasH-r.Bottom)/atlasH),
			MaxUV: geom.V(r.Right/atlasW, (atlasH-r.Top)/atlasH),
			Rad:   geom.V(ReferenceRad.X*w/refW, ReferenceRad.Y*h/refH),
		}
	}
	return sprites, nil
}

// Catalog maps every SpriteID to its descriptor.
type Catalog struct {
	sprites [NumSprites]Sprite
	extra   int
}

// Resolve looks up every SpriteID by exact name. The first missing name is an error.
func Resolve(sprites []Sprite) (*Catalog, error) {
	byName := make(map[string]Sprite, len(sprites))
	for _, s := range sprites {
		byName[s.Name] = s
	}

	c := &Catalog{}
	for id := SpriteID(0); id < NumSprites; id++ {
		s, ok := byName[id.Name()]
		if !ok {
			return nil, fmt.Errorf("%s: %w", id.Name(), ErrSpriteNotFound)
		}
		c.sprites[id] = s
	}
	c.extra = len(byName) - int(NumSprites)
	return c, nil
}

// Load decodes a table and resolves it against an atlas of the given size.
func Load(r io.Reader, atlasW, atlasH float32) (*Catalog, error) {
	records, err := DecodeTable(r)
	if err != nil {
		return nil, err
	}
	sprites, err := Build(records, atlasW, atlasH)
	if err != nil {
		return nil, err
	}
	return Resolve(sprites)
}

// LoadFile is Load on a file.
func LoadFile(path string, atlasW, atlasH float32) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite table %s: %w", path, err)
	}
	defer f.Close()

	c, err := Load(f, atlasW, atlasH)
	if err != nil {
		return nil, fmt.Errorf("sprite table %s: %w", path, err)
	}
	return c, nil
}

// Sprite returns the descriptor for id.
func (c *Catalog) Sprite(id SpriteID) Sprite {
	return c.sprites[id]
}

// Unused is how many table entries no SpriteID refers to.
func (c *Catalog) Unused() int {
	return c.extra
}
