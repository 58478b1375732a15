package placeholders

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"sort"

	"chosenoffset.com/makeescape/internal/world/atlas"
)

// Atlas dimensions of the generated image.
const (
	AtlasWidth  = 512
	AtlasHeight = 256
	padding     = 1
)

// Output file names inside the target directory.
const (
	AtlasFile   = "atlas.png"
	SpritesFile = "sprites.bin"
)

// Sprite is one generated sprite before packing.
type Sprite struct {
	ID  atlas.SpriteID
	Img *image.RGBA
}

var itemColors = map[atlas.SpriteID]color.RGBA{
	atlas.SpriteBoard:       ColorPalette.Wood,
	atlas.SpriteRope:        ColorPalette.Rope,
	atlas.SpritePickAxeHead: ColorPalette.Iron,
	atlas.SpriteStick:       Darken(ColorPalette.Wood, 0.8),
	atlas.SpriteRod:         Lighten(ColorPalette.Wood, 0.3),
	atlas.SpriteKnife:       ColorPalette.Blade,
	atlas.SpriteBridge:      Lighten(ColorPalette.Wood, 0.15),
	atlas.SpritePickAxe:     Darken(ColorPalette.Iron, 0.8),
	atlas.SpriteLongKnife:   Lighten(ColorPalette.Blade, 0.4),
	atlas.SpriteCrystal:     ColorPalette.Gem,
	atlas.SpriteCoin:        ColorPalette.Gold,
	atlas.SpriteApple:       ColorPalette.Apple,
	atlas.SpriteRock:        ColorPalette.Stone,
	atlas.SpriteKey:         Lighten(ColorPalette.Gold, 0.4),
}

// player draws the walker facing dir (0 right, 1 up, 2 left, 3 down); from
// behind no eyes show. stride moves the feet.
func player(dir int, stride bool) *image.RGBA {
	img := newImage(16, 20)
	body := ColorPalette.Player
	draw.Draw(img, image.Rect(3, 2, 13, 16), &image.Uniform{body}, image.Point{}, draw.Src)

	eye := ColorPalette.Backdrop
	switch dir {
	case 0:
		img.Set(11, 5, eye)
	case 2:
		img.Set(4, 5, eye)
	case 3:
		img.Set(6, 5, eye)
		img.Set(9, 5, eye)
	}

	feet := Darken(body, 0.6)
	l, r := 4, 10
	if stride {
		l, r = 5, 9
	}
	draw.Draw(img, image.Rect(l, 16, l+2, 20), &image.Uniform{feet}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r, 16, r+2, 20), &image.Uniform{feet}, image.Point{}, draw.Src)
	return img
}

// Sprites draws every sprite the game uses, in SpriteID order.
func Sprites() []Sprite {
	p := ColorPalette
	out := make([]Sprite, 0, atlas.NumSprites)
	add := func(id atlas.SpriteID, img *image.RGBA) {
		out = append(out, Sprite{ID: id, Img: img})
	}

	add(atlas.SpriteCenter, CreatePatternedTile(160, 120, p.Floor, Darken(p.Floor, 0.8), "grid"))
	add(atlas.SpriteLeft, CreatePatternedTile(160, 120, p.Grass, Darken(p.Grass, 0.8), "dots"))
	add(atlas.SpriteRight, CreatePatternedTile(160, 120, p.Cave, Darken(p.Cave, 0.8), "diagonal"))

	for dir := 0; dir < 4; dir++ {
		add(atlas.SpritePlayerRight0+atlas.SpriteID(2*dir), player(dir, false))
		add(atlas.SpritePlayerRight0+atlas.SpriteID(2*dir+1), player(dir, true))
	}

	for id := atlas.SpriteBoard; id <= atlas.SpriteKey; id++ {
		c := itemColors[id]
		add(id, CreateCircle(14, 14, c, Darken(c, 0.5)))
	}

	add(atlas.SpriteGate, CreateBorderedTile(36, 48, p.Iron, Darken(p.Iron, 0.5), 3))
	add(atlas.SpriteWorkbench, CreateBorderedTile(48, 28, p.Wood, Darken(p.Wood, 0.6), 2))
	add(atlas.SpritePillar, CreateBorderedTile(22, 22, p.Stone, Lighten(p.Stone, 0.4), 2))
	add(atlas.SpriteRiver, CreatePatternedTile(36, 60, p.Water, Lighten(p.Water, 0.4), "waves"))
	add(atlas.SpriteBridgeBuilt, CreatePatternedTile(36, 60, p.Wood, Darken(p.Wood, 0.7), "grid"))
	add(atlas.SpriteBridgeEnd, CreateBorderedTile(24, 60, p.Wood, Darken(p.Wood, 0.7), 2))
	add(atlas.SpriteTree, CreateCircle(36, 60, p.Leaves, Darken(p.Leaves, 0.6)))
	add(atlas.SpriteTreeCut, CreateCircle(36, 60, Lighten(p.Leaves, 0.3), p.Apple))
	add(atlas.SpritePond, CreateCircle(60, 36, p.Water, Darken(p.Water, 0.6)))
	add(atlas.SpriteMap, CreateBorderedTile(24, 24, p.Rope, p.Earth, 2))
	add(atlas.SpriteScale, CreateBorderedTile(36, 36, p.Gold, Darken(p.Gold, 0.6), 2))
	add(atlas.SpriteHole, CreateBorderedTile(28, 28, p.Earth, Darken(p.Earth, 0.7), 2))
	add(atlas.SpriteHoleDug, CreateCircle(28, 28, p.Backdrop, p.Earth))

	add(atlas.SpriteEscaped, CreateBorderedTile(120, 48, p.Escaped, p.Text, 4))
	add(atlas.SpriteMessagePanel, CreateSolidTile(4, 4, p.Panel))

	for r := 'a'; r <= 'z'; r++ {
		id, _ := atlas.Glyph(r)
		add(id, CreateGlyph(r-'a'+'A', p.Text))
	}
	return out
}

// Pack places sprites on shelves, tallest first, and returns the atlas and
// one table record per sprite in input order.
func Pack(sprites []Sprite, width, height int) (*image.RGBA, []atlas.Record, error) {
	order := make([]int, len(sprites))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sprites[order[a]].Img.Bounds().Dy() > sprites[order[b]].Img.Bounds().Dy()
	})

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	records := make([]atlas.Record, len(sprites))
	x, y, shelf := 0, 0, 0
	for _, i := range order {
		s := sprites[i]
		w, h := s.Img.Bounds().Dx(), s.Img.Bounds().Dy()
		if w > width {
			return nil, nil, fmt.Errorf("sprite %s is wider than the atlas", s.ID)
		}
		if x+w > width {
			x, y, shelf = 0, y+shelf+padding, 0
		}
		if shelf == 0 {
			shelf = h
		}
		if y+h > height {
			return nil, nil, fmt.Errorf("atlas %dx%d too small at sprite %s", width, height, s.ID)
		}

		dst := image.Rect(x, y, x+w, y+h)
		draw.Draw(img, dst, s.Img, s.Img.Bounds().Min, draw.Src)
		records[i] = atlas.Record{
			Name:   s.ID.Name(),
			Left:   float32(dst.Min.X),
			Top:    float32(dst.Min.Y),
			Right:  float32(dst.Max.X),
			Bottom: float32(dst.Max.Y),
		}
		x += w + padding
	}
	return img, records, nil
}

// Generate draws and packs the full placeholder atlas.
func Generate() (*image.RGBA, []atlas.Record, error) {
	return Pack(Sprites(), AtlasWidth, AtlasHeight)
}

// GenerateAndSave writes the atlas image and sprite table into dir.
func GenerateAndSave(dir string) error {
	img, records, err := Generate()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := SavePNG(img, filepath.Join(dir, AtlasFile)); err != nil {
		return fmt.Errorf("failed to save atlas: %w", err)
	}

	var buf bytes.Buffer
	if err := atlas.EncodeTable(&buf, records); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, SpritesFile), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to save sprite table: %w", err)
	}
	return nil
}
