package placeholders

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/makeescape/internal/world/atlas"
)

func TestSpritesCoverEveryID(t *testing.T) {
	sprites := Sprites()
	require.Len(t, sprites, int(atlas.NumSprites))
	for i, s := range sprites {
		assert.Equal(t, atlas.SpriteID(i), s.ID)
		assert.NotNil(t, s.Img, s.ID.String())
	}
}

func TestGeneratePacksWithoutOverlap(t *testing.T) {
	img, records, err := Generate()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, AtlasWidth, AtlasHeight), img.Bounds())
	require.Len(t, records, int(atlas.NumSprites))
	assert.Equal(t, "center", records[0].Name, "reference sprite comes first")

	rects := make([]image.Rectangle, len(records))
	for i, r := range records {
		rects[i] = image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
		assert.True(t, rects[i].In(img.Bounds()), r.Name)
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, rects[i].Overlaps(rects[j]), "%s overlaps %s", records[i].Name, records[j].Name)
		}
	}
}

func TestPackTooSmall(t *testing.T) {
	_, _, err := Pack(Sprites(), 200, 100)
	assert.Error(t, err)
}

func TestCreateGlyphDrawsInk(t *testing.T) {
	img := CreateGlyph('A', ColorPalette.Text)
	assert.Equal(t, GlyphFace.Advance, img.Bounds().Dx())

	ink := 0
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y).A > 0 {
				ink++
			}
		}
	}
	assert.Positive(t, ink)
}

func TestShading(t *testing.T) {
	c := color.RGBA{100, 100, 100, 255}
	assert.Equal(t, color.RGBA{50, 50, 50, 255}, Darken(c, 0.5))
	assert.Equal(t, color.RGBA{177, 177, 177, 255}, Lighten(c, 0.5))
}

func TestGenerateAndSaveRoundTrips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	require.NoError(t, GenerateAndSave(dir))

	_, err := os.Stat(filepath.Join(dir, AtlasFile))
	require.NoError(t, err)

	c, err := atlas.LoadFile(filepath.Join(dir, SpritesFile), AtlasWidth, AtlasHeight)
	require.NoError(t, err)
	assert.Equal(t, atlas.ReferenceRad, c.Sprite(atlas.SpriteCenter).Rad)
	assert.Zero(t, c.Unused())
}
