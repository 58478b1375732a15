// Package placeholders draws a stand-in sprite atlas and its sprite table so
// the game runs without the original artwork.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ColorPalette defines colors for the placeholder art.
var ColorPalette = struct {
	// Backgrounds
	Floor    color.RGBA
	Grass    color.RGBA
	Cave     color.RGBA
	Border   color.RGBA
	Water    color.RGBA
	Wood     color.RGBA
	Stone    color.RGBA
	Leaves   color.RGBA
	Earth    color.RGBA
	Iron     color.RGBA
	Gold     color.RGBA
	Gem      color.RGBA
	Apple    color.RGBA
	Player   color.RGBA
	Text     color.RGBA
	Panel    color.RGBA
	Escaped  color.RGBA
	Rope     color.RGBA
	Blade    color.RGBA
	Backdrop color.RGBA
}{
	Floor:    color.RGBA{70, 65, 60, 255},
	Grass:    color.RGBA{60, 110, 50, 255},
	Cave:     color.RGBA{55, 50, 70, 255},
	Border:   color.RGBA{200, 200, 200, 255},
	Water:    color.RGBA{40, 90, 190, 255},
	Wood:     color.RGBA{140, 100, 60, 255},
	Stone:    color.RGBA{130, 125, 115, 255},
	Leaves:   color.RGBA{30, 140, 60, 255},
	Earth:    color.RGBA{90, 60, 35, 255},
	Iron:     color.RGBA{150, 150, 165, 255},
	Gold:     color.RGBA{255, 215, 0, 255},
	Gem:      color.RGBA{120, 220, 255, 255},
	Apple:    color.RGBA{220, 40, 40, 255},
	Player:   color.RGBA{0, 255, 100, 255},
	Text:     color.RGBA{250, 245, 230, 255},
	Panel:    color.RGBA{20, 18, 16, 220},
	Escaped:  color.RGBA{255, 140, 0, 255},
	Rope:     color.RGBA{200, 170, 110, 255},
	Blade:    color.RGBA{210, 215, 225, 255},
	Backdrop: color.RGBA{30, 28, 25, 255},
}

func newImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// CreateSolidTile creates a solid-colored w x h sprite.
func CreateSolidTile(w, h int, col color.RGBA) *image.RGBA {
	img := newImage(w, h)
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(w, h int, fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(w, h, fillColor)
	for i := 0; i < borderWidth; i++ {
		for x := 0; x < w; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, h-1-i, borderColor)
		}
		for y := 0; y < h; y++ {
			img.Set(i, y, borderColor)
			img.Set(w-1-i, y, borderColor)
		}
	}
	return img
}

// CreatePatternedTile creates a tile with a simple pattern: "grid", "dots",
// "waves" or "diagonal".
func CreatePatternedTile(w, h int, baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(w, h, baseColor)

	switch pattern {
	case "grid":
		for y := 0; y < h; y += 8 {
			for x := 0; x < w; x++ {
				img.Set(x, y, patternColor)
			}
		}
		for x := 0; x < w; x += 8 {
			for y := 0; y < h; y++ {
				img.Set(x, y, patternColor)
			}
		}
	case "dots":
		for y := 3; y < h; y += 7 {
			for x := (y / 7 % 2) * 3; x < w; x += 7 {
				img.Set(x, y, patternColor)
			}
		}
	case "waves":
		for y := 2; y < h; y += 6 {
			for x := 0; x < w; x++ {
				img.Set(x, y+(x/3)%2, patternColor)
			}
		}
	case "diagonal":
		for i := 0; i < w+h; i += 4 {
			for d := 0; d < h; d++ {
				if x := i - d; x >= 0 && x < w {
					img.Set(x, d, patternColor)
				}
			}
		}
	}
	return img
}

// CreateCircle creates a filled ellipse with an outline on a transparent sprite.
func CreateCircle(w, h int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := newImage(w, h)
	rx, ry := float64(w)/2-1, float64(h)/2-1
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			d := dx*dx + dy*dy
			switch {
			case d <= 0.7:
				img.Set(x, y, fillColor)
			case d <= 1:
				img.Set(x, y, outlineColor)
			}
		}
	}
	return img
}

// GlyphFace is the font placeholder letters are drawn in.
var GlyphFace = basicfont.Face7x13

// CreateGlyph draws one letter in GlyphFace on a transparent cell.
func CreateGlyph(r rune, col color.RGBA) *image.RGBA {
	img := newImage(GlyphFace.Advance, GlyphFace.Height)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: GlyphFace,
		Dot:  fixed.P(0, GlyphFace.Ascent),
	}
	d.DrawString(string(r))
	return img
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
