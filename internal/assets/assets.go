// Package assets loads the atlas image and sprite table at start-up.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/makeescape/internal/config"
	"chosenoffset.com/makeescape/internal/world/atlas"
)

// Bundle is everything the draw pass needs from disk.
type Bundle struct {
	Atlas   image.Image
	Catalog *atlas.Catalog
	Width   int
	Height  int
}

// Load reads the image and the sprite table concurrently. Either failing
// fails the whole load.
func Load(ctx context.Context, cfg config.AssetsConfig, logger *log.Logger) (*Bundle, error) {
	b := &Bundle{Width: cfg.AtlasWidth, Height: cfg.AtlasHeight}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		img, err := loadImage(gctx, cfg.AtlasPath())
		if err != nil {
			return err
		}
		if got := img.Bounds().Size(); got.X != cfg.AtlasWidth || got.Y != cfg.AtlasHeight {
			return fmt.Errorf("atlas %s is %dx%d, config expects %dx%d",
				cfg.AtlasPath(), got.X, got.Y, cfg.AtlasWidth, cfg.AtlasHeight)
		}
		b.Atlas = img
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		c, err := atlas.LoadFile(cfg.SpritesPath(), float32(cfg.AtlasWidth), float32(cfg.AtlasHeight))
		if err != nil {
			return err
		}
		b.Catalog = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("assets loaded",
			"atlas", cfg.AtlasPath(),
			"sprites", atlas.NumSprites,
			"unused", b.Catalog.Unused())
	}
	return b, nil
}

func loadImage(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open atlas: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas %s: %w", path, err)
	}
	return img, nil
}
