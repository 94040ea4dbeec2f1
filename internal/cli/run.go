package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/wallpaperer/internal/compose"
	"github.com/ironsheep/wallpaperer/internal/imaging"
)

// Run executes one composite: load the source image, render the canvas,
// write the result.
func Run(cfg *Config) error {
	cache := imaging.NewImageCache()
	img, err := cache.Load(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.InputPath, err)
	}
	if debugEnabled() {
		b := img.Bounds()
		log.Printf("loaded %s (%dx%d), canvas %s anchor %s",
			cfg.InputPath, b.Dx(), b.Dy(), cfg.CanvasSize, cfg.Anchor)
	}

	canvas, err := compose.Composite(img, cfg.CanvasSize, cfg.Anchor, cfg.Options)
	if err != nil {
		return err
	}

	if err := imaging.Save(canvas, cfg.OutputPath); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}
	if debugEnabled() {
		log.Printf("wrote %s", cfg.OutputPath)
	}
	return nil
}

func debugEnabled() bool {
	return os.Getenv("WALLPAPERER_LOG_LEVEL") == "debug"
}
