package compose

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/wallpaperer/internal/detect"
	"github.com/ironsheep/wallpaperer/internal/layout"
)

// Options bundles the per-run knobs threaded through Composite. There is
// no ambient state: every toggle travels in this value.
type Options struct {
	// Color, when non-nil, is used as the canvas fill and background
	// inference is skipped entirely. The alpha component is forced to 255.
	Color *color.NRGBA

	// IgnoreCoveredEdges skips image edges pressed against a canvas side
	// during background inference. The CLI enables it by default.
	IgnoreCoveredEdges bool

	// Simple selects the voting background detector over flood fill.
	Simple bool

	// Rotate is a clockwise rotation in whole degrees, applied before
	// scaling. Must not be negative; counter-clockwise callers pass
	// 360 - angle.
	Rotate int

	// Scale is the resize policy. The zero value auto-fits oversized
	// images, preserving aspect ratio.
	Scale layout.ScaleOperation
}

// Composite renders img onto a canvasSize canvas at the given anchor and
// returns the finished canvas.
//
// Steps run in a fixed order: determine the fill color, allocate the
// filled canvas, rotate (using the fill color as the backdrop for the
// enlarged bounding box), resolve and apply the scale against the
// post-rotation size, place with the post-scale size, paste. A paste
// origin may be negative; the overhanging part is simply clipped by the
// canvas.
func Composite(img image.Image, canvasSize layout.Size, anchor layout.Anchor, opts Options) (*image.NRGBA, error) {
	if opts.Rotate < 0 {
		return nil, fmt.Errorf("rotation must be non-negative, got %d", opts.Rotate)
	}

	fill, err := fillColor(img, anchor, opts)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(canvasSize.Width, canvasSize.Height, fill)

	src := img
	if opts.Rotate%360 != 0 {
		// imaging.Rotate is counter-clockwise; the public contract here
		// is clockwise degrees.
		src = imaging.Rotate(src, -float64(opts.Rotate), fill)
	}

	size := layout.Size{Width: src.Bounds().Dx(), Height: src.Bounds().Dy()}
	scaled := layout.Resolve(size, canvasSize, opts.Scale)
	if scaled != size {
		src = transform.Resize(src, scaled.Width, scaled.Height, transform.Lanczos)
	}

	origin := anchor.Place(scaled, canvasSize)
	return imaging.Paste(canvas, src, origin), nil
}

// fillColor picks the canvas fill: the explicit override when present,
// otherwise the inferred background color of the source image.
func fillColor(img image.Image, anchor layout.Anchor, opts Options) (color.NRGBA, error) {
	if opts.Color != nil {
		c := *opts.Color
		c.A = 255
		return c, nil
	}
	return detect.FindBackground(img, anchor, detect.Options{
		IgnoreCoveredEdges: opts.IgnoreCoveredEdges,
		Simple:             opts.Simple,
	})
}
