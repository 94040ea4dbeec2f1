package detect

import (
	"image"

	"github.com/ironsheep/wallpaperer/internal/layout"
)

// EdgePixels enumerates the boundary pixel coordinates of a width × height
// image, in a fixed deterministic order: top row left to right, left
// column top to bottom, right column top to bottom, bottom row left to
// right. Corner pixels appear in both a row and a column pass; consumers
// dedupe through their visited bitmap.
//
// When ignoreCovered is true, edges lying on a canvas side covered by the
// anchor are skipped entirely (see layout.Anchor.CoveredSides).
//
// A non-positive width or height yields nil without error.
func EdgePixels(width, height int, anchor layout.Anchor, ignoreCovered bool) []image.Point {
	if width <= 0 || height <= 0 {
		return nil
	}
	covered := anchor.CoveredSides()
	pts := make([]image.Point, 0, 2*(width+height))

	if !ignoreCovered || !covered.Top {
		for x := 0; x < width; x++ {
			pts = append(pts, image.Pt(x, 0))
		}
	}
	if !ignoreCovered || !covered.Left {
		for y := 0; y < height; y++ {
			pts = append(pts, image.Pt(0, y))
		}
	}
	if !ignoreCovered || !covered.Right {
		for y := 0; y < height; y++ {
			pts = append(pts, image.Pt(width-1, y))
		}
	}
	if !ignoreCovered || !covered.Bottom {
		for x := 0; x < width; x++ {
			pts = append(pts, image.Pt(x, height-1))
		}
	}
	return pts
}
