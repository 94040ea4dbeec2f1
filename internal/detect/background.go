package detect

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/wallpaperer/internal/layout"
)

// ErrNoEdgePixels is returned when an image yields no boundary pixels to
// sample. Such an image has no well-defined background; the caller must
// supply an explicit color instead.
var ErrNoEdgePixels = errors.New("image has no edge pixels to sample")

// Options control how the background color is inferred.
type Options struct {
	// IgnoreCoveredEdges skips image edges pressed against a canvas side
	// by the anchor. This avoids picking up foreground that runs off a
	// crop line. The CLI enables it by default.
	IgnoreCoveredEdges bool

	// Simple switches from flood fill to the O(perimeter) voting mode.
	Simple bool
}

// FindBackground infers the background color of img for the given anchor.
//
// In the default flood-fill mode, a region is grown from each not-yet
// visited sampled edge pixel, in sampling order, and the color of the
// largest region wins. A tie goes to the region discovered first; the
// tie-break is deliberate and deterministic.
//
// In the simple voting mode, the same edge sequence is tallied per exact
// color and the highest count wins, ties broken by first occurrence.
//
// Returns ErrNoEdgePixels when the sampler yields nothing.
func FindBackground(img image.Image, anchor layout.Anchor, opts Options) (color.NRGBA, error) {
	// Clone to NRGBA so exact color equality is well defined regardless
	// of the source color model.
	src := imaging.Clone(img)

	samples := EdgePixels(src.Bounds().Dx(), src.Bounds().Dy(), anchor, opts.IgnoreCoveredEdges)
	if len(samples) == 0 {
		return color.NRGBA{}, ErrNoEdgePixels
	}

	if opts.Simple {
		return voteBackground(src, samples), nil
	}
	return floodBackground(src, samples), nil
}

// floodBackground grows a region from every unclaimed sample and returns
// the color of the largest one. The visited bitmap is shared across grows,
// so each pixel belongs to exactly one region.
func floodBackground(img *image.NRGBA, samples []image.Point) color.NRGBA {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	visited := make([]bool, width*height)

	var best Region
	for _, p := range samples {
		if visited[p.Y*width+p.X] {
			continue
		}
		region := growRegion(img, p, visited)
		// Strict inequality keeps the first-discovered region on ties.
		if region.Pixels > best.Pixels {
			best = region
		}
	}
	return best.Color
}

// voteBackground tallies exact colors along the sample sequence and
// returns the first color reaching the highest count.
func voteBackground(img *image.NRGBA, samples []image.Point) color.NRGBA {
	counts := make(map[color.NRGBA]int, len(samples))
	order := make([]color.NRGBA, 0, len(samples))

	for _, p := range samples {
		c := img.NRGBAAt(p.X, p.Y)
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}

	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}
