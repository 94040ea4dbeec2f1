package detect

import (
	"image"
	"image/color"
)

// Region is a 4-connected area of identically colored pixels claimed
// during one background pass. Regions are transient: only the winning
// color outlives the pass.
type Region struct {
	Color  color.NRGBA `json:"color"`
	Pixels int         `json:"pixels"`
}

// growRegion flood-fills outward from seed, claiming every 4-connected
// pixel whose NRGBA value exactly equals the seed's, and returns the
// resulting region.
//
// The fill uses an explicit worklist rather than recursion so arbitrarily
// large same-colored areas cannot exhaust the stack. Neighbors are pushed
// in {+x, -x, +y, -y} order. Out-of-range neighbors are silently
// discarded.
//
// visited is indexed y*width+x and must span the whole image. It is shared
// across every grow of one pass: a pixel claimed by an earlier region is
// never revisited, so regions partition the pixels they touch.
//
// img bounds must start at (0,0), which imaging.Clone guarantees.
func growRegion(img *image.NRGBA, seed image.Point, visited []bool) Region {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	target := img.NRGBAAt(seed.X, seed.Y)

	region := Region{Color: target}
	stack := []image.Point{seed}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		idx := p.Y*width + p.X
		if visited[idx] || img.NRGBAAt(p.X, p.Y) != target {
			continue
		}
		visited[idx] = true
		region.Pixels++

		stack = append(stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}
	return region
}
