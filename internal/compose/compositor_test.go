package compose

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/wallpaperer/internal/layout"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
	red   = color.NRGBA{255, 0, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
)

// newSolidImage creates an in-memory test image of one color.
func newSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestComposite_InferredBackgroundAndPlacement(t *testing.T) {
	// 10x10 white image with a 2x2 black square at the center, pasted
	// centered on 100x100: the fill resolves to white and the image lands
	// at (45,45).
	img := newSolidImage(10, 10, white)
	img.SetNRGBA(4, 4, black)
	img.SetNRGBA(5, 4, black)
	img.SetNRGBA(4, 5, black)
	img.SetNRGBA(5, 5, black)

	canvas, err := Composite(img, layout.Size{Width: 100, Height: 100}, layout.Center,
		Options{IgnoreCoveredEdges: true})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	if got := canvas.Bounds().Size(); got != image.Pt(100, 100) {
		t.Fatalf("canvas size: got %v, want (100,100)", got)
	}
	// Canvas corner shows the inferred fill.
	if got := canvas.NRGBAAt(0, 0); got != white {
		t.Errorf("fill color: got %v, want white", got)
	}
	// Image pixel (4,4) is black and lands at canvas (49,49).
	if got := canvas.NRGBAAt(49, 49); got != black {
		t.Errorf("pasted pixel (49,49): got %v, want black", got)
	}
	if got := canvas.NRGBAAt(45, 45); got != white {
		t.Errorf("pasted pixel (45,45): got %v, want white", got)
	}
}

func TestComposite_ExplicitColorSkipsDetection(t *testing.T) {
	// A zero-size image has no edge pixels, so detection would fail: the
	// explicit color must bypass it entirely.
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))

	canvas, err := Composite(empty, layout.Size{Width: 8, Height: 8}, layout.Center,
		Options{Color: &red, IgnoreCoveredEdges: true})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	if got := canvas.NRGBAAt(3, 3); got != red {
		t.Errorf("fill color: got %v, want fully opaque red", got)
	}
}

func TestComposite_ExplicitColorNormalizedToOpaque(t *testing.T) {
	translucent := color.NRGBA{0, 0, 255, 17}
	canvas, err := Composite(newSolidImage(2, 2, white), layout.Size{Width: 8, Height: 8}, layout.Center,
		Options{Color: &translucent, IgnoreCoveredEdges: true})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	if got := canvas.NRGBAAt(0, 0); got != blue {
		t.Errorf("fill color: got %v, want opaque blue", got)
	}
}

func TestComposite_DetectionErrorSurfaces(t *testing.T) {
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := Composite(empty, layout.Size{Width: 8, Height: 8}, layout.Center,
		Options{IgnoreCoveredEdges: true}); err == nil {
		t.Error("Composite should fail when detection has no pixels and no explicit color is given")
	}
}

func TestComposite_NegativeRotationRejected(t *testing.T) {
	img := newSolidImage(2, 2, white)
	if _, err := Composite(img, layout.Size{Width: 8, Height: 8}, layout.Center,
		Options{Rotate: -90, IgnoreCoveredEdges: true}); err == nil {
		t.Error("Composite should reject negative rotation")
	}
}

func TestComposite_AutoFitFillsMatchingAspect(t *testing.T) {
	// 40x30 shrunk onto a 20x15 canvas at the same aspect ratio covers it
	// completely: every canvas pixel comes from the image.
	img := newSolidImage(40, 30, blue)

	canvas, err := Composite(img, layout.Size{Width: 20, Height: 15}, layout.Center,
		Options{Color: &red, IgnoreCoveredEdges: true})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	for _, p := range []image.Point{{0, 0}, {19, 14}, {10, 7}} {
		if got := canvas.NRGBAAt(p.X, p.Y); got != blue {
			t.Errorf("canvas %v: got %v, want blue", p, got)
		}
	}
}

func TestComposite_NoScaleKeepsOversized(t *testing.T) {
	// With ScaleNone an oversized image overhangs: anchored bottom-right,
	// the canvas shows the image's bottom-right corner.
	img := newSolidImage(10, 10, white)
	for y := 5; y < 10; y++ {
		for x := 5; x < 10; x++ {
			img.SetNRGBA(x, y, blue)
		}
	}

	canvas, err := Composite(img, layout.Size{Width: 4, Height: 4}, layout.BottomRight,
		Options{
			Color: &red,
			Scale: layout.ScaleOperation{Kind: layout.ScaleNone},
		})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	// Paste origin is (-6,-6): canvas (0,0) maps to image (6,6), inside
	// the blue quadrant.
	for _, p := range []image.Point{{0, 0}, {3, 3}} {
		if got := canvas.NRGBAAt(p.X, p.Y); got != blue {
			t.Errorf("canvas %v: got %v, want blue overhang", p, got)
		}
	}
}

func TestComposite_RelCanvasScale(t *testing.T) {
	// 200x100 image, 1000x800 canvas, fraction 0.5: resolved size 800x400
	// pasted top-left. Pixels inside that rectangle come from the image,
	// pixels outside show the fill.
	img := newSolidImage(200, 100, blue)

	canvas, err := Composite(img, layout.Size{Width: 1000, Height: 800}, layout.TopLeft,
		Options{
			Color: &red,
			Scale: layout.ScaleOperation{Kind: layout.ScaleRelCanvas, Fraction: 0.5},
		})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	if got := canvas.NRGBAAt(400, 200); got != blue {
		t.Errorf("inside scaled image: got %v, want blue", got)
	}
	if got := canvas.NRGBAAt(850, 50); got != red {
		t.Errorf("right of scaled image: got %v, want red fill", got)
	}
	if got := canvas.NRGBAAt(50, 450); got != red {
		t.Errorf("below scaled image: got %v, want red fill", got)
	}
}

func TestComposite_FullTurnRotationIsIdentity(t *testing.T) {
	img := newSolidImage(4, 4, blue)

	plain, err := Composite(img, layout.Size{Width: 10, Height: 10}, layout.TopLeft,
		Options{Color: &red})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	turned, err := Composite(img, layout.Size{Width: 10, Height: 10}, layout.TopLeft,
		Options{Color: &red, Rotate: 360})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if plain.NRGBAAt(x, y) != turned.NRGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs after full-turn rotation", x, y)
			}
		}
	}
}

func TestComposite_RotationUsesFillBackdrop(t *testing.T) {
	// Rotating a square by 45 degrees grows its bounding box; the new
	// corners must be filled with the canvas color, and the square's
	// center must survive at the canvas center.
	img := newSolidImage(8, 8, blue)

	canvas, err := Composite(img, layout.Size{Width: 40, Height: 40}, layout.Center,
		Options{Color: &red, Rotate: 45})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	if got := canvas.NRGBAAt(20, 20); got != blue {
		t.Errorf("rotated square center: got %v, want blue", got)
	}
	if got := canvas.NRGBAAt(0, 0); got != red {
		t.Errorf("canvas corner: got %v, want red fill", got)
	}
}
