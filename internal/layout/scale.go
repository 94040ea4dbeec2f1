package layout

import "math"

// ScaleKind selects the resize policy applied before compositing.
type ScaleKind int

const (
	// ScaleAutoFit shrinks the image to fit the canvas, preserving aspect
	// ratio, only when it exceeds the canvas in either dimension. This is
	// the zero value and the default policy.
	ScaleAutoFit ScaleKind = iota

	// ScaleNone keeps the image at its original size even when oversized.
	ScaleNone

	// ScaleRelImage resizes both dimensions to Fraction × original size.
	ScaleRelImage

	// ScaleRelCanvas resizes so the height becomes Fraction × canvas
	// height, with the width scaled to preserve aspect ratio.
	ScaleRelCanvas
)

// ScaleOperation is a resize policy together with its fraction argument.
// Fraction is ignored by ScaleAutoFit and ScaleNone.
type ScaleOperation struct {
	Kind     ScaleKind
	Fraction float64
}

// Resolve computes the final image size for the given canvas and scale
// policy. It never mutates or reads the image itself; the compositor
// applies the returned size.
//
// Fractional pixel counts are floored. Every returned dimension is clamped
// to at least 1 pixel, so a very small fraction cannot produce an empty
// image.
func Resolve(imageSize, canvasSize Size, op ScaleOperation) Size {
	iw := float64(imageSize.Width)
	ih := float64(imageSize.Height)

	switch op.Kind {
	case ScaleNone:
		return imageSize

	case ScaleRelImage:
		return flooredSize(iw*op.Fraction, ih*op.Fraction)

	case ScaleRelCanvas:
		targetHeight := math.Floor(op.Fraction * float64(canvasSize.Height))
		ratio := targetHeight / ih
		return flooredSize(ratio*iw, targetHeight)

	default: // ScaleAutoFit
		if imageSize.Width <= canvasSize.Width && imageSize.Height <= canvasSize.Height {
			return imageSize
		}
		ratio := math.Min(float64(canvasSize.Width)/iw, float64(canvasSize.Height)/ih)
		return flooredSize(iw*ratio, ih*ratio)
	}
}

func flooredSize(w, h float64) Size {
	return Size{
		Width:  atLeastOne(int(math.Floor(w))),
		Height: atLeastOne(int(math.Floor(h))),
	}
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
