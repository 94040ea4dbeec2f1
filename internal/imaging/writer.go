package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Save encodes the composited canvas to path. The encoder is chosen by
// file extension: .png, .jpg/.jpeg, .gif, .tif/.tiff, or .bmp.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to save image to %s: %w", path, err)
	}
	return nil
}
