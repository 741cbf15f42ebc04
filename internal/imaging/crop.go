package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts the region (x1,y1)-(x2,y2) from img, optionally scaled.
//
// Coordinates are relative to the image origin; (x1,y1) is inclusive and
// (x2,y2) exclusive. A scale other than 1 (and greater than 0) resamples the
// crop with a Lanczos filter.
func Crop(img image.Image, x1, y1, x2, y2 int, scale float64) (*EncodedImage, error) {
	bounds := img.Bounds()

	if x1 < 0 || y1 < 0 || x2 > bounds.Dx() || y2 > bounds.Dy() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds %dx%d",
			x1, y1, x2, y2, bounds.Dx(), bounds.Dy())
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	var cropped image.Image = imaging.Crop(img, image.Rect(x1, y1, x2, y2).Add(bounds.Min))

	if scale != 1.0 && scale > 0 {
		width := int(float64(x2-x1) * scale)
		height := int(float64(y2-y1) * scale)
		if width < 1 || height < 1 {
			return nil, fmt.Errorf("scale %.3f reduces crop to %dx%d", scale, width, height)
		}
		cropped = imaging.Resize(cropped, width, height, imaging.Lanczos)
	}

	result, err := EncodePNG(cropped)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}
	return result, nil
}

// Scale resamples img to exactly width×height with a Lanczos filter, ignoring
// content. It gives a baseline to compare a seam-carved result against.
func Scale(img image.Image, width, height int) (*image.NRGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid scale target %dx%d", width, height)
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}
