package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Smooth returns a Gaussian-blurred copy of img.
//
// Blurring before the energy pass suppresses fine texture and noise, so seams
// follow large flat areas instead of zig-zagging through grain. The blurred
// image should only be used to choose seams; the seams are then removed from
// the unblurred pixels. A radius of 0 or less returns img unchanged.
func Smooth(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, radius)
}
