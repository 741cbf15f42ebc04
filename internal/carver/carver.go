package carver

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidArgument is wrapped by every error this package returns.
var ErrInvalidArgument = errors.New("invalid argument")

// pixel is an opaque 8-bit RGB triple.
type pixel struct {
	r, g, b uint8
}

// Carver holds the current pixels of an image being shrunk seam by seam.
//
// Pixels are stored row-major: the pixel at column x, row y lives at
// pix[y*width+x]. The grid is never resized in place; removals build a new
// buffer and swap it in only once it is complete.
type Carver struct {
	pix    []pixel
	width  int
	height int
}

// New creates a Carver from a decoded image.
//
// The image is copied, so later changes to img do not affect the Carver.
// Alpha is discarded. The image bounds need not start at (0,0); the Carver's
// coordinates are always 0-based.
//
// Returns an error wrapping ErrInvalidArgument if img is nil or has an empty
// bounds rectangle.
func New(img image.Image) (*Carver, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image is nil", ErrInvalidArgument)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: image is empty (%dx%d)", ErrInvalidArgument, width, height)
	}

	pix := make([]pixel, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// Convert from 16-bit to 8-bit
			pix[y*width+x] = pixel{r: uint8(r >> 8), g: uint8(g >> 8), b: uint8(b >> 8)}
		}
	}

	return &Carver{pix: pix, width: width, height: height}, nil
}

// Width returns the current width in pixels.
func (c *Carver) Width() int {
	return c.width
}

// Height returns the current height in pixels.
func (c *Carver) Height() int {
	return c.height
}

// Picture materializes the current pixels as a new opaque RGBA image with
// bounds (0,0)-(Width,Height). The result is not shared with the Carver.
func (c *Carver) Picture() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pix[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.r, G: p.g, B: p.b, A: 255})
		}
	}
	return img
}

// at returns the pixel at (x, y) without bounds checking.
func (c *Carver) at(x, y int) pixel {
	return c.pix[y*c.width+x]
}

func (c *Carver) validateColumn(x int) error {
	if x < 0 || x >= c.width {
		return fmt.Errorf("%w: column index must be between 0 and %d: %d", ErrInvalidArgument, c.width-1, x)
	}
	return nil
}

func (c *Carver) validateRow(y int) error {
	if y < 0 || y >= c.height {
		return fmt.Errorf("%w: row index must be between 0 and %d: %d", ErrInvalidArgument, c.height-1, y)
	}
	return nil
}
