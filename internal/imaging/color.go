package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains the color of one pixel in several representations.
//
// Seam carving works on RGB only; Alpha is reported so callers can tell when
// transparency will be lost by carving.
type ColorResult struct {
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Hex   string   `json:"hex"`   // Hex format "#RRGGBB" (no alpha)
	RGB   RGBColor `json:"rgb"`   // RGB components
	Alpha uint8    `json:"alpha"` // Alpha component (0-255)
	HSL   HSLColor `json:"hsl"`   // HSL representation
}

// SampleColor returns the color at pixel (x, y).
//
// Coordinates are relative to the image origin: (0,0) is the top-left pixel
// even when img.Bounds().Min is not (0,0). This matches the coordinate system
// used by seam indices and energy queries.
//
// Returns an error if (x, y) is outside the image.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}

	c := img.At(x+bounds.Min.X, y+bounds.Min.Y)
	r, g, b, a := c.RGBA()
	// Convert from 16-bit to 8-bit
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	return &ColorResult{
		X:     x,
		Y:     y,
		Hex:   fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB:   RGBColor{R: r8, G: g8, B: b8},
		Alpha: a8,
		HSL:   toHSL(r8, g8, b8),
	}, nil
}

// toHSL converts straight 8-bit RGB to whole-number HSL.
func toHSL(r, g, b uint8) HSLColor {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
