package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// SeamOverlayResult contains an image with seams drawn over it.
type SeamOverlayResult struct {
	EncodedImage

	// SeamCount is the number of seams drawn.
	SeamCount int `json:"seam_count"`

	// Color is the overlay color actually used, as "#RRGGBBAA".
	Color string `json:"color"`
}

// DrawSeams paints every point of every path onto a copy of img.
//
// Points are relative to the image origin, so (0,0) is always the top-left
// pixel even when img.Bounds().Min is not. Points outside the image are
// skipped. The overlay color is composited over the source using its alpha.
func DrawSeams(img image.Image, paths [][]image.Point, c color.Color) *image.RGBA {
	bounds := img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	src := image.NewUniform(c)
	for _, path := range paths {
		for _, p := range path {
			if !p.In(result.Bounds()) {
				continue
			}
			draw.Draw(result, image.Rect(p.X, p.Y, p.X+1, p.Y+1), src, image.Point{}, draw.Over)
		}
	}
	return result
}

// SeamOverlay draws seam paths on img and encodes the result as base64 PNG.
//
// Parameters:
//   - img: Source image.
//   - paths: Seam pixel coordinates, one slice per seam.
//   - colorHex: "#RRGGBB" or "#RRGGBBAA". An invalid value falls back to
//     opaque red.
func SeamOverlay(img image.Image, paths [][]image.Point, colorHex string) (*SeamOverlayResult, error) {
	c, err := parseHexColor(colorHex)
	if err != nil {
		c = color.NRGBA{255, 0, 0, 255}
	}

	encoded, err := EncodePNG(DrawSeams(img, paths, c))
	if err != nil {
		return nil, fmt.Errorf("failed to encode seam overlay: %w", err)
	}

	return &SeamOverlayResult{
		EncodedImage: *encoded,
		SeamCount:    len(paths),
		Color:        fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A),
	}, nil
}

// parseHexColor parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
func parseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	alpha := uint8(255)
	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length: %q", hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
