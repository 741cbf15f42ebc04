package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// EnergyMapResult contains an energy grid rendered as a grayscale PNG.
//
// Bright pixels are high-energy (likely to be preserved by seam carving) and
// dark pixels are low-energy (likely to be removed first).
type EnergyMapResult struct {
	EncodedImage

	// MaxEnergy is the largest energy below the clip value, which maps to 254.
	MaxEnergy float64 `json:"max_energy"`

	// MeanEnergy is the mean of all energies below the clip value.
	MeanEnergy float64 `json:"mean_energy"`
}

// RenderEnergyMap converts an energy grid, indexed [y][x], to a grayscale image.
//
// Parameters:
//   - grid: Energy values. All rows must have the same length.
//   - clip: Values at or above clip are drawn pure white (255). Seam carving
//     assigns a large constant to border pixels; clipping them keeps the
//     interior contrast visible. Pass +Inf to disable clipping.
//
// Returns:
//   - *image.Gray: The rendered map with bounds (0,0)-(width,height).
//   - float64: The largest unclipped value, used as the scale.
//   - float64: The mean of unclipped values.
//   - error: Non-nil if the grid is empty or ragged.
//
// # Scaling
//
// Unclipped values are scaled linearly so that 0 maps to 0 and the largest
// unclipped value maps to 254. If every unclipped value is zero, they all
// render black.
func RenderEnergyMap(grid [][]float64, clip float64) (*image.Gray, float64, float64, error) {
	height := len(grid)
	if height == 0 || len(grid[0]) == 0 {
		return nil, 0, 0, fmt.Errorf("energy grid is empty")
	}
	width := len(grid[0])

	var maxEnergy, sum float64
	count := 0
	for y, row := range grid {
		if len(row) != width {
			return nil, 0, 0, fmt.Errorf("energy grid row %d has %d values, want %d", y, len(row), width)
		}
		for _, e := range row {
			if e >= clip {
				continue
			}
			sum += e
			count++
			if e > maxEnergy {
				maxEnergy = e
			}
		}
	}

	mean := 0.0
	if count > 0 {
		mean = sum / float64(count)
	}

	result := image.NewGray(image.Rect(0, 0, width, height))
	for y, row := range grid {
		for x, e := range row {
			var v uint8
			switch {
			case e >= clip:
				v = 255
			case maxEnergy > 0:
				v = uint8(math.Round(e / maxEnergy * 254))
			}
			result.SetGray(x, y, color.Gray{Y: v})
		}
	}

	return result, maxEnergy, mean, nil
}

// EnergyMap renders an energy grid and encodes it as base64 PNG.
func EnergyMap(grid [][]float64, clip float64) (*EnergyMapResult, error) {
	img, maxEnergy, mean, err := RenderEnergyMap(grid, clip)
	if err != nil {
		return nil, err
	}

	encoded, err := EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("failed to encode energy map: %w", err)
	}

	return &EnergyMapResult{
		EncodedImage: *encoded,
		MaxEnergy:    math.Round(maxEnergy*100) / 100,
		MeanEnergy:   math.Round(mean*100) / 100,
	}, nil
}
