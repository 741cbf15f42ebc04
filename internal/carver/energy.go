package carver

import "math"

// BorderEnergy is the energy of every pixel on the image border. It is far
// above any interior value so seams prefer interior pixels.
const BorderEnergy = 1000.0

// Energy returns the energy of the pixel at column x and row y.
//
// Returns an error wrapping ErrInvalidArgument if x is outside [0, Width) or
// y is outside [0, Height).
func (c *Carver) Energy(x, y int) (float64, error) {
	if err := c.validateColumn(x); err != nil {
		return 0, err
	}
	if err := c.validateRow(y); err != nil {
		return 0, err
	}
	return c.energy(x, y), nil
}

// EnergyGrid returns the energy of every pixel, indexed [y][x].
func (c *Carver) EnergyGrid() [][]float64 {
	grid := make([][]float64, c.height)
	for y := 0; y < c.height; y++ {
		grid[y] = make([]float64, c.width)
		for x := 0; x < c.width; x++ {
			grid[y][x] = c.energy(x, y)
		}
	}
	return grid
}

// energy computes the dual-gradient energy at (x, y). Coordinates must be in
// range.
func (c *Carver) energy(x, y int) float64 {
	if c.onBorder(x, y) {
		return BorderEnergy
	}
	dx := gradientSquared(c.at(x-1, y), c.at(x+1, y))
	dy := gradientSquared(c.at(x, y-1), c.at(x, y+1))
	return math.Sqrt(float64(dx + dy))
}

func (c *Carver) onBorder(x, y int) bool {
	return x == 0 || x == c.width-1 || y == 0 || y == c.height-1
}

// gradientSquared sums the squared per-channel differences of two pixels.
func gradientSquared(a, b pixel) int {
	dr := int(a.r) - int(b.r)
	dg := int(a.g) - int(b.g)
	db := int(a.b) - int(b.b)
	return dr*dr + dg*dg + db*db
}
