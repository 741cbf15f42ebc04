package carver

import (
	"fmt"
	"math"
	"strings"
)

// TopRowCost is the cumulative cost assigned to every cell of the first row
// before relaxation. It equals the largest possible squared gradient of one
// axis (3 × 255²). Since every start cell gets the same value it only shifts
// all path costs uniformly and never changes which seam is chosen.
const TopRowCost = 195075.0

// Direction selects which way a seam crosses the image.
type Direction int

const (
	// Vertical seams run top to bottom with one index per row. Removing one
	// narrows the image by a column.
	Vertical Direction = iota
	// Horizontal seams run left to right with one index per column. Removing
	// one shortens the image by a row.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts "vertical" or "horizontal" (case-insensitive) to a
// Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("%w: unknown seam direction %q", ErrInvalidArgument, s)
	}
}

// FindVerticalSeam returns the lowest-energy vertical seam: one column index
// per row, top to bottom, len == Height.
func (c *Carver) FindVerticalSeam() []int {
	return c.findSeam(Vertical)
}

// FindHorizontalSeam returns the lowest-energy horizontal seam: one row index
// per column, left to right, len == Width.
func (c *Carver) FindHorizontalSeam() []int {
	return c.findSeam(Horizontal)
}

// FindSeam returns the lowest-energy seam in the given direction.
func (c *Carver) FindSeam(dir Direction) []int {
	return c.findSeam(dir)
}

// SeamEnergy returns the total energy of the pixels along seam.
//
// Returns an error wrapping ErrInvalidArgument if the seam length does not
// match the image or an index is out of range.
func (c *Carver) SeamEnergy(dir Direction, seam []int) (float64, error) {
	if err := c.validateSeam(dir, seam); err != nil {
		return 0, err
	}
	var total float64
	for i, s := range seam {
		if dir == Horizontal {
			total += c.energy(i, s)
		} else {
			total += c.energy(s, i)
		}
	}
	return total, nil
}

// orient returns the grid dimensions as seen by the seam search: the search
// walks `rows` layers of `cols` cells. Horizontal seams transpose the image.
func (c *Carver) orient(dir Direction) (cols, rows int) {
	if dir == Horizontal {
		return c.height, c.width
	}
	return c.width, c.height
}

// findSeam runs a layered shortest-path search over the oriented energy grid.
//
// Cells are relaxed row by row into their three forward neighbours. Equal
// costs keep the first predecessor found, which is the lowest column.
//
// The first and last rows lie entirely on the border, so every cell there
// costs BorderEnergy. When the grid has interior rows the search ends at the
// last interior row and the seam runs straight through both border rows; this
// keeps the seam off the corners when many end cells tie.
func (c *Carver) findSeam(dir Direction) []int {
	cols, rows := c.orient(dir)

	energies := make([]float64, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if dir == Horizontal {
				energies[row*cols+col] = c.energy(row, col)
			} else {
				energies[row*cols+col] = c.energy(col, row)
			}
		}
	}

	last := rows - 1
	if rows > 2 {
		last = rows - 2
	}

	energyTo := make([]float64, cols*rows)
	edgeTo := make([]int, cols*rows)
	for i := range energyTo {
		if i < cols {
			energyTo[i] = TopRowCost
		} else {
			energyTo[i] = math.Inf(1)
		}
	}

	for row := 0; row < last; row++ {
		for col := 0; col < cols; col++ {
			from := energyTo[row*cols+col]
			for k := col - 1; k <= col+1; k++ {
				if k < 0 || k >= cols {
					continue
				}
				to := (row+1)*cols + k
				if cost := from + energies[to]; cost < energyTo[to] {
					energyTo[to] = cost
					edgeTo[to] = col
				}
			}
		}
	}

	// Linear scan; the lowest column wins ties.
	best := 0
	for col := 1; col < cols; col++ {
		if energyTo[last*cols+col] < energyTo[last*cols+best] {
			best = col
		}
	}

	seam := make([]int, rows)
	seam[last] = best
	for row := last; row > 0; row-- {
		seam[row-1] = edgeTo[row*cols+seam[row]]
	}
	if last != rows-1 {
		seam[rows-1] = seam[last]
		seam[0] = seam[1]
	}
	return seam
}

// validateSeam checks a seam's length against the image and every index
// against the orthogonal dimension. Connectivity is not checked.
func (c *Carver) validateSeam(dir Direction, seam []int) error {
	cols, rows := c.orient(dir)
	if len(seam) != rows {
		return fmt.Errorf("%w: %s seam has length %d, want %d", ErrInvalidArgument, dir, len(seam), rows)
	}
	for i, s := range seam {
		if s < 0 || s >= cols {
			return fmt.Errorf("%w: %s seam index %d at position %d outside [0,%d)", ErrInvalidArgument, dir, s, i, cols)
		}
	}
	return nil
}
