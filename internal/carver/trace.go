package carver

import (
	"context"
	"fmt"
	"image"
)

// TraceSeams finds and removes n successive seams from c and returns the
// pixels of each seam in the coordinates of c as it was before the call.
//
// This answers "which pixels would carving remove" for drawing overlays: the
// k-th path is the k-th seam removed, mapped back through all earlier
// removals. c is left n pixels narrower (Vertical) or shorter (Horizontal);
// pass a scratch Carver to keep the original.
//
// Returns an error wrapping ErrInvalidArgument if n is negative or would
// shrink the dimension below 1.
func TraceSeams(ctx context.Context, c *Carver, dir Direction, n int) ([][]image.Point, error) {
	cols, rows := c.orient(dir)
	if n < 0 || n > cols-1 {
		return nil, fmt.Errorf("%w: cannot remove %d %s seams from %dx%d image",
			ErrInvalidArgument, n, dir, c.width, c.height)
	}

	// origin[row][col] is the original index of the cell now at col.
	origin := make([][]int, rows)
	for row := range origin {
		origin[row] = make([]int, cols)
		for col := range origin[row] {
			origin[row][col] = col
		}
	}

	paths := make([][]image.Point, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		seam := c.FindSeam(dir)
		path := make([]image.Point, rows)
		for row, col := range seam {
			orig := origin[row][col]
			if dir == Horizontal {
				path[row] = image.Point{X: row, Y: orig}
			} else {
				path[row] = image.Point{X: orig, Y: row}
			}
			origin[row] = append(origin[row][:col], origin[row][col+1:]...)
		}

		if err := c.RemoveSeam(dir, seam); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
