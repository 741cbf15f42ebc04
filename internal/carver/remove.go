package carver

import "fmt"

// RemoveVerticalSeam deletes one pixel per row, at column seam[y], shifting
// the rest of that row left. Width shrinks by one.
//
// Returns an error wrapping ErrInvalidArgument, and leaves the image
// unchanged, if len(seam) != Height, Width is already 1, or an index is
// outside [0, Width).
func (c *Carver) RemoveVerticalSeam(seam []int) error {
	if c.width <= 1 {
		return fmt.Errorf("%w: cannot remove vertical seam from image of width %d", ErrInvalidArgument, c.width)
	}
	if err := c.validateSeam(Vertical, seam); err != nil {
		return err
	}

	width := c.width - 1
	pix := make([]pixel, width*c.height)
	for y := 0; y < c.height; y++ {
		src := c.pix[y*c.width : (y+1)*c.width]
		dst := pix[y*width : (y+1)*width]
		n := copy(dst, src[:seam[y]])
		copy(dst[n:], src[seam[y]+1:])
	}

	c.pix = pix
	c.width = width
	return nil
}

// RemoveHorizontalSeam deletes one pixel per column, at row seam[x], shifting
// the rest of that column up. Height shrinks by one.
//
// Returns an error wrapping ErrInvalidArgument, and leaves the image
// unchanged, if len(seam) != Width, Height is already 1, or an index is
// outside [0, Height).
func (c *Carver) RemoveHorizontalSeam(seam []int) error {
	if c.height <= 1 {
		return fmt.Errorf("%w: cannot remove horizontal seam from image of height %d", ErrInvalidArgument, c.height)
	}
	if err := c.validateSeam(Horizontal, seam); err != nil {
		return err
	}

	height := c.height - 1
	pix := make([]pixel, c.width*height)
	for x := 0; x < c.width; x++ {
		for y := 0; y < height; y++ {
			srcY := y
			if y >= seam[x] {
				srcY++
			}
			pix[y*c.width+x] = c.pix[srcY*c.width+x]
		}
	}

	c.pix = pix
	c.height = height
	return nil
}

// RemoveSeam removes a seam in the given direction.
func (c *Carver) RemoveSeam(dir Direction, seam []int) error {
	if dir == Horizontal {
		return c.RemoveHorizontalSeam(seam)
	}
	return c.RemoveVerticalSeam(seam)
}
