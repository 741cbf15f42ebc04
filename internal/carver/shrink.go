package carver

import (
	"context"
	"fmt"
)

// ShrinkTo removes vertical seams until c is width pixels wide, then
// horizontal seams until it is height pixels tall.
//
// The context is checked before each seam. On cancellation the Carver keeps
// whatever seams were already removed and the context error is returned along
// with the number removed so far.
//
// Returns an error wrapping ErrInvalidArgument if a target is below 1 or
// larger than the current size; seam carving only shrinks.
func ShrinkTo(ctx context.Context, c *Carver, width, height int) (int, error) {
	return ShrinkGuided(ctx, c, c, width, height)
}

// ShrinkGuided is ShrinkTo with seams chosen on guide instead of c. Each seam
// is removed from both, so guide must start with the same dimensions as c.
// A typical guide is a blurred copy of the same image.
func ShrinkGuided(ctx context.Context, c, guide *Carver, width, height int) (int, error) {
	if guide.width != c.width || guide.height != c.height {
		return 0, fmt.Errorf("%w: guide size %dx%d does not match image size %dx%d",
			ErrInvalidArgument, guide.width, guide.height, c.width, c.height)
	}
	if width < 1 || height < 1 {
		return 0, fmt.Errorf("%w: target size %dx%d must be at least 1x1", ErrInvalidArgument, width, height)
	}
	if width > c.width || height > c.height {
		return 0, fmt.Errorf("%w: target size %dx%d exceeds current size %dx%d",
			ErrInvalidArgument, width, height, c.width, c.height)
	}

	removed := 0
	step := func(dir Direction) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seam := guide.FindSeam(dir)
		if guide != c {
			if err := guide.RemoveSeam(dir, seam); err != nil {
				return err
			}
		}
		if err := c.RemoveSeam(dir, seam); err != nil {
			return err
		}
		removed++
		return nil
	}

	for c.width > width {
		if err := step(Vertical); err != nil {
			return removed, err
		}
	}
	for c.height > height {
		if err := step(Horizontal); err != nil {
			return removed, err
		}
	}
	return removed, nil
}
