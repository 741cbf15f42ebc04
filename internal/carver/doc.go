// Package carver implements content-aware image shrinking by seam removal.
//
// A Carver owns a private copy of an image's RGB pixels. For each pixel it can
// report an energy value, a measure of local visual importance computed from
// color gradients. A seam is a connected path of pixels, one per row (vertical
// seam) or one per column (horizontal seam), and the seam with the lowest
// total energy is the one whose removal disturbs the image the least.
//
// # Typical Use
//
//	c, err := carver.New(img)
//	if err != nil {
//	    return err
//	}
//	for c.Width() > target {
//	    if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
//	        return err
//	    }
//	}
//	out := c.Picture()
//
// ShrinkTo wraps this loop for both dimensions.
//
// # Energy
//
// Border pixels have energy BorderEnergy (1000). An interior pixel at (x, y)
// has energy sqrt(Δx² + Δy²), where Δx² is the sum over R, G and B of the
// squared difference between (x-1, y) and (x+1, y), and Δy² is the same for
// (x, y-1) and (x, y+1).
//
// # Determinism
//
// Seam search is a layered shortest-path dynamic program. Ties between equal
// predecessors resolve to the lowest index and the terminal cell is chosen by
// a linear scan, so the same image always yields the same seam.
//
// # Thread Safety
//
// A Carver is not safe for concurrent use. Removal replaces the pixel buffer,
// so callers sharing a Carver across goroutines must synchronize themselves.
//
// # Error Handling
//
// Every error returned by this package wraps ErrInvalidArgument and leaves the
// Carver unchanged.
package carver
