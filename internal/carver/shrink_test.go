package carver

import (
	"context"
	"errors"
	"testing"
)

func TestShrinkTo(t *testing.T) {
	c := mustNew(t, createRandomImage(10, 8, 21))

	removed, err := ShrinkTo(context.Background(), c, 6, 5)
	if err != nil {
		t.Fatalf("ShrinkTo failed: %v", err)
	}
	if removed != 7 {
		t.Errorf("removed: got %d, want 7", removed)
	}
	if c.Width() != 6 || c.Height() != 5 {
		t.Errorf("dimensions: got %dx%d, want 6x5", c.Width(), c.Height())
	}
}

func TestShrinkTo_NoOp(t *testing.T) {
	c := mustNew(t, createRandomImage(4, 4, 2))

	removed, err := ShrinkTo(context.Background(), c, 4, 4)
	if err != nil {
		t.Fatalf("ShrinkTo failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed: got %d, want 0", removed)
	}
}

func TestShrinkTo_InvalidTarget(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"wider than image", 6, 3},
		{"taller than image", 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, createRandomImage(5, 5, 3))
			_, err := ShrinkTo(context.Background(), c, tt.width, tt.height)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
			if c.Width() != 5 || c.Height() != 5 {
				t.Errorf("dimensions changed to %dx%d", c.Width(), c.Height())
			}
		})
	}
}

func TestShrinkTo_Cancelled(t *testing.T) {
	c := mustNew(t, createRandomImage(8, 8, 4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	removed, err := ShrinkTo(ctx, c, 4, 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if removed != 0 {
		t.Errorf("removed: got %d, want 0", removed)
	}
	if c.Width() != 8 || c.Height() != 8 {
		t.Errorf("dimensions changed to %dx%d", c.Width(), c.Height())
	}
}

func TestShrinkGuided(t *testing.T) {
	img := createRandomImage(9, 7, 31)
	c := mustNew(t, img)
	guide := mustNew(t, img)

	removed, err := ShrinkGuided(context.Background(), c, guide, 5, 6)
	if err != nil {
		t.Fatalf("ShrinkGuided failed: %v", err)
	}
	if removed != 5 {
		t.Errorf("removed: got %d, want 5", removed)
	}
	if c.Width() != 5 || c.Height() != 6 || guide.Width() != 5 || guide.Height() != 6 {
		t.Errorf("dimensions: image %dx%d, guide %dx%d, want 5x6",
			c.Width(), c.Height(), guide.Width(), guide.Height())
	}

	// Guided by an identical copy, the result matches unguided carving.
	plain := mustNew(t, img)
	if _, err := ShrinkTo(context.Background(), plain, 5, 6); err != nil {
		t.Fatalf("ShrinkTo failed: %v", err)
	}
	got, want := c.Picture(), plain.Picture()
	for y := 0; y < 6; y++ {
		for x := 0; x < 5; x++ {
			if got.RGBAAt(x, y) != want.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs from unguided result", x, y)
			}
		}
	}
}

func TestShrinkGuided_SizeMismatch(t *testing.T) {
	c := mustNew(t, createRandomImage(6, 6, 1))
	guide := mustNew(t, createRandomImage(6, 5, 1))

	_, err := ShrinkGuided(context.Background(), c, guide, 4, 4)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
