package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestSmooth_ZeroRadius(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	if got := Smooth(img, 0); got != img {
		t.Error("Smooth with radius 0 should return the input image")
	}
}

func TestSmooth_BlursEdge(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 20; x++ {
			if x < 10 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}

	blurred := Smooth(img, 2)
	if blurred.Bounds().Dx() != 20 || blurred.Bounds().Dy() != 5 {
		t.Fatalf("dimensions: got %dx%d, want 20x5", blurred.Bounds().Dx(), blurred.Bounds().Dy())
	}

	// Pixels next to the edge are pulled toward the middle gray.
	r, _, _, _ := blurred.At(9, 2).RGBA()
	if r>>8 == 0 || r>>8 == 255 {
		t.Errorf("pixel beside edge should be gray after blur, got %d", r>>8)
	}
	// Far from the edge stays close to black.
	if r, _, _, _ := blurred.At(0, 2).RGBA(); r>>8 > 10 {
		t.Errorf("pixel far from edge: got %d, want near 0", r>>8)
	}
}
