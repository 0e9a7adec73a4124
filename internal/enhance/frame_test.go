package enhance

import (
	"image"
	"image/color"
	"testing"
)

func TestBrowserFrameDimensions(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1},
		{100, 50},
		{1280, 720},
		{3, 200},
	}
	for _, size := range sizes {
		out := BrowserFrame(solid(size.w, size.h, color.NRGBA{R: 1, G: 2, B: 3, A: 255}), DefaultCornerRadius)
		b := out.Bounds()
		if b.Dx() != size.w || b.Dy() != size.h+TitleBarHeight {
			t.Errorf("%dx%d input: got %dx%d, want %dx%d",
				size.w, size.h, b.Dx(), b.Dy(), size.w, size.h+TitleBarHeight)
		}
	}
}

func TestBrowserFrameChrome(t *testing.T) {
	blue := color.NRGBA{B: 255, A: 255}
	out := BrowserFrame(solid(200, 100, blue), 0)

	// Title bar fill away from the dots.
	if got := out.NRGBAAt(150, 10); got != titleBarFill {
		t.Errorf("title bar = %v, want %v", got, titleBarFill)
	}

	// Traffic-light dot centers, left to right.
	centers := []image.Point{{20, 22}, {42, 22}, {64, 22}}
	for i, p := range centers {
		if got := out.NRGBAAt(p.X, p.Y); got != trafficLights[i] {
			t.Errorf("dot %d at %v = %v, want %v", i, p, got, trafficLights[i])
		}
	}

	// Screenshot content starts directly below the title bar.
	if got := out.NRGBAAt(100, TitleBarHeight); got != blue {
		t.Errorf("first content row = %v, want %v", got, blue)
	}
	if got := out.NRGBAAt(100, TitleBarHeight+50); got != blue {
		t.Errorf("content = %v, want %v", got, blue)
	}
}

func TestBrowserFrameRoundsOuterCorners(t *testing.T) {
	out := BrowserFrame(solid(100, 60, color.NRGBA{R: 255, A: 255}), 12)
	for _, p := range []image.Point{{0, 0}, {99, 0}, {0, 103}, {99, 103}} {
		if got := out.NRGBAAt(p.X, p.Y); got.A > 10 {
			t.Errorf("outer corner %v alpha = %d, want near zero", p, got.A)
		}
	}
	// The pasted screenshot itself is not rounded: just inside the bottom
	// corners the content is opaque.
	if got := out.NRGBAAt(20, 90); got.A != 255 {
		t.Errorf("content alpha = %d, want 255", got.A)
	}
}
