package enhance

import (
	"errors"
	"image/color"
	"testing"

	"github.com/luisfn/image-tools/internal/rgb"
)

func TestRenderBackgroundOnly(t *testing.T) {
	// With frame and shadow disabled the background is exactly the input
	// plus padding, and the input lands untouched at the center.
	teal := color.NRGBA{G: 128, B: 128, A: 255}
	src := solid(60, 40, teal)

	out, err := Render(src, Options{Padding: 15, NoFrame: true, NoShadow: true})
	if err != nil {
		t.Fatal(err)
	}
	b := out.Bounds()
	if b.Dx() != 90 || b.Dy() != 70 {
		t.Fatalf("output = %dx%d, want 90x70", b.Dx(), b.Dy())
	}
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			if got := out.NRGBAAt(15+x, 15+y); got != teal {
				t.Fatalf("content pixel (%d,%d) = %v, want %v", x, y, got, teal)
			}
		}
	}
	// Background corners carry the default preset endpoints.
	start, end, _ := Preset(DefaultPreset)
	if got := out.NRGBAAt(0, 0); got.R != start.R || got.G != start.G || got.B != start.B {
		t.Errorf("top-left = %v, want %v", got, start)
	}
	if got := out.NRGBAAt(89, 69); got.R != end.R || got.G != end.G || got.B != end.B {
		t.Errorf("bottom-right = %v, want %v", got, end)
	}
}

func TestRenderEndToEnd(t *testing.T) {
	// 100x50 screenshot, default settings: frame adds 44px of height, the
	// shadow adds 2x40 plus the 12px offset, padding adds 2x80.
	src := solid(100, 50, color.NRGBA{R: 77, G: 77, B: 77, A: 255})

	out, err := Render(src, Options{
		Preset:       DefaultPreset,
		Padding:      DefaultPadding,
		CornerRadius: DefaultCornerRadius,
	})
	if err != nil {
		t.Fatal(err)
	}
	b := out.Bounds()
	if b.Dx() != 340 || b.Dy() != 346 {
		t.Fatalf("output = %dx%d, want 340x346", b.Dx(), b.Dy())
	}

	tl := out.NRGBAAt(0, 0)
	if !within1(tl.R, 99) || !within1(tl.G, 58) || !within1(tl.B, 196) {
		t.Errorf("top-left = %v, want ~(99,58,196)", tl)
	}
	br := out.NRGBAAt(339, 345)
	if !within1(br.R, 41) || !within1(br.G, 121) || !within1(br.B, 255) {
		t.Errorf("bottom-right = %v, want ~(41,121,255)", br)
	}
	if tl.A != 255 || br.A != 255 {
		t.Errorf("background corners not opaque: %v %v", tl, br)
	}

	// The window interior survives the whole pipeline unchanged.
	if got := out.NRGBAAt(170, 200); (got != color.NRGBA{R: 77, G: 77, B: 77, A: 255}) {
		t.Errorf("window content = %v, want the source gray", got)
	}
}

func TestRenderStageSizes(t *testing.T) {
	src := solid(100, 50, color.NRGBA{A: 255})
	tests := []struct {
		name         string
		opts         Options
		wantW, wantH int
	}{
		{"frame-only", Options{Padding: 80, NoShadow: true}, 260, 254},
		{"shadow-only", Options{Padding: 80, NoFrame: true}, 340, 302},
		{"bare", Options{Padding: 80, NoFrame: true, NoShadow: true}, 260, 210},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(src, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			b := out.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("output = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderUnknownPreset(t *testing.T) {
	_, err := Render(solid(10, 10, color.NRGBA{A: 255}), Options{Preset: "lava-lamp"})
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("error = %v, want ErrUnknownPreset", err)
	}
}

func TestRenderCustomColors(t *testing.T) {
	start := rgb.Color{R: 5, G: 10, B: 15}
	end := rgb.Color{R: 250, G: 240, B: 230}
	out, err := Render(solid(20, 20, color.NRGBA{A: 255}), Options{
		// Explicit endpoints win; the preset name is not even looked up.
		Preset:   "lava-lamp",
		Start:    &start,
		End:      &end,
		Padding:  10,
		NoFrame:  true,
		NoShadow: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := out.NRGBAAt(0, 0); got.R != 5 || got.G != 10 || got.B != 15 {
		t.Errorf("top-left = %v, want the custom start", got)
	}
}

func TestRenderStartAloneFallsBackToPreset(t *testing.T) {
	start := rgb.Color{R: 5, G: 10, B: 15}
	out, err := Render(solid(20, 20, color.NRGBA{A: 255}), Options{
		Start:    &start,
		Padding:  10,
		NoFrame:  true,
		NoShadow: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	want, _, _ := Preset(DefaultPreset)
	if got := out.NRGBAAt(0, 0); got.R != want.R || got.G != want.G || got.B != want.B {
		t.Errorf("top-left = %v, want the %s start %v", got, DefaultPreset, want)
	}
}

func TestRenderNegativePadding(t *testing.T) {
	if _, err := Render(solid(10, 10, color.NRGBA{A: 255}), Options{Padding: -1}); err == nil {
		t.Fatal("expected an error for negative padding")
	}
}
