package vectorize

import (
	"image/color"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/luisfn/image-tools/internal/rgb"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		v    uint8
		bits int
		want uint8
	}{
		{163, 4, 160},
		{255, 8, 255},
		{255, 4, 240},
		{7, 1, 0},
		{200, 1, 128},
		{0, 6, 0},
	}
	for _, tt := range tests {
		if got := quantize(tt.v, tt.bits); got != tt.want {
			t.Errorf("quantize(%d, %d) = %d, want %d", tt.v, tt.bits, got, tt.want)
		}
	}
}

func TestBuildPalette(t *testing.T) {
	img := imaging.New(8, 8, color.NRGBA{R: 200, A: 255})
	for y := 0; y < 2; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{B: 200, A: 255})
		}
	}
	// One transparent pixel must not contribute.
	img.SetNRGBA(0, 7, color.NRGBA{G: 255, A: 0})

	palette := buildPalette(img, 6)
	if len(palette) != 2 {
		t.Fatalf("palette size = %d, want 2", len(palette))
	}
	// Most frequent first: 47 red pixels vs 16 blue.
	if (palette[0] != rgb.Color{R: 200}) {
		t.Errorf("palette[0] = %v, want the red bucket", palette[0])
	}
	if (palette[1] != rgb.Color{B: 200}) {
		t.Errorf("palette[1] = %v, want the blue bucket", palette[1])
	}
}

func TestMapToPalette(t *testing.T) {
	img := imaging.New(2, 1, color.NRGBA{R: 201, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 10, A: 100})

	palette := buildPalette(img, 6)
	idx := mapToPalette(img, palette, 6)
	if idx[0] != 0 {
		t.Errorf("opaque pixel index = %d, want 0", idx[0])
	}
	if idx[1] != -1 {
		t.Errorf("transparent pixel index = %d, want -1", idx[1])
	}
}

func TestByLuminanceDesc(t *testing.T) {
	palette := []rgb.Color{
		{R: 10, G: 10, B: 10},
		{R: 250, G: 250, B: 250},
		{R: 128, G: 128, B: 128},
	}
	order := byLuminanceDesc(palette)
	want := []int{1, 2, 0}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestToSVGBinary(t *testing.T) {
	img := imaging.New(24, 24, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for y := 6; y < 18; y++ {
		for x := 6; x < 18; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}

	out, err := ToSVG(img, Options{Mode: ModeBinary})
	if err != nil {
		t.Fatalf("ToSVG: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<svg") {
		t.Error("output is missing an <svg element")
	}
	if !strings.Contains(s, "path") {
		t.Error("a solid square traced to no path")
	}
}

func TestToSVGColorLayers(t *testing.T) {
	img := imaging.New(16, 16, color.NRGBA{R: 200, A: 255})
	for y := 0; y < 16; y++ {
		for x := 8; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{B: 200, A: 255})
		}
	}

	out, err := ToSVG(img, Options{Mode: ModeColor, ColorPrecision: 6})
	if err != nil {
		t.Fatalf("ToSVG: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `fill="#c80000"`) {
		t.Error("missing the red layer")
	}
	if !strings.Contains(s, `fill="#0000c8"`) {
		t.Error("missing the blue layer")
	}
	// Red is lighter, so it must be painted first (underneath).
	if strings.Index(s, "#c80000") > strings.Index(s, "#0000c8") {
		t.Error("layers out of order: lightest color must come first")
	}
	if !strings.Contains(s, `viewBox="0 0 16 16"`) {
		t.Error("missing viewBox")
	}
}

func TestToSVGCompact(t *testing.T) {
	img := imaging.New(8, 8, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	out, err := ToSVG(img, Options{Mode: ModeColor, Compact: true})
	if err != nil {
		t.Fatalf("ToSVG: %v", err)
	}
	if strings.Contains(string(out), ">\n") {
		t.Error("compact output still contains newlines between elements")
	}
}

func TestToSVGNoOpaquePixels(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{})
	if _, err := ToSVG(img, Options{Mode: ModeColor}); err == nil {
		t.Fatal("expected an error for a fully transparent image")
	}
}
