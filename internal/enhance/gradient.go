package enhance

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/luisfn/image-tools/internal/rgb"
)

// ErrUnknownPreset is returned when a gradient preset name has no entry in
// the preset table.
var ErrUnknownPreset = errors.New("enhance: unknown gradient preset")

// DefaultPreset is the gradient used when no preset or explicit colors are
// configured.
const DefaultPreset = "purple-blue"

// gradientPresets maps preset names to (start, end) color pairs. The table
// is never mutated after package init; Preset hands out copies.
var gradientPresets = map[string][2]rgb.Color{
	"purple-blue": {{R: 99, G: 58, B: 196}, {R: 41, G: 121, B: 255}},
	"blue-cyan":   {{R: 41, G: 121, B: 255}, {R: 0, G: 210, B: 211}},
	"pink-orange": {{R: 233, G: 64, B: 127}, {R: 255, G: 154, B: 64}},
	"green-teal":  {{R: 22, G: 172, B: 93}, {R: 0, G: 194, B: 168}},
	"dark":        {{R: 30, G: 30, B: 40}, {R: 60, G: 60, B: 80}},
	"sunset":      {{R: 255, G: 95, B: 109}, {R: 255, G: 195, B: 113}},
}

// presetOrder fixes the display order for PresetNames and the gradients
// listing.
var presetOrder = []string{
	"purple-blue",
	"blue-cyan",
	"pink-orange",
	"green-teal",
	"dark",
	"sunset",
}

// Preset resolves a named gradient to its start and end colors.
func Preset(name string) (start, end rgb.Color, err error) {
	pair, ok := gradientPresets[name]
	if !ok {
		return rgb.Color{}, rgb.Color{}, fmt.Errorf("%w: %q (valid: %s)",
			ErrUnknownPreset, name, strings.Join(presetOrder, ", "))
	}
	return pair[0], pair[1], nil
}

// PresetNames returns all preset names in display order.
func PresetNames() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}

// Gradient renders an opaque width×height image blending diagonally from
// start at the top-left corner to end at the bottom-right corner. Channels
// interpolate linearly; the two corner pixels hit the endpoint colors
// exactly, and a degenerate axis (width or height of 1) contributes zero to
// the blend.
func Gradient(width, height int, start, end rgb.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	var sx, sy float64
	if width > 1 {
		sx = 1 / float64(width-1)
	}
	if height > 1 {
		sy = 1 / float64(height-1)
	}
	for y := 0; y < height; y++ {
		fy := float64(y) * sy
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			f := (float64(x)*sx + fy) / 2
			i := x * 4
			row[i+0] = lerp(start.R, end.R, f)
			row[i+1] = lerp(start.G, end.G, f)
			row[i+2] = lerp(start.B, end.B, f)
			row[i+3] = 0xff
		}
	}
	return img
}

// lerp blends a single channel; the result truncates rather than rounds.
func lerp(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f)
}
