package rgb

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Parse reads a color from its command-line form "R,G,B", e.g. "99,58,196".
// Spaces around components are allowed.
func Parse(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid color %q (use R,G,B, e.g. 99,58,196)", s)
	}
	var v [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("invalid color component %q in %q (values must be 0-255)", part, s)
		}
		v[i] = uint8(n)
	}
	return Color{R: v[0], G: v[1], B: v[2]}, nil
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// String renders the color back in its command-line form.
func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}
