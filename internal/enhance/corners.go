package enhance

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// RoundCorners clips img to a rounded rectangle by replacing its alpha
// channel with a rendered mask. Color channels are preserved everywhere, so
// the corners are hidden rather than cropped. A radius larger than half the
// smaller dimension is clamped; a negative radius is treated as zero.
func RoundCorners(img image.Image, radius int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if radius < 0 {
		radius = 0
	}
	r := float64(radius)
	if half := float64(min(w, h)) / 2; r > half {
		r = half
	}

	mask := gg.NewContext(w, h)
	mask.SetRGB(1, 1, 1)
	mask.DrawRoundedRectangle(0, 0, float64(w), float64(h), r)
	mask.Fill()
	alpha := mask.Image().(*image.RGBA)

	out := imaging.Clone(img)
	for y := 0; y < h; y++ {
		mi := y * alpha.Stride
		oi := y * out.Stride
		for x := 0; x < w; x++ {
			out.Pix[oi+x*4+3] = alpha.Pix[mi+x*4+3]
		}
	}
	return out
}
