// Package removebg clears a solid background color out of an image by
// zeroing the alpha of matching pixels.
package removebg

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/luisfn/image-tools/internal/rgb"
)

// DefaultTolerance is the per-channel distance within which a pixel counts
// as background.
const DefaultTolerance = 30

type Options struct {
	Color     rgb.Color // background color to clear
	Tolerance int       // per-channel distance, inclusive
	Feather   float64   // Gaussian sigma for softening the mask edge, 0 = hard
}

// Remove returns a copy of img with every pixel whose channels all sit
// within opts.Tolerance of opts.Color made fully transparent. The RGB
// values of cleared pixels are kept. With a positive Feather the keep-mask
// is Gaussian-blurred first and alpha is scaled by it, so the cutout edge
// fades instead of stair-stepping. The second return value counts the
// pixels that matched.
func Remove(img image.Image, opts Options) (*image.NRGBA, int) {
	out := imaging.Clone(img)
	b := out.Bounds()
	w, h := b.Dx(), b.Dy()

	mask := image.NewGray(image.Rect(0, 0, w, h))
	cleared := 0
	for y := 0; y < h; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		mrow := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+4]
			if matches(px[0], px[1], px[2], opts.Color, opts.Tolerance) {
				cleared++
				if opts.Feather <= 0 {
					px[3] = 0
				}
			} else {
				mrow[x] = 0xff
			}
		}
	}

	if opts.Feather > 0 {
		soft := imaging.Blur(mask, opts.Feather)
		for y := 0; y < h; y++ {
			row := out.Pix[y*out.Stride : y*out.Stride+w*4]
			srow := soft.Pix[y*soft.Stride : y*soft.Stride+w*4]
			for x := 0; x < w; x++ {
				a := &row[x*4+3]
				*a = uint8(int(*a) * int(srow[x*4]) / 255)
			}
		}
	}
	return out, cleared
}

func matches(r, g, b uint8, c rgb.Color, tol int) bool {
	return within(r, c.R, tol) && within(g, c.G, tol) && within(b, c.B, tol)
}

func within(v, target uint8, tol int) bool {
	d := int(v) - int(target)
	if d < 0 {
		d = -d
	}
	return d <= tol
}
