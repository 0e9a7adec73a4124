package enhance

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ShadowOptions controls drop-shadow synthesis.
type ShadowOptions struct {
	OffsetX int         // horizontal shadow displacement in px
	OffsetY int         // vertical shadow displacement in px
	Blur    int         // Gaussian blur radius in px
	Color   color.NRGBA // shadow fill; its alpha applies only to sources without an alpha channel
}

// DefaultShadow is the shadow used by the enhance pipeline: soft, black,
// dropped slightly below the window.
func DefaultShadow() ShadowOptions {
	return ShadowOptions{OffsetY: 12, Blur: 40, Color: color.NRGBA{A: 80}}
}

// DropShadow composites img, kept sharp, over a blurred copy of its own
// silhouette. The canvas grows by 2×blur plus the offset magnitude on each
// axis so the blur never clips. The silhouette lands offset by exactly
// (OffsetX, OffsetY) relative to the sharp image, whichever signs the
// offsets carry.
func DropShadow(img image.Image, opts ShadowOptions) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	blur := opts.Blur
	if blur < 0 {
		blur = 0
	}

	canvas := imaging.New(w+2*blur+abs(opts.OffsetX), h+2*blur+abs(opts.OffsetY), color.NRGBA{})
	canvas = imaging.Paste(canvas, silhouette(img, opts.Color),
		image.Pt(blur+max(0, opts.OffsetX), blur+max(0, opts.OffsetY)))
	if blur > 0 {
		canvas = imaging.Blur(canvas, float64(blur))
	}
	return imaging.Overlay(canvas, img,
		image.Pt(blur+max(0, -opts.OffsetX), blur+max(0, -opts.OffsetY)), 1.0)
}

// silhouette fills img's footprint with a flat color. When img carries an
// alpha channel the silhouette adopts it, reproducing the outline; for
// opaque source types the fill color's own alpha covers the full rectangle.
func silhouette(img image.Image, c color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := imaging.New(b.Dx(), b.Dy(), c)
	if hasAlphaChannel(img) {
		src := imaging.Clone(img)
		for i := 3; i < len(out.Pix); i += 4 {
			out.Pix[i] = src.Pix[i]
		}
	}
	return out
}

func hasAlphaChannel(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		return true
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
