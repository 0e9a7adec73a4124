// Package vectorize traces raster images into SVG documents.
package vectorize

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/dennwc/gotrace"
	"github.com/disintegration/imaging"
)

// Mode selects the tracing strategy.
type Mode int

const (
	// ModeColor quantizes the image and traces one stacked layer per
	// palette color, lightest first.
	ModeColor Mode = iota
	// ModeBinary thresholds luminance and traces a single black layer.
	ModeBinary
)

// Tracer defaults.
const (
	DefaultPrecision = 6   // significant bits kept per channel in color mode
	DefaultSpeckle   = 4   // minimum traced area in pixels
	DefaultThreshold = 128 // binary-mode luminance cutoff

	// maxLayers bounds the color-mode palette so photographic inputs
	// stay tractable.
	maxLayers = 64
)

// Options controls raster-to-SVG tracing.
type Options struct {
	Mode           Mode
	ColorPrecision int   // 1-8; DefaultPrecision when out of range
	FilterSpeckle  int   // contours below this many pixels are dropped; 0 keeps all
	Threshold      uint8 // binary cutoff; DefaultThreshold when zero
	Compact        bool  // strip whitespace between elements
}

// ToSVG traces img into an SVG document.
func ToSVG(img image.Image, opts Options) ([]byte, error) {
	src := imaging.Clone(img)

	var (
		out []byte
		err error
	)
	if opts.Mode == ModeBinary {
		out, err = traceBinary(src, opts)
	} else {
		out, err = traceColor(src, opts)
	}
	if err != nil {
		return nil, err
	}
	if opts.Compact {
		out = Compact(out)
	}
	return out, nil
}

func traceParams(opts Options) *gotrace.Params {
	speckle := opts.FilterSpeckle
	if speckle < 0 {
		speckle = 0
	}
	return &gotrace.Params{
		TurdSize:     speckle,
		TurnPolicy:   gotrace.TurnMinority,
		AlphaMax:     1.0,
		OptiCurve:    true,
		OptTolerance: 0.2,
	}
}

// traceBinary thresholds dark, opaque pixels and writes a single-color
// trace through the tracer's own SVG writer.
func traceBinary(img *image.NRGBA, opts Options) ([]byte, error) {
	cutoff := uint32(opts.Threshold)
	if cutoff == 0 {
		cutoff = DefaultThreshold
	}
	cutoff <<= 8 // compare against 16-bit channel values

	bm := gotrace.NewBitmapFromImage(img, func(x, y int, c color.Color) bool {
		r, g, b, a := c.RGBA()
		if a < 0x8000 {
			return false
		}
		return (299*r+587*g+114*b)/1000 < cutoff
	})
	paths, err := gotrace.Trace(bm, traceParams(opts))
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}

	var buf bytes.Buffer
	if err := gotrace.WriteSvg(&buf, img.Bounds(), paths, ""); err != nil {
		return nil, fmt.Errorf("writing svg: %w", err)
	}
	return buf.Bytes(), nil
}

// traceColor quantizes the image, then traces cumulative layers from the
// lightest palette color to the darkest so stacked fills leave no seams.
func traceColor(img *image.NRGBA, opts Options) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	precision := opts.ColorPrecision
	if precision < 1 || precision > 8 {
		precision = DefaultPrecision
	}

	palette := buildPalette(img, precision)
	if len(palette) == 0 {
		return nil, errors.New("vectorize: no opaque pixels to trace")
	}
	idx := mapToPalette(img, palette, precision)
	order := byLuminanceDesc(palette)

	// rank[k] is the stacking position of palette entry k; a layer's
	// bitmap covers its own pixels plus everything stacked above it.
	rank := make([]int, len(palette))
	for pos, k := range order {
		rank[k] = pos
	}

	params := traceParams(opts)
	var body bytes.Buffer
	for pos, k := range order {
		member := func(x, y int, _ color.Color) bool {
			i := idx[y*w+x]
			return i >= 0 && rank[i] >= pos
		}
		paths, err := gotrace.Trace(gotrace.NewBitmapFromImage(img, member), params)
		if err != nil {
			return nil, fmt.Errorf("tracing layer %d: %w", pos, err)
		}
		if len(paths) == 0 {
			continue
		}
		c := palette[k]
		fmt.Fprintf(&body, "  <path fill=\"#%02x%02x%02x\" fill-rule=\"evenodd\" d=\"%s\"/>\n",
			c.R, c.G, c.B, pathsData(paths))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", w, h, w, h)
	buf.Write(body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
