package imgio

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultSVGSize sizes documents that declare no usable viewBox.
const defaultSVGSize = 512

// renderSVG rasterizes an SVG document at its intrinsic size.
func renderSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	w := int(icon.ViewBox.W + 0.5)
	h := int(icon.ViewBox.H + 0.5)
	if w <= 0 || h <= 0 {
		w, h = defaultSVGSize, defaultSVGSize
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return rgba, nil
}

// svgViewBoxSize reports an SVG's intrinsic pixel size without rasterizing.
func svgViewBoxSize(data []byte) (w, h int, err error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("parsing svg: %w", err)
	}
	w = int(icon.ViewBox.W + 0.5)
	h = int(icon.ViewBox.H + 0.5)
	if w <= 0 || h <= 0 {
		w, h = defaultSVGSize, defaultSVGSize
	}
	return w, h, nil
}
