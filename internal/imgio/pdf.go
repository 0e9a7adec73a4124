package imgio

import (
	"fmt"
	"image"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// encodePDF embeds img losslessly on a single PDF page sized to the pixel
// dimensions, one pixel per point (72 dpi).
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width := float64(b.Dx())
	height := float64(b.Dy())

	page, err := document.WriteSinglePage(w, &pdf.Rectangle{URx: width, URy: height}, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating pdf page: %w", err)
	}

	page.PushGraphicsState()
	page.Transform(matrix.Scale(width, height))
	page.DrawXObject(&pdfimage.PNG{Data: img})
	page.PopGraphicsState()

	if err := page.Close(); err != nil {
		return fmt.Errorf("finishing pdf: %w", err)
	}
	return nil
}
