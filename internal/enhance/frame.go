package enhance

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Browser chrome geometry, macOS-style at 1x scale.
const (
	// TitleBarHeight is the number of pixels the frame adds above the
	// screenshot.
	TitleBarHeight = 44

	dotRadius  = 7
	dotStartX  = 20 // center of the leftmost traffic-light dot
	dotSpacing = 22 // center-to-center distance between dots
)

var (
	titleBarFill  = color.NRGBA{R: 243, G: 243, B: 243, A: 255}
	separatorFill = color.NRGBA{R: 220, G: 220, B: 220, A: 255}

	// trafficLights holds the close/minimize/zoom dot colors, left to right.
	trafficLights = [3]color.NRGBA{
		{R: 255, G: 95, B: 87, A: 255},
		{R: 255, G: 189, B: 46, A: 255},
		{R: 39, G: 201, B: 63, A: 255},
	}
)

// BrowserFrame draws a browser-style title bar above the screenshot and
// rounds the outer corners of the combined window. Width is preserved; the
// result is TitleBarHeight taller than the input.
func BrowserFrame(shot image.Image, cornerRadius int) *image.NRGBA {
	b := shot.Bounds()
	w, h := b.Dx(), b.Dy()+TitleBarHeight

	dc := gg.NewContext(w, h)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	dc.SetColor(titleBarFill)
	dc.DrawRectangle(0, 0, float64(w), TitleBarHeight)
	dc.Fill()

	dc.SetColor(separatorFill)
	dc.DrawRectangle(0, TitleBarHeight, float64(w), 1)
	dc.Fill()

	dotY := float64(TitleBarHeight) / 2
	for i, c := range trafficLights {
		dc.SetColor(c)
		dc.DrawCircle(float64(dotStartX+i*dotSpacing), dotY, dotRadius)
		dc.Fill()
	}

	framed := imaging.Paste(dc.Image(), shot, image.Pt(0, TitleBarHeight))
	return RoundCorners(framed, cornerRadius)
}
