package enhance

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/luisfn/image-tools/internal/rgb"
)

// Pipeline defaults.
const (
	DefaultPadding      = 80 // background margin around the composed layer
	DefaultCornerRadius = 12
)

// Options controls the full enhancement pipeline.
type Options struct {
	Preset       string     // named gradient preset; DefaultPreset when empty
	Start        *rgb.Color // explicit gradient start; overrides Preset only together with End
	End          *rgb.Color // explicit gradient end
	Padding      int        // background margin in px
	CornerRadius int        // window corner radius in px
	NoFrame      bool       // skip the browser chrome
	NoShadow     bool       // skip the drop shadow
}

// Render runs the enhancement pipeline: browser frame, drop shadow, and a
// diagonal gradient background, each stage returning a new image. Frame and
// shadow can be skipped independently; when both run, the frame is applied
// first.
func Render(src image.Image, opts Options) (*image.NRGBA, error) {
	if opts.Padding < 0 {
		return nil, fmt.Errorf("enhance: negative padding %d", opts.Padding)
	}

	// 1. Resolve gradient endpoints
	var start, end rgb.Color
	if opts.Start != nil && opts.End != nil {
		start, end = *opts.Start, *opts.End
	} else {
		name := opts.Preset
		if name == "" {
			name = DefaultPreset
		}
		var err error
		start, end, err = Preset(name)
		if err != nil {
			return nil, err
		}
	}

	// 2. Normalize the input to RGBA
	var layer image.Image = imaging.Clone(src)

	// 3. Browser chrome
	if !opts.NoFrame {
		layer = BrowserFrame(layer, opts.CornerRadius)
	}

	// 4. Drop shadow
	if !opts.NoShadow {
		layer = DropShadow(layer, DefaultShadow())
	}

	// 5. Gradient background sized to the layer plus padding
	lb := layer.Bounds()
	bg := Gradient(lb.Dx()+2*opts.Padding, lb.Dy()+2*opts.Padding, start, end)

	// 6. Composite the layer centered on the background
	return imaging.Overlay(bg, layer, image.Pt(opts.Padding, opts.Padding), 1.0), nil
}
