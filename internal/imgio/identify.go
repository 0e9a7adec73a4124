package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	ico "github.com/biessek/golang-ico"
	"golang.org/x/image/webp"
)

// Info describes an image file.
type Info struct {
	Format Format
	Width  int
	Height int
	Mode   string // pixel interpretation, e.g. "RGBA", "Grayscale", "vector"
	Size   int64  // file size in bytes; zero when identified from memory
}

// Identify inspects an image file, reading only headers where the format
// allows.
func Identify(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	info, err := IdentifyBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	info.Size = int64(len(data))
	return info, nil
}

// IdentifyBytes inspects an in-memory image.
func IdentifyBytes(data []byte) (*Info, error) {
	format := DetectFormat(data)
	switch format {
	case JPEG, PNG, GIF, BMP, TIFF:
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s header: %w", format, err)
		}
		return &Info{Format: format, Width: cfg.Width, Height: cfg.Height, Mode: modeName(cfg.ColorModel)}, nil
	case WebP:
		cfg, err := webp.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing webp header: %w", err)
		}
		mode := modeName(cfg.ColorModel)
		if mode == "unknown" {
			// Lossy WebP with an alpha plane reports a model outside the
			// stdlib set.
			mode = "RGBA"
		}
		return &Info{Format: format, Width: cfg.Width, Height: cfg.Height, Mode: mode}, nil
	case ICO:
		img, err := ico.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding ico: %w", err)
		}
		b := img.Bounds()
		return &Info{Format: format, Width: b.Dx(), Height: b.Dy(), Mode: modeName(img.ColorModel())}, nil
	case SVG:
		w, h, err := svgViewBoxSize(data)
		if err != nil {
			return nil, err
		}
		return &Info{Format: format, Width: w, Height: h, Mode: "vector"}, nil
	}
	return nil, ErrUnsupportedFormat
}

// modeName maps a color model to the name identify prints.
func modeName(m color.Model) string {
	switch m {
	case color.NRGBAModel, color.RGBAModel, color.NRGBA64Model, color.RGBA64Model:
		return "RGBA"
	case color.YCbCrModel:
		return "RGB"
	case color.GrayModel, color.Gray16Model:
		return "Grayscale"
	case color.CMYKModel:
		return "CMYK"
	}
	if _, ok := m.(color.Palette); ok {
		return "Indexed"
	}
	return "unknown"
}
