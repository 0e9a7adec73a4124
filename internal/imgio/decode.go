package imgio

import (
	"bytes"
	"fmt"
	"image"
	"os"

	ico "github.com/biessek/golang-ico"
	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

// Decode reads an image from raw bytes, dispatching on the detected format.
// JPEG inputs honor their EXIF orientation tag.
func Decode(data []byte) (image.Image, Format, error) {
	format := DetectFormat(data)

	var (
		img image.Image
		err error
	)
	switch format {
	case JPEG:
		img, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	case PNG, GIF, BMP, TIFF:
		img, err = imaging.Decode(bytes.NewReader(data))
	case WebP:
		img, err = webp.Decode(bytes.NewReader(data))
	case ICO:
		img, err = ico.Decode(bytes.NewReader(data))
	case SVG:
		img, err = renderSVG(data)
	default:
		return nil, "", ErrUnsupportedFormat
	}
	if err != nil {
		return nil, format, fmt.Errorf("decoding %s: %w", format, err)
	}
	return img, format, nil
}

// Open loads and decodes an image file.
func Open(path string) (image.Image, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	img, format, err := Decode(data)
	if err != nil {
		return nil, format, fmt.Errorf("%s: %w", path, err)
	}
	return img, format, nil
}
