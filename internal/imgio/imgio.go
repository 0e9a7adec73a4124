// Package imgio decodes and encodes the image formats the tool suite
// accepts, detecting input formats from magic bytes rather than file
// extensions.
package imgio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an image file format.
type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
	GIF  Format = "gif"
	WebP Format = "webp"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	ICO  Format = "ico"
	SVG  Format = "svg"
	PDF  Format = "pdf"
)

var (
	// ErrUnsupportedFormat is returned when input bytes match no known
	// image signature.
	ErrUnsupportedFormat = errors.New("imgio: unsupported image format")

	// ErrUnsupportedTarget is returned when asked to produce a format the
	// suite cannot write.
	ErrUnsupportedTarget = errors.New("imgio: unsupported output format")
)

// ParseFormat reads a format name as given on the command line. Extension
// spellings ("jpg", "tif") are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "webp":
		return WebP, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "ico":
		return ICO, nil
	case "svg":
		return SVG, nil
	case "pdf":
		return PDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTarget, s)
}

// FormatFromPath infers a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("%w: cannot infer format from %q", ErrUnsupportedTarget, path)
	}
	return f, nil
}

// Ext returns the canonical file extension for a format, with the dot.
func (f Format) Ext() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + string(f)
}
