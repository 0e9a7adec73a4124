package imgio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	ico "github.com/biessek/golang-ico"
	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// DefaultQuality is the lossy quality used when the caller does not pick
// one.
const DefaultQuality = 80

// maxIcoSize is the largest dimension the ICO directory format can record.
const maxIcoSize = 256

// EncodeOptions adjusts the lossy encoders. Quality applies to JPEG and
// WebP and is ignored elsewhere.
type EncodeOptions struct {
	Quality int // 1-100; DefaultQuality when zero
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format, opts EncodeOptions) error {
	quality := opts.Quality
	if quality == 0 {
		quality = DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return fmt.Errorf("imgio: quality %d out of range 1-100", quality)
	}

	switch format {
	case JPEG:
		return imaging.Encode(w, Flatten(img), imaging.JPEG, imaging.JPEGQuality(quality))
	case PNG:
		return imaging.Encode(w, img, imaging.PNG)
	case GIF:
		return imaging.Encode(w, img, imaging.GIF)
	case BMP:
		return imaging.Encode(w, img, imaging.BMP)
	case TIFF:
		return imaging.Encode(w, img, imaging.TIFF)
	case WebP:
		enc, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
		if err != nil {
			return fmt.Errorf("webp encoder options: %w", err)
		}
		return webp.Encode(w, img, enc)
	case ICO:
		if b := img.Bounds(); b.Dx() > maxIcoSize || b.Dy() > maxIcoSize {
			img = imaging.Fit(img, maxIcoSize, maxIcoSize, imaging.Lanczos)
		}
		return ico.Encode(w, img)
	case PDF:
		return encodePDF(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedTarget, format)
	}
}

// Save encodes img into path, inferring the format from the extension when
// format is empty. The file is only written after the whole image encodes
// cleanly, so a failed encode leaves nothing behind.
func Save(img image.Image, path string, format Format, opts EncodeOptions) error {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		format = f
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, format, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Flatten drops the alpha channel, keeping the stored color values of every
// pixel rather than compositing over a background.
func Flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
