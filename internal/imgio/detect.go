package imgio

import "bytes"

// Magic-byte signatures for the raster formats the suite accepts.
var (
	pngSignature  = [...]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	riffSignature = [...]byte{'R', 'I', 'F', 'F'}
	webpSignature = [...]byte{'W', 'E', 'B', 'P'}
	icoSignature  = [...]byte{0x00, 0x00, 0x01, 0x00}
	tiffLittleSig = [...]byte{'I', 'I', 0x2A, 0x00}
	tiffBigSig    = [...]byte{'M', 'M', 0x00, 0x2A}
	utf8BOM       = [...]byte{0xEF, 0xBB, 0xBF}
)

// DetectFormat identifies an image format by examining leading magic bytes.
// It returns an empty Format when nothing matches.
func DetectFormat(data []byte) Format {
	switch {
	// JPEG: FF D8 FF
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return JPEG
	case bytes.HasPrefix(data, pngSignature[:]):
		return PNG
	// GIF87a or GIF89a
	case len(data) >= 6 && data[0] == 'G' && data[1] == 'I' && data[2] == 'F' &&
		data[3] == '8' && (data[4] == '7' || data[4] == '9') && data[5] == 'a':
		return GIF
	// WebP: RIFF....WEBP
	case len(data) >= 12 && bytes.HasPrefix(data, riffSignature[:]) &&
		bytes.Equal(data[8:12], webpSignature[:]):
		return WebP
	case bytes.HasPrefix(data, tiffLittleSig[:]) || bytes.HasPrefix(data, tiffBigSig[:]):
		return TIFF
	case bytes.HasPrefix(data, icoSignature[:]):
		return ICO
	// BMP: "BM"
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		return BMP
	case looksLikeSVG(data):
		return SVG
	}
	return ""
}

// looksLikeSVG sniffs for an XML prolog or an <svg root element near the
// start of the data, tolerating a BOM and leading whitespace.
func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.TrimPrefix(head, utf8BOM[:])
	head = bytes.TrimLeft(head, " \t\r\n")
	if bytes.HasPrefix(head, []byte("<svg")) {
		return true
	}
	return bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<svg"))
}
