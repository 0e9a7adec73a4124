package vectorize

import (
	"image"
	"sort"

	"github.com/luisfn/image-tools/internal/rgb"
)

// quantize keeps the top bits of a channel, zeroing the rest.
func quantize(v uint8, bits int) uint8 {
	shift := 8 - bits
	return v >> shift << shift
}

// luminance weighs a color for light-to-dark layer ordering.
func luminance(c rgb.Color) int {
	return 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
}

// buildPalette collects the quantized colors of all opaque pixels, most
// frequent first, capped at maxLayers entries.
func buildPalette(img *image.NRGBA, precision int) []rgb.Color {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	counts := make(map[rgb.Color]int)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			if row[i+3] < 128 {
				continue
			}
			c := rgb.Color{
				R: quantize(row[i+0], precision),
				G: quantize(row[i+1], precision),
				B: quantize(row[i+2], precision),
			}
			counts[c]++
		}
	}

	palette := make([]rgb.Color, 0, len(counts))
	for c := range counts {
		palette = append(palette, c)
	}
	sort.Slice(palette, func(i, j int) bool {
		if counts[palette[i]] != counts[palette[j]] {
			return counts[palette[i]] > counts[palette[j]]
		}
		return luminance(palette[i]) > luminance(palette[j])
	})
	if len(palette) > maxLayers {
		palette = palette[:maxLayers]
	}
	return palette
}

// mapToPalette assigns each pixel the index of its quantized color in the
// palette, falling back to the nearest entry for colors the palette cap
// squeezed out. Transparent pixels get -1.
func mapToPalette(img *image.NRGBA, palette []rgb.Color, precision int) []int {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	lookup := make(map[rgb.Color]int, len(palette))
	for i, c := range palette {
		lookup[c] = i
	}

	idx := make([]int, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			if row[i+3] < 128 {
				idx[y*w+x] = -1
				continue
			}
			c := rgb.Color{
				R: quantize(row[i+0], precision),
				G: quantize(row[i+1], precision),
				B: quantize(row[i+2], precision),
			}
			if k, ok := lookup[c]; ok {
				idx[y*w+x] = k
				continue
			}
			idx[y*w+x] = nearest(c, palette)
		}
	}
	return idx
}

func nearest(c rgb.Color, palette []rgb.Color) int {
	best, bestDist := 0, 1<<30
	for i, p := range palette {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// byLuminanceDesc returns palette indices ordered lightest to darkest.
func byLuminanceDesc(palette []rgb.Color) []int {
	order := make([]int, len(palette))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return luminance(palette[order[i]]) > luminance(palette[order[j]])
	})
	return order
}
