package vectorize

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/dennwc/gotrace"
)

var interElementSpace = regexp.MustCompile(`>\s+<`)

// Compact removes whitespace between SVG elements; rendering is unaffected.
func Compact(svg []byte) []byte {
	return bytes.TrimSpace(interElementSpace.ReplaceAll(svg, []byte("><")))
}

// pathsData renders a set of closed contours as one SVG path string. Holes
// come out as counter-rotating subpaths, which is why the path element
// carries fill-rule="evenodd".
func pathsData(paths []gotrace.Path) string {
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		if d := pathData(p); d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, " ")
}

// pathData serializes one traced contour. A contour is a closed loop, so it
// starts at the final segment's endpoint; corner segments contribute two
// line segments through their vertex, spline segments one cubic Bezier.
func pathData(p gotrace.Path) string {
	if len(p.Curve) == 0 {
		return ""
	}
	var sb strings.Builder
	start := p.Curve[len(p.Curve)-1].Pnt[2]
	fmt.Fprintf(&sb, "M%s", coord(start))
	for _, seg := range p.Curve {
		if seg.Type == gotrace.TypeCorner {
			fmt.Fprintf(&sb, "L%s L%s", coord(seg.Pnt[1]), coord(seg.Pnt[2]))
		} else {
			fmt.Fprintf(&sb, "C%s %s %s", coord(seg.Pnt[0]), coord(seg.Pnt[1]), coord(seg.Pnt[2]))
		}
	}
	sb.WriteString("Z")
	return sb.String()
}

func coord(p gotrace.Point) string {
	return trimZeros(fmt.Sprintf("%.3f", p.X)) + " " + trimZeros(fmt.Sprintf("%.3f", p.Y))
}

// trimZeros drops trailing fractional zeros so whole coordinates print
// without a decimal point.
func trimZeros(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
