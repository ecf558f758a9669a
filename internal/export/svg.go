package export

import (
	"fmt"
	"html"
	"image/color"
	"strings"

	"github.com/san-kum/cubesim/internal/render"
)

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FrameToSVG draws every non-background cell as a colored glyph. cell is the
// width of one character in SVG units; rows are twice as tall.
func FrameToSVG(fb *render.FrameBuffer, cell float64) string {
	if fb == nil {
		return ""
	}

	width := float64(fb.Width()) * cell
	height := float64(fb.Height()) * cell * 2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.1f" text-anchor="middle">
`, width, height, width, height, hex(backgroundColor), cell*1.6))

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Depth(x, y) == 0 {
				continue
			}
			g := fb.Glyph(x, y)
			cx := float64(x)*cell + cell/2
			cy := float64(y+1)*cell*2 - cell/2
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, cx, cy, hex(glyphColor(g)), html.EscapeString(string(g))))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
