package export

import (
	"image/color"

	"github.com/san-kum/cubesim/internal/render"
)

// FaceColors gives every face a distinct color in exported images.
var FaceColors = map[render.Face]color.RGBA{
	render.Front:  {0xff, 0x00, 0x00, 0xff}, // red
	render.Right:  {0x00, 0x80, 0x00, 0xff}, // green
	render.Left:   {0x00, 0x00, 0xff, 0xff}, // blue
	render.Back:   {0xff, 0xff, 0x00, 0xff}, // yellow
	render.Bottom: {0x80, 0x00, 0x80, 0xff}, // purple
	render.Top:    {0x00, 0xff, 0xff, 0xff}, // cyan
}

var (
	backgroundColor = color.RGBA{0x0a, 0x0a, 0x0a, 0xff}
	fallbackColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

func glyphColor(g rune) color.RGBA {
	if f, ok := render.FaceForGlyph(g); ok {
		return FaceColors[f]
	}
	return fallbackColor
}
