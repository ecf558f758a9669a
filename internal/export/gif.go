package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/cubesim/internal/render"
)

const (
	cellW = 4
	cellH = 8
)

var palette = color.Palette{
	backgroundColor,
	FaceColors[render.Front],
	FaceColors[render.Right],
	FaceColors[render.Left],
	FaceColors[render.Back],
	FaceColors[render.Bottom],
	FaceColors[render.Top],
	fallbackColor,
}

func paletteIndex(g rune) uint8 {
	if f, ok := render.FaceForGlyph(g); ok {
		return uint8(f) + 1
	}
	return uint8(len(palette) - 1)
}

// FrameToImage paints each drawn cell as a solid block in its face color.
func FrameToImage(fb *render.FrameBuffer) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, fb.Width()*cellW, fb.Height()*cellH), palette)
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Depth(x, y) == 0 {
				continue
			}
			idx := paletteIndex(fb.Glyph(x, y))
			for py := 0; py < cellH; py++ {
				for px := 0; px < cellW; px++ {
					img.SetColorIndex(x*cellW+px, y*cellH+py, idx)
				}
			}
		}
	}
	return img
}

// WriteGIF encodes frames as a looping animation. delay is in 100ths of a second.
func WriteGIF(w io.Writer, frames []*render.FrameBuffer, delay int) error {
	if len(frames) == 0 {
		return errors.New("export: no frames to encode")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, fb := range frames {
		anim.Image = append(anim.Image, FrameToImage(fb))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
