package render

import "strings"

// FrameBuffer pairs a glyph grid with a depth grid, both row-major.
// A depth of 0 means nothing has been drawn in that cell; every valid
// inverse depth is positive.
type FrameBuffer struct {
	width, height int
	background    rune
	glyphs        []rune
	depth         []float64
}

func NewFrameBuffer(w, h int, background rune) *FrameBuffer {
	fb := &FrameBuffer{
		width:      w,
		height:     h,
		background: background,
		glyphs:     make([]rune, w*h),
		depth:      make([]float64, w*h),
	}
	fb.Clear()
	return fb
}

func (fb *FrameBuffer) Width() int       { return fb.width }
func (fb *FrameBuffer) Height() int      { return fb.height }
func (fb *FrameBuffer) Background() rune { return fb.background }

// Clear resets every glyph to the background and every depth to 0.
func (fb *FrameBuffer) Clear() {
	for i := range fb.glyphs {
		fb.glyphs[i] = fb.background
		fb.depth[i] = 0
	}
}

func (fb *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// WriteIfCloser stores glyph at (x, y) only when depth is strictly greater
// than the stored depth. Ties keep the earlier write. It reports whether the
// cell changed.
func (fb *FrameBuffer) WriteIfCloser(x, y int, depth float64, glyph rune) bool {
	if !fb.inBounds(x, y) {
		return false
	}
	i := x + y*fb.width
	if depth <= fb.depth[i] {
		return false
	}
	fb.depth[i] = depth
	fb.glyphs[i] = glyph
	return true
}

func (fb *FrameBuffer) Glyph(x, y int) rune {
	if !fb.inBounds(x, y) {
		return fb.background
	}
	return fb.glyphs[x+y*fb.width]
}

func (fb *FrameBuffer) Depth(x, y int) float64 {
	if !fb.inBounds(x, y) {
		return 0
	}
	return fb.depth[x+y*fb.width]
}

// Row returns row y as a string of exactly Width glyphs.
func (fb *FrameBuffer) Row(y int) string {
	if y < 0 || y >= fb.height {
		return ""
	}
	return string(fb.glyphs[y*fb.width : (y+1)*fb.width])
}

func (fb *FrameBuffer) Rows() []string {
	rows := make([]string, fb.height)
	for y := range rows {
		rows[y] = fb.Row(y)
	}
	return rows
}

func (fb *FrameBuffer) String() string {
	var b strings.Builder
	b.Grow((fb.width + 1) * fb.height)
	for y := 0; y < fb.height; y++ {
		b.WriteString(fb.Row(y))
		b.WriteByte('\n')
	}
	return b.String()
}

// Coverage counts the visible cells per glyph, ignoring the background.
func (fb *FrameBuffer) Coverage() map[rune]int {
	counts := make(map[rune]int)
	for i, g := range fb.glyphs {
		if fb.depth[i] > 0 {
			counts[g]++
		}
	}
	return counts
}

// Clone returns an independent copy, used when frames outlive the loop.
func (fb *FrameBuffer) Clone() *FrameBuffer {
	c := &FrameBuffer{
		width:      fb.width,
		height:     fb.height,
		background: fb.background,
		glyphs:     make([]rune, len(fb.glyphs)),
		depth:      make([]float64, len(fb.depth)),
	}
	copy(c.glyphs, fb.glyphs)
	copy(c.depth, fb.depth)
	return c
}
