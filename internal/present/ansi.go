package present

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"
	"github.com/san-kum/cubesim/internal/render"
)

type ansiWriter struct {
	buf   *bufio.Writer
	out   *termenv.Output
	color termenv.Color
}

func newANSIWriter(w io.Writer) ansiWriter {
	buf := bufio.NewWriter(w)
	out := termenv.NewOutput(buf, termenv.WithProfile(termenv.ANSI))
	return ansiWriter{buf: buf, out: out, color: out.Color(Color)}
}

// Start clears the terminal and hides the cursor.
func (a ansiWriter) Start() error {
	a.out.ClearScreen()
	a.out.HideCursor()
	return a.buf.Flush()
}

// Close restores the cursor below the last frame.
func (a ansiWriter) Close() error {
	a.out.Reset()
	a.out.ShowCursor()
	return a.buf.Flush()
}

func (a ansiWriter) styled(s string) string {
	return a.out.String(s).Foreground(a.color).String()
}

// LinePresenter repaints the whole grid each frame: cursor home, then
// Height rows of exactly Width glyphs, each followed by a move to the next line.
type LinePresenter struct {
	ansiWriter
}

func NewLinePresenter(w io.Writer) *LinePresenter {
	return &LinePresenter{ansiWriter: newANSIWriter(w)}
}

func (p *LinePresenter) Present(fb *render.FrameBuffer) error {
	p.out.MoveCursor(1, 1)
	for y := 0; y < fb.Height(); y++ {
		if _, err := p.out.WriteString(p.styled(fb.Row(y))); err != nil {
			return err
		}
		p.out.CursorNextLine(1)
	}
	return p.buf.Flush()
}

// CellPresenter moves the cursor to every cell and writes its glyph.
type CellPresenter struct {
	ansiWriter
}

func NewCellPresenter(w io.Writer) *CellPresenter {
	return &CellPresenter{ansiWriter: newANSIWriter(w)}
}

func (p *CellPresenter) Present(fb *render.FrameBuffer) error {
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			// ANSI coordinates are 1-based
			p.out.MoveCursor(y+1, x+1)
			if _, err := p.out.WriteString(p.styled(string(fb.Glyph(x, y)))); err != nil {
				return err
			}
		}
	}
	return p.buf.Flush()
}
