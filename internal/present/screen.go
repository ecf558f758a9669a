package present

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/cubesim/internal/render"
)

// ScreenPresenter draws cell by cell into a tcell screen.
type ScreenPresenter struct {
	screen tcell.Screen
	style  tcell.Style
}

func NewScreenPresenter(s tcell.Screen) *ScreenPresenter {
	return &ScreenPresenter{
		screen: s,
		style:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// OpenScreen initializes the terminal screen.
func OpenScreen() (*ScreenPresenter, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("screen start failed: %w", err)
	}
	s.HideCursor()
	return NewScreenPresenter(s), nil
}

func (p *ScreenPresenter) Present(fb *render.FrameBuffer) error {
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			p.screen.SetContent(x, y, fb.Glyph(x, y), nil, p.style)
		}
	}
	p.screen.Show()
	return nil
}

// WatchQuit blocks reading screen events and calls cancel on Escape,
// Ctrl-C or q. It returns once the screen is finalized.
func (p *ScreenPresenter) WatchQuit(cancel context.CancelFunc) {
	for {
		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				cancel()
				return
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

func (p *ScreenPresenter) Close() error {
	p.screen.Fini()
	return nil
}
