package render

import (
	"context"
	"time"
)

// Presenter draws a completed frame. The buffer is only valid until the
// call returns.
type Presenter interface {
	Present(fb *FrameBuffer) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(fb *FrameBuffer) error

func (f PresenterFunc) Present(fb *FrameBuffer) error { return f(fb) }

// Observer is notified after each frame has been presented.
type Observer interface {
	OnFrame(stats FrameStats)
}

// Loop repeatedly renders, presents and advances.
type Loop struct {
	renderer  *Renderer
	presenter Presenter
	interval  time.Duration
	maxFrames int
	observers []Observer
}

// NewLoop builds a loop paced at fps frames per second; fps <= 0 runs unpaced.
func NewLoop(r *Renderer, p Presenter, fps int) *Loop {
	l := &Loop{
		renderer:  r,
		presenter: p,
		observers: make([]Observer, 0),
	}
	if fps > 0 {
		l.interval = time.Second / time.Duration(fps)
	}
	return l
}

// SetMaxFrames stops Run after n frames; 0 means run until canceled.
func (l *Loop) SetMaxFrames(n int)     { l.maxFrames = n }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

// Run returns nil after maxFrames frames, ctx.Err() on cancellation, or a
// *FrameError if the presenter fails.
func (l *Loop) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 0; l.maxFrames == 0 || n < l.maxFrames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		stats := l.renderer.RenderFrame()
		if err := l.presenter.Present(l.renderer.Frame()); err != nil {
			return &FrameError{Frame: stats.Frame, Wrapped: err}
		}
		for _, o := range l.observers {
			o.OnFrame(stats)
		}
		l.renderer.Advance()

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
	}
	return nil
}
