package export

import "github.com/san-kum/cubesim/internal/render"

// Recorder is a render.Presenter that keeps a copy of every frame, optionally
// forwarding to another presenter.
type Recorder struct {
	next   render.Presenter
	frames []*render.FrameBuffer
}

func NewRecorder(next render.Presenter) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Present(fb *render.FrameBuffer) error {
	r.frames = append(r.frames, fb.Clone())
	if r.next != nil {
		return r.next.Present(fb)
	}
	return nil
}

func (r *Recorder) Frames() []*render.FrameBuffer { return r.frames }

// Last returns the most recent frame, or nil before the first one.
func (r *Recorder) Last() *render.FrameBuffer {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}
