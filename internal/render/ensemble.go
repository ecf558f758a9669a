package render

import (
	"context"
	"sync"
	"time"
)

// Variant is one named configuration in an Ensemble.
type Variant struct {
	Name    string
	Options Options
}

// VariantResult holds what one variant produced.
type VariantResult struct {
	Name    string
	Final   *FrameBuffer
	Stats   []FrameStats
	Elapsed time.Duration
}

// Ensemble renders several variants for the same number of frames, each on
// its own goroutine with its own Renderer.
type Ensemble struct {
	variants []Variant
	frames   int
}

func NewEnsemble(frames int, variants ...Variant) *Ensemble {
	return &Ensemble{variants: variants, frames: frames}
}

type statsRecorder struct{ stats []FrameStats }

func (s *statsRecorder) OnFrame(stats FrameStats) { s.stats = append(s.stats, stats) }

// Run returns one result per variant, in input order, or the first error.
func (e *Ensemble) Run(ctx context.Context) ([]*VariantResult, error) {
	results := make([]*VariantResult, len(e.variants))
	errs := make([]error, len(e.variants))

	var wg sync.WaitGroup
	for i, v := range e.variants {
		wg.Add(1)
		go func(idx int, v Variant) {
			defer wg.Done()

			r := NewRenderer(v.Options)
			rec := &statsRecorder{stats: make([]FrameStats, 0, e.frames)}
			var final *FrameBuffer
			loop := NewLoop(r, PresenterFunc(func(fb *FrameBuffer) error {
				final = fb
				return nil
			}), 0)
			loop.SetMaxFrames(e.frames)
			loop.AddObserver(rec)

			start := time.Now()
			if err := loop.Run(ctx); err != nil {
				errs[idx] = err
				return
			}
			results[idx] = &VariantResult{
				Name:    v.Name,
				Final:   final,
				Stats:   rec.stats,
				Elapsed: time.Since(start),
			}
		}(i, v)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Diff counts cells whose glyphs differ between two equally sized frames.
// It returns -1 when the dimensions do not match.
func Diff(a, b *FrameBuffer) int {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return -1
	}
	n := 0
	for i := range a.glyphs {
		if a.glyphs[i] != b.glyphs[i] {
			n++
		}
	}
	return n
}
