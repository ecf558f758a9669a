package render

import "github.com/san-kum/cubesim/internal/geom"

// Options fixes every pipeline constant at construction time.
type Options struct {
	Width, Height  int
	Background     rune
	Projection     Projection
	CameraDistance float64
	Scale          float64
	OrthoScale     float64
	Aspect         float64
	CubeSize       int
	Layout         Layout
	Gap            float64
	Method         geom.RotationMethod
	Increments     geom.Increments
}

// FrameStats summarizes one RenderFrame pass.
type FrameStats struct {
	Frame     int
	Emitted   int // points produced by the sampler
	OffScreen int // points projected outside the grid
	Written   int // writes that won the depth test
	Occluded  int // writes rejected by the depth test
	Visible   int // non-background cells after the pass
	Faces     [6]int
}

// Renderer owns the rotation, transformer, projector, sampler and frame buffer
// for one animation.
type Renderer struct {
	rotation    *geom.Rotation
	transformer *geom.Transformer
	projector   Projector
	sampler     CubeSampler
	fb          *FrameBuffer
	frame       int
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		rotation:    geom.NewRotation(opts.Increments),
		transformer: geom.NewTransformer(opts.Method),
		projector: Projector{
			Mode:           opts.Projection,
			Width:          opts.Width,
			Height:         opts.Height,
			CameraDistance: opts.CameraDistance,
			Scale:          opts.Scale,
			OrthoScale:     opts.OrthoScale,
			Aspect:         opts.Aspect,
		},
		sampler: NewCubeSampler(opts.CubeSize, opts.Layout, opts.Gap),
		fb:      NewFrameBuffer(opts.Width, opts.Height, opts.Background),
	}
}

func (r *Renderer) Frame() *FrameBuffer      { return r.fb }
func (r *Renderer) Rotation() *geom.Rotation { return r.rotation }
func (r *Renderer) Sampler() CubeSampler     { return r.sampler }
func (r *Renderer) Projector() Projector     { return r.projector }
func (r *Renderer) FrameNumber() int         { return r.frame }

// RenderFrame clears the buffers and draws the cube with the current angles.
// The rotation is read once up front and stays fixed for the whole pass.
func (r *Renderer) RenderFrame() FrameStats {
	stats := FrameStats{Frame: r.frame}
	r.fb.Clear()
	r.transformer.Set(r.rotation)

	r.sampler.Sample(func(p geom.Vec3, f Face) {
		stats.Emitted++
		sx, sy, depth, ok := r.projector.Project(r.transformer.Rotate(p))
		if !ok {
			stats.OffScreen++
			return
		}
		if r.fb.WriteIfCloser(sx, sy, depth, f.Glyph()) {
			stats.Written++
		} else {
			stats.Occluded++
		}
	})

	for g, n := range r.fb.Coverage() {
		stats.Visible += n
		if f, ok := FaceForGlyph(g); ok {
			stats.Faces[f] += n
		}
	}
	return stats
}

// Advance steps the rotation for the next frame.
func (r *Renderer) Advance() {
	r.rotation.Advance()
	r.frame++
}

// Reset returns to frame 0 with zero angles.
func (r *Renderer) Reset() {
	r.rotation.Reset()
	r.frame = 0
	r.fb.Clear()
}
