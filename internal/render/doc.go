// Package render implements the software pipeline that turns a rotating cube
// into a character grid.
//
// Each frame runs:
//
//   - [CubeSampler] enumerates the lattice points on the six cube faces
//   - a geom.Transformer rotates each point about the origin
//   - [Projector] maps the rotated point to a screen cell and an inverse depth
//   - [FrameBuffer.WriteIfCloser] keeps only the nearest point per cell
//
// [Renderer] owns all of the per-frame state and [Loop] drives it against a
// [Presenter].
//
// # Example
//
//	r := render.NewRenderer(opts)
//	stats := r.RenderFrame()
//	fmt.Print(r.Frame().String())
//	r.Advance()
package render
