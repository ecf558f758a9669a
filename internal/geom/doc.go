// Package geom provides the 3D primitives the cube pipeline rotates.
//
//   - [Vec3]: a point or direction in cube-local space
//   - [Rotation]: three accumulating angles advanced once per frame
//   - [Transformer]: applies Rx(A)·Ry(B)·Rz(C) to points
//
// # Example
//
//	rot := geom.NewRotation(geom.Increments{A: 0.05, B: 0.05, C: 0.01})
//	tr := geom.NewTransformer(geom.Fused)
//	tr.Set(rot)
//	p := tr.Rotate(geom.Vec3{X: 20, Y: 0, Z: -20})
//	rot.Advance()
//
// # Thread Safety
//
// Rotation and Transformer are NOT safe for concurrent use. A render loop owns
// exactly one of each.
package geom
