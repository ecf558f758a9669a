package geom

import (
	"fmt"
	"math"
)

// RotationMethod selects how the combined rotation is evaluated.
type RotationMethod string

const (
	// Fused multiplies by the precombined matrix Rx(A)·Ry(B)·Rz(C).
	Fused RotationMethod = "fused"
	// Sequential applies the three single-axis rotations one after another.
	Sequential RotationMethod = "sequential"
)

func ParseRotationMethod(s string) (RotationMethod, error) {
	switch RotationMethod(s) {
	case Fused, Sequential:
		return RotationMethod(s), nil
	}
	return "", fmt.Errorf("unknown rotation method %q (want %s or %s)", s, Fused, Sequential)
}

// Transformer rotates points about the origin. Set caches the trig terms so
// a whole frame of points reuses them.
type Transformer struct {
	method         RotationMethod
	sa, ca, sb, cb float64
	sc, cc         float64
}

func NewTransformer(method RotationMethod) *Transformer {
	t := &Transformer{method: method}
	t.SetAngles(0, 0, 0)
	return t
}

func (t *Transformer) Method() RotationMethod { return t.method }

func (t *Transformer) Set(r *Rotation) { t.SetAngles(r.Angles()) }

func (t *Transformer) SetAngles(a, b, c float64) {
	t.sa, t.ca = math.Sincos(a)
	t.sb, t.cb = math.Sincos(b)
	t.sc, t.cc = math.Sincos(c)
}

// Rotate applies the current rotation to p.
func (t *Transformer) Rotate(p Vec3) Vec3 {
	if t.method == Sequential {
		return t.sequential(p)
	}
	return t.fused(p)
}

// RotateAbout rotates p around center instead of the origin.
func (t *Transformer) RotateAbout(p, center Vec3) Vec3 {
	return t.Rotate(p.Sub(center)).Add(center)
}

func (t *Transformer) fused(p Vec3) Vec3 {
	sa, ca, sb, cb, sc, cc := t.sa, t.ca, t.sb, t.cb, t.sc, t.cc
	x, y, z := p.X, p.Y, p.Z
	return Vec3{
		X: x*cb*cc + y*(sa*sb*cc+ca*sc) + z*(sa*sc-ca*sb*cc),
		Y: -x*cb*sc + y*(ca*cc-sa*sb*sc) + z*(ca*sb*sc+sa*cc),
		Z: x*sb - y*sa*cb + z*ca*cb,
	}
}

func (t *Transformer) sequential(p Vec3) Vec3 {
	// X axis
	y := p.Y*t.ca + p.Z*t.sa
	z := p.Z*t.ca - p.Y*t.sa
	// Y axis
	x := p.X*t.cb - z*t.sb
	z = p.X*t.sb + z*t.cb
	// Z axis
	return Vec3{
		X: x*t.cc + y*t.sc,
		Y: y*t.cc - x*t.sc,
		Z: z,
	}
}
