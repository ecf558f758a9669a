package geom

// Increments are the per-frame angle steps, in radians.
type Increments struct {
	A, B, C float64
}

// Rotation holds the current angles about X (A), Y (B) and Z (C).
// Angles grow without bound; sin and cos are periodic so no wraparound is applied.
type Rotation struct {
	A, B, C float64
	Step    Increments
}

func NewRotation(step Increments) *Rotation {
	return &Rotation{Step: step}
}

func (r *Rotation) Angles() (a, b, c float64) { return r.A, r.B, r.C }

// Advance moves every angle forward by its increment. Call it only after the
// frame rendered with the current angles has been presented.
func (r *Rotation) Advance() {
	r.A += r.Step.A
	r.B += r.Step.B
	r.C += r.Step.C
}

func (r *Rotation) Reset() { r.A, r.B, r.C = 0, 0, 0 }
