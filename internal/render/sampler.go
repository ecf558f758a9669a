package render

import (
	"fmt"

	"github.com/san-kum/cubesim/internal/geom"
)

type Face int

const (
	Front Face = iota
	Right
	Left
	Back
	Bottom
	Top
)

// Faces lists every face in emission order.
var Faces = [6]Face{Front, Right, Left, Back, Bottom, Top}

var faceGlyphs = [6]rune{'@', '$', '~', '#', ';', '+'}

var faceNames = [6]string{"front", "right", "left", "back", "bottom", "top"}

func (f Face) Glyph() rune    { return faceGlyphs[f] }
func (f Face) String() string { return faceNames[f] }

// FaceForGlyph maps a glyph back to the face that emits it.
func FaceForGlyph(g rune) (Face, bool) {
	for i, fg := range faceGlyphs {
		if fg == g {
			return Face(i), true
		}
	}
	return 0, false
}

// Layout controls where the faces sit relative to the cube center.
type Layout string

const (
	Centered Layout = "centered"
	// Exploded pushes each face outward along its normal by the gap.
	Exploded Layout = "exploded"
)

func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case Centered, Exploded:
		return Layout(s), nil
	}
	return "", fmt.Errorf("unknown layout %q", s)
}

// CubeSampler enumerates the integer lattice on each face of an
// origin-centered cube spanning [-Size, Size] on every axis.
type CubeSampler struct {
	Size int
	Gap  float64
}

func NewCubeSampler(size int, layout Layout, gap float64) CubeSampler {
	if layout != Exploded {
		gap = 0
	}
	return CubeSampler{Size: size, Gap: gap}
}

// Emissions is the number of points Sample produces per call.
func (s CubeSampler) Emissions() int {
	side := 2*s.Size + 1
	return side * side * len(Faces)
}

// Extent is the largest absolute coordinate of any emitted point.
func (s CubeSampler) Extent() float64 { return float64(s.Size) + s.Gap }

// Sample calls emit once per face for every (i, j) in [-Size, Size]^2,
// inclusive on both ends so no edge row is lost.
func (s CubeSampler) Sample(emit func(p geom.Vec3, f Face)) {
	d := s.Extent()
	for i := -s.Size; i <= s.Size; i++ {
		fi := float64(i)
		for j := -s.Size; j <= s.Size; j++ {
			fj := float64(j)
			emit(geom.Vec3{X: fi, Y: fj, Z: -d}, Front)
			emit(geom.Vec3{X: d, Y: fj, Z: fi}, Right)
			emit(geom.Vec3{X: -d, Y: fj, Z: -fi}, Left)
			emit(geom.Vec3{X: -fi, Y: fj, Z: d}, Back)
			emit(geom.Vec3{X: fi, Y: -d, Z: -fj}, Bottom)
			emit(geom.Vec3{X: fi, Y: d, Z: fj}, Top)
		}
	}
}
