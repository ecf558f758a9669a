package render

import (
	"fmt"
	"math"

	"github.com/san-kum/cubesim/internal/geom"
)

// Projection selects how rotated points are flattened onto the screen.
type Projection string

const (
	Perspective  Projection = "perspective"
	Orthographic Projection = "orthographic"
)

func ParseProjection(s string) (Projection, error) {
	switch Projection(s) {
	case Perspective, Orthographic:
		return Projection(s), nil
	}
	return "", fmt.Errorf("unknown projection %q", s)
}

// Projector maps rotated cube points onto a Width x Height grid.
type Projector struct {
	Mode           Projection
	Width, Height  int
	CameraDistance float64 // pushes every point in front of the viewer
	Scale          float64 // perspective magnification
	OrthoScale     float64 // flat magnification used by Orthographic
	Aspect         float64 // widens X to compensate for tall character cells
}

// Project returns the screen cell of p and its inverse depth. ok is false when
// the cell falls outside [0, Width) x [0, Height).
//
// Both modes report depth as 1/(z+CameraDistance) so occlusion keeps working;
// only Perspective uses it to shrink distant points.
func (pr Projector) Project(p geom.Vec3) (sx, sy int, depth float64, ok bool) {
	depth = 1 / (p.Z + pr.CameraDistance)

	var px, py float64
	if pr.Mode == Orthographic {
		px = pr.OrthoScale * p.X * pr.Aspect
		py = pr.OrthoScale * p.Y
	} else {
		px = depth * pr.Scale * p.X * pr.Aspect
		py = depth * pr.Scale * p.Y
	}

	sx = int(math.Round(px + float64(pr.Width/2)))
	sy = int(math.Round(py + float64(pr.Height/2)))
	return sx, sy, depth, pr.InBounds(sx, sy)
}

func (pr Projector) InBounds(x, y int) bool {
	return x >= 0 && x < pr.Width && y >= 0 && y < pr.Height
}
