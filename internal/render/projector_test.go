package render

import (
	"testing"

	"github.com/san-kum/cubesim/internal/geom"
)

func referenceProjector() Projector {
	return Projector{
		Mode:           Perspective,
		Width:          140,
		Height:         44,
		CameraDistance: 100,
		Scale:          40,
		OrthoScale:     0.5,
		Aspect:         2,
	}
}

func TestProjectCenter(t *testing.T) {
	pr := referenceProjector()
	sx, sy, depth, ok := pr.Project(geom.Vec3{X: 0, Y: 0, Z: -1})
	if !ok {
		t.Fatal("center point reported off-screen")
	}
	if sx != 70 || sy != 22 {
		t.Errorf("expected (70, 22), got (%d, %d)", sx, sy)
	}
	if depth != 1.0/99 {
		t.Errorf("expected depth 1/99, got %f", depth)
	}
}

func TestProjectDepthOrdering(t *testing.T) {
	pr := referenceProjector()
	_, _, near, _ := pr.Project(geom.Vec3{Z: -20})
	_, _, far, _ := pr.Project(geom.Vec3{Z: 20})
	if near <= far {
		t.Errorf("nearer point should have larger inverse depth: near=%f far=%f", near, far)
	}
	if far <= 0 {
		t.Errorf("depth must stay positive, got %f", far)
	}
}

func TestProjectBounds(t *testing.T) {
	pr := Projector{Mode: Orthographic, Width: 10, Height: 6, CameraDistance: 100, OrthoScale: 1, Aspect: 1}

	tests := []struct {
		name   string
		p      geom.Vec3
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"last column", geom.Vec3{X: 4}, 9, 3, true},
		{"one past last column", geom.Vec3{X: 5}, 10, 3, false},
		{"first column", geom.Vec3{X: -5}, 0, 3, true},
		{"before first column", geom.Vec3{X: -6}, -1, 3, false},
		{"last row", geom.Vec3{Y: 2}, 5, 5, true},
		{"one past last row", geom.Vec3{Y: 3}, 5, 6, false},
		{"first row", geom.Vec3{Y: -3}, 5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy, _, ok := pr.Project(tt.p)
			if sx != tt.wantX || sy != tt.wantY || ok != tt.wantOK {
				t.Errorf("got (%d, %d, %v), want (%d, %d, %v)", sx, sy, ok, tt.wantX, tt.wantY, tt.wantOK)
			}
		})
	}
}

func TestProjectPerspectiveRightEdge(t *testing.T) {
	pr := referenceProjector()

	// 1/100 * 40 * x * 2 = 69 lands on column 139.
	sx, _, _, ok := pr.Project(geom.Vec3{X: 86.25})
	if sx != 139 || !ok {
		t.Errorf("expected column 139 in bounds, got %d ok=%v", sx, ok)
	}

	sx, _, _, ok = pr.Project(geom.Vec3{X: 87.5})
	if sx != 140 || ok {
		t.Errorf("expected column 140 off-screen, got %d ok=%v", sx, ok)
	}
}

func TestOrthographicIgnoresDepthForScale(t *testing.T) {
	pr := referenceProjector()
	pr.Mode = Orthographic

	x1, y1, d1, _ := pr.Project(geom.Vec3{X: 10, Y: 10, Z: -20})
	x2, y2, d2, _ := pr.Project(geom.Vec3{X: 10, Y: 10, Z: 20})
	if x1 != x2 || y1 != y2 {
		t.Errorf("orthographic position should not depend on z: (%d,%d) vs (%d,%d)", x1, y1, x2, y2)
	}
	if x1 != 80 || y1 != 27 {
		t.Errorf("expected (80, 27), got (%d, %d)", x1, y1)
	}
	if d1 <= d2 {
		t.Error("orthographic mode must still report usable depth")
	}
}

func TestParseProjection(t *testing.T) {
	for _, s := range []string{"perspective", "orthographic"} {
		if _, err := ParseProjection(s); err != nil {
			t.Errorf("%s: %v", s, err)
		}
	}
	if _, err := ParseProjection("fisheye"); err == nil {
		t.Error("expected error")
	}
}
