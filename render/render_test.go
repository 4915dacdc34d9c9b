package render

import (
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/collage/interact"
	"github.com/milk9111/collage/obj"
	"github.com/milk9111/collage/snap"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSurfaceTransformOrder(t *testing.T) {
	var base ebiten.GeoM
	base.Scale(2, 2)

	s := NewSurface()
	s.Begin(nil, base)
	s.Push()
	s.Translate(10, 0)
	s.Rotate(math.Pi / 2)

	// Local (1,0) rotates to (0,1), moves to (10,1), then doubles.
	x, y := s.geo.Apply(1, 0)
	if !approx(x, 20) || !approx(y, 2) {
		t.Fatalf("expected (20,2), got (%v,%v)", x, y)
	}
	if !approx(s.lineScale(), 2) {
		t.Fatalf("expected line scale 2, got %v", s.lineScale())
	}

	s.Pop()
	x, y = s.geo.Apply(1, 0)
	if !approx(x, 2) || !approx(y, 0) {
		t.Fatalf("pop did not restore the base transform, got (%v,%v)", x, y)
	}

	// An extra pop is ignored.
	s.Pop()
	if len(s.stack) != 0 {
		t.Fatalf("stack should be empty")
	}
}

func TestCameraGeoMMatchesCamera(t *testing.T) {
	cam := obj.NewCamera(800, 600)
	cam.Pan(30, -12)
	cam.ZoomAt(2.5, 100, 200)

	g := CameraGeoM(cam)
	for _, p := range []obj.Point{{X: 0, Y: 0}, {X: 120, Y: -40}, {X: -7.5, Y: 300}} {
		gx, gy := g.Apply(p.X, p.Y)
		cx, cy := cam.WorldToScreen(p.X, p.Y)
		if !approx(gx, cx) || !approx(gy, cy) {
			t.Fatalf("world (%v,%v): geom (%v,%v) camera (%v,%v)", p.X, p.Y, gx, gy, cx, cy)
		}
	}
}

func TestDashes(t *testing.T) {
	cases := []struct {
		name   string
		length float64
		expect [][2]float64
	}{
		{"empty", 0, nil},
		{"single", 3, [][2]float64{{0, 3}}},
		{"exact", 16, [][2]float64{{0, 4}, {8, 12}}},
		{"trailing_partial", 18, [][2]float64{{0, 4}, {8, 12}, {16, 18}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Dashes(c.length, 4, 4)
			if len(got) != len(c.expect) {
				t.Fatalf("expected %v, got %v", c.expect, got)
			}
			for i := range got {
				if got[i] != c.expect[i] {
					t.Fatalf("expected %v, got %v", c.expect, got)
				}
			}
		})
	}
}

func TestGuideSegment(t *testing.T) {
	cam := obj.NewCamera(800, 600)
	cam.Pan(10, 20)

	x0, y0, x1, y1 := GuideSegment(cam, snap.Line{Axis: snap.Vertical, Coord: 100})
	if x0 != 110 || x1 != 110 || y0 != 0 || y1 != 600 {
		t.Fatalf("unexpected vertical guide (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}
	x0, y0, x1, y1 = GuideSegment(cam, snap.Line{Axis: snap.Horizontal, Coord: 50})
	if y0 != 70 || y1 != 70 || x0 != 0 || x1 != 800 {
		t.Fatalf("unexpected horizontal guide (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}

	// Zoomed in, the guide still spans the full viewport.
	cam.ZoomAt(2, 0, 0)
	x0, y0, x1, y1 = GuideSegment(cam, snap.Line{Axis: snap.Vertical, Coord: 100})
	if !approx(x0, 220) || !approx(x1, 220) || !approx(y0, 0) || !approx(y1, 600) {
		t.Fatalf("unexpected zoomed guide (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}
}

func TestStatus(t *testing.T) {
	core := interact.NewCore(obj.NewCamera(800, 600), obj.NewScene(), snap.NewEngine(0), interact.DefaultSettings())
	if got := Status(core); !strings.Contains(got, "zoom 100%") || !strings.Contains(got, "wheel zoom (ctrl: scale)") {
		t.Fatalf("unexpected status %q", got)
	}
	core.ToggleRotationMode()
	if got := Status(core); !strings.Contains(got, "wheel rotate") {
		t.Fatalf("unexpected status %q", got)
	}
}
