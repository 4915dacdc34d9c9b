package interact

import (
	"image"
	"math"
	"testing"

	"github.com/milk9111/collage/obj"
)

func TestArrangeRowsTallestFirst(t *testing.T) {
	short := obj.NewObject(image.NewRGBA(image.Rect(0, 0, 100, 50)), 900, 900)
	tall := obj.NewObject(image.NewRGBA(image.Rect(0, 0, 100, 200)), -40, 7)
	mid := obj.NewObject(image.NewRGBA(image.Rect(0, 0, 100, 100)), 3, 3)
	objs := []*obj.Object{short, tall, mid}

	Arrange(objs, 20)

	// Target width is sqrt(120*70 + 120*220 + 120*120) * 1.5, about 333, so
	// the shortest object wraps onto a second row below the tallest.
	if tall.X != 0 || tall.Y != 0 {
		t.Fatalf("tallest should lead the row, got (%v,%v)", tall.X, tall.Y)
	}
	if mid.X != 120 || mid.Y != 0 {
		t.Fatalf("expected mid at (120,0), got (%v,%v)", mid.X, mid.Y)
	}
	if short.X != 0 || short.Y != 220 {
		t.Fatalf("expected short at (0,220), got (%v,%v)", short.X, short.Y)
	}
}

func TestArrangeWraps(t *testing.T) {
	var objs []*obj.Object
	for i := 0; i < 9; i++ {
		objs = append(objs, obj.NewObject(image.NewRGBA(image.Rect(0, 0, 100, 100)), float64(i*1000), 0))
	}
	Arrange(objs, 0)

	// Target width is sqrt(9*100*100) * 1.5 = 450: four per row.
	rows := map[float64]int{}
	for _, o := range objs {
		rows[o.Y]++
		if o.X+100 > 450 {
			t.Fatalf("object overflows the row at x=%v", o.X)
		}
	}
	if rows[0] != 4 || rows[100] != 4 || rows[200] != 1 {
		t.Fatalf("unexpected row distribution %v", rows)
	}
}

func TestAutoArrange(t *testing.T) {
	core := newTestCore()
	a := addObject(core, 100, 100, -500, 40)
	b := addObject(core, 60, 80, 900, -300)
	a.Rotation = 1.2
	b.Rotation = -3
	b.SetScale(2)
	core.Camera.Pan(55, 66)
	core.Camera.ZoomAt(3, 10, 10)

	core.AutoArrange()

	if core.Scene.Len() != 2 {
		t.Fatalf("auto-arrange changed the object count")
	}
	if x, y := core.Camera.Position(); x != 0 || y != 0 || core.Camera.Zoom() != 1 {
		t.Fatalf("camera not reset: (%v,%v) zoom %v", x, y, core.Camera.Zoom())
	}
	group := a.Box().Union(b.Box())
	for _, o := range []*obj.Object{a, b} {
		if o.Rotation != 0 {
			t.Fatalf("rotation not cleared: %v", o.Rotation)
		}
	}
	if math.Abs(group.CenterX()-400) > 1e-9 || math.Abs(group.CenterY()-300) > 1e-9 {
		t.Fatalf("group not centered on viewport: %+v", group)
	}
	if b.Scale() != 2 {
		t.Fatalf("auto-arrange must keep scale, got %v", b.Scale())
	}
}

func TestAutoArrangeEmpty(t *testing.T) {
	core := newTestCore()
	core.Camera.Pan(10, 10)
	core.AutoArrange()
	if x, y := core.Camera.Position(); x != 0 || y != 0 {
		t.Fatalf("camera should reset even with no objects")
	}
}

func TestPlace(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		scale  float64
		x, y   float64
		camPan float64
		zoom   float64
	}{
		{"small_kept", 200, 100, 1, 300, 250, 0, 1},
		{"wide_downscaled", 1000, 400, 0.5, 150, 200, 0, 1},
		{"panned_camera", 200, 100, 1, 200, 150, 100, 1},
		// Screen (400,300) is world (200,150) at zoom 2.
		{"zoomed_camera", 200, 100, 1, 100, 100, 0, 2},
		// Pan then zoom about the origin: position (200,200), so world (100,50).
		{"panned_and_zoomed", 200, 100, 1, 0, 0, 100, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			core := newTestCore()
			core.Camera.Pan(c.camPan, c.camPan)
			core.Camera.ZoomAt(c.zoom, 0, 0)
			o := core.Place(image.NewRGBA(image.Rect(0, 0, c.w, c.h)), 400, 300)
			if o == nil {
				t.Fatalf("expected an object")
			}
			if o.Scale() != c.scale {
				t.Fatalf("expected scale %v, got %v", c.scale, o.Scale())
			}
			if o.X != c.x || o.Y != c.y {
				t.Fatalf("expected top-left (%v,%v), got (%v,%v)", c.x, c.y, o.X, o.Y)
			}
			if core.Scene.Len() != 1 {
				t.Fatalf("object not added to the scene")
			}
		})
	}
}

func TestPlaceEmptyImage(t *testing.T) {
	core := newTestCore()
	if core.Place(nil, 0, 0) != nil {
		t.Fatalf("nil image should not be placed")
	}
	if core.Place(image.NewRGBA(image.Rectangle{}), 0, 0) != nil {
		t.Fatalf("empty image should not be placed")
	}
	if core.Scene.Len() != 0 {
		t.Fatalf("scene should stay empty")
	}
}
