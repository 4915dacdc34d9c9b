package interact

import (
	"image"
	"math"
	"testing"

	"github.com/milk9111/collage/obj"
	"github.com/milk9111/collage/snap"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestCore() *Core {
	return NewCore(obj.NewCamera(800, 600), obj.NewScene(), snap.NewEngine(snap.DefaultThreshold), DefaultSettings())
}

func addObject(c *Core, w, h int, x, y float64) *obj.Object {
	o := obj.NewObject(image.NewRGBA(image.Rect(0, 0, w, h)), x, y)
	c.Scene.Add(o)
	return o
}

func TestPointerDownTransitions(t *testing.T) {
	cases := []struct {
		name     string
		x, y     float64
		expect   State
		selected bool
	}{
		{"hit_object_drags", 50, 50, DraggingObject, true},
		{"miss_pans", 500, 500, PanningCamera, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			core := newTestCore()
			o := addObject(core, 100, 100, 0, 0)
			core.PointerDown(c.x, c.y)
			if core.State() != c.expect {
				t.Fatalf("expected state %v, got %v", c.expect, core.State())
			}
			if (core.Selected() == o) != c.selected || o.Selected != c.selected {
				t.Fatalf("unexpected selection %v", core.Selected())
			}
			core.PointerUp()
			if core.State() != Idle {
				t.Fatalf("pointer up should return to idle, got %v", core.State())
			}
		})
	}
}

func TestPointerDownMovesHitToTop(t *testing.T) {
	core := newTestCore()
	a := addObject(core, 100, 100, 0, 0)
	addObject(core, 100, 100, 300, 300)
	core.PointerDown(10, 10)
	objs := core.Scene.Objects()
	if objs[len(objs)-1] != a {
		t.Fatalf("clicked object should be moved to top")
	}
}

func TestMissDeselects(t *testing.T) {
	core := newTestCore()
	o := addObject(core, 100, 100, 0, 0)
	core.PointerDown(50, 50)
	core.PointerUp()
	core.PointerDown(700, 500)
	if core.Selected() != nil || o.Selected {
		t.Fatalf("miss should clear the selection")
	}
}

func TestDeleteAffordanceTakesPriority(t *testing.T) {
	core := newTestCore()
	under := addObject(core, 300, 300, 0, 0)
	addObject(core, 100, 100, 0, 0)
	core.PointerDown(50, 50)
	core.PointerUp()

	// The top-right corner of the selected object is its affordance; under also contains the point.
	core.PointerDown(100, 0)
	if core.State() != Idle {
		t.Fatalf("expected idle after delete, got %v", core.State())
	}
	if core.Scene.Len() != 1 || core.Scene.Objects()[0] != under {
		t.Fatalf("expected only the lower object to remain")
	}
	if core.Selected() != nil || under.Selected {
		t.Fatalf("delete should not select another object")
	}
}

func TestDragSnaps(t *testing.T) {
	core := newTestCore()
	addObject(core, 100, 100, 0, 0)
	b := addObject(core, 100, 100, 1000, 1000)

	core.PointerDown(1010, 1010)
	core.PointerMove(112, 15)
	if b.X != 100 || b.Y != 0 {
		t.Fatalf("expected snapped position (100,0), got (%v,%v)", b.X, b.Y)
	}
	if len(core.SnapLines()) != 2 {
		t.Fatalf("expected 2 guides during drag, got %d", len(core.SnapLines()))
	}
	core.PointerMove(600, 600)
	if b.X != 590 || b.Y != 590 {
		t.Fatalf("expected free position (590,590), got (%v,%v)", b.X, b.Y)
	}
	core.PointerUp()
	if len(core.SnapLines()) != 0 {
		t.Fatalf("guides should clear on pointer up")
	}
}

func TestDragUsesWorldDelta(t *testing.T) {
	core := newTestCore()
	o := addObject(core, 10, 10, 0, 0)
	core.Camera.ZoomAt(2, 0, 0)

	core.PointerDown(10, 10)
	core.PointerMove(110, 10)
	if !approx(o.X, 50) || !approx(o.Y, 0) {
		t.Fatalf("expected world move of 50 at zoom 2, got (%v,%v)", o.X, o.Y)
	}
}

func TestPanIsIncremental(t *testing.T) {
	core := newTestCore()
	core.PointerDown(100, 100)
	core.PointerMove(110, 105)
	core.PointerMove(130, 100)
	if x, y := core.Camera.Position(); x != 30 || y != 0 {
		t.Fatalf("expected camera at (30,0), got (%v,%v)", x, y)
	}
}

func TestPinch(t *testing.T) {
	core := newTestCore()
	core.Touches([]obj.Point{{X: 300, Y: 300}, {X: 400, Y: 300}})
	if core.State() != PinchZooming {
		t.Fatalf("expected pinching, got %v", core.State())
	}

	// Fingers spread to double the distance around the same centroid.
	wx, wy := core.Camera.ScreenToWorld(350, 300)
	core.Touches([]obj.Point{{X: 250, Y: 300}, {X: 450, Y: 300}})
	if !approx(core.Camera.Zoom(), 2) {
		t.Fatalf("expected zoom 2, got %v", core.Camera.Zoom())
	}
	if sx, sy := core.Camera.WorldToScreen(wx, wy); !approx(sx, 350) || !approx(sy, 300) {
		t.Fatalf("centroid drifted to (%v,%v)", sx, sy)
	}

	// Translate both fingers; the world point under the centroid follows.
	core.Touches([]obj.Point{{X: 270, Y: 320}, {X: 470, Y: 320}})
	if sx, sy := core.Camera.WorldToScreen(wx, wy); !approx(sx, 370) || !approx(sy, 320) {
		t.Fatalf("expected world point at (370,320), got (%v,%v)", sx, sy)
	}

	core.PointerUp()
	if core.State() != PinchZooming {
		t.Fatalf("pointer up must not cancel a pinch")
	}
	core.Touches([]obj.Point{{X: 1, Y: 1}})
	if core.State() != Idle {
		t.Fatalf("expected idle after releasing a finger, got %v", core.State())
	}
}

func TestPinchAbandonsDrag(t *testing.T) {
	core := newTestCore()
	o := addObject(core, 100, 100, 0, 0)
	core.PointerDown(50, 50)
	core.PointerMove(60, 50)
	core.Touches([]obj.Point{{X: 60, Y: 50}, {X: 160, Y: 50}})
	core.PointerMove(300, 300)
	if o.X != 10 || o.Y != 0 {
		t.Fatalf("object moved during pinch: (%v,%v)", o.X, o.Y)
	}
}

func TestWheelRouting(t *testing.T) {
	cases := []struct {
		name         string
		rotationMode bool
		mods         Modifiers
		x, y         float64
		rotation     float64
		scale        float64
		zoomChanged  bool
	}{
		{"rotation_mode", true, 0, 50, 50, 100 * 0.002, 1, false},
		{"rotation_mode_beats_ctrl", true, ModCtrl, 50, 50, 100 * 0.002, 1, false},
		{"ctrl_scales", false, ModCtrl, 50, 50, 0, 0.9, false},
		{"meta_scales", false, ModMeta, 50, 50, 0, 0.9, false},
		{"plain_zooms", false, 0, 50, 50, 0, 1, true},
		{"empty_space_zooms", true, ModCtrl, 500, 500, 0, 1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			core := newTestCore()
			o := addObject(core, 100, 100, 0, 0)
			core.SetRotationMode(c.rotationMode)
			core.Wheel(c.x, c.y, 100, c.mods)
			if !approx(o.Rotation, c.rotation) {
				t.Fatalf("expected rotation %v, got %v", c.rotation, o.Rotation)
			}
			if !approx(o.Scale(), c.scale) {
				t.Fatalf("expected scale %v, got %v", c.scale, o.Scale())
			}
			if changed := core.Camera.Zoom() != 1; changed != c.zoomChanged {
				t.Fatalf("zoom changed = %v, want %v", changed, c.zoomChanged)
			}
		})
	}
}

func TestWheelZoomDirection(t *testing.T) {
	core := newTestCore()
	core.Wheel(400, 300, -100, 0)
	if core.Camera.Zoom() <= 1 {
		t.Fatalf("scrolling up should zoom in, got %v", core.Camera.Zoom())
	}
	wx, wy := 0.0, 0.0
	if sx, sy := core.Camera.WorldToScreen(wx, wy); approx(sx, 0) && approx(sy, 0) {
		t.Fatalf("zoom should be anchored at the cursor, not the origin")
	}
}

func TestWheelScaleClamped(t *testing.T) {
	core := newTestCore()
	o := addObject(core, 100, 100, 0, 0)
	for i := 0; i < 100; i++ {
		core.Wheel(10, 10, -1000, ModCtrl)
	}
	if o.Scale() != obj.MaxScale {
		t.Fatalf("expected scale clamp at %v, got %v", obj.MaxScale, o.Scale())
	}
}

func TestRotationModeSubscription(t *testing.T) {
	core := newTestCore()
	var got []bool
	h := core.OnRotationModeChanged(func(enabled bool) {
		got = append(got, enabled)
	})
	core.ToggleRotationMode()
	core.ToggleRotationMode()
	core.SetRotationMode(false)
	h.Remove()
	h.Remove()
	core.ToggleRotationMode()

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Fatalf("unexpected notifications %v", got)
	}
	if !core.RotationMode() {
		t.Fatalf("rotation mode should still toggle after unsubscribe")
	}
}

func TestSelectionSubscription(t *testing.T) {
	core := newTestCore()
	o := addObject(core, 100, 100, 0, 0)
	var got []*obj.Object
	core.OnSelectionChanged(func(sel *obj.Object) {
		got = append(got, sel)
	})
	core.PointerDown(10, 10)
	core.PointerUp()
	core.PointerDown(10, 10)
	core.PointerUp()
	core.DeleteSelected()
	if len(got) != 2 || got[0] != o || got[1] != nil {
		t.Fatalf("unexpected selection events %v", got)
	}
	if core.Scene.Len() != 0 {
		t.Fatalf("DeleteSelected should remove the object")
	}
	core.DeleteSelected()
}
