// Package interact turns pointer, touch, wheel and toolbar input into
// camera and object changes. It has no dependency on a windowing library;
// the caller feeds it screen-space events once per frame.
package interact

import (
	"math"

	"github.com/milk9111/collage/obj"
	"github.com/milk9111/collage/snap"
)

// Settings tunes wheel sensitivity and layout. Wheel deltas are in
// browser-style pixels where a positive value means scrolling down.
type Settings struct {
	RotateIntensity float64
	ScaleIntensity  float64
	ZoomIntensity   float64
	ArrangePadding  float64
	MaxDropWidth    float64
}

func DefaultSettings() Settings {
	return Settings{
		RotateIntensity: 0.002,
		ScaleIntensity:  0.001,
		ZoomIntensity:   0.001,
		ArrangePadding:  20,
		MaxDropWidth:    500,
	}
}

// Core owns the gesture state machine. All methods must be called from the
// thread that renders the scene.
type Core struct {
	Camera   *obj.Camera
	Scene    *obj.Scene
	Snap     *snap.Engine
	Settings Settings

	state    State
	selected *obj.Object

	// drag origin in world space and the object's top-left at that moment
	dragWorldX, dragWorldY float64
	dragObjX, dragObjY     float64

	// previous pointer sample in screen space, for incremental panning
	lastX, lastY float64

	hoverX, hoverY float64

	pinchDist             float64
	pinchCentX, pinchCentY float64

	rotationMode       bool
	rotationListeners  listeners[bool]
	selectionListeners listeners[*obj.Object]
}

func NewCore(cam *obj.Camera, scene *obj.Scene, engine *snap.Engine, settings Settings) *Core {
	if engine == nil {
		engine = snap.NewEngine(snap.DefaultThreshold)
	}
	return &Core{Camera: cam, Scene: scene, Snap: engine, Settings: settings}
}

func (c *Core) State() State { return c.state }

// Selected returns the selected object, or nil.
func (c *Core) Selected() *obj.Object { return c.selected }

// SnapLines returns the guides produced by the last drag move.
func (c *Core) SnapLines() []snap.Line { return c.Snap.Lines }

// Hover returns the last known pointer position in screen space.
func (c *Core) Hover() (float64, float64) { return c.hoverX, c.hoverY }

func (c *Core) setSelected(o *obj.Object) {
	if c.selected == o {
		return
	}
	if c.selected != nil {
		c.selected.Selected = false
	}
	c.selected = o
	if o != nil {
		o.Selected = true
	}
	c.selectionListeners.emit(o)
}

// PointerDown starts a drag, a delete or a pan depending on what lies under
// the pointer.
func (c *Core) PointerDown(sx, sy float64) {
	c.hoverX, c.hoverY = sx, sy
	if c.state == PinchZooming {
		return
	}
	wx, wy := c.Camera.ScreenToWorld(sx, sy)

	if c.selected != nil && c.selected.IsDeleteButtonHit(wx, wy, c.Camera.Zoom()) {
		c.DeleteSelected()
		c.state = Idle
		return
	}

	if hit := c.Scene.HitTest(wx, wy); hit != nil {
		c.setSelected(hit)
		c.Scene.MoveToTop(hit)
		c.dragWorldX, c.dragWorldY = wx, wy
		c.dragObjX, c.dragObjY = hit.X, hit.Y
		c.state = DraggingObject
		return
	}

	c.setSelected(nil)
	c.lastX, c.lastY = sx, sy
	c.state = PanningCamera
}

// PointerMove advances the current gesture.
func (c *Core) PointerMove(sx, sy float64) {
	c.hoverX, c.hoverY = sx, sy
	switch c.state {
	case DraggingObject:
		if c.selected == nil {
			c.state = Idle
			return
		}
		wx, wy := c.Camera.ScreenToWorld(sx, sy)
		px := c.dragObjX + (wx - c.dragWorldX)
		py := c.dragObjY + (wy - c.dragWorldY)
		c.selected.X, c.selected.Y = c.Snap.Snap(c.selected, px, py, c.Scene.Objects())
	case PanningCamera:
		c.Camera.Pan(sx-c.lastX, sy-c.lastY)
		c.lastX, c.lastY = sx, sy
	}
}

// PointerUp ends any single-pointer gesture.
func (c *Core) PointerUp() {
	if c.state == PinchZooming {
		return
	}
	c.state = Idle
	c.Snap.Clear()
}

// Touches receives every active touch point for the frame. Two or more
// contacts drive a pinch using the first two; dropping below two ends it.
func (c *Core) Touches(points []obj.Point) {
	if len(points) < 2 {
		if c.state == PinchZooming {
			c.state = Idle
		}
		return
	}

	a, b := points[0], points[1]
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	cx, cy := (a.X+b.X)/2, (a.Y+b.Y)/2

	if c.state != PinchZooming {
		c.Snap.Clear()
		c.state = PinchZooming
		c.pinchDist, c.pinchCentX, c.pinchCentY = dist, cx, cy
		return
	}

	c.Camera.Pan(cx-c.pinchCentX, cy-c.pinchCentY)
	if c.pinchDist > 0 && dist > 0 {
		c.Camera.ZoomAt(dist/c.pinchDist, cx, cy)
	}
	c.pinchDist, c.pinchCentX, c.pinchCentY = dist, cx, cy
}

// Wheel routes a scroll at (sx, sy). Over an object it rotates in rotation
// mode or scales while ctrl/meta is held; otherwise it zooms the camera
// about the cursor.
func (c *Core) Wheel(sx, sy, deltaY float64, mods Modifiers) {
	c.hoverX, c.hoverY = sx, sy
	if deltaY == 0 {
		return
	}
	wx, wy := c.Camera.ScreenToWorld(sx, sy)
	if hovered := c.Scene.HitTest(wx, wy); hovered != nil {
		if c.rotationMode {
			hovered.Rotation += deltaY * c.Settings.RotateIntensity
			return
		}
		if mods.Has(ModCtrl) || mods.Has(ModMeta) {
			hovered.SetScale(hovered.Scale() - deltaY*c.Settings.ScaleIntensity)
			return
		}
	}
	c.Camera.ZoomAt(math.Exp(-deltaY*c.Settings.ZoomIntensity), sx, sy)
}

func (c *Core) RotationMode() bool { return c.rotationMode }

func (c *Core) SetRotationMode(enabled bool) {
	if c.rotationMode == enabled {
		return
	}
	c.rotationMode = enabled
	c.rotationListeners.emit(enabled)
}

func (c *Core) ToggleRotationMode() {
	c.SetRotationMode(!c.rotationMode)
}

// DeleteSelected removes the selected object from the scene.
func (c *Core) DeleteSelected() {
	o := c.selected
	if o == nil {
		return
	}
	c.setSelected(nil)
	c.Scene.Remove(o)
	if c.state == DraggingObject {
		c.state = Idle
	}
}

// ResetCamera restores the identity view.
func (c *Core) ResetCamera() {
	c.Camera.Reset()
}
