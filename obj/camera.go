package obj

import "math"

const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 5.0
)

// Camera maps between screen space and the unbounded world. A world point w
// is drawn at w*zoom + position.
type Camera struct {
	PosX float64
	PosY float64

	zoom    float64
	minZoom float64
	maxZoom float64

	// viewport size in screen pixels
	screenW float64
	screenH float64
}

// NewCamera creates a camera at the identity transform for a viewport of the
// given logical size.
func NewCamera(screenW, screenH int) *Camera {
	c := &Camera{zoom: 1, minZoom: DefaultMinZoom, maxZoom: DefaultMaxZoom}
	c.SetViewport(screenW, screenH)
	return c
}

// SetViewport updates the logical screen size. Non-positive sizes are ignored.
func (c *Camera) SetViewport(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = float64(w)
	c.screenH = float64(h)
}

// Viewport returns the logical screen size.
func (c *Camera) Viewport() (float64, float64) {
	return c.screenW, c.screenH
}

// SetZoomLimits changes the zoom bounds and re-clamps the current zoom.
func (c *Camera) SetZoomLimits(lo, hi float64) {
	if lo <= 0 || hi < lo {
		return
	}
	c.minZoom, c.maxZoom = lo, hi
	c.zoom = clamp(c.zoom, lo, hi)
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Position returns the screen-space translation applied after scaling.
func (c *Camera) Position() (float64, float64) {
	return c.PosX, c.PosY
}

func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - c.PosX) / c.zoom, (sy - c.PosY) / c.zoom
}

func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*c.zoom + c.PosX, wy*c.zoom + c.PosY
}

// Pan moves the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.PosX += dx
	c.PosY += dy
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// (sx, sy) fixed on screen.
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	c.zoom = clamp(c.zoom*factor, c.minZoom, c.maxZoom)
	c.PosX = sx - wx*c.zoom
	c.PosY = sy - wy*c.zoom
}

// Reset restores the identity transform.
func (c *Camera) Reset() {
	c.PosX = 0
	c.PosY = 0
	c.zoom = clamp(1, c.minZoom, c.maxZoom)
}

// Visible returns the world-space rectangle currently covered by the viewport.
func (c *Camera) Visible() Rect {
	x0, y0 := c.ScreenToWorld(0, 0)
	return Rect{X: x0, Y: y0, W: c.screenW / c.zoom, H: c.screenH / c.zoom}
}
