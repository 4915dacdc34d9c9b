package interact

import (
	"image"

	"github.com/milk9111/collage/obj"
)

// Place adds img to the scene centered on the screen point (sx, sy). Images
// wider than Settings.MaxDropWidth are scaled down to fit. It returns nil
// for an empty image.
func (c *Core) Place(img image.Image, sx, sy float64) *obj.Object {
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	wx, wy := c.Camera.ScreenToWorld(sx, sy)
	return c.PlaceWorld(img, wx, wy)
}

// PlaceWorld is Place for a point already in world space.
func (c *Core) PlaceWorld(img image.Image, wx, wy float64) *obj.Object {
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	b := img.Bounds()
	w := float64(b.Dx())

	scale := 1.0
	if limit := c.Settings.MaxDropWidth; limit > 0 && w > limit {
		scale = limit / w
	}

	o := obj.NewObject(img, 0, 0)
	o.SetScale(scale)
	sw, sh := o.ScaledSize()
	o.X, o.Y = wx-sw/2, wy-sh/2
	c.Scene.Add(o)
	return o
}

// PlaceAtCenter drops img in the middle of the viewport.
func (c *Core) PlaceAtCenter(img image.Image) *obj.Object {
	vw, vh := c.Camera.Viewport()
	return c.Place(img, vw/2, vh/2)
}
