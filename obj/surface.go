package obj

import (
	"image"
	"image/color"
)

// Surface is a 2D drawing target with a canvas-style transform stack.
// Translate, Rotate and Scale compose onto the current transform so that
// they apply to subsequent drawing before the transforms already in effect.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(radians float64)
	Scale(sx, sy float64)

	// DrawImage draws img stretched to the local rectangle (x, y, w, h).
	DrawImage(img image.Image, x, y, w, h float64)
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, lineWidth float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}
