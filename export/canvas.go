package export

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/milk9111/collage/obj"
)

// Canvas adapts a gg.Context to obj.Surface. Images are resampled with
// x/image/draw under the full affine transform, then composited through gg
// so rotated objects keep their orientation.
type Canvas struct {
	dc     *gg.Context
	interp xdraw.Transformer
	err    error
}

func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc, interp: xdraw.CatmullRom}
}

// Err returns the first stroke or fill error, if any.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) Push() { c.dc.Push() }
func (c *Canvas) Pop() { c.dc.Pop() }
func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }
func (c *Canvas) Rotate(radians float64) { c.dc.Rotate(radians) }
func (c *Canvas) Scale(sx, sy float64) { c.dc.Scale(sx, sy) }

func (c *Canvas) keep(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(lineWidth)
	c.dc.DrawRectangle(x, y, w, h)
	c.keep(c.dc.Stroke())
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, lineWidth float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(lineWidth)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.keep(c.dc.Stroke())
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(cx, cy, r)
	c.keep(c.dc.Fill())
}

// DrawImage maps img onto the local rectangle (x, y, w, h).
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	sb := img.Bounds()
	if sb.Empty() || w <= 0 || h <= 0 {
		return
	}
	m := c.dc.GetTransform()
	apply := func(px, py float64) obj.Point {
		return obj.Point{X: m.A*px + m.B*py + m.C, Y: m.D*px + m.E*py + m.F}
	}
	corners := []obj.Point{apply(x, y), apply(x+w, y), apply(x+w, y+h), apply(x, y+h)}
	box, _ := obj.BoundsOf(corners)

	dst := image.Rect(
		int(math.Floor(box.Left())), int(math.Floor(box.Top())),
		int(math.Ceil(box.Right())), int(math.Ceil(box.Bottom())),
	).Intersect(image.Rect(0, 0, c.dc.Width(), c.dc.Height()))
	if dst.Empty() {
		return
	}

	// Source pixel -> local -> device -> scratch.
	kx := w / float64(sb.Dx())
	ky := h / float64(sb.Dy())
	lx := x - float64(sb.Min.X)*kx
	ly := y - float64(sb.Min.Y)*ky
	ox, oy := float64(dst.Min.X), float64(dst.Min.Y)
	aff := f64.Aff3{
		m.A * kx, m.B * ky, m.A*lx + m.B*ly + m.C - ox,
		m.D * kx, m.E * ky, m.D*lx + m.E*ly + m.F - oy,
	}

	scratch := image.NewRGBA(image.Rect(0, 0, dst.Dx(), dst.Dy()))
	c.interp.Transform(scratch, aff, img, sb, xdraw.Over, nil)

	c.dc.Push()
	c.dc.Identity()
	c.dc.DrawImage(gg.ImageBufFromImage(scratch), ox, oy)
	c.dc.Pop()
}
