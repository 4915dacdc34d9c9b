package obj

import (
	"image"
	"image/color"
	"math"
)

const (
	MinScale = 0.1
	MaxScale = 5.0

	// DeleteButtonSize is the on-screen diameter of the delete affordance in pixels.
	DeleteButtonSize = 24.0
	// deleteHitSlop widens the clickable area around the affordance.
	deleteHitSlop = 1.2
	outlineWidth  = 2.0
	glyphHalf     = 5.0
)

var (
	OutlineColor      = color.RGBA{R: 0x00, G: 0x7a, B: 0xcc, A: 0xff}
	DeleteButtonColor = color.RGBA{R: 0xff, G: 0x4d, B: 0x4d, A: 0xff}
	DeleteGlyphColor  = color.White
)

// Object is an image placed on the canvas. X and Y are the world-space
// top-left of the unrotated, scaled box. Rotation and scale are applied
// about the box center.
type Object struct {
	ID    string
	Image image.Image

	X        float64
	Y        float64
	Rotation float64
	Selected bool

	scale  float64
	width  float64
	height float64
}

// NewObject wraps img at world position (x, y) with scale 1.
func NewObject(img image.Image, x, y float64) *Object {
	o := &Object{ID: NewObjectID(), Image: img, X: x, Y: y, scale: 1}
	if img != nil {
		b := img.Bounds()
		o.width = float64(b.Dx())
		o.height = float64(b.Dy())
	}
	return o
}

// Width returns the natural pixel width of the source image.
func (o *Object) Width() float64 { return o.width }

// Height returns the natural pixel height of the source image.
func (o *Object) Height() float64 { return o.height }

func (o *Object) Scale() float64 { return o.scale }

// SetScale sets the uniform scale, clamped to [MinScale, MaxScale].
func (o *Object) SetScale(s float64) {
	if math.IsNaN(s) {
		return
	}
	o.scale = clamp(s, MinScale, MaxScale)
}

// ScaledSize returns the displayed size before rotation.
func (o *Object) ScaledSize() (float64, float64) {
	return o.width * o.scale, o.height * o.scale
}

// Center returns the world-space pivot used for rotation and scaling.
func (o *Object) Center() (float64, float64) {
	w, h := o.ScaledSize()
	return o.X + w/2, o.Y + h/2
}

// Box returns the unrotated world-space box.
func (o *Object) Box() Rect {
	w, h := o.ScaledSize()
	return Rect{X: o.X, Y: o.Y, W: w, H: h}
}

// Corners returns the four world-space corners after rotation, clockwise
// from the local top-left.
func (o *Object) Corners() [4]Point {
	cx, cy := o.Center()
	hw, hh := o.width*o.scale/2, o.height*o.scale/2
	cos, sin := math.Cos(o.Rotation), math.Sin(o.Rotation)
	local := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Point
	for i, p := range local {
		out[i] = Point{
			X: cx + p.X*cos - p.Y*sin,
			Y: cy + p.X*sin + p.Y*cos,
		}
	}
	return out
}

// Bounds returns the axis-aligned box around the rotated corners.
func (o *Object) Bounds() Rect {
	c := o.Corners()
	r, _ := BoundsOf(c[:])
	return r
}

// ContainsPoint tests the unrotated box. Rotation is ignored, so a rotated
// object is picked by the box it had before rotation.
func (o *Object) ContainsPoint(px, py float64) bool {
	return o.Box().Contains(px, py)
}

// DeleteButtonRadius returns the affordance radius in local units so that it
// measures DeleteButtonSize pixels on screen.
func (o *Object) DeleteButtonRadius(cameraZoom float64) float64 {
	return (DeleteButtonSize / 2) / (o.scale * cameraZoom)
}

// ToLocal maps a world point into the object's unrotated, unscaled frame
// centered on the origin.
func (o *Object) ToLocal(wx, wy float64) (float64, float64) {
	cx, cy := o.Center()
	dx, dy := wx-cx, wy-cy
	cos, sin := math.Cos(-o.Rotation), math.Sin(-o.Rotation)
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos
	return rx / o.scale, ry / o.scale
}

// IsDeleteButtonHit reports whether the world point falls on the delete
// affordance. Only selected objects show one.
func (o *Object) IsDeleteButtonHit(wx, wy, cameraZoom float64) bool {
	if !o.Selected || cameraZoom <= 0 {
		return false
	}
	lx, ly := o.ToLocal(wx, wy)
	ax, ay := o.width/2, -o.height/2
	return math.Hypot(lx-ax, ly-ay) <= o.DeleteButtonRadius(cameraZoom)*deleteHitSlop
}

func (o *Object) applyTransform(s Surface) {
	cx, cy := o.Center()
	s.Translate(cx, cy)
	s.Rotate(o.Rotation)
	s.Scale(o.scale, o.scale)
}

// DrawContent draws only the image, without selection decoration.
func (o *Object) DrawContent(s Surface) {
	if o.Image == nil {
		return
	}
	s.Push()
	defer s.Pop()
	o.applyTransform(s)
	s.DrawImage(o.Image, -o.width/2, -o.height/2, o.width, o.height)
}

// Draw paints the object and, when selected, its outline and delete
// affordance at a constant on-screen size.
func (o *Object) Draw(s Surface, cameraZoom float64) {
	if o.Image == nil {
		return
	}
	s.Push()
	defer s.Pop()
	o.applyTransform(s)
	s.DrawImage(o.Image, -o.width/2, -o.height/2, o.width, o.height)
	if !o.Selected || cameraZoom <= 0 {
		return
	}

	px := 1 / (o.scale * cameraZoom)
	s.StrokeRect(-o.width/2, -o.height/2, o.width, o.height, outlineWidth*px, OutlineColor)

	x, y := o.width/2, -o.height/2
	s.FillCircle(x, y, o.DeleteButtonRadius(cameraZoom), DeleteButtonColor)
	g := glyphHalf * px
	s.StrokeLine(x-g, y-g, x+g, y+g, outlineWidth*px, DeleteGlyphColor)
	s.StrokeLine(x+g, y-g, x-g, y+g, outlineWidth*px, DeleteGlyphColor)
}
