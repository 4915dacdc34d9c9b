// Package render draws the scene into ebiten images.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/collage/obj"
)

// Surface implements obj.Surface on top of an ebiten image. Source images
// are uploaded once and cached by identity.
type Surface struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
	cache map[image.Image]*ebiten.Image
}

func NewSurface() *Surface {
	return &Surface{cache: make(map[image.Image]*ebiten.Image)}
}

// Begin targets dst with the given base transform and clears the stack.
func (s *Surface) Begin(dst *ebiten.Image, base ebiten.GeoM) {
	s.dst = dst
	s.geo = base
	s.stack = s.stack[:0]
}

// CameraGeoM returns the world-to-screen transform for cam.
func CameraGeoM(cam *obj.Camera) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(cam.Zoom(), cam.Zoom())
	x, y := cam.Position()
	g.Translate(x, y)
	return g
}

func (s *Surface) Push() {
	s.stack = append(s.stack, s.geo)
}

func (s *Surface) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.geo = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// prepend applies m before the current transform.
func (s *Surface) prepend(m ebiten.GeoM) {
	m.Concat(s.geo)
	s.geo = m
}

func (s *Surface) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	s.prepend(m)
}

func (s *Surface) Rotate(radians float64) {
	var m ebiten.GeoM
	m.Rotate(radians)
	s.prepend(m)
}

func (s *Surface) Scale(sx, sy float64) {
	var m ebiten.GeoM
	m.Scale(sx, sy)
	s.prepend(m)
}

// lineScale is the factor the current transform applies to lengths.
func (s *Surface) lineScale() float64 {
	a, b := s.geo.Element(0, 0), s.geo.Element(0, 1)
	c, d := s.geo.Element(1, 0), s.geo.Element(1, 1)
	return math.Sqrt(math.Abs(a*d - b*c))
}

func (s *Surface) image(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := s.cache[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	s.cache[img] = e
	return e
}

func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Empty() || s.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geo)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.image(img), op)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, lineWidth float64, c color.Color) {
	if s.dst == nil {
		return
	}
	sx0, sy0 := s.geo.Apply(x0, y0)
	sx1, sy1 := s.geo.Apply(x1, y1)
	vector.StrokeLine(s.dst, float32(sx0), float32(sy0), float32(sx1), float32(sy1), float32(lineWidth*s.lineScale()), c, true)
}

// StrokeRect strokes the four edges separately so rotated rectangles stay
// rotated.
func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	s.StrokeLine(x, y, x+w, y, lineWidth, c)
	s.StrokeLine(x+w, y, x+w, y+h, lineWidth, c)
	s.StrokeLine(x+w, y+h, x, y+h, lineWidth, c)
	s.StrokeLine(x, y+h, x, y, lineWidth, c)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if s.dst == nil {
		return
	}
	sx, sy := s.geo.Apply(cx, cy)
	vector.FillCircle(s.dst, float32(sx), float32(sy), float32(r*s.lineScale()), c, true)
}

// Prune releases cached textures whose source image no longer belongs to
// any of objs.
func (s *Surface) Prune(objs []*obj.Object) {
	live := make(map[image.Image]bool, len(objs))
	for _, o := range objs {
		live[o.Image] = true
	}
	for img, e := range s.cache {
		if !live[img] {
			e.Deallocate()
			delete(s.cache, img)
		}
	}
}
