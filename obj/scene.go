package obj

import "slices"

// Scene is the ordered set of placed objects. Later entries are drawn on top
// and hit-tested first.
type Scene struct {
	objects []*Object
}

func NewScene() *Scene {
	return &Scene{}
}

// Add appends o to the top of the z-order. Adding an object that is already
// present does nothing.
func (s *Scene) Add(o *Object) {
	if o == nil || s.index(o) >= 0 {
		return
	}
	s.objects = append(s.objects, o)
}

// Remove deletes o by identity. Absent objects are ignored.
func (s *Scene) Remove(o *Object) {
	i := s.index(o)
	if i < 0 {
		return
	}
	s.objects = slices.Delete(s.objects, i, i+1)
}

// MoveToTop makes o the topmost object, keeping the order of the rest.
func (s *Scene) MoveToTop(o *Object) {
	if s.index(o) < 0 {
		return
	}
	s.Remove(o)
	s.Add(o)
}

// Draw paints bottom to top.
func (s *Scene) Draw(surf Surface, cameraZoom float64) {
	for _, o := range s.objects {
		o.Draw(surf, cameraZoom)
	}
}

// HitTest returns the topmost object containing the world point, or nil.
func (s *Scene) HitTest(wx, wy float64) *Object {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i].ContainsPoint(wx, wy) {
			return s.objects[i]
		}
	}
	return nil
}

// Objects returns a copy of the objects in z-order.
func (s *Scene) Objects() []*Object {
	return slices.Clone(s.objects)
}

func (s *Scene) Len() int {
	return len(s.objects)
}

func (s *Scene) index(o *Object) int {
	if o == nil {
		return -1
	}
	return slices.Index(s.objects, o)
}
