package interact

import (
	"slices"

	"github.com/milk9111/collage/obj"
)

// Handle removes a registered listener.
type Handle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters the listener. Calling it more than once is harmless.
func (h Handle) Remove() {
	if h.remove != nil {
		h.remove(h.id)
	}
}

type listener[T any] struct {
	id uint32
	fn func(T)
}

type listeners[T any] struct {
	nextID uint32
	items  []listener[T]
}

func (l *listeners[T]) add(fn func(T)) Handle {
	l.nextID++
	l.items = append(l.items, listener[T]{id: l.nextID, fn: fn})
	return Handle{id: l.nextID, remove: l.remove}
}

func (l *listeners[T]) remove(id uint32) {
	for i, it := range l.items {
		if it.id == id {
			l.items = slices.Delete(l.items, i, i+1)
			return
		}
	}
}

func (l *listeners[T]) emit(v T) {
	for _, it := range slices.Clone(l.items) {
		it.fn(v)
	}
}

// OnRotationModeChanged calls fn whenever rotation mode flips.
func (c *Core) OnRotationModeChanged(fn func(enabled bool)) Handle {
	return c.rotationListeners.add(fn)
}

// OnSelectionChanged calls fn with the newly selected object, or nil.
func (c *Core) OnSelectionChanged(fn func(o *obj.Object)) Handle {
	return c.selectionListeners.add(fn)
}
