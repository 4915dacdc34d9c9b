package interact

// State is the current gesture being tracked by the Core.
type State int

const (
	Idle State = iota
	DraggingObject
	PanningCamera
	PinchZooming
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DraggingObject:
		return "dragging"
	case PanningCamera:
		return "panning"
	case PinchZooming:
		return "pinching"
	default:
		return "unknown"
	}
}

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether every bit in m is set.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}
