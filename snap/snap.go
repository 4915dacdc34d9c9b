// Package snap aligns a moving rectangle to the edges and centers of its
// peers. X and Y are solved independently.
package snap

import (
	"math"

	"github.com/milk9111/collage/obj"
)

// DefaultThreshold is the world-space distance below which alignment engages.
const DefaultThreshold = 15.0

type Axis int

const (
	// Vertical guides fix an X coordinate.
	Vertical Axis = iota
	// Horizontal guides fix a Y coordinate.
	Horizontal
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Kind names the pair of features that aligned.
type Kind int

const (
	StartStart Kind = iota // left-left / top-top
	EndStart               // right-left / bottom-top
	StartEnd               // left-right / top-bottom
	EndEnd                 // right-right / bottom-bottom
	CenterCenter
)

func (k Kind) String() string {
	switch k {
	case StartStart:
		return "start-start"
	case EndStart:
		return "end-start"
	case StartEnd:
		return "start-end"
	case EndEnd:
		return "end-end"
	case CenterCenter:
		return "center-center"
	default:
		return "unknown"
	}
}

// Line is an active alignment guide at a world coordinate on the peer.
type Line struct {
	Axis  Axis
	Coord float64
	Kind  Kind
}

// Result is the outcome of a snap query.
type Result struct {
	X, Y     float64
	SnappedX bool
	SnappedY bool
	Lines    []Line
}

type candidate struct {
	delta  float64
	target float64
	guide  float64
	kind   Kind
}

// candidates lists the five alignments of the active span [a0, a1] against
// the peer span [p0, p1]. target is the new start of the active span.
func candidates(a0, a1, p0, p1 float64) [5]candidate {
	size := a1 - a0
	pc := (p0 + p1) / 2
	ac := (a0 + a1) / 2
	return [5]candidate{
		{delta: p0 - a0, target: p0, guide: p0, kind: StartStart},
		{delta: p0 - a1, target: p0 - size, guide: p0, kind: EndStart},
		{delta: p1 - a0, target: p1, guide: p1, kind: StartEnd},
		{delta: p1 - a1, target: p1 - size, guide: p1, kind: EndEnd},
		{delta: pc - ac, target: pc - size/2, guide: pc, kind: CenterCenter},
	}
}

type best struct {
	found bool
	dist  float64
	c     candidate
}

// consider keeps c only when it is strictly closer than the current best, so
// the earliest candidate wins a tie.
func (b *best) consider(c candidate, threshold float64) {
	d := math.Abs(c.delta)
	if d >= threshold {
		return
	}
	if b.found && d >= b.dist {
		return
	}
	b.found, b.dist, b.c = true, d, c
}

// ComputeSnappedPosition returns the top-left the proposed rectangle should
// take. Peers are scanned in order and, on equal distances, the first
// candidate encountered wins. With no qualifying candidate an axis keeps the
// proposed coordinate.
func ComputeSnappedPosition(proposed obj.Rect, peers []obj.Rect, threshold float64) Result {
	res := Result{X: proposed.X, Y: proposed.Y}
	if threshold <= 0 {
		return res
	}

	var bx, by best
	for _, p := range peers {
		for _, c := range candidates(proposed.Left(), proposed.Right(), p.Left(), p.Right()) {
			bx.consider(c, threshold)
		}
		for _, c := range candidates(proposed.Top(), proposed.Bottom(), p.Top(), p.Bottom()) {
			by.consider(c, threshold)
		}
	}

	if bx.found {
		res.X, res.SnappedX = bx.c.target, true
		res.Lines = append(res.Lines, Line{Axis: Vertical, Coord: bx.c.guide, Kind: bx.c.kind})
	}
	if by.found {
		res.Y, res.SnappedY = by.c.target, true
		res.Lines = append(res.Lines, Line{Axis: Horizontal, Coord: by.c.guide, Kind: by.c.kind})
	}
	return res
}

// Engine snaps dragged objects and remembers the guides from the last call.
type Engine struct {
	Threshold float64
	Lines     []Line
}

func NewEngine(threshold float64) *Engine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Engine{Threshold: threshold}
}

// Snap returns where active should go if its top-left were moved to
// (proposedX, proposedY). active itself is skipped among peers. The object
// is not modified.
func (e *Engine) Snap(active *obj.Object, proposedX, proposedY float64, peers []*obj.Object) (float64, float64) {
	w, h := active.ScaledSize()
	rects := make([]obj.Rect, 0, len(peers))
	for _, p := range peers {
		if p == active || p == nil {
			continue
		}
		rects = append(rects, p.Box())
	}
	res := ComputeSnappedPosition(obj.Rect{X: proposedX, Y: proposedY, W: w, H: h}, rects, e.Threshold)
	e.Lines = res.Lines
	return res.X, res.Y
}

// Clear drops the guides, typically when a drag ends.
func (e *Engine) Clear() {
	e.Lines = nil
}
