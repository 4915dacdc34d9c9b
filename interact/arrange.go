package interact

import (
	"math"
	"sort"

	"github.com/milk9111/collage/obj"
)

// AutoArrange packs every object into rows, tallest first, clears rotation,
// centers the group on the viewport and resets the camera.
func (c *Core) AutoArrange() {
	objs := c.Scene.Objects()
	c.Camera.Reset()
	if len(objs) == 0 {
		return
	}
	Arrange(objs, c.Settings.ArrangePadding)

	group, ok := groupBounds(objs)
	if !ok {
		return
	}
	vw, vh := c.Camera.Viewport()
	// The camera is at identity here, so the viewport center is also the
	// world-space center.
	dx := vw/2 - group.CenterX()
	dy := vh/2 - group.CenterY()
	for _, o := range objs {
		o.X += dx
		o.Y += dy
	}
}

// Arrange lays objs out in rows starting at the origin. The target row width
// is 1.5 times the side of a square holding the padded areas of all objects.
// Objects are placed by descending scaled height, wrapping when the next one
// would overflow the row.
func Arrange(objs []*obj.Object, padding float64) {
	if len(objs) == 0 {
		return
	}

	area := 0.0
	for _, o := range objs {
		w, h := o.ScaledSize()
		area += (w + padding) * (h + padding)
	}
	target := math.Sqrt(area) * 1.5

	order := make([]*obj.Object, len(objs))
	copy(order, objs)
	sort.SliceStable(order, func(i, j int) bool {
		_, hi := order[i].ScaledSize()
		_, hj := order[j].ScaledSize()
		return hi > hj
	})

	x, y, rowH := 0.0, 0.0, 0.0
	for _, o := range order {
		w, h := o.ScaledSize()
		if x > 0 && x+w > target {
			x = 0
			y += rowH + padding
			rowH = 0
		}
		o.X, o.Y = x, y
		o.Rotation = 0
		x += w + padding
		rowH = math.Max(rowH, h)
	}
}

func groupBounds(objs []*obj.Object) (obj.Rect, bool) {
	if len(objs) == 0 {
		return obj.Rect{}, false
	}
	r := objs[0].Box()
	for _, o := range objs[1:] {
		r = r.Union(o.Box())
	}
	return r, r.Finite()
}
