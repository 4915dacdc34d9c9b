package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/collage/interact"
	"github.com/milk9111/collage/obj"
	"github.com/milk9111/collage/snap"
)

var (
	BackgroundColor = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	GuideColor      = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
)

const (
	guideWidth = 1
	guideDash  = 4
	guideGap   = 4
)

// Renderer draws one frame of the editor: background, scene, snap guides
// and a status line.
type Renderer struct {
	surf       *Surface
	Background color.Color
	ShowStatus bool
	objects    int
}

func NewRenderer() *Renderer {
	return &Renderer{surf: NewSurface(), Background: BackgroundColor, ShowStatus: true}
}

func (r *Renderer) Draw(screen *ebiten.Image, core *interact.Core) {
	screen.Fill(r.Background)

	// Textures are only released when the object count changes.
	if n := core.Scene.Len(); n != r.objects {
		r.objects = n
		r.surf.Prune(core.Scene.Objects())
	}

	r.surf.Begin(screen, CameraGeoM(core.Camera))
	core.Scene.Draw(r.surf, core.Camera.Zoom())

	for _, l := range core.SnapLines() {
		x0, y0, x1, y1 := GuideSegment(core.Camera, l)
		drawDashed(screen, x0, y0, x1, y1)
	}

	if r.ShowStatus {
		ebitenutil.DebugPrintAt(screen, Status(core), 8, screenHeight(screen)-20)
	}
}

func screenHeight(img *ebiten.Image) int {
	return img.Bounds().Dy()
}

// GuideSegment returns the screen-space endpoints of a guide spanning the
// visible world.
func GuideSegment(cam *obj.Camera, l snap.Line) (x0, y0, x1, y1 float64) {
	vis := cam.Visible()
	if l.Axis == snap.Vertical {
		x0, y0 = cam.WorldToScreen(l.Coord, vis.Top())
		x1, y1 = cam.WorldToScreen(l.Coord, vis.Bottom())
		return x0, y0, x1, y1
	}
	x0, y0 = cam.WorldToScreen(vis.Left(), l.Coord)
	x1, y1 = cam.WorldToScreen(vis.Right(), l.Coord)
	return x0, y0, x1, y1
}

// Dashes splits [0, length) into on/off runs and returns the on runs as
// start/end offsets.
func Dashes(length, on, off float64) [][2]float64 {
	if length <= 0 || on <= 0 {
		return nil
	}
	if off < 0 {
		off = 0
	}
	var out [][2]float64
	for s := 0.0; s < length; s += on + off {
		out = append(out, [2]float64{s, min(s+on, length)})
	}
	return out
}

func drawDashed(dst *ebiten.Image, x0, y0, x1, y1 float64) {
	dx, dy := x1-x0, y1-y0
	length := max(abs(dx), abs(dy))
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for _, d := range Dashes(length, guideDash, guideGap) {
		vector.StrokeLine(dst,
			float32(x0+ux*d[0]), float32(y0+uy*d[0]),
			float32(x0+ux*d[1]), float32(y0+uy*d[1]),
			guideWidth, GuideColor, false)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Status summarises zoom, object count and the active mode.
func Status(core *interact.Core) string {
	mode := "zoom (ctrl: scale)"
	if core.RotationMode() {
		mode = "rotate"
	}
	return fmt.Sprintf("zoom %.0f%%  objects %d  wheel %s  %s",
		core.Camera.Zoom()*100, core.Scene.Len(), mode, core.State())
}
