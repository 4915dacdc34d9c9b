package main

import (
	"errors"
	"image"
	"slices"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/collage/assets"
	"github.com/milk9111/collage/interact"
	"github.com/milk9111/collage/obj"
)

// dropCascade offsets each additional file of a multi-file drop, in pixels.
const dropCascade = 24

type pointerInput struct {
	cursorX, cursorY float64
	mouseDown        bool

	touches     []ebiten.TouchID
	touchID     ebiten.TouchID
	touchDown   bool
	pinching    bool
	waitRelease bool // a pinch ended with fingers still down
}

func readModifiers() interact.Modifiers {
	var m interact.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= interact.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= interact.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= interact.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= interact.ModMeta
	}
	return m
}

// shortcut reports whether key was just pressed with ctrl or cmd held.
func shortcut(key ebiten.Key, mods interact.Modifiers) bool {
	return (mods.Has(interact.ModCtrl) || mods.Has(interact.ModMeta)) && inpututil.IsKeyJustPressed(key)
}

func (g *Game) handlePointer() {
	in := &g.input
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	moved := x != in.cursorX || y != in.cursorY
	in.cursorX, in.cursorY = x, y

	// Clicks on the toolbar or asset list must not reach the canvas.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !ebuiinput.UIHovered {
		g.core.PointerDown(x, y)
		in.mouseDown = true
	}
	if moved {
		g.core.PointerMove(x, y)
	}
	if in.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.core.PointerUp()
		in.mouseDown = false
	}
}

type touchAction int

const (
	touchNone touchAction = iota
	touchPinch
	touchPinchEnd
	touchDown
	touchMove
	touchUp
	// touchRetarget ends the gesture of a finger that lifted and starts one
	// for the finger that replaced it in the same frame.
	touchRetarget
)

// step updates the touch bookkeeping for the IDs active this frame and
// reports what the core should be told.
func (in *pointerInput) step(ids []ebiten.TouchID) touchAction {
	switch n := len(ids); {
	case n >= 2:
		in.pinching = true
		in.touchDown = false
		return touchPinch
	case in.pinching:
		in.pinching = false
		in.waitRelease = n > 0
		return touchPinchEnd
	case n == 0:
		in.waitRelease = false
		if in.touchDown {
			in.touchDown = false
			return touchUp
		}
		return touchNone
	case in.waitRelease:
		return touchNone
	case !in.touchDown:
		in.touchID = ids[0]
		in.touchDown = true
		return touchDown
	case !slices.Contains(ids, in.touchID):
		in.touchID = ids[0]
		return touchRetarget
	default:
		return touchMove
	}
}

// handleTouches maps one finger to the pointer and two or more to a pinch.
func (g *Game) handleTouches() {
	in := &g.input
	in.touches = ebiten.AppendTouchIDs(in.touches[:0])

	switch in.step(in.touches) {
	case touchPinch:
		pts := make([]obj.Point, 0, len(in.touches))
		for _, id := range in.touches {
			tx, ty := ebiten.TouchPosition(id)
			pts = append(pts, obj.Point{X: float64(tx), Y: float64(ty)})
		}
		g.core.Touches(pts)
	case touchPinchEnd:
		g.core.Touches(nil)
	case touchUp:
		g.core.PointerUp()
	case touchRetarget:
		g.core.PointerUp()
		tx, ty := ebiten.TouchPosition(in.touchID)
		g.core.PointerDown(float64(tx), float64(ty))
	case touchDown:
		tx, ty := ebiten.TouchPosition(in.touchID)
		g.core.PointerDown(float64(tx), float64(ty))
	case touchMove:
		tx, ty := ebiten.TouchPosition(in.touchID)
		g.core.PointerMove(float64(tx), float64(ty))
	}
}

// handleWheel converts wheel lines to browser-style pixels, positive when
// scrolling down.
func (g *Game) handleWheel() {
	_, yoff := ebiten.Wheel()
	if yoff == 0 || ebuiinput.UIHovered {
		return
	}
	deltaY := -yoff * g.cfg.Wheel.PixelsPerLine
	g.core.Wheel(g.input.cursorX, g.input.cursorY, deltaY, readModifiers())
}

func (g *Game) handleKeys() {
	mods := readModifiers()
	switch {
	case shortcut(ebiten.KeyV, mods):
		g.paste()
	case shortcut(ebiten.KeyE, mods):
		g.export(g.quickFormat)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.core.ToggleRotationMode()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.core.ResetCamera()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.core.DeleteSelected()
	}
}

func (g *Game) handleDroppedFiles() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	dropped, err := assets.LoadDropped(files)
	if err != nil {
		if errors.Is(err, assets.ErrUnsupported) {
			g.log.Info("ignored dropped files that are not images", "err", err)
		} else {
			g.log.Warn("load dropped files", "err", err)
		}
	}
	x, y := g.input.cursorX, g.input.cursorY
	for i, d := range dropped {
		off := float64(i * dropCascade)
		if o := g.core.Place(d.Image, x+off, y+off); o != nil {
			g.log.Info("dropped image", "name", d.Name, "id", o.ID)
		}
	}
}

// placeAtCursorOrCenter places img under the cursor when it is over the
// canvas, and at the middle of the viewport otherwise.
func (g *Game) placeAtCursorOrCenter(img image.Image) *obj.Object {
	x, y := g.input.cursorX, g.input.cursorY
	inside := x >= 0 && y >= 0 && x < float64(g.width) && y < float64(g.height)
	if inside && !ebuiinput.UIHovered {
		return g.core.Place(img, x, y)
	}
	return g.core.PlaceAtCenter(img)
}
