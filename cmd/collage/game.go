package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/collage/assets"
	"github.com/milk9111/collage/config"
	"github.com/milk9111/collage/export"
	"github.com/milk9111/collage/interact"
	"github.com/milk9111/collage/obj"
	"github.com/milk9111/collage/render"
	"github.com/milk9111/collage/snap"
)

// Game is the ebiten game hosting the collage editor.
type Game struct {
	cfg      config.Config
	log      *slog.Logger
	core     *interact.Core
	renderer *render.Renderer
	ui       *EditorUI
	watcher  *assets.Watcher
	clip     *Clipboard
	subs     []interact.Handle

	quickFormat export.Format

	input       pointerInput
	assetsDirty bool
	width       int
	height      int
}

func NewGame(cfg config.Config, log *slog.Logger) *Game {
	cam := obj.NewCamera(cfg.Window.Width, cfg.Window.Height)
	cam.SetZoomLimits(cfg.Camera.MinZoom, cfg.Camera.MaxZoom)

	settings := interact.DefaultSettings()
	settings.RotateIntensity = cfg.Wheel.Rotate
	settings.ScaleIntensity = cfg.Wheel.Scale
	settings.ZoomIntensity = cfg.Wheel.Zoom
	settings.ArrangePadding = cfg.Arrange.Padding
	settings.MaxDropWidth = cfg.Drop.MaxWidth

	g := &Game{
		cfg:      cfg,
		log:      log,
		core:     interact.NewCore(cam, obj.NewScene(), snap.NewEngine(cfg.Snap.Threshold), settings),
		renderer: render.NewRenderer(),
		clip:     NewClipboard(log),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}
	g.input.touchID = -1

	f, err := shortcutFormat(cfg.Export.Format)
	if err != nil {
		log.Warn("unknown export format, using png", "format", cfg.Export.Format, "err", err)
	}
	g.quickFormat = f

	g.ui = BuildEditorUI(uiActions{
		recenter:    g.core.ResetCamera,
		rotation:    g.core.ToggleRotationMode,
		arrange:     g.arrange,
		exportPNG:   func() { g.export(exportPNG) },
		exportJPEG:  func() { g.export(exportJPEG) },
		assetPicked: g.placeAsset,
	})
	g.ui.SetRotationMode(g.core.RotationMode())

	g.subs = append(g.subs,
		g.core.OnRotationModeChanged(g.ui.SetRotationMode),
		g.core.OnSelectionChanged(func(o *obj.Object) {
			if o == nil {
				g.log.Debug("selection cleared")
				return
			}
			g.log.Debug("selected", "id", o.ID)
		}),
	)

	g.refreshAssets()
	if w, err := assets.NewWatcher(log, cfg.AssetsDir); err != nil {
		log.Warn("asset directory not watched", "dir", cfg.AssetsDir, "err", err)
	} else {
		g.watcher = w
	}
	return g
}

func (g *Game) Update() error {
	g.ui.Update()

	g.drainWatcher()
	g.handleDroppedFiles()
	g.handlePointer()
	g.handleTouches()
	g.handleWheel()
	g.handleKeys()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.core)
	g.ui.Draw(screen)
}

// Layout keeps the logical screen equal to the window so screen space
// matches the pointer.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.core.Camera.SetViewport(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	for _, s := range g.subs {
		s.Remove()
	}
	g.subs = nil
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("close asset watcher", "err", err)
		}
		g.watcher = nil
	}
}

func (g *Game) arrange() {
	g.core.AutoArrange()
	g.log.Info("arranged", "objects", g.core.Scene.Len())
}

func (g *Game) refreshAssets() {
	infos, err := assets.List(g.cfg.AssetsDir)
	if err != nil {
		g.log.Warn("list assets", "dir", g.cfg.AssetsDir, "err", err)
		return
	}
	g.ui.SetAssets(infos)
	g.assetsDirty = false
}

// drainWatcher consumes pending watcher events without blocking and
// refreshes the asset list at most once per frame.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ev, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Debug("asset changed", "path", ev.Path, "removed", ev.Removed)
			g.assetsDirty = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("asset watcher", "err", err)
			}
		default:
			if g.assetsDirty {
				g.refreshAssets()
			}
			return
		}
	}
}

func (g *Game) placeAsset(info assets.Info) {
	img, err := assets.Load(info.Path)
	if err != nil {
		g.log.Warn("load asset", "path", info.Path, "err", err)
		return
	}
	if o := g.placeAtCursorOrCenter(img); o != nil {
		g.log.Info("placed asset", "path", info.Path, "id", o.ID)
	}
}
