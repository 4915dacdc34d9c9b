package main

import (
	"log/slog"

	"golang.design/x/clipboard"

	"github.com/milk9111/collage/assets"
)

// Clipboard wraps the system clipboard. It is disabled when the platform
// clipboard cannot be initialised, e.g. without a display.
type Clipboard struct {
	log     *slog.Logger
	enabled bool
}

func NewClipboard(log *slog.Logger) *Clipboard {
	c := &Clipboard{log: log}
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", "err", err)
		return c
	}
	c.enabled = true
	return c
}

// ReadImage returns the PNG image on the clipboard, or nil.
func (c *Clipboard) ReadImage() []byte {
	if c == nil || !c.enabled {
		return nil
	}
	return clipboard.Read(clipboard.FmtImage)
}

// WriteImage places PNG bytes on the clipboard.
func (c *Clipboard) WriteImage(png []byte) {
	if c == nil || !c.enabled || len(png) == 0 {
		return
	}
	clipboard.Write(clipboard.FmtImage, png)
}

func (g *Game) paste() {
	b := g.clip.ReadImage()
	if len(b) == 0 {
		g.log.Debug("clipboard has no image")
		return
	}
	img, err := assets.DecodeBytes(b)
	if err != nil {
		g.log.Warn("decode pasted image", "err", err)
		return
	}
	if o := g.placeAtCursorOrCenter(img); o != nil {
		g.log.Info("pasted image", "id", o.ID)
	}
}
