package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/milk9111/collage/export"
)

const (
	exportPNG  = export.PNG
	exportJPEG = export.JPEG
)

// shortcutFormat is the format written by Ctrl+E. An unknown format falls
// back to PNG with the parse error returned for logging.
func shortcutFormat(name string) (export.Format, error) {
	f, err := export.ParseFormat(name)
	if err != nil {
		return export.PNG, err
	}
	return f, nil
}

// exportOptions builds encoder options from the export config. PNG keeps a
// transparent background; JPEG uses the configured fill.
func (g *Game) exportOptions(f export.Format) export.Options {
	opts := export.DefaultOptions(f)
	opts.Padding = g.cfg.Export.Padding
	if f == export.JPEG {
		opts.Quality = g.cfg.Export.JPEGQuality
		if bg := export.ParseBackground(g.cfg.Export.Background); bg != nil {
			opts.Background = bg
		}
	}
	return opts
}

func (g *Game) export(f export.Format) {
	path, data, err := g.writeExport(f, time.Now())
	switch {
	case errors.Is(err, export.ErrNothingToExport):
		g.log.Debug("nothing to export")
		return
	case err != nil:
		g.log.Error("export", "format", f, "err", err)
		return
	}
	g.log.Info("exported", "path", path, "objects", g.core.Scene.Len())
	if f == export.PNG && g.cfg.Export.CopyToClipboard {
		g.clip.WriteImage(data)
	}
}

// writeExport encodes the scene and writes it under the export directory.
// It returns the written path and the encoded bytes.
func (g *Game) writeExport(f export.Format, at time.Time) (string, []byte, error) {
	var buf bytes.Buffer
	if err := export.Encode(&buf, g.core.Scene.Objects(), g.exportOptions(f)); err != nil {
		return "", nil, err
	}
	dir := g.cfg.Export.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("export: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, export.Filename(f, at))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", nil, fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, buf.Bytes(), nil
}
