// Package export flattens scene objects into a raster image sized to their
// rotated bounds.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
	"time"

	"github.com/gogpu/gg"

	"github.com/milk9111/collage/obj"
)

var (
	// ErrNothingToExport is returned when there are no objects or their
	// bounds are degenerate. Callers usually treat it as a no-op.
	ErrNothingToExport = errors.New("export: nothing to export")
	ErrTooLarge        = errors.New("export: image too large")
	ErrUnknownFormat   = errors.New("export: unknown format")
)

const (
	DefaultPadding = 50.0
	// MaxSide bounds each output dimension in pixels.
	MaxSide = 16384
)

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
)

// ParseFormat accepts png, jpeg and jpg in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) Ext() string {
	return string(f)
}

// Options controls rendering and encoding. Quality is in (0, 1] and only
// affects JPEG. A nil Background leaves the canvas transparent.
type Options struct {
	Format     Format
	Quality    float64
	Padding    float64
	Background color.Color
}

// DefaultOptions returns full-quality transparent PNG, or 90% JPEG on white.
func DefaultOptions(f Format) Options {
	if f == JPEG {
		return Options{Format: JPEG, Quality: 0.90, Padding: DefaultPadding, Background: color.White}
	}
	return Options{Format: PNG, Quality: 1.0, Padding: DefaultPadding}
}

// ParseBackground turns a hex color such as "#fff" or "ffffffff" into a fill.
// Empty, "none" and "transparent" mean no fill.
func ParseBackground(s string) color.Color {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "transparent":
		return nil
	}
	return gg.Hex(strings.TrimSpace(s)).Color()
}

// Bounds returns the union of every object's rotated bounding box.
func Bounds(objs []*obj.Object) (obj.Rect, bool) {
	if len(objs) == 0 {
		return obj.Rect{}, false
	}
	r := objs[0].Bounds()
	for _, o := range objs[1:] {
		r = r.Union(o.Bounds())
	}
	if !r.Finite() {
		return obj.Rect{}, false
	}
	return r, true
}

// Render draws objs without selection decoration onto a new context that
// covers their bounds plus padding on every side.
func Render(objs []*obj.Object, opts Options) (*gg.Context, error) {
	b, ok := Bounds(objs)
	if !ok {
		return nil, ErrNothingToExport
	}
	pad := math.Max(opts.Padding, 0)
	w := int(math.Ceil(b.W + 2*pad))
	h := int(math.Ceil(b.H + 2*pad))
	if w <= 0 || h <= 0 {
		return nil, ErrNothingToExport
	}
	if w > MaxSide || h > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, w, h)
	}

	dc := gg.NewContext(w, h)
	if opts.Background != nil {
		dc.ClearWithColor(gg.FromColor(opts.Background))
	}
	dc.Translate(pad-b.X, pad-b.Y)

	canvas := NewCanvas(dc)
	for _, o := range objs {
		o.DrawContent(canvas)
	}
	if err := canvas.Err(); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("export: render: %w", err)
	}
	return dc, nil
}

// Encode renders objs and writes them to w in opts.Format.
func Encode(w io.Writer, objs []*obj.Object, opts Options) error {
	if opts.Format == "" {
		opts.Format = PNG
	}
	if opts.Format != PNG && opts.Format != JPEG {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
	dc, err := Render(objs, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	switch opts.Format {
	case JPEG:
		err = dc.EncodeJPEG(w, jpegQuality(opts.Quality))
	default:
		err = dc.EncodePNG(w)
	}
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", opts.Format, err)
	}
	return nil
}

func jpegQuality(q float64) int {
	if q <= 0 || q > 1 || math.IsNaN(q) {
		q = 0.90
	}
	return max(1, int(math.Round(q*100)))
}

// Filename returns canvas-export-<unix millis>.<ext>.
func Filename(f Format, t time.Time) string {
	return fmt.Sprintf("canvas-export-%d.%s", t.UnixMilli(), f.Ext())
}
