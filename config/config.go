// Package config loads editor settings from defaults, an optional YAML file
// and COLLAGE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "collage.yaml"
	EnvPrefix   = "COLLAGE"
)

var ErrInvalid = errors.New("config: invalid")

type Snap struct {
	Threshold float64 `yaml:"threshold" envconfig:"THRESHOLD"`
}

type Camera struct {
	MinZoom float64 `yaml:"min_zoom" envconfig:"MIN_ZOOM"`
	MaxZoom float64 `yaml:"max_zoom" envconfig:"MAX_ZOOM"`
}

// Wheel intensities are per browser-style pixel of scroll.
type Wheel struct {
	Rotate        float64 `yaml:"rotate" envconfig:"ROTATE"`
	Scale         float64 `yaml:"scale" envconfig:"SCALE"`
	Zoom          float64 `yaml:"zoom" envconfig:"ZOOM"`
	PixelsPerLine float64 `yaml:"pixels_per_line" envconfig:"PIXELS_PER_LINE"`
}

type Arrange struct {
	Padding float64 `yaml:"padding" envconfig:"PADDING"`
}

type Drop struct {
	MaxWidth float64 `yaml:"max_width" envconfig:"MAX_WIDTH"`
}

type Export struct {
	Dir         string  `yaml:"dir" envconfig:"DIR"`
	// Format is written by the Ctrl+E shortcut: png, jpeg or jpg.
	Format      string  `yaml:"format" envconfig:"FORMAT"`
	Padding     float64 `yaml:"padding" envconfig:"PADDING"`
	JPEGQuality float64 `yaml:"jpeg_quality" envconfig:"JPEG_QUALITY"`
	Background  string  `yaml:"background" envconfig:"BACKGROUND"`
	// CopyToClipboard places every PNG export on the clipboard as well.
	CopyToClipboard bool `yaml:"copy_to_clipboard" envconfig:"COPY_TO_CLIPBOARD"`
}

type Window struct {
	Width  int    `yaml:"width" envconfig:"WIDTH"`
	Height int    `yaml:"height" envconfig:"HEIGHT"`
	Title  string `yaml:"title" envconfig:"TITLE"`
}

type Config struct {
	AssetsDir string  `yaml:"assets_dir" envconfig:"ASSETS_DIR"`
	LogLevel  string  `yaml:"log_level" envconfig:"LOG_LEVEL"`
	Snap      Snap    `yaml:"snap" envconfig:"SNAP"`
	Camera    Camera  `yaml:"camera" envconfig:"CAMERA"`
	Wheel     Wheel   `yaml:"wheel" envconfig:"WHEEL"`
	Arrange   Arrange `yaml:"arrange" envconfig:"ARRANGE"`
	Drop      Drop    `yaml:"drop" envconfig:"DROP"`
	Export    Export  `yaml:"export" envconfig:"EXPORT"`
	Window    Window  `yaml:"window" envconfig:"WINDOW"`
}

func Default() Config {
	return Config{
		AssetsDir: "assets",
		LogLevel:  "info",
		Snap:      Snap{Threshold: 15},
		Camera:    Camera{MinZoom: 0.1, MaxZoom: 5},
		Wheel:     Wheel{Rotate: 0.002, Scale: 0.001, Zoom: 0.001, PixelsPerLine: 100},
		Arrange:   Arrange{Padding: 20},
		Drop:      Drop{MaxWidth: 500},
		Export: Export{
			Dir:             ".",
			Format:          "png",
			Padding:         50,
			JPEGQuality:     0.90,
			Background:      "#ffffff",
			CopyToClipboard: true,
		},
		Window: Window{Width: 1280, Height: 800, Title: "Collage"},
	}
}

// Load applies the YAML file at path (if it exists) and then environment
// overrides on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("config: env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	check(c.Snap.Threshold > 0, "snap.threshold must be positive, got %v", c.Snap.Threshold)
	check(c.Camera.MinZoom > 0, "camera.min_zoom must be positive, got %v", c.Camera.MinZoom)
	check(c.Camera.MaxZoom >= c.Camera.MinZoom, "camera.max_zoom %v is below min_zoom %v", c.Camera.MaxZoom, c.Camera.MinZoom)
	check(c.Wheel.PixelsPerLine > 0, "wheel.pixels_per_line must be positive, got %v", c.Wheel.PixelsPerLine)
	check(c.Arrange.Padding >= 0, "arrange.padding must not be negative, got %v", c.Arrange.Padding)
	check(c.Drop.MaxWidth > 0, "drop.max_width must be positive, got %v", c.Drop.MaxWidth)
	check(c.Export.Padding >= 0, "export.padding must not be negative, got %v", c.Export.Padding)
	check(c.Export.JPEGQuality > 0 && c.Export.JPEGQuality <= 1, "export.jpeg_quality must be in (0,1], got %v", c.Export.JPEGQuality)
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
	return l, nil
}
