// Package assets decodes images for placement and tracks the asset
// directory the toolbar lists.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrUnsupported = errors.New("assets: unsupported image type")

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsImage reports whether path has an extension the decoders understand.
func IsImage(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// Decode reads any registered image format and returns its name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, "", ErrUnsupported
	}
	if err != nil {
		return nil, "", err
	}
	return img, format, nil
}

// DecodeBytes is Decode for an in-memory buffer such as clipboard data.
func DecodeBytes(b []byte) (image.Image, error) {
	img, _, err := Decode(bytes.NewReader(b))
	return img, err
}

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	return img, nil
}

// LoadFS decodes name from fsys.
func LoadFS(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	return img, nil
}

// Info describes an image file in the asset directory.
type Info struct {
	Name string
	Path string
}

// List walks dir for image files, sorted by name. A missing directory is
// not an error.
func List(dir string) ([]Info, error) {
	var assets []Info
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsImage(d.Name()) {
			return nil
		}
		assets = append(assets, Info{Name: d.Name(), Path: path})
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assets: list %s: %w", dir, err)
	}
	sort.Slice(assets, func(i, j int) bool {
		if assets[i].Name == assets[j].Name {
			return assets[i].Path < assets[j].Path
		}
		return assets[i].Name < assets[j].Name
	})
	return assets, nil
}

// Dropped is an image decoded from a file dropped on the window.
type Dropped struct {
	Name  string
	Image image.Image
}

// LoadDropped decodes every image in fsys. Files that fail to decode are
// skipped and reported in the joined error.
func LoadDropped(fsys fs.FS) ([]Dropped, error) {
	var out []Dropped
	var errs []error
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		img, err := LoadFS(fsys, path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		out = append(out, Dropped{Name: path, Image: img})
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return out, errors.Join(errs...)
}
