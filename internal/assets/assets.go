// Package assets holds the site's static files, compiled into the binary.
//
// Every SVG under static/img is parsed once when the package initializes and
// kept in a lookup table keyed by its path relative to static, e.g.
// "img/simplicity.svg". A broken or missing icon therefore fails at start-up,
// never while a page renders.
package assets

import (
	"bytes"
	"embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/go-softwarelab/common/docs/internal/view"
)

// StylesheetPath is the site stylesheet, relative to the static root.
const StylesheetPath = "css/custom.css"

//go:embed static
var staticFS embed.FS

// ErrAssetNotFound is returned when an identifier has no embedded image.
var ErrAssetNotFound = errors.New("asset not found")

var (
	static = mustSub(staticFS, "static")
	images = mustLoadImages(static)
)

// Static returns the embedded static tree rooted at static/.
func Static() fs.FS {
	return static
}

// Resolve returns the image embedded under id.
func Resolve(id string) (view.Image, error) {
	img, ok := images[id]
	if !ok {
		return view.Image{}, fmt.Errorf("resolve %q: %w", id, ErrAssetNotFound)
	}
	return img, nil
}

// MustResolve is Resolve for package-level initialization. It panics when id
// is not embedded.
func MustResolve(id string) view.Image {
	img, err := Resolve(id)
	if err != nil {
		panic(err)
	}
	return img
}

// Images lists the identifiers of every embedded image, sorted.
func Images() []string {
	ids := make([]string, 0, len(images))
	for id := range images {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

type svgDocument struct {
	XMLName xml.Name `xml:"svg"`
	ViewBox string   `xml:"viewBox,attr"`
	Inner   string   `xml:",innerxml"`
}

func parseSVG(id string, data []byte) (view.Image, error) {
	var doc svgDocument
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return view.Image{}, fmt.Errorf("parse svg %q: %w", id, err)
	}
	markup := strings.TrimSpace(doc.Inner)
	if markup == "" {
		return view.Image{}, fmt.Errorf("parse svg %q: empty document", id)
	}
	return view.Image{
		Asset:   id,
		ViewBox: doc.ViewBox,
		Markup:  markup,
	}, nil
}

func loadImages(root fs.FS) (map[string]view.Image, error) {
	out := make(map[string]view.Image)
	err := fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".svg" {
			return nil
		}
		data, err := fs.ReadFile(root, p)
		if err != nil {
			return err
		}
		img, err := parseSVG(p, data)
		if err != nil {
			return err
		}
		out[p] = img
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func mustLoadImages(root fs.FS) map[string]view.Image {
	out, err := loadImages(root)
	if err != nil {
		panic(fmt.Errorf("load embedded images: %w", err))
	}
	return out
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Errorf("open embedded %s: %w", dir, err))
	}
	return sub
}
