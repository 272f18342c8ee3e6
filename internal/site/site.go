// Package site holds the documentation site's metadata, compiled from site.yaml.
package site

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

var Module = fx.Module("site",
	fx.Provide(Load),
)

// Meta describes the site as a whole.
type Meta struct {
	Title       string `yaml:"title"`
	Tagline     string `yaml:"tagline"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	BaseURL     string `yaml:"baseUrl"`
	Repository  string `yaml:"repository"`
	DocsPath    string `yaml:"docsPath"`
	Copyright   string `yaml:"copyright"`
}

// DocsURL returns the path of the docs entry page, relative to the host.
func (m Meta) DocsURL() string {
	return m.Path(m.DocsPath)
}

// Path joins p onto the site's base URL.
func (m Meta) Path(p string) string {
	base := m.BaseURL
	if base == "" {
		base = "/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(p, "/")
}

// Load parses the embedded site.yaml.
func Load() (Meta, error) {
	return Parse(siteYAML)
}

// Parse decodes and validates site metadata.
func Parse(data []byte) (Meta, error) {
	var m Meta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Meta{}, fmt.Errorf("parse site metadata: %w", err)
	}
	if strings.TrimSpace(m.Title) == "" {
		return Meta{}, errors.New("site metadata: title is required")
	}
	return m, nil
}
