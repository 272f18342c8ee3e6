package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/go-softwarelab/common/docs/internal/assets"
	"github.com/go-softwarelab/common/docs/internal/site"
)

type PageConfig struct {
	Title       string
	Description string
	// Stylesheet is the absolute path of the site stylesheet.
	Stylesheet string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Documentation"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				g.If(config.Description != "", Meta(g.Attr("property", "og:description"), Content(config.Description))),
				Meta(g.Attr("property", "og:type"), Content("website")),

				g.If(config.Stylesheet != "", Link(Rel("stylesheet"), Href(config.Stylesheet))),
			),
			Body(
				g.Group(content),
			),
		),
	})
}

// PageConfigFor builds the page config shared by every page of the site.
func PageConfigFor(meta site.Meta, title string) PageConfig {
	full := meta.Title
	if title != "" && title != meta.Title {
		full = title + " | " + meta.Title
	}
	return PageConfig{
		Title:       full,
		Description: meta.Description,
		Stylesheet:  meta.Path("static/" + assets.StylesheetPath),
	}
}
