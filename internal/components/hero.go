package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/go-softwarelab/common/docs/internal/site"
)

func Hero(meta site.Meta) g.Node {
	return Header(
		Class("hero"),
		ID("hero"),
		Div(
			Class("container"),
			H1(Class("hero__title"), g.Text(meta.Title)),
			P(Class("hero__subtitle"), g.Text(meta.Tagline)),
			g.If(meta.DocsPath != "",
				Div(
					A(
						Class("button"),
						Href(meta.DocsURL()),
						g.Text("Get started"),
					),
				),
			),
		),
	)
}
