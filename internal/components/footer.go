package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/go-softwarelab/common/docs/internal/site"
)

func PageFooter(meta site.Meta) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container"),
			g.If(meta.Repository != "",
				P(
					A(Href(meta.Repository), g.Attr("target", "_blank"), g.Attr("rel", "noopener noreferrer"), g.Text("GitHub")),
				),
			),
			P(g.Text(meta.Copyright)),
		),
	)
}
