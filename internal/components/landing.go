package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/go-softwarelab/common/docs/internal/features"
	"github.com/go-softwarelab/common/docs/internal/site"
)

// LandingPage is the site's home page: hero banner, feature cards, footer.
func LandingPage(meta site.Meta) g.Node {
	return Layout(
		PageConfigFor(meta, meta.Title),
		Hero(meta),
		Main(
			features.HomepageFeatures(),
		),
		PageFooter(meta),
	)
}
