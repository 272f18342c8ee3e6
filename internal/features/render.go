package features

import "github.com/go-softwarelab/common/docs/internal/view"

const (
	headingLevel = 3
	iconClass    = "featureSvg"
	iconRole     = "img"
)

// Card lays out one record: the icon, then the title heading, then the
// description paragraph, all centered.
func Card(r Record) view.Node {
	return view.Container{
		Class: "col col--4",
		Children: []view.Node{
			view.Container{
				Class: "text--center",
				Children: []view.Node{
					r.Icon.WithClass(iconClass).WithRole(iconRole),
				},
			},
			view.Container{
				Class: "text--center padding-horiz--md",
				Children: []view.Node{
					view.Heading{Level: headingLevel, Children: []view.Node{view.Text{Value: r.Title}}},
					view.Paragraph{Children: r.Description},
				},
			},
		},
	}
}

// Section wraps one card per record, in catalog order, in a responsive row.
// An empty catalog yields an empty row.
func Section(c Catalog) view.Node {
	cards := make([]view.Node, 0, len(c))
	for _, r := range c {
		cards = append(cards, Card(r))
	}
	return view.Container{
		Tag:   "section",
		Class: "features",
		Children: []view.Node{
			view.Container{
				Class: "container",
				Children: []view.Node{
					view.Container{Class: "row", Children: cards},
				},
			},
		},
	}
}

// HomepageFeatures renders the built-in catalog.
func HomepageFeatures() view.Node {
	return Section(catalog)
}

// Row returns the row container of a section built by Section, or false if
// section does not have that shape.
func Row(section view.Node) (view.Container, bool) {
	for _, wrapper := range view.Children(section) {
		for _, row := range view.Children(wrapper) {
			if c, ok := row.(view.Container); ok && c.Class == "row" {
				return c, true
			}
		}
	}
	return view.Container{}, false
}
