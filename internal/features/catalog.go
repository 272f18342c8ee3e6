// Package features renders the feature cards shown on the landing page.
//
// The catalog is compiled into the binary and never changes at runtime.
// Card and Section are pure functions of their input: the same catalog always
// yields the same tree.
package features

import (
	"slices"

	"github.com/go-softwarelab/common/docs/internal/assets"
	"github.com/go-softwarelab/common/docs/internal/view"
)

// Record is one feature card's content.
type Record struct {
	Title string
	// Icon must already be resolved; Card only styles it.
	Icon        view.Image
	Description []view.Node
}

// Catalog is an ordered list of records. Order is display order.
type Catalog []Record

var catalog = Catalog{
	{
		Title: "Write Go with ease",
		Icon:  assets.MustResolve("img/easy_to_use.svg"),
		Description: []view.Node{
			view.Text{Value: "Simplifies everyday coding, turning complexity into clarity!"},
		},
	},
	{
		Title: "Unlock the beauty of simplicity",
		Icon:  assets.MustResolve("img/simplicity.svg"),
		Description: []view.Node{
			view.Text{Value: "Helps you write Go code that's as clear as a summer sky!"},
		},
	},
	{
		Title: "Unleashing the firepower of iter.Seq",
		Icon:  assets.MustResolve("img/iterators.svg"),
		Description: []view.Node{
			view.Text{Value: "Supercharges Go iterators ("},
			view.Code("iter.Seq"),
			view.Text{Value: " and "},
			view.Code("iter.Seq2"),
			view.Text{Value: ") for pleasant and seamless usability!"},
		},
	},
}

// Default returns a copy of the built-in catalog.
func Default() Catalog {
	out := make(Catalog, len(catalog))
	for i, r := range catalog {
		r.Description = slices.Clone(r.Description)
		out[i] = r
	}
	return out
}
