package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"text escapes", Text{Value: `a < b & "c"`}, `a &lt; b &amp; &#34;c&#34;`},
		{"code span", Code("iter.Seq"), `<code>iter.Seq</code>`},
		{"inline defaults to span", Inline{Children: []Node{Text{Value: "x"}}}, `<span>x</span>`},
		{"heading", Heading{Level: 3, Children: []Node{Text{Value: "Title"}}}, `<h3>Title</h3>`},
		{"heading clamps low", Heading{Level: 0}, `<h1></h1>`},
		{"heading clamps high", Heading{Level: 9}, `<h6></h6>`},
		{"paragraph", Paragraph{Children: []Node{Text{Value: "a "}, Emphasis("b")}}, `<p>a <em>b</em></p>`},
		{"container defaults to div", Container{Class: "row"}, `<div class="row"></div>`},
		{"section container", Container{Tag: "section", Children: []Node{Container{}}}, `<section><div></div></section>`},
		{
			"image",
			Image{ViewBox: "0 0 10 10", Markup: `<circle r="5"></circle>`, Class: "icon", Role: "img"},
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" class="icon" role="img"><circle r="5"></circle></svg>`,
		},
		{
			"image without styling",
			Image{Markup: `<path d="M0"></path>`},
			`<svg xmlns="http://www.w3.org/2000/svg"><path d="M0"></path></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderString(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageWithClassAndRoleCopy(t *testing.T) {
	base := Image{Asset: "img/a.svg"}
	styled := base.WithClass("featureSvg").WithRole("img")

	assert.Empty(t, base.Class, "original image must not change")
	assert.Empty(t, base.Role)
	assert.Equal(t, "featureSvg", styled.Class)
	assert.Equal(t, "img", styled.Role)
	assert.Equal(t, "img/a.svg", styled.Asset)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "heading", Heading{}.Kind().String())
	assert.Equal(t, "image", Image{}.Kind().String())
	assert.Equal(t, "container", Container{}.Kind().String())
	assert.Equal(t, "unknown", Kind(0).String())
}
