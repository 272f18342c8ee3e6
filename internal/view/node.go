// Package view models rendered markup as a small closed set of nodes.
//
// Every node renders through gomponents, so a view tree can be handed to any
// gomponents page as a child. Unlike a bare gomponents tree, a view tree can be
// inspected: tests and callers walk it to find headings, images and text.
package view

import (
	"io"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Kind identifies a node variant.
type Kind int

const (
	KindText Kind = iota + 1
	KindInline
	KindHeading
	KindImage
	KindParagraph
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInline:
		return "inline"
	case KindHeading:
		return "heading"
	case KindImage:
		return "image"
	case KindParagraph:
		return "paragraph"
	case KindContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Node is one element of a view tree. The set of implementations is closed to
// this package.
type Node interface {
	g.Node
	Kind() Kind
	children() []Node
}

// Text is an escaped text leaf.
type Text struct {
	Value string
}

// Kind implements Node.
func (Text) Kind() Kind { return KindText }

func (Text) children() []Node { return nil }

// Render implements gomponents.Node.
func (t Text) Render(w io.Writer) error {
	return g.Text(t.Value).Render(w)
}

// Inline wraps rich-text children in an inline element such as code or em.
type Inline struct {
	Tag      string
	Children []Node
}

// Code returns an inline code span holding text.
func Code(text string) Inline {
	return Inline{Tag: "code", Children: []Node{Text{Value: text}}}
}

// Emphasis returns an inline em span holding text.
func Emphasis(text string) Inline {
	return Inline{Tag: "em", Children: []Node{Text{Value: text}}}
}

// Kind implements Node.
func (Inline) Kind() Kind { return KindInline }

func (i Inline) children() []Node { return i.Children }

// Render implements gomponents.Node.
func (i Inline) Render(w io.Writer) error {
	tag := i.Tag
	if tag == "" {
		tag = "span"
	}
	return g.El(tag, nodes(i.Children)...).Render(w)
}

// Heading renders its children inside an hN element.
type Heading struct {
	Level    int
	Children []Node
}

// Kind implements Node.
func (Heading) Kind() Kind { return KindHeading }

func (hd Heading) children() []Node { return hd.Children }

// Render implements gomponents.Node. Levels outside 1..6 are clamped.
func (hd Heading) Render(w io.Writer) error {
	level := min(max(hd.Level, 1), 6)
	return g.El("h"+strconv.Itoa(level), nodes(hd.Children)...).Render(w)
}

// Image is an inline SVG graphic resolved from an embedded asset.
type Image struct {
	// Asset is the identifier the image was resolved from, e.g. "img/simplicity.svg".
	Asset   string
	ViewBox string
	// Markup is the trusted inner SVG markup, rendered unescaped.
	Markup string
	Class  string
	Role   string
}

// WithClass returns a copy of the image carrying class.
func (i Image) WithClass(class string) Image {
	i.Class = class
	return i
}

// WithRole returns a copy of the image carrying the ARIA role.
func (i Image) WithRole(role string) Image {
	i.Role = role
	return i
}

// Kind implements Node.
func (Image) Kind() Kind { return KindImage }

func (Image) children() []Node { return nil }

// Render implements gomponents.Node.
func (i Image) Render(w io.Writer) error {
	return g.El("svg",
		g.Attr("xmlns", svgNamespace),
		g.If(i.ViewBox != "", g.Attr("viewBox", i.ViewBox)),
		g.If(i.Class != "", h.Class(i.Class)),
		g.If(i.Role != "", g.Attr("role", i.Role)),
		g.Raw(i.Markup),
	).Render(w)
}

// Paragraph renders its children inside a p element.
type Paragraph struct {
	Children []Node
}

// Kind implements Node.
func (Paragraph) Kind() Kind { return KindParagraph }

func (p Paragraph) children() []Node { return p.Children }

// Render implements gomponents.Node.
func (p Paragraph) Render(w io.Writer) error {
	return h.P(nodes(p.Children)...).Render(w)
}

// Container is a block element grouping other nodes. Tag defaults to div.
type Container struct {
	Tag      string
	Class    string
	Children []Node
}

// Kind implements Node.
func (Container) Kind() Kind { return KindContainer }

func (c Container) children() []Node { return c.Children }

// Render implements gomponents.Node.
func (c Container) Render(w io.Writer) error {
	tag := c.Tag
	if tag == "" {
		tag = "div"
	}
	children := make([]g.Node, 0, len(c.Children)+1)
	if c.Class != "" {
		children = append(children, h.Class(c.Class))
	}
	children = append(children, nodes(c.Children)...)
	return g.El(tag, children...).Render(w)
}

func nodes(children []Node) []g.Node {
	out := make([]g.Node, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		out = append(out, child)
	}
	return out
}
