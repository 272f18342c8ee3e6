package view

import (
	"strings"

	g "maragu.dev/gomponents"
)

// Children returns the direct children of n.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}
	return n.children()
}

// Walk visits n and its descendants in document order. Returning false from
// visit skips the node's children.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.children() {
		Walk(child, visit)
	}
}

// Collect returns every node of type T under root, root included, in document order.
func Collect[T Node](root Node) []T {
	var out []T
	Walk(root, func(n Node) bool {
		if match, ok := n.(T); ok {
			out = append(out, match)
		}
		return true
	})
	return out
}

// TextContent concatenates the text leaves under n.
func TextContent(n Node) string {
	var b strings.Builder
	Walk(n, func(n Node) bool {
		if t, ok := n.(Text); ok {
			b.WriteString(t.Value)
		}
		return true
	})
	return b.String()
}

// RenderString renders any gomponents node to a string.
func RenderString(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
