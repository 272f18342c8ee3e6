package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() Node {
	return Container{Tag: "section", Children: []Node{
		Container{Class: "row", Children: []Node{
			Heading{Level: 3, Children: []Node{Text{Value: "one"}}},
			Paragraph{Children: []Node{Text{Value: "first "}, Code("code")}},
		}},
		Container{Class: "row", Children: []Node{
			Heading{Level: 3, Children: []Node{Text{Value: "two"}}},
		}},
	}}
}

func TestCollectFindsNodesInDocumentOrder(t *testing.T) {
	headings := Collect[Heading](sampleTree())
	if assert.Len(t, headings, 2) {
		assert.Equal(t, "one", TextContent(headings[0]))
		assert.Equal(t, "two", TextContent(headings[1]))
	}
	assert.Len(t, Collect[Container](sampleTree()), 3, "root counts as a match")
	assert.Empty(t, Collect[Image](sampleTree()))
}

func TestWalkSkipsChildrenWhenVisitReturnsFalse(t *testing.T) {
	var kinds []Kind
	Walk(sampleTree(), func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindContainer || len(kinds) == 1
	})
	assert.Equal(t, []Kind{KindContainer, KindContainer, KindContainer}, kinds)
}

func TestWalkNilIsNoop(t *testing.T) {
	called := false
	Walk(nil, func(Node) bool { called = true; return true })
	assert.False(t, called)
	assert.Nil(t, Children(nil))
}

func TestTextContent(t *testing.T) {
	assert.Equal(t, "onefirst codetwo", TextContent(sampleTree()))
	assert.Equal(t, "", TextContent(Heading{Level: 3}))
}
