package gox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildren(t *testing.T) {
	nodes := []VNode{Text("a"), Element("b", nil)}

	tests := []struct {
		name  string
		props Props
		want  []VNode
	}{
		{name: "nil props", props: nil, want: nil},
		{name: "missing", props: Props{}, want: nil},
		{name: "nil value", props: Props{ChildrenKey: nil}, want: nil},
		{name: "empty slice", props: Props{ChildrenKey: []VNode{}}, want: []VNode{}},
		{name: "node slice", props: Props{ChildrenKey: nodes}, want: nodes},
		{name: "single node", props: Props{ChildrenKey: Text("x")}, want: []VNode{Text("x")}},
		{name: "empty node", props: Props{ChildrenKey: Empty()}, want: nil},
		{name: "string", props: Props{ChildrenKey: "Hello"}, want: []VNode{Text("Hello")}},
		{name: "number", props: Props{ChildrenKey: 42}, want: []VNode{Text("42")}},
		{name: "strings", props: Props{ChildrenKey: []string{"a", "b"}}, want: []VNode{Text("a"), Text("b")}},
		{name: "mixed", props: Props{ChildrenKey: []any{"a", 1, Text("c")}}, want: []VNode{Text("a"), Text("1"), Text("c")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Children(tt.props))
		})
	}
}

func TestChildrenSharesBackingArray(t *testing.T) {
	nodes := []VNode{Text("a"), Text("b")}
	got := Children(Props{ChildrenKey: nodes})

	require.Len(t, got, 2)
	assert.Same(t, &nodes[0], &got[0])
}

func TestChildrenPanicsOnUnsupportedValue(t *testing.T) {
	assert.Panics(t, func() {
		Children(Props{ChildrenKey: make(chan int)})
	})
}

func TestExpandComponent(t *testing.T) {
	var Card Component = func(props Props) VNode {
		return Element("section", Props{"title": props["title"]}, Children(props)...)
	}

	props := Props{"title": "t"}
	tree := Element("main", nil, Element(Card, props, Text("one"), Text("two")))

	got := Expand(tree)

	require.Len(t, got.Children, 1)
	section := got.Children[0]
	assert.Equal(t, "section", section.Tag())
	assert.Equal(t, "t", section.Props["title"])
	assert.Equal(t, []VNode{Text("one"), Text("two")}, section.Children)

	_, injected := props[ChildrenKey]
	assert.False(t, injected, "caller props must not be mutated")
}

func TestExpandNestedComponents(t *testing.T) {
	var Inner Component = func(props Props) VNode {
		return Element("span", nil, Children(props)...)
	}
	var Outer Component = func(props Props) VNode {
		return Element(Inner, nil, Children(props)...)
	}

	got := Expand(Element(Outer, nil, Text("deep")))

	assert.Equal(t, "span", got.Tag())
	assert.Equal(t, []VNode{Text("deep")}, got.Children)
}

func TestExpandKeepsExplicitChildrenProp(t *testing.T) {
	var Echo Component = func(props Props) VNode {
		return Fragment(Children(props)...)
	}

	got := Expand(Element(Echo, Props{ChildrenKey: "from props"}))

	assert.True(t, got.IsFragment())
	assert.Equal(t, []VNode{Text("from props")}, got.Children)
}

func TestExpandLeavesTreeWithoutComponentsIntact(t *testing.T) {
	tree := Element("div", Props{"id": "x"}, Text("a"), Fragment(Text("b")))
	assert.Equal(t, tree, Expand(tree))
}

func TestTag(t *testing.T) {
	assert.Equal(t, "div", Element("div", nil).Tag())
	assert.Equal(t, "", Text("x").Tag())
	assert.Equal(t, "", Fragment().Tag())
	assert.Equal(t, "", Empty().Tag())
}

func TestExpandPlainFunc(t *testing.T) {
	bold := func(props Props) VNode {
		return Element("b", nil, Children(props)...)
	}

	node := Element(bold, nil, Text("x"))
	assert.True(t, node.IsComponent())
	assert.False(t, node.IsElement())

	got := Expand(Element("p", nil, node))
	assert.Equal(t, Element("p", nil, Element("b", nil, Text("x"))), got)
}

func TestNilComponentIsNotExpanded(t *testing.T) {
	var c Component
	node := VNode{Type: c}

	assert.False(t, node.IsComponent())
	assert.Equal(t, node, Expand(node))
}
