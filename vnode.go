// Package gox provides the virtual node runtime that components render into.
//
// A component is a pure function from Props to a VNode tree. The runtime
// never mutates props and never keeps state between renders, so the same
// component can be rendered repeatedly and concurrently.
package gox

// VNode is the core tree node type.
type VNode struct {
	Type     any // string for intrinsic elements, Component for components
	Props    Props
	Children []VNode
}

// Props is a flexible property map.
type Props map[string]any

// Component is a function that returns a VNode.
type Component func(props Props) VNode

// NodeType constants for special node types.
const (
	TextNodeType     = "__text__"
	FragmentNodeType = "__fragment__"
)

// ChildrenKey is the prop under which a component receives its children.
const ChildrenKey = "children"

// IsText returns true if this VNode is a text node.
func (v VNode) IsText() bool {
	s, ok := v.Type.(string)
	return ok && s == TextNodeType
}

// IsFragment returns true if this VNode is a fragment.
func (v VNode) IsFragment() bool {
	s, ok := v.Type.(string)
	return ok && s == FragmentNodeType
}

// IsComponent returns true if this VNode represents a component, either a
// Component or a plain func(Props) VNode such as a method value.
func (v VNode) IsComponent() bool {
	_, ok := v.component()
	return ok
}

func (v VNode) component() (Component, bool) {
	switch c := v.Type.(type) {
	case Component:
		return c, c != nil
	case func(Props) VNode:
		return c, c != nil
	}
	return nil, false
}

// IsElement returns true for intrinsic elements such as "div".
func (v VNode) IsElement() bool {
	s, ok := v.Type.(string)
	return ok && s != TextNodeType && s != FragmentNodeType
}

// Tag returns the element tag, or "" for anything that is not an intrinsic element.
func (v VNode) Tag() string {
	if !v.IsElement() {
		return ""
	}
	return v.Type.(string)
}

// GetTextContent returns the text content if this is a text node.
func (v VNode) GetTextContent() (string, bool) {
	if !v.IsText() {
		return "", false
	}
	if content, ok := v.Props["content"].(string); ok {
		return content, true
	}
	return "", false
}

// Empty returns an empty VNode.
func Empty() VNode {
	return VNode{}
}

// IsEmpty returns true if this VNode is empty/nil.
func (v VNode) IsEmpty() bool {
	return v.Type == nil && v.Props == nil && v.Children == nil
}
