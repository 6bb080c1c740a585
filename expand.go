package gox

import "maps"

// Expand resolves every component node in the tree by calling the component
// with its props, plus the node's children under ChildrenKey. The result
// contains only intrinsic elements, text, fragments and empty nodes.
//
// The props map held by a component node is never modified; each call
// receives a fresh copy.
func Expand(node VNode) VNode {
	if c, ok := node.component(); ok {
		return Expand(c(componentProps(node)))
	}
	if len(node.Children) == 0 {
		return node
	}
	children := make([]VNode, len(node.Children))
	for i, child := range node.Children {
		children[i] = Expand(child)
	}
	node.Children = children
	return node
}

func componentProps(node VNode) Props {
	props := make(Props, len(node.Props)+1)
	maps.Copy(props, node.Props)
	if len(node.Children) > 0 {
		props[ChildrenKey] = node.Children
	}
	return props
}
