package gox

import "fmt"

// Text creates a text VNode.
func Text(content string) VNode {
	return VNode{
		Type:  TextNodeType,
		Props: Props{"content": content},
	}
}

// V converts an arbitrary value to a VNode.
// If the value is already a VNode, it's returned as-is.
// If it's a string, it's wrapped as a Text node.
// If it's a []VNode, it's wrapped as a Fragment.
// Numeric types and booleans are converted to their string representation.
// Panics for unsupported types (channels, functions, etc.).
func V(value any) VNode {
	switch v := value.(type) {
	case VNode:
		return v
	case string:
		return Text(v)
	case []VNode:
		return Fragment(v...)
	case nil:
		return Empty()
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bool:
		return Text(fmt.Sprint(v))
	default:
		panic(fmt.Sprintf("gox: cannot convert %T to VNode", value))
	}
}

// Children returns the children carried in props under ChildrenKey.
// A []VNode is returned as-is, so order and identity are preserved. A single
// node becomes a one-element slice and a missing or nil value yields no
// children. Slices of plain values are converted element by element with V.
func Children(props Props) []VNode {
	switch c := props[ChildrenKey].(type) {
	case nil:
		return nil
	case []VNode:
		return c
	case VNode:
		if c.IsEmpty() {
			return nil
		}
		return []VNode{c}
	case []string:
		return Map(c, Text)
	case []any:
		return Map(c, V)
	default:
		return []VNode{V(c)}
	}
}

// Fragment wraps multiple children without a parent element.
func Fragment(children ...VNode) VNode {
	return VNode{
		Type:     FragmentNodeType,
		Children: children,
	}
}

// When returns child if condition is true, else empty VNode.
func When(condition bool, child VNode) VNode {
	if condition {
		return child
	}
	return Empty()
}

// WhenElse returns ifTrue if condition is true, else ifFalse.
func WhenElse(condition bool, ifTrue, ifFalse VNode) VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Map applies a function to each element and returns the resulting VNodes.
func Map[T any](items []T, fn func(T) VNode) []VNode {
	result := make([]VNode, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}

// MapIndex applies a function with index to each element and returns the resulting VNodes.
func MapIndex[T any](items []T, fn func(int, T) VNode) []VNode {
	result := make([]VNode, len(items))
	for i, item := range items {
		result[i] = fn(i, item)
	}
	return result
}

// Spread wraps a slice of VNodes in a fragment.
func Spread(nodes []VNode) VNode {
	return Fragment(nodes...)
}
