// Package html writes gox trees as HTML.
//
// Component nodes are expanded first and the result is converted to an
// x/net/html node tree, so any tree built from gox components can be
// rendered directly or served through templ.
package html

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/cockroachdb/errors"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	gox "github.com/germtb/gox-wrapper"
)

var (
	// ErrUnsupportedNode is returned for node types that have no HTML form.
	ErrUnsupportedNode = errors.New("html: unsupported node")
	// ErrInvalidAttribute is returned for attribute names or values that cannot be written.
	ErrInvalidAttribute = errors.New("html: invalid attribute")
)

// x/net/html writes tag and attribute names verbatim.
var (
	tagPattern  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)
	attrPattern = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)
)

// attrAliases maps gox prop names to their HTML attribute names.
var attrAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// skipProps are never written as attributes.
var skipProps = map[string]bool{
	gox.ChildrenKey: true,
	"key":           true,
}

// Render expands node and writes it to w.
func Render(ctx context.Context, w io.Writer, node gox.VNode) error {
	doc, err := Node(ctx, node)
	if err != nil {
		return err
	}
	if err := nethtml.Render(w, doc); err != nil {
		return errors.Wrap(err, "render html")
	}
	return nil
}

// Node expands node and converts it to a document node whose children are
// the top-level HTML nodes. Fragments are flattened into their parent.
func Node(ctx context.Context, node gox.VNode) (*nethtml.Node, error) {
	doc := &nethtml.Node{Type: nethtml.DocumentNode}
	c := &converter{ctx: ctx}
	if err := c.appendTo(doc, gox.Expand(node)); err != nil {
		return nil, err
	}
	return doc, nil
}

// NewRenderer returns a gox.Renderer that writes each tree to w.
func NewRenderer(ctx context.Context, w io.Writer) gox.Renderer {
	return gox.RenderFunc(func(node gox.VNode) error {
		return Render(ctx, w, node)
	})
}

// String renders node to a string.
func String(node gox.VNode) (string, error) {
	var sb strings.Builder
	if err := Render(context.Background(), &sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Component adapts node to a templ.Component.
func Component(node gox.VNode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Render(ctx, w, node)
	})
}

type converter struct {
	ctx context.Context
}

func (c *converter) appendTo(parent *nethtml.Node, n gox.VNode) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}

	switch {
	case n.IsEmpty():
		return nil
	case n.IsText():
		content, _ := n.GetTextContent()
		parent.AppendChild(&nethtml.Node{Type: nethtml.TextNode, Data: content})
		return nil
	case n.IsFragment():
		return c.appendChildren(parent, n.Children)
	case n.IsElement():
		el, err := element(n)
		if err != nil {
			return err
		}
		parent.AppendChild(el)
		return c.appendChildren(el, n.Children)
	default:
		return errors.Wrapf(ErrUnsupportedNode, "type %T", n.Type)
	}
}

func (c *converter) appendChildren(parent *nethtml.Node, children []gox.VNode) error {
	for _, child := range children {
		if err := c.appendTo(parent, child); err != nil {
			return err
		}
	}
	return nil
}

func element(n gox.VNode) (*nethtml.Node, error) {
	tag := n.Tag()
	if !tagPattern.MatchString(tag) {
		return nil, errors.Wrapf(ErrUnsupportedNode, "tag %q", tag)
	}
	attrs, err := attributes(n.Props)
	if err != nil {
		return nil, err
	}
	return &nethtml.Node{
		Type:     nethtml.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}, nil
}

// attributes converts props to attributes sorted by prop name. true becomes
// an empty-valued attribute; false and nil are dropped.
func attributes(props gox.Props) ([]nethtml.Attribute, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		if !skipProps[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	attrs := make([]nethtml.Attribute, 0, len(names))
	for _, name := range names {
		key := name
		if alias, ok := attrAliases[name]; ok {
			key = alias
		}
		if !attrPattern.MatchString(key) {
			return nil, errors.Wrapf(ErrInvalidAttribute, "name %q", name)
		}

		switch v := props[name].(type) {
		case nil:
		case bool:
			if v {
				attrs = append(attrs, nethtml.Attribute{Key: key})
			}
		case string:
			attrs = append(attrs, nethtml.Attribute{Key: key, Val: v})
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64, fmt.Stringer:
			attrs = append(attrs, nethtml.Attribute{Key: key, Val: fmt.Sprint(v)})
		default:
			return nil, errors.Wrapf(ErrInvalidAttribute, "%s: value of type %T", name, v)
		}
	}
	return attrs, nil
}
