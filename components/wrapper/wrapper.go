// Package wrapper provides Wrapper, a component that places its children
// inside a single styled container.
package wrapper

import (
	"github.com/cockroachdb/errors"

	gox "github.com/germtb/gox-wrapper"
	"github.com/germtb/gox-wrapper/style"
)

// RootClass is the symbolic class applied to the container.
const RootClass = "root"

// ContainerTag is the element the children are placed in.
const ContainerTag = "div"

// Wrapper renders children inside a div carrying the resolved root class.
// It holds no per-render state and is safe for concurrent use.
type Wrapper struct {
	styles style.Lookup
	class  string
}

// New resolves the root class through styles. Lookup failures come from the
// style system and are returned as-is.
func New(styles style.Lookup) (*Wrapper, error) {
	class, err := style.Resolve(styles, RootClass)
	if err != nil {
		return nil, errors.Wrap(err, "wrapper")
	}
	return &Wrapper{styles: styles, class: class}, nil
}

// MustNew is like New but panics if the root class cannot be resolved.
func MustNew(styles style.Lookup) *Wrapper {
	w, err := New(styles)
	if err != nil {
		panic(err)
	}
	return w
}

// Class returns the identifier the next render will use.
func (w *Wrapper) Class() string {
	if id, ok := w.styles.Lookup(RootClass); ok {
		return id
	}
	return w.class
}

// Render returns the container holding props' children, unaltered and in
// order. props is not modified.
func (w *Wrapper) Render(props gox.Props) gox.VNode {
	return gox.Element(ContainerTag, gox.Props{"className": w.Class()}, gox.Children(props)...)
}

// Component exposes Render for use as gox.Element(w.Component(), props, children...).
func (w *Wrapper) Component() gox.Component {
	return w.Render
}

// Wrap renders the given children directly.
func (w *Wrapper) Wrap(children ...gox.VNode) gox.VNode {
	return w.Render(gox.Props{gox.ChildrenKey: children})
}
