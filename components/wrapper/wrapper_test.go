package wrapper

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gox "github.com/germtb/gox-wrapper"
	"github.com/germtb/gox-wrapper/style"
)

const rootID = "YourComponent__root___a1b2c"

func newWrapper(t *testing.T) *Wrapper {
	t.Helper()
	w, err := New(style.Sheet{RootClass: rootID})
	require.NoError(t, err)
	return w
}

func TestRenderHello(t *testing.T) {
	w := newWrapper(t)

	got := w.Render(gox.Props{gox.ChildrenKey: "Hello"})

	assert.Equal(t, ContainerTag, got.Tag())
	assert.Equal(t, gox.Props{"className": rootID}, got.Props)
	require.Len(t, got.Children, 1)
	text, ok := got.Children[0].GetTextContent()
	require.True(t, ok)
	assert.Equal(t, "Hello", text)
}

func TestRenderEmpty(t *testing.T) {
	w := newWrapper(t)

	tests := []struct {
		name  string
		props gox.Props
	}{
		{name: "empty slice", props: gox.Props{gox.ChildrenKey: []gox.VNode{}}},
		{name: "omitted", props: gox.Props{}},
		{name: "nil props", props: nil},
		{name: "nil children", props: gox.Props{gox.ChildrenKey: nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Render(tt.props)
			assert.Equal(t, ContainerTag, got.Tag())
			assert.Equal(t, rootID, got.Props["className"])
			assert.Empty(t, got.Children)
		})
	}
}

func TestRenderPreservesChildren(t *testing.T) {
	w := newWrapper(t)
	children := []gox.VNode{
		gox.Text("first"),
		gox.Element("span", gox.Props{"id": "second"}, gox.Text("nested")),
		gox.Fragment(gox.Text("third")),
	}

	got := w.Render(gox.Props{gox.ChildrenKey: children})

	assert.Equal(t, children, got.Children)
	require.Len(t, got.Children, len(children))
	assert.Same(t, &children[0], &got.Children[0], "children are passed through, not copied")
}

func TestRenderDoesNotMutateProps(t *testing.T) {
	w := newWrapper(t)
	props := gox.Props{gox.ChildrenKey: "x", "extra": 1}

	w.Render(props)

	assert.Equal(t, gox.Props{gox.ChildrenKey: "x", "extra": 1}, props)
}

func TestRenderHasNoResidualState(t *testing.T) {
	w := newWrapper(t)

	first := w.Render(gox.Props{gox.ChildrenKey: []gox.VNode{gox.Text("a"), gox.Text("b")}})
	second := w.Render(gox.Props{gox.ChildrenKey: "c"})
	third := w.Render(nil)

	assert.Len(t, first.Children, 2)
	assert.Equal(t, []gox.VNode{gox.Text("c")}, second.Children)
	assert.Empty(t, third.Children)
	assert.Equal(t, first.Props, second.Props)
}

func TestComponentExpansion(t *testing.T) {
	w := newWrapper(t)

	tree := gox.Element(w.Component(), nil, gox.Text("Hello"))
	assert.True(t, tree.IsComponent())

	got := gox.Expand(tree)

	assert.Equal(t, w.Wrap(gox.Text("Hello")), got)
}

func TestWrap(t *testing.T) {
	w := newWrapper(t)

	got := w.Wrap(gox.Text("a"), gox.Text("b"))
	assert.Equal(t, []gox.VNode{gox.Text("a"), gox.Text("b")}, got.Children)

	assert.Empty(t, w.Wrap().Children)
}

func TestNewPropagatesStyleError(t *testing.T) {
	_, err := New(style.Sheet{"other": "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, style.ErrUndefinedClass))

	assert.Panics(t, func() { MustNew(style.Sheet{}) })
}

func TestNewWithNilLiveSheet(t *testing.T) {
	var live *style.Live

	_, err := New(live)
	require.Error(t, err)
	assert.True(t, errors.Is(err, style.ErrUndefinedClass))
}

func TestClassFollowsLiveSheet(t *testing.T) {
	live := style.NewLive(style.Sheet{RootClass: "v1"})
	w := MustNew(live)

	assert.Equal(t, "v1", w.Render(nil).Props["className"])

	live.Store(style.Sheet{RootClass: "v2"})
	assert.Equal(t, "v2", w.Render(nil).Props["className"])

	live.Store(style.Sheet{})
	assert.Equal(t, "v1", w.Render(nil).Props["className"], "falls back to the identifier resolved at construction")
}

func TestModuleSheet(t *testing.T) {
	sheet := style.Module("YourComponent", RootClass)
	w := MustNew(sheet)

	assert.Equal(t, sheet[RootClass], w.Class())
}
