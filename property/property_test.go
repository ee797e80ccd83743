package property

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	kind  string
	props map[string]any
}

func (w *widget) Kind() string { return w.kind }

func (w *widget) setter(name string) Accessor {
	return Func(name, func(v any) error {
		w.props[name] = v
		return nil
	})
}

type describedWidget struct {
	widget
}

func (w *describedWidget) SettableProperties() Index {
	return Index{}.Add(w.setter("text"), w.setter("width"))
}

func TestIndexOfUnknownNode(t *testing.T) {
	r := NewRegistry()
	ix := r.IndexOf(struct{}{})
	assert.NotNil(t, ix)
	assert.Empty(t, ix)
	assert.Empty(t, r.IndexOf(nil))
	var nilRegistry *Registry
	assert.Empty(t, nilRegistry.IndexOf(struct{}{}))
}

func TestIndexOfDescribable(t *testing.T) {
	w := &describedWidget{widget{kind: "label", props: map[string]any{}}}
	ix := NewRegistry().IndexOf(w)
	assert.Equal(t, []string{"text", "width"}, ix.Names())
	require.NoError(t, ix["text"].Set("hello"))
	assert.Equal(t, "hello", w.props["text"])
}

func TestIndexOfMergesAttachedAndRegistered(t *testing.T) {
	r := NewRegistry()
	tooltip := func(node any) []Accessor {
		return []Accessor{node.(interface{ setter(string) Accessor }).setter("tooltip")}
	}
	r.Attach("", tooltip)
	r.Attach("button", func(node any) []Accessor {
		return []Accessor{node.(*widget).setter("dock")}
	})
	r.Register("button", func(node any) []Accessor {
		return []Accessor{node.(*widget).setter("color"), node.(*widget).setter("text")}
	})
	r.Register("button", nil) // ignored
	b := &widget{kind: "button", props: map[string]any{}}
	ix := r.IndexOf(b)
	assert.Equal(t, []string{"color", "dock", "text", "tooltip"}, ix.Names())

	l := &widget{kind: "label", props: map[string]any{}}
	assert.Equal(t, []string{"tooltip"}, r.IndexOf(l).Names(),
		"attached properties for every kind must be present on every node")
}

func TestOwnDeclarationsWin(t *testing.T) {
	r := NewRegistry()
	calls := ""
	r.Register("label", func(node any) []Accessor {
		return []Accessor{Func("text", func(any) error { calls += "registry;"; return nil })}
	})
	w := &describedWidget{widget{kind: "label", props: map[string]any{}}}
	ix := r.IndexOf(w)
	require.NoError(t, ix["text"].Set("x"))
	assert.Equal(t, "", calls)
	assert.Equal(t, "x", w.props["text"])
}

func TestFuncAccessorPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	a := Func("color", func(any) error { return boom })
	assert.Equal(t, "color", a.Name())
	assert.ErrorIs(t, a.Set("red"), boom)
	ix := Index(nil).Add(a, nil)
	assert.True(t, ix.Has("color"))
	assert.False(t, ix.Has("text"))
}
