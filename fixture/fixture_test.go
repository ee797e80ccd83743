package fixture

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/resource"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restyle(t *testing.T, path string, opts ...cascade.Option) *Fixture {
	f, err := LoadFile(path)
	require.NoError(t, err)
	doc, err := f.Document(nil, opts...)
	require.NoError(t, err)
	require.NoError(t, doc.Restyle())
	return f
}

func TestScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.fixture")
	defer teardown()
	//
	f := restyle(t, "testdata/scenarios.yaml")
	for _, m := range f.Verify() {
		t.Error(m)
	}
}

func TestGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.fixture")
	defer teardown()
	//
	var diags []cascade.Diagnostic
	f := restyle(t, "testdata/groups.yaml", cascade.WithDiagnostics(func(d cascade.Diagnostic) {
		diags = append(diags, d)
	}))
	for _, m := range f.Verify() {
		t.Error(m)
	}
	require.Len(t, diags, 1, "expected the loop to be reported once")
	assert.Equal(t, cascade.CyclicGroup, diags[0].Kind)
}

func TestDictionaryStructure(t *testing.T) {
	f, err := LoadFile("testdata/groups.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"size"}, f.Attached)
	res := f.Root.Resources
	require.NotNil(t, res)
	assert.Equal(t, []string{"base", "accent", "card", "loop-a", "loop-b"}, res.Keys())
	card, ok := res.Own("card")
	require.True(t, ok)
	ref, ok := card.(*resource.Dictionary).Own("base accent")
	require.True(t, ok)
	assert.Equal(t, resource.ClassRef{}, ref)
	require.Len(t, res.Merged(), 1)
	_, ok = res.Get("quiet")
	assert.True(t, ok, "expected merged dictionary to be searched")
	assert.Len(t, f.Root.Children, 4)
	assert.Equal(t, "span", f.Root.Children[3].Children[0].Kind)
}

func TestVerifyReportsMismatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.fixture")
	defer teardown()
	//
	f, err := Load(strings.NewReader(`
root:
  kind: body
  resources:
    red:
      color: red
  children:
    - kind: p
      class: red
      expect:
        color: blue
`))
	require.NoError(t, err)
	doc, err := f.Document(nil)
	require.NoError(t, err)
	require.NoError(t, doc.Restyle())
	mismatches := f.Verify()
	require.Len(t, mismatches, 1)
	assert.Equal(t, "body/p[0]", mismatches[0].Path)
	assert.Equal(t, "red", mismatches[0].Actual.String())
	t.Log(mismatches[0])
}

func TestAliases(t *testing.T) {
	f, err := Load(strings.NewReader(`
root:
  kind: body
  resources:
    base: &base
      color: red
    copy: *base
`))
	require.NoError(t, err)
	v, ok := f.Root.Resources.Own("copy")
	require.True(t, ok)
	c, _ := v.(*resource.Dictionary).Own("color")
	assert.Equal(t, "red", c)
}

func TestMergedIsAnOrdinaryClassKey(t *testing.T) {
	f, err := Load(strings.NewReader(`
root:
  kind: body
  resources:
    merged:
      color: red
    ~merged:
      - extra:
          color: blue
  children:
    - kind: p
      class: merged
      expect:
        color: red
    - kind: p
      class: extra
      expect:
        color: blue
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"merged"}, f.Root.Resources.Keys())
	require.Len(t, f.Root.Resources.Merged(), 1)
	doc, err := f.Document(nil)
	require.NoError(t, err)
	require.NoError(t, doc.Restyle())
	assert.Empty(t, f.Verify())
}

func TestFormatErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"- a\n- b\n",
		"root: ~\n",
		"global:\n  a: 1\n",
		"root:\n  class: x\n",
		"root:\n  kind: body\n  children: x\n",
		"root:\n  kind: body\n  resources:\n    ~merged: x\n",
		"style: x\n",
	} {
		_, err := Load(strings.NewReader(input))
		assert.True(t, errors.Is(err, ErrFormat), "input %q: expected format error, got %v", input, err)
	}
	_, err := LoadFile("testdata/broken.yaml")
	assert.True(t, errors.Is(err, ErrFormat))
	assert.Contains(t, err.Error(), "line 3")
}
