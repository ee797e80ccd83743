package resource

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryKeepsInsertionOrder(t *testing.T) {
	d := NewDictionary("d").Set("z", 1).Set("a", 2).Set("m", 3)
	d.Set("z", 4) // overwrite keeps position
	assert.Equal(t, []string{"z", "a", "m"}, d.Keys())
	v, ok := d.Get("z")
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestDictionaryRemove(t *testing.T) {
	d := NewDictionary("d").Set("a", 1).Set("b", 2).Set("c", 3)
	d.Remove("b")
	d.Remove("missing")
	assert.Equal(t, []string{"a", "c"}, d.Keys())
	_, ok := d.Get("b")
	assert.False(t, ok)
}

func TestDictionaryMergedSearchedAfterPrimary(t *testing.T) {
	m1 := NewDictionary("m1").Set("color", "red").Set("size", 1)
	m2 := NewDictionary("m2").Set("size", 2).Set("font", "serif")
	d := NewDictionary("d").Set("color", "blue").Merge(m1, nil, m2)
	v, _ := d.Get("color")
	assert.Equal(t, "blue", v, "primary mapping must win over merged dictionaries")
	v, _ = d.Get("size")
	assert.Equal(t, 1, v, "merged dictionaries must be searched in merge order")
	v, _ = d.Get("font")
	assert.Equal(t, "serif", v)
	_, ok := d.Own("font")
	assert.False(t, ok, "Own must not search merged dictionaries")
	assert.Len(t, d.Merged(), 2)
}

func TestDictionaryEmptiness(t *testing.T) {
	var nilDict *Dictionary
	assert.True(t, nilDict.IsEmpty())
	assert.True(t, NewDictionary("e").IsEmpty())
	assert.True(t, NewDictionary("e").Merge(NewDictionary("e2")).IsEmpty())
	assert.False(t, NewDictionary("m").Merge(NewDictionary("x").Set("a", 1)).IsEmpty())
	assert.False(t, NewDictionary("o").Set("a", nil).IsEmpty())
}

func TestDictionaryRejectsMergeCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.resource")
	defer teardown()
	//
	a := NewDictionary("a")
	b := NewDictionary("b").Set("x", 1)
	c := NewDictionary("c").Merge(b)
	a.Merge(c)
	b.Merge(a) // b -> a -> c -> b
	c.Merge(c)
	a.Merge(b) // shared, not a cycle
	assert.Empty(t, b.Merged())
	assert.Len(t, c.Merged(), 1)
	assert.Len(t, a.Merged(), 2)
	assert.False(t, a.IsEmpty())
	_, ok := a.Get("missing")
	assert.False(t, ok)
	v, ok := a.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestIsGroup(t *testing.T) {
	assert.True(t, IsGroup(NewDictionary("g")))
	assert.True(t, IsGroup(ClassRef{}))
	assert.False(t, IsGroup("red"))
	assert.False(t, IsGroup(nil))
}

func TestStaticReference(t *testing.T) {
	for _, tc := range []struct {
		value any
		key   string
		ok    bool
	}{
		{"$accent", "accent", true},
		{"  $brand_2 ", "brand_2", true},
		{"$", "", false},
		{"accent", "", false},
		{"10 $x", "", false},
		{"$a-b", "", false},
		{42, "", false},
		{ClassRef{}, "", false},
	} {
		key, ok := StaticReference(tc.value)
		assert.Equal(t, tc.ok, ok, "value %v", tc.value)
		assert.Equal(t, tc.key, key, "value %v", tc.value)
	}
}

// --- Chains ----------------------------------------------------------------

type tnode struct {
	name   string
	parent *tnode
	res    *Dictionary
}

type twalker struct {
	global *Dictionary
}

func (w twalker) Parent(n *tnode) (*tnode, bool)      { return n.parent, n.parent != nil }
func (w twalker) LocalResources(n *tnode) *Dictionary { return n.res }
func (w twalker) GlobalResources() *Dictionary        { return w.global }

func TestChainNearestFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.resource")
	defer teardown()
	//
	root := &tnode{name: "root", res: NewDictionary("root").Set("p", "root")}
	middle := &tnode{name: "middle", parent: root} // no resources
	leaf := &tnode{name: "leaf", parent: middle, res: NewDictionary("leaf").Set("p", "leaf")}
	global := NewDictionary("global").Set("p", "global").Set("q", "global")
	chain := BuildChain(leaf, twalker{global}, NearestFirst)
	require.Equal(t, 3, chain.Len(), "chain = %s", chain)
	assert.Equal(t, "leaf", chain[0].Name())
	assert.Equal(t, "root", chain[1].Name())
	assert.Equal(t, "global", chain[2].Name())
	v, ok := chain.Lookup("p")
	require.True(t, ok)
	assert.Equal(t, "leaf", v)
	v, _ = chain.Lookup("q")
	assert.Equal(t, "global", v)
	_, ok = chain.Lookup("missing")
	assert.False(t, ok)
}

func TestChainOutermostFirst(t *testing.T) {
	root := &tnode{name: "root", res: NewDictionary("root").Set("p", "root")}
	leaf := &tnode{name: "leaf", parent: root, res: NewDictionary("leaf").Set("p", "leaf")}
	global := NewDictionary("global").Set("p", "global")
	chain := BuildChain(leaf, twalker{global}, OutermostFirst)
	require.Equal(t, 3, chain.Len())
	assert.Equal(t, "global", chain[2].Name(), "global dictionary must stay last")
	v, _ := chain.Lookup("p")
	assert.Equal(t, "root", v)
}

func TestChainWithoutResources(t *testing.T) {
	lonely := &tnode{name: "lonely"}
	assert.Equal(t, 0, BuildChain(lonely, twalker{}, NearestFirst).Len())
	global := NewDictionary("global").Set("a", 1)
	chain := BuildChain(lonely, twalker{global}, NearestFirst)
	assert.Equal(t, 1, chain.Len())
	assert.Equal(t, "global", chain[0].Name())
}

func TestChainSkipsEmptyDictionaries(t *testing.T) {
	root := &tnode{name: "root", res: NewDictionary("root-empty")}
	leaf := &tnode{name: "leaf", parent: root,
		res: NewDictionary("leaf").Merge(NewDictionary("merged").Set("a", 1))}
	chain := BuildChain(leaf, twalker{}, NearestFirst)
	require.Equal(t, 1, chain.Len(), "chain = %s", chain)
	v, ok := chain.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestGlobalDictionary(t *testing.T) {
	defer SetGlobal(nil)
	assert.Nil(t, Global())
	g := NewDictionary("app")
	SetGlobal(g)
	assert.Same(t, g, Global())
}
