/*
Package fixture loads styled documents from YAML files.

A fixture is a serialization of resource dictionaries and a node tree, used
by tests and by the command line tool. It is not a stylesheet language.

    attached: [size]       # properties settable on every node
    global:
      Accent: red
    root:
      kind: body
      resources:
        Size: 14pt
        big:                 # a nested mapping is a class group
          font-size: $Size   # a static reference
        emphasis: ~          # a bare class reference
        ~merged:             # merged dictionaries, searched after own entries
          - quiet:
              color: gray
      children:
        - kind: p
          class: big
          expect:
            font-size: 14pt

Mapping order is preserved, as dictionaries are ordered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/resource"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'cascade.fixture'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.fixture")
}

// ErrFormat is wrapped by all errors concerning the structure of a fixture.
var ErrFormat = errors.New("fixture: invalid format")

// MergedKey is the dictionary key introducing a list of merged dictionaries.
// The leading tilde keeps it apart from class keys, so "merged" remains
// usable as a class key.
const MergedKey = "~merged"

// Fixture is a loaded fixture file.
type Fixture struct {
	Global   *resource.Dictionary // may be nil
	Attached []string             // properties attached to every node
	Root     *Node
}

// Node describes a node of a fixture's node tree.
type Node struct {
	Kind      string
	Class     string
	Resources *resource.Dictionary // may be nil
	Expect    map[string]style.Property
	Children  []*Node
	Line      int       // line in the fixture file
	node      *dom.Node // set by Document
}

// Load reads a fixture from r.
func Load(r io.Reader) (*Fixture, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty fixture", ErrFormat)
		}
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	top := &doc
	if top.Kind == yaml.DocumentNode && len(top.Content) > 0 {
		top = top.Content[0]
	}
	if top.Kind != yaml.MappingNode {
		return nil, formatError(top, "fixture must be a mapping")
	}
	f := &Fixture{}
	err := eachPair(top, func(k string, v *yaml.Node) (err error) {
		switch k {
		case "global":
			f.Global, err = dictionary("global", v)
		case "root":
			f.Root, err = node(v)
		case "attached":
			if err = resolve(v).Decode(&f.Attached); err != nil {
				err = formatError(v, "attached must be a list of property names: %v", err)
			}
		default:
			err = formatError(v, "unknown top-level key %q", k)
		}
		return
	})
	if err != nil {
		return nil, err
	}
	if f.Root == nil {
		return nil, formatError(top, "fixture has no root node")
	}
	tracer().Debugf("fixture loaded")
	return f, nil
}

// LoadFile reads a fixture from a file.
func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}

func node(y *yaml.Node) (*Node, error) {
	y = resolve(y)
	if y.Kind != yaml.MappingNode {
		return nil, formatError(y, "node must be a mapping")
	}
	n := &Node{Line: y.Line}
	err := eachPair(y, func(k string, v *yaml.Node) (err error) {
		switch k {
		case "kind":
			n.Kind, err = scalar(v)
		case "class":
			n.Class, err = scalar(v)
		case "resources":
			n.Resources, err = dictionary(n.Kind, v)
		case "expect":
			n.Expect, err = expectations(v)
		case "children":
			v = resolve(v)
			if v.Kind != yaml.SequenceNode {
				return formatError(v, "children must be a list")
			}
			for _, c := range v.Content {
				ch, err := node(c)
				if err != nil {
					return err
				}
				n.Children = append(n.Children, ch)
			}
		default:
			err = formatError(v, "unknown node key %q", k)
		}
		return
	})
	if err != nil {
		return nil, err
	}
	if n.Kind == "" {
		return nil, formatError(y, "node without kind")
	}
	return n, nil
}

// dictionary converts a YAML mapping into a resource dictionary, keeping the
// order of entries.
func dictionary(name string, y *yaml.Node) (*resource.Dictionary, error) {
	y = resolve(y)
	if y.Kind == yaml.ScalarNode && y.Tag == "!!null" {
		return nil, nil
	}
	if y.Kind != yaml.MappingNode {
		return nil, formatError(y, "resources of %q must be a mapping", name)
	}
	d := resource.NewDictionary(name)
	err := eachPair(y, func(k string, v *yaml.Node) error {
		if k == MergedKey {
			return merged(d, v)
		}
		value, err := resourceValue(k, v)
		if err != nil {
			return err
		}
		d.Set(k, value)
		return nil
	})
	return d, err
}

func merged(d *resource.Dictionary, y *yaml.Node) error {
	y = resolve(y)
	if y.Kind != yaml.SequenceNode {
		return formatError(y, "%s of %q must be a list", MergedKey, d.Name())
	}
	for i, item := range y.Content {
		m, err := dictionary(fmt.Sprintf("%s/%s#%d", d.Name(), MergedKey, i), item)
		if err != nil {
			return err
		}
		d.Merge(m)
	}
	return nil
}

func resourceValue(key string, y *yaml.Node) (any, error) {
	y = resolve(y)
	switch y.Kind {
	case yaml.MappingNode:
		return dictionary(key, y)
	case yaml.ScalarNode:
		if y.Tag == "!!null" {
			return resource.ClassRef{}, nil
		}
	}
	var value any
	if err := y.Decode(&value); err != nil {
		return nil, formatError(y, "cannot decode value of %q: %v", key, err)
	}
	return value, nil
}

func expectations(y *yaml.Node) (map[string]style.Property, error) {
	expect := make(map[string]style.Property)
	err := eachPair(resolve(y), func(k string, v *yaml.Node) error {
		var value any
		if err := v.Decode(&value); err != nil {
			return formatError(v, "cannot decode expectation for %q: %v", k, err)
		}
		expect[k] = style.ValueOf(value)
		return nil
	})
	return expect, err
}

func scalar(y *yaml.Node) (string, error) {
	y = resolve(y)
	if y.Kind != yaml.ScalarNode {
		return "", formatError(y, "expected a scalar value")
	}
	return y.Value, nil
}

// eachPair iterates over the key/value pairs of a mapping node in order.
func eachPair(y *yaml.Node, f func(key string, value *yaml.Node) error) error {
	if y.Kind != yaml.MappingNode {
		return formatError(y, "expected a mapping")
	}
	for i := 0; i+1 < len(y.Content); i += 2 {
		if err := f(y.Content[i].Value, y.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// resolve follows YAML aliases.
func resolve(y *yaml.Node) *yaml.Node {
	for y.Kind == yaml.AliasNode && y.Alias != nil {
		y = y.Alias
	}
	return y
}

func formatError(y *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrFormat, y.Line, fmt.Sprintf(format, args...))
}

// --- Documents -------------------------------------------------------------

// Document builds a styled document from the fixture's node tree. Class
// lists are stored, but not applied; call Restyle on the document.
// The fixture's global dictionary is installed into env (a new
// environment, if env is nil), as are attached properties.
func (f *Fixture) Document(env *dom.Environment, opts ...cascade.Option) (*dom.Document, error) {
	if env == nil {
		env = dom.NewEnvironment(nil)
	}
	if f.Global != nil {
		env.WithGlobal(f.Global)
	}
	env.Attach("", f.Attached...)
	return dom.NewDocument(f.Root.build(), env, opts...)
}

func (n *Node) build() *dom.Node {
	n.node = dom.NewNode(n.Kind).WithClass(n.Class)
	if n.Resources != nil {
		n.node.SetResources(n.Resources)
	}
	for _, ch := range n.Children {
		n.node.Append(ch.build())
	}
	return n.node
}

// DOMNode returns the document node built for a fixture node, or nil if no
// document has been built yet.
func (n *Node) DOMNode() *dom.Node {
	return n.node
}

// Mismatch is an expectation not met by a styled document.
type Mismatch struct {
	Path     string // path of node kinds from the root
	Line     int
	Property string
	Expected style.Property
	Actual   style.Property
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s (line %d): expected %s = %q, is %q",
		m.Path, m.Line, m.Property, m.Expected, m.Actual)
}

// Verify compares the expectations of all nodes with the computed
// properties of the most recently built document.
func (f *Fixture) Verify() []Mismatch {
	var mismatches []Mismatch
	f.Root.verify(f.Root.Kind, &mismatches)
	return mismatches
}

func (n *Node) verify(path string, mismatches *[]Mismatch) {
	if n.node != nil && len(n.Expect) > 0 {
		keys := make([]string, 0, len(n.Expect))
		for k := range n.Expect {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if actual := n.node.ComputedProperty(k); actual != n.Expect[k] {
				*mismatches = append(*mismatches, Mismatch{
					Path:     path,
					Line:     n.Line,
					Property: k,
					Expected: n.Expect[k],
					Actual:   actual,
				})
			}
		}
	}
	for i, ch := range n.Children {
		ch.verify(fmt.Sprintf("%s/%s[%d]", path, ch.Kind, i), mismatches)
	}
}
