package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/property"
	"github.com/npillmayer/cascade/resource"
	"github.com/npillmayer/cascade/tree"
)

// Node is a styled document node, the building block of a document.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	kind             string
	mx               sync.RWMutex // guards class, resources and styles
	class            string
	resources        *resource.Dictionary
	styles           *style.PropertyMap
}

// NewNode creates a new node of a kind, e.g. "div".
func NewNode(kind string) *Node {
	n := &Node{kind: kind, styles: style.NewPropertyMap()}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NodeOf gets the document node from a generic tree node.
func NodeOf(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

func (n *Node) String() string {
	if n == nil {
		return "<nil node>"
	}
	if c := n.Class(); c != "" {
		return fmt.Sprintf("<%s class=%q>", n.kind, c)
	}
	return fmt.Sprintf("<%s>", n.kind)
}

// Kind returns the kind of a node. Part of interface property.Kinded.
func (n *Node) Kind() string {
	return n.kind
}

// Append adds children to a node and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	for _, ch := range children {
		if ch != nil {
			n.AddChild(&ch.Node)
		}
	}
	return n
}

// ParentNode returns the parent of a node or nil for the root.
func (n *Node) ParentNode() *Node {
	if n == nil {
		return nil
	}
	return NodeOf(n.Parent())
}

// ChildNodes returns the children of a node.
func (n *Node) ChildNodes() []*Node {
	children := n.Children()
	r := make([]*Node, len(children))
	for i, ch := range children {
		r[i] = ch.Payload
	}
	return r
}

// Class returns the class list string of a node.
func (n *Node) Class() string {
	n.mx.RLock()
	defer n.mx.RUnlock()
	return n.class
}

// WithClass sets the class list of a node without styling it, e.g. while
// building a tree. Use Document.SetClass to have the class list applied,
// or Document.Restyle for a whole tree.
func (n *Node) WithClass(classes string) *Node {
	n.setClass(classes)
	return n
}

// setClass stores a new class list and returns the previous one.
func (n *Node) setClass(classes string) string {
	n.mx.Lock()
	defer n.mx.Unlock()
	old := n.class
	n.class = classes
	return old
}

// Resources returns the local resource dictionary of a node, which may be nil.
func (n *Node) Resources() *resource.Dictionary {
	if n == nil {
		return nil
	}
	n.mx.RLock()
	defer n.mx.RUnlock()
	return n.resources
}

// SetResources sets the local resource dictionary of a node.
// It returns the node to allow for chaining.
func (n *Node) SetResources(d *resource.Dictionary) *Node {
	n.mx.Lock()
	defer n.mx.Unlock()
	n.resources = d
	return n
}

// Styles returns the property map holding the values applied to a node.
func (n *Node) Styles() *style.PropertyMap {
	n.mx.RLock()
	defer n.mx.RUnlock()
	return n.styles
}

// SetStyle sets a single style property.
func (n *Node) SetStyle(key string, value style.Property) {
	n.mx.Lock()
	defer n.mx.Unlock()
	n.styles.Set(key, value)
}

// ComputedProperty returns the value of a style property for a node.
// If a value has been applied to the node, it is returned. A value of
// "inherit" cascades to the parent node, a value of "initial" and missing
// values result in the user-agent default for the kind of the node.
// Properties are never inherited implicitly.
func (n *Node) ComputedProperty(key string) style.Property {
	n.mx.RLock()
	p, ok := n.styles.Property(key)
	n.mx.RUnlock()
	switch {
	case ok && p.IsInherit():
		if parent := n.ParentNode(); parent != nil {
			return parent.ComputedProperty(key)
		}
	case ok && !p.IsInitial():
		return p
	}
	return style.DefaultProperty(n.kind, key)
}

// SettableProperties returns an accessor for every known style property,
// including shortcut properties like "padding".
// Part of interface property.Describable.
func (n *Node) SettableProperties() property.Index {
	keys := style.KnownProperties()
	compounds := style.CompoundProperties()
	ix := make(property.Index, len(keys)+len(compounds))
	for _, key := range keys {
		ix[key] = n.accessor(key)
	}
	for _, key := range compounds {
		ix[key] = n.compoundAccessor(key)
	}
	return ix
}

// accessor creates an accessor writing style property key.
func (n *Node) accessor(key string) property.Accessor {
	return property.Func(key, func(v any) error {
		n.SetStyle(key, style.ValueOf(v))
		return nil
	})
}

// compoundAccessor creates an accessor for a shortcut property, which
// writes the individual properties.
func (n *Node) compoundAccessor(key string) property.Accessor {
	return property.Func(key, func(v any) error {
		kvs, err := style.SplitCompoundProperty(key, style.ValueOf(v))
		if err != nil {
			return err
		}
		for _, kv := range kvs {
			n.SetStyle(kv.Key, kv.Value)
		}
		return nil
	})
}

var _ property.Describable = (*Node)(nil)
var _ property.Kinded = (*Node)(nil)
