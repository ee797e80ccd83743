package dom

import (
	"errors"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/tree"
)

// ErrNoRoot is returned when creating a document without a root node.
var ErrNoRoot = errors.New("dom: document needs a root node")

// Document is a tree of nodes styled by a cascade engine.
type Document struct {
	root   *Node
	env    *Environment
	engine *cascade.Engine[*Node]
}

// NewDocument creates a document for a root node. If env is nil, a new
// environment with an empty registry is used. Options are handed to the
// cascade engine.
func NewDocument(root *Node, env *Environment, opts ...cascade.Option) (*Document, error) {
	if root == nil {
		return nil, ErrNoRoot
	}
	if env == nil {
		env = NewEnvironment(nil)
	}
	engine, err := cascade.New[*Node](env, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{root: root, env: env, engine: engine}, nil
}

// Root returns the root node of a document.
func (doc *Document) Root() *Node {
	return doc.root
}

// Environment returns the environment of a document.
func (doc *Document) Environment() *Environment {
	return doc.env
}

// Engine returns the cascade engine styling the document.
func (doc *Document) Engine() *cascade.Engine[*Node] {
	return doc.engine
}

// SetClass sets the class list of a node and notifies the engine, which
// will resolve the new class list and apply it to the node.
// Values applied for a previous class list are not reset.
func (doc *Document) SetClass(n *Node, classes string) error {
	old := n.setClass(classes)
	return doc.engine.Handle(cascade.ClassListChanged[*Node]{
		Node: n,
		Old:  old,
		New:  classes,
	})
}

// Restyle resolves and applies the class lists of all nodes, top-down.
// If applying fails for a node, its subtree is skipped; all errors are
// returned joined.
func (doc *Document) Restyle() error {
	return tree.TopDown(&doc.root.Node, func(tn *tree.Node[*Node], depth int) error {
		n := NodeOf(tn)
		tracer().Debugf("restyle %s at depth %d", n, depth)
		return doc.engine.OnClassListChanged(n, n.Class())
	})
}

// Walk calls f for every node of the document, top-down.
func (doc *Document) Walk(f func(n *Node, depth int) error) error {
	return tree.TopDown(&doc.root.Node, func(tn *tree.Node[*Node], depth int) error {
		return f(NodeOf(tn), depth)
	})
}
