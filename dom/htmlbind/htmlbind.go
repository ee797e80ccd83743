/*
Package htmlbind builds styled documents from HTML parse trees.

Every element of an HTML document becomes a document node with the element's
tag as its kind and the value of its `class` attribute as its class list.
Text, comments and other non-element nodes are skipped.

    doc, err := htmlbind.Parse(strings.NewReader(`<p class="note">…</p>`))
    …
    err = doc.Restyle()

HTML carries no resource dictionaries. Clients may attach them to nodes
with a Binding, usually keyed by an element's id.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlbind

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/resource"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer will return a tracer. We are tracing to 'cascade.dom'
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}

// ErrNoElements is returned if an HTML tree does not contain any element.
var ErrNoElements = errors.New("htmlbind: HTML tree contains no elements")

// DocumentKind is the kind of the root node created for an HTML document node.
const DocumentKind = "#document"

// Binding configures how an HTML tree is bound to a document.
// The zero value is ready to use.
type Binding struct {
	Env       *dom.Environment                        // environment for the document; may be nil
	Resources func(h *html.Node) *resource.Dictionary // local resources for an element; may be nil
	Options   []cascade.Option                        // options for the cascade engine
}

// FromHTML builds a document from an HTML tree with a default binding.
func FromHTML(h *html.Node) (*dom.Document, error) {
	return Binding{}.FromHTML(h)
}

// Parse parses HTML from r and builds a document with a default binding.
func Parse(r io.Reader) (*dom.Document, error) {
	return Binding{}.Parse(r)
}

// Parse parses HTML from r and builds a document from it.
func (b Binding) Parse(r io.Reader) (*dom.Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmlbind: cannot parse HTML: %w", err)
	}
	return b.FromHTML(h)
}

// FromHTML builds a document from an HTML tree. h may be a document node
// or an element node. Class lists are stored but not yet applied; call
// Restyle on the document to style it.
func (b Binding) FromHTML(h *html.Node) (*dom.Document, error) {
	if h == nil {
		return nil, ErrNoElements
	}
	var root *dom.Node
	switch h.Type {
	case html.DocumentNode:
		root = dom.NewNode(DocumentKind)
		b.bindChildren(root, h)
	case html.ElementNode:
		root = b.bind(h)
	default:
		return nil, ErrNoElements
	}
	if root.Kind() == DocumentKind && len(root.ChildNodes()) == 0 {
		return nil, ErrNoElements
	}
	tracer().Debugf("bound HTML tree to document with root %s", root)
	return dom.NewDocument(root, b.Env, b.Options...)
}

func (b Binding) bind(h *html.Node) *dom.Node {
	n := dom.NewNode(h.Data)
	if classes, ok := Attr(h, "class"); ok {
		n.WithClass(classes)
	}
	if b.Resources != nil {
		if d := b.Resources(h); d != nil {
			n.SetResources(d)
		}
	}
	b.bindChildren(n, h)
	return n
}

func (b Binding) bindChildren(n *dom.Node, h *html.Node) {
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n.Append(b.bind(c))
		}
	}
}

// Attr returns the value of an attribute of an HTML node.
// Attribute keys are compared case-insensitively.
func Attr(h *html.Node, key string) (string, bool) {
	for _, a := range h.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// ByID returns a resource function which selects dictionaries by an
// element's id attribute.
func ByID(dicts map[string]*resource.Dictionary) func(*html.Node) *resource.Dictionary {
	return func(h *html.Node) *resource.Dictionary {
		if id, ok := Attr(h, "id"); ok {
			return dicts[id]
		}
		return nil
	}
}
