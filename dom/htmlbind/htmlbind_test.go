package htmlbind

import (
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/resource"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func find(doc *dom.Document, kind string) *dom.Node {
	var found *dom.Node
	doc.Walk(func(n *dom.Node, depth int) error {
		if found == nil && n.Kind() == kind {
			found = n
		}
		return nil
	})
	return found
}

func TestBindHTMLFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	f, err := os.Open("testdata/note.html")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	main := resource.NewDictionary("main").
		Set("note", resource.NewDictionary("note").Set("color", "red")).
		Set("strong", resource.NewDictionary("strong").Set("font-weight", "bold"))
	b := Binding{Resources: ByID(map[string]*resource.Dictionary{"main": main})}
	doc, err := b.Parse(f)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Root().Kind() != DocumentKind {
		t.Errorf("expected root to be of kind %s, is %s", DocumentKind, doc.Root().Kind())
	}
	if err = doc.Restyle(); err != nil {
		t.Fatal(err)
	}
	span := find(doc, "span")
	if span == nil {
		t.Fatal("expected document to contain a span")
	}
	if span.Class() != "note strong" {
		t.Errorf("expected span to have class 'note strong', has %q", span.Class())
	}
	if c := span.ComputedProperty("color"); c != "red" {
		t.Errorf("expected span to be red, is %q", c)
	}
	if w := span.ComputedProperty("font-weight"); w != "bold" {
		t.Errorf("expected span to be bold, is %q", w)
	}
	if div := find(doc, "div"); div.ComputedProperty("font-weight") != "normal" {
		t.Errorf("expected div to keep default font-weight, is %q", div.ComputedProperty("font-weight"))
	}
	p := find(doc, "p")
	if p.Styles().Size() != 0 {
		t.Errorf("expected unknown class to leave p unstyled, has %s", p.Styles())
	}
	if p.ComputedProperty("display") != style.DisplayPropertyFor("p") {
		t.Errorf("expected p to have default display")
	}
}

func TestBindElement(t *testing.T) {
	h := &html.Node{Type: html.ElementNode, Data: "div",
		Attr: []html.Attribute{{Key: "CLASS", Val: "a b"}}}
	h.AppendChild(&html.Node{Type: html.TextNode, Data: "text"})
	h.AppendChild(&html.Node{Type: html.ElementNode, Data: "span"})
	doc, err := FromHTML(h)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Root()
	if root.Kind() != "div" || root.Class() != "a b" {
		t.Errorf("expected root to be div with class 'a b', is %s", root)
	}
	if len(root.ChildNodes()) != 1 {
		t.Errorf("expected text node to be skipped, root has %d children", len(root.ChildNodes()))
	}
}

func TestBindNothing(t *testing.T) {
	if _, err := FromHTML(nil); err != ErrNoElements {
		t.Errorf("expected ErrNoElements for nil tree, got %v", err)
	}
	text := &html.Node{Type: html.TextNode, Data: "x"}
	if _, err := FromHTML(text); err != ErrNoElements {
		t.Errorf("expected ErrNoElements for text node, got %v", err)
	}
	if _, err := Parse(strings.NewReader("")); err != nil {
		// html.Parse always creates html, head and body
		t.Errorf("expected empty input to produce a document, got %v", err)
	}
}
