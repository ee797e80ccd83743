/*
Package domdbg implements helpers to debug styled documents.

Trees, resource chains and stylings may be printed as text trees, which is
convenient for test logs, or a document may be output in GraphViz (DOT)
format.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/resource"
	tp "github.com/xlab/treeprint"
)

// PrintTree renders a document as a text tree. Every node lists the style
// properties applied to it.
func PrintTree(doc *dom.Document) string {
	p := tp.New()
	printNode(p, doc.Root())
	return "\nDocument\n" + p.String()
}

func printNode(p tp.Tree, n *dom.Node) {
	branch := p.AddBranch(n.String())
	for _, kv := range n.Styles().Properties() {
		branch.AddNode(fmt.Sprintf("%s: %s", kv.Key, kv.Value))
	}
	for _, ch := range n.ChildNodes() {
		printNode(branch, ch)
	}
}

// PrintChain renders a resource chain as a text tree, with one branch per
// dictionary, in lookup order.
func PrintChain(chain resource.Chain) string {
	p := tp.New()
	for i, d := range chain {
		printDictionary(p.AddBranch(fmt.Sprintf("#%d %s", i, d.Name())), d)
	}
	return fmt.Sprintf("\nChain(length=%d)\n", chain.Len()) + p.String()
}

func printDictionary(p tp.Tree, d *resource.Dictionary) {
	d.Each(func(key string, value any) bool {
		if nested, ok := value.(*resource.Dictionary); ok {
			printDictionary(p.AddBranch(key+" (group)"), nested)
			return true
		}
		p.AddNode(fmt.Sprintf("%s = %v", key, value))
		return true
	})
	for _, m := range d.Merged() {
		printDictionary(p.AddBranch("merged "+m.Name()), m)
	}
}

// PrintStyling renders the entries of a styling in application order.
func PrintStyling(s *cascade.Styling) string {
	p := tp.New()
	for _, e := range s.Entries() {
		p.AddNode(fmt.Sprintf("%s := %v", e.Property, e.Value))
	}
	return fmt.Sprintf("\nStyling(%d)\n", s.Len()) + p.String()
}
