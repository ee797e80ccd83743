/*
Package dom provides a styled document tree as a reference environment for
the cascade engine.

Overview

A document is a tree of nodes. Each node has a kind (usually an HTML element
name), an optional local resource dictionary and a class list. Setting the
class list of a node through its document resolves the class keys against
the resource dictionaries from the node up to the root, and writes the
winning values into the node's property map.

    root := dom.NewNode("body")
    root.SetResources(resource.NewDictionary("body").
        Set("warning", resource.NewDictionary("warning").Set("color", "red")))
    p := dom.NewNode("p")
    root.Append(p)
    doc, _ := dom.NewDocument(root, nil)
    doc.SetClass(p, "warning")
    p.ComputedProperty("color") // => "red"

Tree Implementation

We implement the document tree on top of a general purpose tree type
(package tree), which offers concurrent operations to manipluate
tree nodes.

In a fully object oriented programming language we would subclass this
tree type for every type of tree in use, but in Go we resort to
composition, thus including a generic tree node in every node (sub-)type.
The downside of this approach is that we will have to provide an adapter
to return the sub-type from the generic type (see NodeOf).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.dom'
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
