/*
Package tree implements an all-purpose tree type.

Nodes carry a payload of a type parameter and know their parent, which is
all a styling engine needs to walk up to the root. Children are managed
in a concurrency-safe way, so trees may be built from several goroutines.

Walks are synchronous:

    err := tree.TopDown(root, func(n *tree.Node[*MyNode], depth int) error {
        …
    })

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.tree")
}
