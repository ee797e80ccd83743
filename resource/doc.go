/*
Package resource implements keyed resource dictionaries and the chain of
dictionaries a class key is resolved against.

Overview

A Dictionary is an ordered mapping from string keys to arbitrary values.
Values may be nested dictionaries, which are called groups. A dictionary
may reference any number of merged dictionaries, which are searched after
its own entries, in the order they have been merged.

Nodes of a styled tree may carry a local dictionary. Starting at a node
and walking up to the root, every non-empty local dictionary is collected
into a Chain. The process-wide global dictionary always terminates the
chain. Lookups scan the chain front to back and return the first match:

    chain := resource.BuildChain(node, walker, resource.NearestFirst)
    v, ok := chain.Lookup("accent")

Chains are cheap to build and must not be cached: a node may move in the
tree and dictionaries may change between two resolutions.

Static References

A string value of the form "$key" is a static reference. It tells the
resolver to look up "key" in the chain instead of using the literal.
StaticReference recognizes such values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resource

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.resource'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.resource")
}
