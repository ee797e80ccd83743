/*
Package cascade resolves class keys of a node into property assignments.

Status

This is a first draft. The API may change without notice.

Overview

Every node of a tree may declare a list of class keys, e.g.

    class = "button primary large"

Each class key names an entry in a chain of resource dictionaries (see
package resource). The chain starts with the node's own dictionary,
continues with the dictionaries of its ancestors and ends with the global
dictionary. An entry may either be a single value, in which case the class
key itself has to be a property name, or a dictionary. Keys of such a
dictionary which match a settable property of the node (see package
property) are property assignments; keys with a group value name further
class keys, which are resolved recursively.

Assignments are collected in declaration order and the last write for a
property wins: a later class key overrides an earlier one. A value of the
form "$key" is a static reference and is replaced by the value found for
"key" in the chain (exactly one level of indirection).

The engine never modifies resource dictionaries, and it keeps no state
between two resolutions. Environments connect it to their own tree by
implementing Environment and by calling OnClassListChanged whenever the
class list of a node changes.

    engine, err := cascade.New[*dom.Node](env)
    …
    err = engine.OnClassListChanged(node, "button primary")

Unresolvable class keys and keys matching neither a property nor a group
are silently skipped. Static references which cannot be resolved are
reported to an optional DiagnosticSink and the affected property is left
untouched.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.engine'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.engine")
}
