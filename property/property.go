/*
Package property describes which properties of a node may be assigned.

Nodes are opaque to the styling engine. The engine needs to know, for a
given node, the names of its settable properties and how to set them.
Instead of discovering them via reflection, nodes describe themselves:
either a node implements Describable, or its kind has been registered with
a Registry. Registries also hold attached properties, i.e. properties which
are not declared by a node kind but contributed by some framework-level
mechanism for every node (or for every node of a kind).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package property

import (
	"sort"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.property'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.property")
}

// Accessor sets a single property of a node.
type Accessor interface {
	Name() string        // the property name, e.g. "color"
	Set(value any) error // assign a value
}

// Func wraps a setter function into an Accessor.
func Func(name string, set func(any) error) Accessor {
	return funcAccessor{name: name, set: set}
}

type funcAccessor struct {
	name string
	set  func(any) error
}

func (a funcAccessor) Name() string        { return a.name }
func (a funcAccessor) Set(value any) error { return a.set(value) }

// Index maps property names to accessors. nil is a legal (empty) index.
type Index map[string]Accessor

// Has is a predicate wether a property with name exists.
func (ix Index) Has(name string) bool {
	_, ok := ix[name]
	return ok
}

// Names returns the property names in alphabetical order.
func (ix Index) Names() []string {
	names := make([]string, 0, len(ix))
	for n := range ix {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Add inserts accessors into the index, replacing existing ones with the
// same name.
func (ix Index) Add(accessors ...Accessor) Index {
	if ix == nil {
		ix = make(Index, len(accessors))
	}
	for _, a := range accessors {
		if a != nil {
			ix[a.Name()] = a
		}
	}
	return ix
}

// Describable is implemented by nodes which know their settable properties.
type Describable interface {
	SettableProperties() Index
}

// Kinded is implemented by nodes with a kind, e.g. an element tag or a
// widget class. Registries use the kind to find property tables.
type Kinded interface {
	Kind() string
}

// Provider produces the accessors of a node of a registered kind.
type Provider func(node any) []Accessor

// Registry maps node kinds to property tables and holds attached
// properties. A Registry is safe for concurrent use; registration usually
// happens at startup.
type Registry struct {
	mx       sync.RWMutex
	kinds    map[string][]Provider
	attached map[string][]Provider // key "" means: every kind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds:    make(map[string][]Provider),
		attached: make(map[string][]Provider),
	}
}

// Register adds a property table for nodes of a kind.
func (r *Registry) Register(kind string, p Provider) {
	if p == nil {
		return
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	r.kinds[kind] = append(r.kinds[kind], p)
}

// Attach adds attached properties for nodes of a kind. An empty kind
// attaches the properties to every node.
func (r *Registry) Attach(kind string, p Provider) {
	if p == nil {
		return
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	r.attached[kind] = append(r.attached[kind], p)
}

// IndexOf returns the settable properties of a node. Accessors are merged
// in the following order, later ones replacing earlier ones of the same
// name:
//
//     attached properties for every kind
//     attached properties for the node's kind
//     registered property tables for the node's kind
//     properties the node describes itself
//
// Nodes without any settable property produce an empty index.
// IndexOf has no side effects on the node.
func (r *Registry) IndexOf(node any) Index {
	ix := Index{}
	if node == nil {
		return ix
	}
	var kind string
	if k, ok := node.(Kinded); ok {
		kind = k.Kind()
	}
	if r != nil {
		r.mx.RLock()
		providers := append([]Provider{}, r.attached[""]...)
		if kind != "" {
			providers = append(providers, r.attached[kind]...)
			providers = append(providers, r.kinds[kind]...)
		}
		r.mx.RUnlock()
		for _, p := range providers {
			ix.Add(p(node)...)
		}
	}
	if d, ok := node.(Describable); ok {
		for name, a := range d.SettableProperties() {
			ix[name] = a
		}
	}
	tracer().Debugf("property index for %v-node has %d entries", kind, len(ix))
	return ix
}
