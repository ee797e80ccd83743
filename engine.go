package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"strings"

	"github.com/npillmayer/cascade/property"
	"github.com/npillmayer/cascade/resource"
)

// ErrNoEnvironment is returned by New if it is called without an environment.
var ErrNoEnvironment = errors.New("cascade: engine needs an environment")

// Environment connects the engine to a tree of nodes of type N.
// The engine reads the tree through it and never creates or destroys nodes.
//
// Parent, LocalResources and GlobalResources are used to build the resource
// chain for a node (see resource.BuildChain). Properties returns the
// settable properties of a node; the accessors of this index are the only
// way the engine modifies a node.
type Environment[N any] interface {
	resource.Walker[N]
	Properties(node N) property.Index
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	sink  DiagnosticSink
	order resource.Order
}

// WithDiagnostics sets a sink for diagnostics. Without a sink, diagnostics
// are traced only.
func WithDiagnostics(sink DiagnosticSink) Option {
	return func(c *config) {
		c.sink = sink
	}
}

// WithChainOrder sets the order of locally collected resource dictionaries.
// Default is resource.NearestFirst.
func WithChainOrder(order resource.Order) Option {
	return func(c *config) {
		c.order = order
	}
}

// Engine resolves class lists of nodes of type N.
// An engine keeps no state between calls and may be used concurrently for
// different nodes.
type Engine[N any] struct {
	env Environment[N]
	cfg config
}

// New creates an engine for an environment.
func New[N any](env Environment[N], opts ...Option) (*Engine[N], error) {
	if env == nil {
		return nil, ErrNoEnvironment
	}
	e := &Engine[N]{env: env}
	for _, opt := range opts {
		if opt != nil {
			opt(&e.cfg)
		}
	}
	return e, nil
}

// Parse splits a class list string into class keys. Empty or whitespace-only
// input results in no class keys.
func Parse(classes string) []string {
	return strings.Fields(classes)
}

// ClassListChanged is the notification an environment sends when the class
// list of a node changes. Old is empty when a node gets its first class
// list.
type ClassListChanged[N any] struct {
	Node N
	Old  string
	New  string
}

// Handle processes a change notification; see OnClassListChanged.
func (e *Engine[N]) Handle(ev ClassListChanged[N]) error {
	tracer().Debugf("class list changed from %q to %q", ev.Old, ev.New)
	return e.OnClassListChanged(ev.Node, ev.New)
}

// OnClassListChanged resolves a new class list for node and applies the
// result. An empty class list does nothing.
//
// Errors are returned only if setting a property fails; see Apply.
func (e *Engine[N]) OnClassListChanged(node N, classes string) error {
	keys := Parse(classes)
	if len(keys) == 0 {
		return nil
	}
	return Apply(e.Resolve(node, keys))
}

// Resolve computes the property assignments for a list of class keys,
// without applying them. Class keys are processed in order, and for every
// property the last assignment wins.
func (e *Engine[N]) Resolve(node N, classes []string) *Styling {
	styling := newStyling()
	if len(classes) == 0 {
		return styling
	}
	r := &resolution{
		chain:   resource.BuildChain[N](node, e.env, e.cfg.order),
		index:   e.env.Properties(node),
		styling: styling,
		active:  make(map[string]bool),
		sink:    e.cfg.sink,
	}
	for _, key := range classes {
		r.expanded = make(map[*resource.Dictionary]bool)
		r.expand(key)
	}
	tracer().Debugf("resolved %d class keys to %d properties", len(classes), styling.Len())
	return styling
}

// --- Resolution ------------------------------------------------------------

// resolution holds the state of a single call to Resolve.
type resolution struct {
	chain    resource.Chain
	index    property.Index
	styling  *Styling
	active   map[string]bool               // class keys currently being expanded
	expanded map[*resource.Dictionary]bool // dictionaries expanded for the current top-level key
	sink     DiagnosticSink
}

func (r *resolution) expand(key string) {
	value, found := r.chain.Lookup(key)
	if !found {
		tracer().Debugf("class key %q not found, skipped", key)
		return
	}
	r.expandValue(key, value)
}

// expandValue handles the resource value found for a class key.
// Group entries are expanded while scanning the dictionary, property
// assignments of the dictionary itself are written afterwards and will
// therefore override values from its groups.
// A dictionary is expanded at most once per top-level class key; further
// references to it from groups are skipped.
func (r *resolution) expandValue(key string, value any) {
	if r.active[key] {
		r.diagnose(Diagnostic{Kind: CyclicGroup, ClassKey: key, Key: key})
		return
	}
	dict, isDict := value.(*resource.Dictionary)
	if !isDict {
		if resource.IsGroup(value) { // a bare class reference carries nothing
			return
		}
		dict = resource.NewDictionary(key).Set(key, value)
	} else if r.expanded[dict] {
		tracer().Debugf("class key %q already expanded, skipped", key)
		return
	}
	r.expanded[dict] = true
	r.active[key] = true
	defer delete(r.active, key)
	var leaves []string
	dict.Each(func(k string, v any) bool {
		if r.index.Has(k) {
			leaves = append(leaves, k)
		} else if resource.IsGroup(v) {
			r.expandGroup(key, k, v)
		}
		return true
	})
	for _, prop := range leaves {
		raw, _ := dict.Own(prop)
		payload := raw
		if ref, ok := resource.StaticReference(raw); ok {
			target, found := r.chain.Lookup(ref)
			if !found {
				r.diagnose(Diagnostic{
					Kind:     UnresolvedStaticReference,
					ClassKey: key,
					Property: prop,
					Key:      ref,
				})
				continue
			}
			payload = target
		}
		r.styling.set(prop, r.index[prop], payload)
	}
}

// expandGroup expands every class key named by a group entry. A key is
// looked up in the chain; if it is the only key of the entry and the chain
// does not know it, a dictionary value of the entry is used directly.
func (r *resolution) expandGroup(owner string, groupKey string, value any) {
	subkeys := strings.Fields(groupKey)
	for _, sub := range subkeys {
		if v, found := r.chain.Lookup(sub); found {
			r.expandValue(sub, v)
			continue
		}
		if nested, ok := value.(*resource.Dictionary); ok && len(subkeys) == 1 {
			r.expandValue(sub, nested)
			continue
		}
		tracer().Debugf("group %q of class %q: class key %q not found, skipped", groupKey, owner, sub)
	}
}

func (r *resolution) diagnose(d Diagnostic) {
	tracer().Infof("%s", d)
	if r.sink != nil {
		r.sink(d)
	}
}
