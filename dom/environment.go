package dom

import (
	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/property"
	"github.com/npillmayer/cascade/resource"
)

// Environment connects documents to the cascade engine. It implements
// cascade.Environment for document nodes.
//
// Settable properties of a node are determined by a property registry:
// the known style properties every node declares, plus properties attached
// with Attach.
type Environment struct {
	registry *property.Registry
	global   *resource.Dictionary // if nil, resource.Global() is used
}

// NewEnvironment creates an environment. If reg is nil, a new registry is
// created.
func NewEnvironment(reg *property.Registry) *Environment {
	if reg == nil {
		reg = property.NewRegistry()
	}
	return &Environment{registry: reg}
}

// WithGlobal sets a global dictionary for this environment, overriding the
// process-wide one. It returns the environment to allow for chaining.
func (env *Environment) WithGlobal(d *resource.Dictionary) *Environment {
	env.global = d
	return env
}

// Registry returns the property registry of the environment.
func (env *Environment) Registry() *property.Registry {
	return env.registry
}

// Attach makes properties settable for nodes of a kind (or for every node,
// if kind is empty). Values of attached properties are stored in the style
// property map of a node; properties which are not standard style
// properties end up in property group "X".
func (env *Environment) Attach(kind string, names ...string) {
	if len(names) == 0 {
		return
	}
	names = append([]string{}, names...)
	env.registry.Attach(kind, func(node any) []property.Accessor {
		n, ok := node.(*Node)
		if !ok {
			return nil
		}
		acc := make([]property.Accessor, len(names))
		for i, name := range names {
			acc[i] = n.accessor(name)
		}
		return acc
	})
	tracer().Debugf("attached properties %v to kind %q", names, kind)
}

// Parent is part of interface resource.Walker.
func (env *Environment) Parent(n *Node) (*Node, bool) {
	p := n.ParentNode()
	return p, p != nil
}

// LocalResources is part of interface resource.Walker.
func (env *Environment) LocalResources(n *Node) *resource.Dictionary {
	return n.Resources()
}

// GlobalResources is part of interface resource.Walker.
func (env *Environment) GlobalResources() *resource.Dictionary {
	if env.global != nil {
		return env.global
	}
	return resource.Global()
}

// Properties is part of interface cascade.Environment.
func (env *Environment) Properties(n *Node) property.Index {
	if n == nil {
		return property.Index{}
	}
	return env.registry.IndexOf(n)
}

var _ cascade.Environment[*Node] = (*Environment)(nil)
