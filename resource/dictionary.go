package resource

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// ClassRef marks a dictionary key as a reference to other class keys.
// The key itself is split at whitespace and every part is resolved like a
// class key of its own, e.g.
//
//     d.Set("base emphasis", resource.ClassRef{})
//
type ClassRef struct{}

func (ClassRef) String() string {
	return "<class-ref>"
}

// Dictionary is an ordered mapping from keys to resource values.
// nil is a legal (empty) dictionary.
//
// Dictionaries are not safe for concurrent modification. Resolution only
// reads dictionaries, so concurrent resolutions over the same set of
// dictionaries are fine as long as no client modifies them meanwhile.
type Dictionary struct {
	name   string
	keys   []string       // insertion order
	values map[string]any // entries of the primary mapping
	merged []*Dictionary  // searched after the primary mapping
}

// NewDictionary creates a new empty dictionary. The name is for debugging
// only.
func NewDictionary(name string) *Dictionary {
	return &Dictionary{name: name}
}

// Name returns the debugging name of the dictionary.
func (d *Dictionary) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

func (d *Dictionary) String() string {
	if d == nil {
		return "Dictionary<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Dictionary[%s] = {", d.name)
	for i, k := range d.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, d.values[k])
	}
	b.WriteString("}")
	if len(d.merged) > 0 {
		fmt.Fprintf(&b, " + %d merged", len(d.merged))
	}
	return b.String()
}

// Set a value for a key. Overwrites an existing value, if present; an
// overwritten key keeps its position in the iteration order.
// Set returns the dictionary to allow for chaining.
func (d *Dictionary) Set(key string, value any) *Dictionary {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Remove deletes a key from the primary mapping. Merged dictionaries are
// not touched.
func (d *Dictionary) Remove(key string) {
	if d == nil || d.values == nil {
		return
	}
	if _, exists := d.values[key]; !exists {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Merge appends other dictionaries to the list of merged dictionaries.
// nil dictionaries are skipped, as are dictionaries which would make d
// (indirectly) a merged dictionary of itself.
func (d *Dictionary) Merge(others ...*Dictionary) *Dictionary {
	for _, o := range others {
		if o == nil {
			continue
		}
		if o.reaches(d) {
			tracer().Errorf("merging %q into %q would create a cycle, skipped", o.name, d.name)
			continue
		}
		d.merged = append(d.merged, o)
	}
	return d
}

// reaches is true if target is d or one of its merged dictionaries,
// searched transitively.
func (d *Dictionary) reaches(target *Dictionary) bool {
	if d == target {
		return true
	}
	for _, m := range d.merged {
		if m.reaches(target) {
			return true
		}
	}
	return false
}

// Merged returns the merged dictionaries in search order.
func (d *Dictionary) Merged() []*Dictionary {
	if d == nil {
		return nil
	}
	m := make([]*Dictionary, len(d.merged))
	copy(m, d.merged)
	return m
}

// Len returns the number of entries of the primary mapping.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys of the primary mapping in insertion order.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	k := make([]string, len(d.keys))
	copy(k, d.keys)
	return k
}

// Own returns the value for a key from the primary mapping only.
func (d *Dictionary) Own(key string) (any, bool) {
	if d == nil || d.values == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Get returns the value for a key. The primary mapping is checked first,
// then every merged dictionary in the order of merging.
func (d *Dictionary) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	if v, ok := d.values[key]; ok {
		return v, true
	}
	for _, m := range d.merged {
		if v, ok := m.Get(key); ok {
			return v, true
		}
	}
	return nil, false
}

// Each calls f for every entry of the primary mapping in insertion order,
// until f returns false.
func (d *Dictionary) Each(f func(key string, value any) bool) {
	if d == nil {
		return
	}
	for _, k := range d.keys {
		if !f(k, d.values[k]) {
			return
		}
	}
}

// IsEmpty is true if the dictionary has neither entries of its own nor
// non-empty merged dictionaries.
func (d *Dictionary) IsEmpty() bool {
	if d == nil {
		return true
	}
	if len(d.keys) > 0 {
		return false
	}
	for _, m := range d.merged {
		if !m.IsEmpty() {
			return false
		}
	}
	return true
}

// IsGroup is a predicate wether a resource value denotes a nested class
// group, i.e. is a dictionary or a class reference marker.
func IsGroup(value any) bool {
	switch value.(type) {
	case *Dictionary, ClassRef, *ClassRef:
		return true
	}
	return false
}
