package cascade

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/property"
)

// ErrApply is wrapped by errors from Apply.
var ErrApply = errors.New("cascade: cannot apply property")

// Entry is a property assignment produced by a resolution.
type Entry struct {
	Property string            // property name
	Accessor property.Accessor // setter from the node's property index
	Value    any               // winning value
}

// Styling is the result of resolving a class list: one entry per property,
// ordered by the first assignment to a property.
type Styling struct {
	order   []string
	entries map[string]*Entry
}

func newStyling() *Styling {
	return &Styling{entries: make(map[string]*Entry)}
}

// set overwrites an earlier assignment for the same property.
func (s *Styling) set(name string, a property.Accessor, value any) {
	if e, ok := s.entries[name]; ok {
		e.Value = value
		return
	}
	s.entries[name] = &Entry{Property: name, Accessor: a, Value: value}
	s.order = append(s.order, name)
}

// Len returns the number of properties to assign.
func (s *Styling) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Value returns the value assigned to a property.
func (s *Styling) Value(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	if e, ok := s.entries[name]; ok {
		return e.Value, true
	}
	return nil, false
}

// Entries returns copies of all entries.
func (s *Styling) Entries() []Entry {
	if s == nil {
		return nil
	}
	r := make([]Entry, len(s.order))
	for i, name := range s.order {
		r[i] = *s.entries[name]
	}
	return r
}

// Map returns the property assignments as a map.
func (s *Styling) Map() map[string]any {
	m := make(map[string]any, s.Len())
	for _, e := range s.Entries() {
		m[e.Property] = e.Value
	}
	return m
}

func (s *Styling) String() string {
	var b strings.Builder
	b.WriteString("Styling{")
	for i, e := range s.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", e.Property, e.Value)
	}
	b.WriteString("}")
	return b.String()
}

// Apply sets every property of a styling. If an accessor fails, Apply stops
// and returns the error wrapped into ErrApply. Properties set before the
// failure keep their new values.
func Apply(s *Styling) error {
	for _, e := range s.Entries() {
		if e.Accessor == nil {
			continue
		}
		if err := e.Accessor.Set(e.Value); err != nil {
			tracer().Errorf("setting property %s failed: %v", e.Property, err)
			return fmt.Errorf("%w %s: %w", ErrApply, e.Property, err)
		}
	}
	return nil
}
