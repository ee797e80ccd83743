package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.dom'
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}

// Property is a raw value for a style property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// ValueOf converts a resource value into a Property.
// Resource dictionaries may hold values of any type; strings, Properties
// and fmt.Stringers are taken as they are, numbers and other values are
// formatted with their default format.
func ValueOf(v any) Property {
	switch x := v.(type) {
	case nil:
		return NullStyle
	case Property:
		return x
	case string:
		return Property(x)
	case fmt.Stringer:
		return Property(x.String())
	}
	return Property(fmt.Sprint(v))
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Groups --------------------------------------------------
//
// Style properties are plentyful. We split them up into organisatorial
// groups. The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].

// PropertyGroup is a collection of propertes sharing a common topic.
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pg *PropertyGroup) Set(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	if _, exists := pg.propsDict[key]; !exists {
		pg.propsDict[key] = p
	}
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// IsKnownProperty is a predicate wether key is a style property of one of
// the standard groups.
func IsKnownProperty(key string) bool {
	_, found := groupNameFromPropertyKey[key]
	return found
}

// KnownProperties returns the keys of all style properties of the standard
// groups, sorted.
func KnownProperties() []string {
	keys := make([]string, 0, len(groupNameFromPropertyKey))
	for k := range groupNameFromPropertyKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGFont      = "Font"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":                 PGMargins,
	"margin-left":                PGMargins,
	"margin-right":               PGMargins,
	"margin-bottom":              PGMargins,
	"padding-top":                PGPadding,
	"padding-left":               PGPadding,
	"padding-right":              PGPadding,
	"padding-bottom":             PGPadding,
	"border-top-color":           PGBorder,
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"width":                      PGDimension,
	"height":                     PGDimension,
	"min-width":                  PGDimension,
	"min-height":                 PGDimension,
	"max-width":                  PGDimension,
	"max-height":                 PGDimension,
	"display":                    PGDisplay,
	"float":                      PGDisplay,
	"visibility":                 PGDisplay,
	"position":                   PGDisplay,
	"opacity":                    PGDisplay,
	"color":                      PGColor,
	"background-color":           PGColor,
	"direction":                  PGText,
	"white-space":                PGText,
	"word-spacing":               PGText,
	"letter-spacing":             PGText,
	"word-break":                 PGText,
	"word-wrap":                  PGText,
	"text-align":                 PGText,
	"font-family":                PGFont,
	"font-size":                  PGFont,
	"font-style":                 PGFont,
	"font-weight":                PGFont,
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds style properties. nil is a legal (empty) property map.
// A property map is the entity styling a DOM node: a DOM node links to a
// property map, which contains zero or more property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	for _, g := range pmap.Groups() {
		b.WriteString(g.String())
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Groups returns all property groups, sorted by name.
func (pmap *PropertyMap) Groups() []*PropertyGroup {
	if pmap == nil {
		return nil
	}
	groups := make([]*PropertyGroup, 0, len(pmap.m))
	for _, g := range pmap.m {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].name < groups[j].name })
	return groups
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Properties returns all properties of all groups, sorted by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	var r []KeyValue
	for _, g := range pmap.Groups() {
		r = append(r, g.Properties()...)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// Set sets a property in this property map, e.g.,
//
//    pm.Set("margin-top", "12pt")
//
// Properties of unknown keys are stored in group "X".
func (pmap *PropertyMap) Set(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	tracer().Debugf("property map: %s/%s = %s", groupname, key, value)
	group.Set(key, value)
}
