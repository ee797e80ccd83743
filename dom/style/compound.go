package style

import (
	"fmt"
	"sort"
	"strings"
)

var compounds = map[string]struct {
	pre, suf string
	dirs     *[4]string
}{
	"margin":        {"margin", "", &fourDirs},
	"padding":       {"padding", "", &fourDirs},
	"border-color":  {"border", "color", &fourDirs},
	"border-width":  {"border", "width", &fourDirs},
	"border-style":  {"border", "style", &fourDirs},
	"border-radius": {"border", "radius", &fourCorners},
}

// IsCompoundProperty is a predicate wether key is a shortcut for a set of
// individual properties, e.g. "padding".
func IsCompoundProperty(key string) bool {
	_, ok := compounds[key]
	return ok
}

// CompoundProperties returns the keys of all shortcut properties, sorted.
func CompoundProperties() []string {
	keys := make([]string, 0, len(compounds))
	for k := range compounds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("padding", "3pt")
// will return
//    "padding-top"    => "3pt"
//    "padding-right"  => "3pt"
//    "padding-bottom" => "3pt"
//    "padding-left"   => "3pt"
// Values are distributed the way CSS does it: one value for all sides,
// two for top/bottom and right/left, three for top, right/left and bottom.
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	c, ok := compounds[key]
	if !ok {
		return nil, fmt.Errorf("not recognized as compound property: %s", key)
	}
	fields := strings.Fields(value.String())
	var spread [4]int // index into fields for each direction
	switch len(fields) {
	case 1:
		spread = [4]int{0, 0, 0, 0}
	case 2:
		spread = [4]int{0, 1, 0, 1}
	case 3:
		spread = [4]int{0, 1, 2, 1}
	case 4:
		spread = [4]int{0, 1, 2, 3}
	default:
		return nil, fmt.Errorf("expecting 1-4 values for %s, have %d", key, len(fields))
	}
	r := make([]KeyValue, 4)
	for i, dir := range c.dirs {
		r[i] = KeyValue{p(c.pre, c.suf, dir), Property(fields[spread[i]])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	return prefix + "-" + tag + "-" + suffix
}
