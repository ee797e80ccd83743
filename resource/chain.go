package resource

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Walker gives access to the tree structure relevant for collecting
// resource dictionaries. Environments implement it for their node type.
type Walker[N any] interface {
	Parent(node N) (N, bool)           // logical parent, false for a root
	LocalResources(node N) *Dictionary // local dictionary or nil
	GlobalResources() *Dictionary      // process-wide dictionary or nil
}

// Order determines how locally collected dictionaries are arranged within
// a chain. The global dictionary is always the last one.
type Order int

const (
	// NearestFirst lets dictionaries of closer ancestors shadow those
	// further up the tree. This is the default.
	NearestFirst Order = iota
	// OutermostFirst lets the dictionary closest to the root shadow those
	// further down. Provided for compatibility with trees styled under
	// this rule.
	OutermostFirst
)

func (o Order) String() string {
	switch o {
	case NearestFirst:
		return "nearest-first"
	case OutermostFirst:
		return "outermost-first"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Chain is an ordered sequence of dictionaries. Lookups return the first
// match, scanning front to back.
type Chain []*Dictionary

// BuildChain collects the local dictionaries from node up to the root and
// appends the global dictionary, if any. Empty dictionaries are skipped.
func BuildChain[N any](node N, w Walker[N], order Order) Chain {
	var chain Chain
	current, ok := node, true
	for ok {
		if d := w.LocalResources(current); !d.IsEmpty() {
			chain = append(chain, d)
		}
		current, ok = w.Parent(current)
	}
	if order == OutermostFirst {
		for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
			chain[i], chain[j] = chain[j], chain[i]
		}
	}
	if g := w.GlobalResources(); g != nil {
		chain = append(chain, g)
	}
	tracer().Debugf("resource chain of length %d built (%s)", len(chain), order)
	return chain
}

// Lookup finds the value for a key. Within each dictionary the primary
// mapping is checked before the merged dictionaries.
func (c Chain) Lookup(key string) (any, bool) {
	for _, d := range c {
		if v, ok := d.Get(key); ok {
			return v, true
		}
	}
	return nil, false
}

// Len returns the number of dictionaries in the chain.
func (c Chain) Len() int {
	return len(c)
}

func (c Chain) String() string {
	names := make([]string, len(c))
	for i, d := range c {
		names[i] = d.Name()
	}
	return "Chain[" + strings.Join(names, " → ") + "]"
}

// --- Static references -----------------------------------------------------

var staticRefPattern = regexp.MustCompile(`^\s*\$(\w+)\s*$`)

// StaticReference checks wether a resource value is a static reference,
// e.g. "$accent". If so, it returns the referenced key without the sigil.
// Strings and fmt.Stringers are considered, all other values are literals.
func StaticReference(value any) (string, bool) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		return "", false
	}
	m := staticRefPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// --- Global dictionary -----------------------------------------------------

var global struct {
	sync.RWMutex
	dict *Dictionary
}

// SetGlobal installs the process-wide dictionary. Clients should do this
// once at startup; d may be nil to remove the global dictionary.
func SetGlobal(d *Dictionary) {
	global.Lock()
	defer global.Unlock()
	global.dict = d
}

// Global returns the process-wide dictionary or nil.
func Global() *Dictionary {
	global.RLock()
	defer global.RUnlock()
	return global.dict
}
