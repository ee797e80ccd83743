package cascade

import "fmt"

// DiagnosticKind classifies non-fatal resolution conditions.
type DiagnosticKind int

const (
	// UnresolvedStaticReference: the target key of a "$key" value was not
	// found in the resource chain. The property is left untouched.
	UnresolvedStaticReference DiagnosticKind = iota + 1
	// CyclicGroup: a group names a class key which is already being
	// expanded. The repeated key is skipped.
	CyclicGroup
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnresolvedStaticReference:
		return "unresolved static reference"
	case CyclicGroup:
		return "cyclic group"
	}
	return "unknown"
}

// Diagnostic describes a condition the engine recovered from.
type Diagnostic struct {
	Kind     DiagnosticKind
	ClassKey string // class key being expanded
	Property string // affected property, if any
	Key      string // the missing or repeated key
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case UnresolvedStaticReference:
		return fmt.Sprintf("static resource not found: $%s (property %s of class %s)",
			d.Key, d.Property, d.ClassKey)
	case CyclicGroup:
		return fmt.Sprintf("class %s is part of a cycle, skipped", d.Key)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Key)
}

// DiagnosticSink receives diagnostics. Sinks must not influence resolution;
// the engine behaves identically with or without a sink.
type DiagnosticSink func(Diagnostic)
