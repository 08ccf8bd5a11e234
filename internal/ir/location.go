package ir

import "fmt"

// Location is a source-range datum. It is deliberately opaque beyond a
// file/line/column, matching the teacher's ast.Position, since the core
// never inspects a location beyond wrapping and printing it.
type Location struct {
	File   string
	Line   int
	Column int

	// Wrapped is non-nil when this Location was produced by wrapping an
	// original Location under inlining; nil for a plain, un-inlined
	// Location.
	Wrapped *Location
	// Mandatory is only meaningful when Wrapped != nil: it distinguishes
	// an InlinedLocation (Mandatory == false) from a
	// MandatoryInlinedLocation (Mandatory == true).
	Mandatory bool
}

// InlinedLocation wraps loc, marking it as reached via performance
// inlining.
func InlinedLocation(loc Location) Location {
	wrapped := loc
	return Location{File: loc.File, Line: loc.Line, Column: loc.Column, Wrapped: &wrapped, Mandatory: false}
}

// MandatoryInlinedLocation wraps loc, marking it as reached via
// mandatory inlining.
func MandatoryInlinedLocation(loc Location) Location {
	wrapped := loc
	return Location{File: loc.File, Line: loc.Line, Column: loc.Column, Wrapped: &wrapped, Mandatory: true}
}

// IsInlined reports whether this Location was produced by wrapping
// another one under inlining.
func (l Location) IsInlined() bool { return l.Wrapped != nil }

func (l Location) String() string {
	base := fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	if l.Wrapped == nil {
		return base
	}
	if l.Mandatory {
		return base + " (mandatory-inlined from " + l.Wrapped.String() + ")"
	}
	return base + " (inlined from " + l.Wrapped.String() + ")"
}
