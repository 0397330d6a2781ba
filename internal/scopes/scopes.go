// Package scopes models the lexical scope data a PDB reader supplies for
// one method and computes the IL-offset span over which decoded debug info
// stays valid as the instruction pointer moves.
package scopes

import (
	"fmt"
	"math"
)

// ILSpan is a half-open [Start, End) byte-offset interval over a method
// body.
type ILSpan struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// MaxSpan covers the entire method: debug info decoded anywhere in the
// body remains valid at every offset.
var MaxSpan = ILSpan{Start: 0, End: math.MaxUint32}

// Contains reports whether off falls inside the span.
func (s ILSpan) Contains(off uint32) bool {
	return s.Start <= off && off < s.End
}

func (s ILSpan) String() string {
	if s == MaxSpan {
		return "[0, max)"
	}
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// Local is a named local variable declared in a scope, bound to a slot in
// the method's local signature.
type Local struct {
	Name string `json:"name"`
	Slot int    `json:"slot"`
}

// Constant is a compile-time constant declared in a scope. Value holds the
// raw stored bytes; Signature the serialized type signature.
type Constant struct {
	Name      string `json:"name"`
	Value     []byte `json:"value"`
	Signature []byte `json:"signature"`
}

// Scope is one lexical scope. End is recorded as the producer emitted it;
// Visual Basic PDBs record end offsets inclusively, which callers state via
// the endInclusive flag on ReuseSpan.
type Scope struct {
	Start     uint32     `json:"start"`
	End       uint32     `json:"end"`
	Locals    []Local    `json:"locals,omitempty"`
	Constants []Constant `json:"constants,omitempty"`
}

// ReuseSpan computes the maximal span containing ilOffset that crosses no
// scope boundary: scopes containing the offset intersect the span, and the
// nearest boundaries of scopes outside it clamp it. If no scope contains
// the offset there is nothing to invalidate and the span is unbounded.
func ReuseSpan(all []Scope, ilOffset uint32, endInclusive bool) ILSpan {
	span := MaxSpan
	contained := false
	for _, sc := range all {
		end := sc.End
		if endInclusive && end != math.MaxUint32 {
			end++
		}
		switch {
		case ilOffset < sc.Start:
			if sc.Start < span.End {
				span.End = sc.Start
			}
		case ilOffset >= end:
			if end > span.Start {
				span.Start = end
			}
		default:
			contained = true
			if sc.Start > span.Start {
				span.Start = sc.Start
			}
			if end < span.End {
				span.End = end
			}
		}
	}
	if !contained {
		return MaxSpan
	}
	return span
}
