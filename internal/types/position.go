// internal/types/position.go
package types

import "fmt"

// Position is a byte offset into a snapshot plus an optional number of
// virtual columns past the end of the line the offset sits on.
type Position struct {
	Offset  int
	Virtual int
}

// At returns a Position with no virtual space.
func At(offset int) Position {
	return Position{Offset: offset}
}

// InVirtualSpace reports whether the position lies beyond its line's end.
func (p Position) InVirtualSpace() bool {
	return p.Virtual > 0
}

// Compare orders positions by offset, then by virtual columns.
func (p Position) Compare(o Position) int {
	switch {
	case p.Offset < o.Offset:
		return -1
	case p.Offset > o.Offset:
		return 1
	case p.Virtual < o.Virtual:
		return -1
	case p.Virtual > o.Virtual:
		return 1
	}
	return 0
}

func (p Position) String() string {
	if p.Virtual > 0 {
		return fmt.Sprintf("%d+%d", p.Offset, p.Virtual)
	}
	return fmt.Sprintf("%d", p.Offset)
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// NewSpan builds a span, swapping the bounds if given in reverse.
func NewSpan(a, b int) Span {
	if b < a {
		a, b = b, a
	}
	return Span{Start: a, End: b}
}

// Len returns the number of bytes covered.
func (s Span) Len() int { return s.End - s.Start }

// IsEmpty reports whether the span covers nothing.
func (s Span) IsEmpty() bool { return s.End <= s.Start }

// Contains reports whether off lies inside [Start, End).
func (s Span) Contains(off int) bool { return off >= s.Start && off < s.End }

// Overlaps reports whether the two spans share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
