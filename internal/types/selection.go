package types

import "fmt"

// Selection is an anchor/active pair. It is a caret when both are equal and
// reversed when the active point precedes the anchor.
type Selection struct {
	Anchor Position
	Active Position
}

// Caret returns an empty selection at p.
func Caret(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// NewSelection selects the span, placing the active point at its start when
// reversed is set.
func NewSelection(span Span, reversed bool) Selection {
	if reversed {
		return Selection{Anchor: At(span.End), Active: At(span.Start)}
	}
	return Selection{Anchor: At(span.Start), Active: At(span.End)}
}

// FromPoints builds a selection from two positions keeping the given
// orientation.
func FromPoints(start, end Position, reversed bool) Selection {
	if reversed {
		return Selection{Anchor: end, Active: start}
	}
	return Selection{Anchor: start, Active: end}
}

// IsEmpty reports whether the selection is a caret.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// IsReversed reports whether the active point precedes the anchor.
func (s Selection) IsReversed() bool {
	return s.Active.Compare(s.Anchor) < 0
}

// Start returns the earlier of the two points.
func (s Selection) Start() Position {
	if s.IsReversed() {
		return s.Active
	}
	return s.Anchor
}

// End returns the later of the two points.
func (s Selection) End() Position {
	if s.IsReversed() {
		return s.Anchor
	}
	return s.Active
}

// Span returns the covered byte range, ignoring virtual space.
func (s Selection) Span() Span {
	return Span{Start: s.Start().Offset, End: s.End().Offset}
}

// Extend keeps the anchor and moves the active point to p.
func (s Selection) Extend(p Position) Selection {
	return Selection{Anchor: s.Anchor, Active: p}
}

func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("caret(%s)", s.Active)
	}
	return fmt.Sprintf("sel(%s->%s)", s.Anchor, s.Active)
}
