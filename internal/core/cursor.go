// internal/core/cursor.go
package core

import (
	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/core/cursor"
	"github.com/bethropolis/tidehx/internal/core/text"
	"github.com/bethropolis/tidehx/internal/types"
)

// prevPos steps one caret position back, consuming virtual space first.
func prevPos(snap *buffer.MemSnapshot, p types.Position) types.Position {
	if p.Virtual > 0 {
		return types.Position{Offset: p.Offset, Virtual: p.Virtual - 1}
	}
	return types.At(text.PrevGrapheme(snap.String(), p.Offset))
}

// nextPos steps one caret position forward. Virtual space is dropped.
func nextPos(snap *buffer.MemSnapshot, p types.Position) types.Position {
	return types.At(text.NextGrapheme(snap.String(), p.Offset))
}

// verticalPos returns the point at p's visual column on the line delta lines
// away, or p when no such line exists.
func (e *Editor) verticalPos(snap *buffer.MemSnapshot, p types.Position, delta int, keepVirtual bool) types.Position {
	line := snap.LineFromOffset(p.Offset)
	target := line.Number + delta
	if target < 0 || target >= snap.LineCount() {
		return p
	}
	col := cursor.VisualColumn(snap, p, e.tabWidth)
	q := cursor.PointAtVisualOffset(snap, snap.Line(target), col, e.tabWidth)
	if !keepVirtual {
		q.Virtual = 0
	}
	return q
}

// MoveLeft collapses every selection and steps one position left. A forward
// selection steps back twice so the caret leaves the selected block.
func (e *Editor) MoveLeft() {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		switch {
		case s.IsEmpty():
			return types.Caret(prevPos(snap, s.Active))
		case s.IsReversed():
			return types.Caret(prevPos(snap, s.Active))
		default:
			return types.Caret(prevPos(snap, prevPos(snap, s.Active)))
		}
	})
}

// MoveRight collapses every selection and steps one position right. A
// forward selection collapses onto its end.
func (e *Editor) MoveRight() {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		switch {
		case s.IsEmpty(), s.IsReversed():
			return types.Caret(nextPos(snap, s.Active))
		default:
			return types.Caret(s.Active)
		}
	})
}

// MoveDown collapses every selection and moves to the next line.
func (e *Editor) MoveDown() { e.moveVertical(1) }

// MoveUp collapses every selection and moves to the previous line.
func (e *Editor) MoveUp() { e.moveVertical(-1) }

func (e *Editor) moveVertical(delta int) {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		p := s.Active
		if !s.IsEmpty() && !s.IsReversed() {
			p = prevPos(snap, p)
		}
		return types.Caret(e.verticalPos(snap, p, delta, false))
	})
}

// WordForward selects from each active point to the next word start. Big
// words split on whitespace only.
func (e *Editor) WordForward(big bool) {
	s := e.Snapshot().String()
	e.sels.Transform(func(sel types.Selection) types.Selection {
		from := sel.Active.Offset
		return types.Selection{Anchor: types.At(from), Active: types.At(text.NextWordStart(s, from, !big))}
	})
}

// WordBackward selects from each active point back to the previous word start.
func (e *Editor) WordBackward(big bool) {
	s := e.Snapshot().String()
	e.sels.Transform(func(sel types.Selection) types.Selection {
		from := sel.Active.Offset
		return types.Selection{Anchor: types.At(from), Active: types.At(text.PrevWordStart(s, from, !big))}
	})
}

// ExtendWordForward moves each active point to the next word start.
func (e *Editor) ExtendWordForward(big bool) {
	s := e.Snapshot().String()
	e.sels.Transform(func(sel types.Selection) types.Selection {
		return sel.Extend(types.At(text.NextWordStart(s, sel.Active.Offset, !big)))
	})
}

// ExtendWordBackward moves each active point to the previous word start.
func (e *Editor) ExtendWordBackward(big bool) {
	s := e.Snapshot().String()
	e.sels.Transform(func(sel types.Selection) types.Selection {
		return sel.Extend(types.At(text.PrevWordStart(s, sel.Active.Offset, !big)))
	})
}

// ExtendLeft moves each active point one position left without leaving its line.
func (e *Editor) ExtendLeft() {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		line := snap.LineFromOffset(s.Active.Offset)
		if s.Active.Virtual == 0 && s.Active.Offset <= line.Start {
			return s
		}
		return s.Extend(prevPos(snap, s.Active))
	})
}

// ExtendRight moves each active point one position right without leaving its line.
func (e *Editor) ExtendRight() {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		line := snap.LineFromOffset(s.Active.Offset)
		if s.Active.Offset >= line.End {
			return s
		}
		return s.Extend(nextPos(snap, s.Active))
	})
}

// ExtendDown moves each active point to the same visual column one line below.
func (e *Editor) ExtendDown() { e.extendVertical(1) }

// ExtendUp moves each active point to the same visual column one line above.
func (e *Editor) ExtendUp() { e.extendVertical(-1) }

func (e *Editor) extendVertical(delta int) {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		return s.Extend(e.verticalPos(snap, s.Active, delta, true))
	})
}
