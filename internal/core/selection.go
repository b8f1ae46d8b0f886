// internal/core/selection.go
package core

import (
	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/core/cursor"
	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/types"
)

// IsLinewise reports whether s is non-empty and covers whole lines, from the
// start of its first line to the end of its last line, break excluded.
func IsLinewise(snap buffer.Snapshot, s types.Selection) bool {
	if s.IsEmpty() || s.Start().Virtual > 0 || s.End().Virtual > 0 {
		return false
	}
	return coversLines(snap, s)
}

func coversLines(snap buffer.Snapshot, s types.Selection) bool {
	span := s.Span()
	return span.Start == snap.LineFromOffset(span.Start).Start &&
		span.End == snap.LineFromOffset(span.End).End
}

// linewise expands s to whole lines. A selection that already covers whole
// lines grows by the following line. Direction is preserved.
func linewise(snap buffer.Snapshot, s types.Selection) types.Selection {
	span := s.Span()
	first := snap.LineFromOffset(span.Start)
	last := snap.LineFromOffset(span.End)

	if s.Start().Virtual == 0 && s.End().Virtual == 0 && coversLines(snap, s) {
		if last.Number+1 >= snap.LineCount() {
			return s
		}
		last = snap.Line(last.Number + 1)
	}
	return types.NewSelection(types.NewSpan(first.Start, last.End), s.IsReversed())
}

// ExtendLinewise expands every selection to whole lines, or by one more line
// when it is already linewise.
func (e *Editor) ExtendLinewise() {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		return linewise(snap, s)
	})
}

// CollapseToStart turns every selection into a caret at its start.
func (e *Editor) CollapseToStart() {
	e.sels.Transform(func(s types.Selection) types.Selection {
		return types.Caret(s.Start())
	})
}

// CollapseToEnd turns every selection into a caret at its end.
func (e *Editor) CollapseToEnd() {
	e.sels.Transform(func(s types.Selection) types.Selection {
		return types.Caret(s.End())
	})
}

// Collapse turns every selection into a caret at its active point.
func (e *Editor) Collapse() {
	e.sels.Transform(func(s types.Selection) types.Selection {
		return types.Caret(s.Active)
	})
}

// ClearSecondary keeps only the primary selection.
func (e *Editor) ClearSecondary() { e.sels.ClearSecondary() }

// AddCaretBelow copies the bottom-most selection onto the nearest line below
// that is long enough to hold both of its visual columns. Multi-line
// selections are not copied.
func (e *Editor) AddCaretBelow() bool { return e.addVertical(1) }

// AddCaretAbove mirrors AddCaretBelow upward from the top-most selection.
func (e *Editor) AddCaretAbove() bool { return e.addVertical(-1) }

func (e *Editor) addVertical(dir int) bool {
	snap := e.Snapshot()
	all := e.sels.All()
	src := all[0]
	for _, s := range all[1:] {
		if dir > 0 && s.End().Compare(src.End()) > 0 {
			src = s
		}
		if dir < 0 && s.Start().Compare(src.Start()) < 0 {
			src = s
		}
	}

	startLine := snap.LineFromOffset(src.Start().Offset)
	if startLine.Number != snap.LineFromOffset(src.End().Offset).Number {
		logger.DebugTagf("core", "Editor: vertical copy skipped for multi-line %s", src)
		return false
	}

	startCol := cursor.VisualColumn(snap, src.Start(), e.tabWidth)
	endCol := cursor.VisualColumn(snap, src.End(), e.tabWidth)
	required := max(startCol, endCol)

	for n := startLine.Number + dir; n >= 0 && n < snap.LineCount(); n += dir {
		line := snap.Line(n)
		if cursor.ExpandedOffset(snap.Text(line.Extent()), e.tabWidth) < required {
			continue
		}
		start := cursor.PointAtVisualOffset(snap, line, startCol, e.tabWidth)
		end := cursor.PointAtVisualOffset(snap, line, endCol, e.tabWidth)
		e.sels.Add(types.FromPoints(start, end, src.IsReversed()))
		return true
	}
	return false
}

// SearchDomain returns the non-empty selection spans, or the whole document
// when every selection is a caret.
func (e *Editor) SearchDomain() []types.Span {
	var spans []types.Span
	for _, s := range e.sels.All() {
		if !s.IsEmpty() {
			spans = append(spans, s.Span())
		}
	}
	if len(spans) == 0 {
		spans = []types.Span{types.NewSpan(0, e.Snapshot().Len())}
	}
	return spans
}

// SelectSpans replaces the selection set with spans, each reversed so the
// caret sits at the match start.
func (e *Editor) SelectSpans(spans []types.Span, primary int) {
	if len(spans) == 0 {
		return
	}
	sels := make([]types.Selection, len(spans))
	for i, sp := range spans {
		sels[i] = types.NewSelection(sp, true)
	}
	e.sels.Replace(sels, primary)
}
