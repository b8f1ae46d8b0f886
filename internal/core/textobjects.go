// internal/core/textobjects.go
package core

import (
	"sort"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/core/match"
	"github.com/bethropolis/tidehx/internal/types"
)

// MatchBracket moves every caret to the bracket matching the one at or
// before its active point. Selections without a bracket are left alone.
func (e *Editor) MatchBracket() {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		off, ok := match.MatchingBracket(snap, s.Active.Offset)
		if !ok {
			return s
		}
		return types.Caret(types.At(off))
	})
}

// Surround wraps every selection in the pair for ch and reselects the
// original text between the new delimiters.
func (e *Editor) Surround(ch rune) bool {
	pair, ok := match.PairFor(ch)
	if !ok {
		return false
	}
	sels := e.sels.All()
	primary := e.sels.PrimaryIndex()
	order := make([]int, len(sels))
	for i := range order {
		order[i] = i
	}
	// Ascending order keeps a close delimiter in front of an adjacent open.
	sort.SliceStable(order, func(a, b int) bool {
		return sels[order[a]].Start().Compare(sels[order[b]].Start()) < 0
	})

	lhs, rhs := string(pair.Open), string(pair.Close)
	_, done := e.edit(func(ed *buffer.Edit) {
		for _, i := range order {
			span := sels[i].Span()
			ed.Insert(span.Start, lhs)
			ed.Insert(span.End, rhs)
		}
	}, func(cs *buffer.ChangeSet) {
		inner := make([]types.Selection, len(sels))
		for i, s := range sels {
			span := s.Span()
			var start, end int
			if span.IsEmpty() {
				start = cs.MapOffset(span.Start, buffer.BiasBefore) + 1
				end = start
			} else {
				start = cs.MapOffset(span.Start, buffer.BiasAfter)
				end = cs.MapOffset(span.End, buffer.BiasBefore)
			}
			inner[i] = types.NewSelection(types.NewSpan(start, end), s.IsReversed())
		}
		e.sels.Replace(inner, primary)
	})
	return done
}

// enclosing collects the delimiter pairs around the selections. A pair
// sharing a delimiter with one already found is skipped.
func (e *Editor) enclosing(snap buffer.Snapshot, pair match.Pair) [][2]int {
	seen := make(map[int]bool)
	var found [][2]int
	for _, s := range e.sels.All() {
		open, closing, ok := match.FindEnclosing(snap, s.Span(), pair)
		if !ok || seen[open] || seen[closing] {
			continue
		}
		seen[open], seen[closing] = true, true
		found = append(found, [2]int{open, closing})
	}
	return found
}

// DeleteSurround removes the innermost pair for ch enclosing each selection.
func (e *Editor) DeleteSurround(ch rune) bool {
	pair, ok := match.PairFor(ch)
	if !ok {
		return false
	}
	snap := e.Snapshot()
	found := e.enclosing(snap, pair)
	if len(found) == 0 {
		return false
	}
	_, done := e.edit(func(ed *buffer.Edit) {
		for _, p := range found {
			ed.Delete(types.NewSpan(p[0], p[0]+1))
			ed.Delete(types.NewSpan(p[1], p[1]+1))
		}
	}, nil)
	return done
}

// ReplaceSurround swaps the innermost pair for from around each selection
// with the pair for to. Selections keep their offsets.
func (e *Editor) ReplaceSurround(from, to rune) bool {
	fromPair, ok := match.PairFor(from)
	if !ok {
		return false
	}
	toPair, ok := match.PairFor(to)
	if !ok {
		return false
	}
	snap := e.Snapshot()
	found := e.enclosing(snap, fromPair)
	if len(found) == 0 {
		return false
	}
	sels := e.sels.All()
	primary := e.sels.PrimaryIndex()
	_, done := e.edit(func(ed *buffer.Edit) {
		for _, p := range found {
			ed.Replace(types.NewSpan(p[0], p[0]+1), string(toPair.Open))
			ed.Replace(types.NewSpan(p[1], p[1]+1), string(toPair.Close))
		}
	}, func(*buffer.ChangeSet) {
		e.sels.Replace(sels, primary)
	})
	return done
}

// SelectTextObject selects the inside, or with around the whole, of the
// innermost pair for ch enclosing each selection.
func (e *Editor) SelectTextObject(ch rune, around bool) bool {
	pair, ok := match.PairFor(ch)
	if !ok {
		return false
	}
	snap := e.Snapshot()
	changed := false
	e.sels.Transform(func(s types.Selection) types.Selection {
		open, closing, ok := match.FindEnclosing(snap, s.Span(), pair)
		if !ok {
			return s
		}
		changed = true
		if around {
			return types.NewSelection(types.NewSpan(open, closing+1), s.IsReversed())
		}
		return types.NewSelection(types.NewSpan(open+1, closing), s.IsReversed())
	})
	return changed
}
