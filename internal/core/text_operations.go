// internal/core/text_operations.go
package core

import (
	"strings"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/core/text"
	"github.com/bethropolis/tidehx/internal/types"
)

// InsertText types s at every selection. Non-empty selections are replaced
// and carets in virtual space are padded with spaces first. Every selection
// ends as a caret after the inserted text.
func (e *Editor) InsertText(s string) bool {
	if s == "" {
		return false
	}
	sels := e.sels.All()
	_, ok := e.edit(func(ed *buffer.Edit) {
		for _, sel := range sels {
			if sel.IsEmpty() {
				ed.Insert(sel.Active.Offset, strings.Repeat(" ", sel.Active.Virtual)+s)
				continue
			}
			ed.Replace(sel.Span(), s)
		}
	}, func(*buffer.ChangeSet) {
		e.sels.Transform(func(sel types.Selection) types.Selection {
			return types.Caret(types.At(sel.Active.Offset))
		})
	})
	return ok
}

// InsertNewline types a line break followed by the indentation of each
// caret's line.
func (e *Editor) InsertNewline() bool {
	snap := e.Snapshot()
	sels := e.sels.All()
	_, ok := e.edit(func(ed *buffer.Edit) {
		for _, sel := range sels {
			line := snap.LineFromOffset(sel.Start().Offset)
			indent := text.Indent(snap.Text(types.NewSpan(line.Start, sel.Start().Offset)))
			if sel.IsEmpty() {
				ed.Insert(sel.Active.Offset, "\n"+indent)
				continue
			}
			ed.Replace(sel.Span(), "\n"+indent)
		}
	}, func(*buffer.ChangeSet) {
		e.sels.Transform(func(sel types.Selection) types.Selection {
			return types.Caret(types.At(sel.Active.Offset))
		})
	})
	return ok
}

// DeleteBackward removes the grapheme before every caret, or the selected
// text of non-empty selections. A caret in virtual space only loses one
// column of virtual space.
func (e *Editor) DeleteBackward() bool {
	snap := e.Snapshot()
	src := snap.String()
	sels := e.sels.All()

	var virtual []types.Position
	_, ok := e.edit(func(ed *buffer.Edit) {
		for _, sel := range sels {
			switch {
			case !sel.IsEmpty():
				ed.Delete(sel.Span())
			case sel.Active.Virtual > 0:
				virtual = append(virtual, sel.Active)
			case sel.Active.Offset > 0:
				ed.Delete(types.NewSpan(text.PrevGrapheme(src, sel.Active.Offset), sel.Active.Offset))
			}
		}
	}, func(cs *buffer.ChangeSet) {
		// Carets in virtual space were left out of the edit; they still
		// step back one column.
		step := make(map[types.Position]bool, len(virtual))
		for _, p := range virtual {
			if m := cs.MapPosition(p, buffer.BiasAfter); m.Virtual > 0 {
				step[m] = true
			}
		}
		e.sels.Transform(func(sel types.Selection) types.Selection {
			p := sel.Start()
			if sel.IsEmpty() && step[p] {
				p.Virtual--
			}
			return types.Caret(p)
		})
	})
	if !ok && len(virtual) > 0 {
		e.sels.Transform(func(sel types.Selection) types.Selection {
			return types.Caret(prevPos(snap, sel.Active))
		})
		return true
	}
	return ok
}

// OpenLine inserts an empty line below, or above, the active line of every
// selection, carrying that line's indentation, and places a caret on it.
func (e *Editor) OpenLine(above bool) bool {
	snap := e.Snapshot()
	sels := e.sels.All()
	primary := e.sels.PrimaryIndex()
	type opened struct {
		at     int
		indent int
	}
	points := make([]opened, len(sels))

	_, ok := e.edit(func(ed *buffer.Edit) {
		for i, sel := range sels {
			line := snap.LineFromOffset(sel.Active.Offset)
			indent := text.Indent(snap.Text(line.Extent()))
			if above {
				ed.Insert(line.Start, indent+"\n")
				points[i] = opened{at: line.Start, indent: len(indent)}
			} else {
				ed.Insert(line.End, "\n"+indent)
				points[i] = opened{at: line.End, indent: 1 + len(indent)}
			}
		}
	}, func(cs *buffer.ChangeSet) {
		carets := make([]types.Selection, len(points))
		for i, p := range points {
			carets[i] = types.Caret(types.At(cs.MapOffset(p.at, buffer.BiasBefore) + p.indent))
		}
		e.sels.Replace(carets, primary)
	})
	return ok
}
