// internal/core/clipboard.go
package core

import (
	"sort"
	"strings"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/core/clipboard"
	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/types"
)

// Yank stores one item per selection, in selection order, in the register
// and the clipboard. It returns the number of items stored.
func (e *Editor) Yank() int {
	snap := e.Snapshot()
	sels := e.sels.All()
	items := make([]clipboard.YankItem, len(sels))
	for i, s := range sels {
		lw := IsLinewise(snap, s)
		t := snap.Text(s.Span())
		if lw {
			t += clipboard.LineTerminator
		}
		items[i] = clipboard.YankItem{Text: t, Linewise: lw}
	}
	e.register.Set(items)
	if err := e.clip.Write(items, clipboard.PlainText(items)); err != nil {
		logger.Warnf("Editor: clipboard write failed: %v", err)
	}
	logger.DebugTagf("core", "Editor: yanked %d item(s)", len(items))
	return len(items)
}

// pasteItems prefers the clipboard and falls back to the register.
func (e *Editor) pasteItems() []clipboard.YankItem {
	items, err := e.clip.Read()
	if err != nil {
		logger.Debugf("Editor: clipboard read failed, using register: %v", err)
		return e.register.Items()
	}
	if len(items) == 0 {
		return e.register.Items()
	}
	return items
}

// Paste inserts item i mod n after selection i. Linewise items become new
// lines below the selection's last line, others go at the selection end.
func (e *Editor) Paste() bool {
	items := e.pasteItems()
	if len(items) == 0 {
		return false
	}
	snap := e.Snapshot()
	sels := e.sels.All()
	_, ok := e.edit(func(ed *buffer.Edit) {
		for i, s := range sels {
			item := items[i%len(items)]
			if !item.Linewise {
				ed.Insert(s.End().Offset, item.Text)
				continue
			}
			line := snap.LineFromOffset(s.End().Offset)
			if line.HasBreak() {
				ed.Insert(line.EndIncludingBreak, item.Text)
			} else {
				ed.Insert(line.End, clipboard.LineTerminator+strings.TrimSuffix(item.Text, clipboard.LineTerminator))
			}
		}
	}, nil)
	return ok
}

// Delete removes the text of every non-empty selection. Linewise selections
// also take their trailing line break. Each selection ends as a caret at its
// start.
func (e *Editor) Delete() bool {
	snap := e.Snapshot()
	var spans []types.Span
	var grows []bool
	for _, s := range e.sels.All() {
		if s.IsEmpty() {
			continue
		}
		span := s.Span()
		grow := false
		if IsLinewise(snap, s) {
			if last := snap.LineFromOffset(span.End); last.HasBreak() {
				span.End = last.EndIncludingBreak
				grow = true
			}
		}
		spans = append(spans, span)
		grows = append(grows, grow)
	}
	if len(spans) == 0 {
		return false
	}

	idx := make([]int, len(spans))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return spans[idx[a]].Start < spans[idx[b]].Start })
	// A grown span must not swallow the start of the next one.
	for k := 0; k+1 < len(idx); k++ {
		cur, next := idx[k], idx[k+1]
		if grows[cur] && spans[cur].End > spans[next].Start {
			spans[cur].End = spans[next].Start
		}
	}

	_, ok := e.edit(func(ed *buffer.Edit) {
		for k := len(idx) - 1; k >= 0; k-- {
			ed.Delete(spans[idx[k]])
		}
	}, func(*buffer.ChangeSet) {
		e.CollapseToStart()
	})
	return ok
}
