// internal/core/editor_methods.go
package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/tidehx/internal/core/text"
	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/types"
)

// ErrNoOpener is returned by GotoFile when the host cannot open files.
var ErrNoOpener = errors.New("no file opener installed")

// ViewLine names a line relative to the visible area.
type ViewLine int

const (
	ViewTop ViewLine = iota
	ViewCenter
	ViewBottom
)

// GotoLine moves every selection to a caret at the start of line n, counted
// from 1. Values below 1 select the first line, values past the end the last.
func (e *Editor) GotoLine(n int) {
	snap := e.Snapshot()
	idx := n - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= snap.LineCount() {
		idx = snap.LineCount() - 1
	}
	start := snap.Line(idx).Start
	e.sels.Transform(func(types.Selection) types.Selection {
		return types.Caret(types.At(start))
	})
}

// GotoFileEnd moves every selection to a caret at the end of the document.
func (e *Editor) GotoFileEnd() {
	end := e.Snapshot().Len()
	e.sels.Transform(func(types.Selection) types.Selection {
		return types.Caret(types.At(end))
	})
}

// GotoLineStart moves every selection to the start of its active line.
func (e *Editor) GotoLineStart() {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		return types.Caret(types.At(snap.LineFromOffset(s.Active.Offset).Start))
	})
}

// GotoLineEnd moves every selection to the end of its active line.
func (e *Editor) GotoLineEnd() {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		return types.Caret(types.At(snap.LineFromOffset(s.Active.Offset).End))
	})
}

// GotoFirstNonWhitespace moves every selection to the first non-blank
// character of its active line.
func (e *Editor) GotoFirstNonWhitespace() {
	snap := e.Snapshot()
	e.sels.Transform(func(s types.Selection) types.Selection {
		line := snap.LineFromOffset(s.Active.Offset)
		indent := text.Indent(snap.Text(line.Extent()))
		return types.Caret(types.At(line.Start + len(indent)))
	})
}

// GotoViewLine leaves a single caret at the start of the top, middle or
// bottom visible line. Without a viewport nothing moves.
func (e *Editor) GotoViewLine(which ViewLine) bool {
	if e.viewport == nil {
		return false
	}
	snap := e.Snapshot()
	first, last := e.viewport.VisibleLines(snap.LineCount())
	n := first
	switch which {
	case ViewCenter:
		n = first + (last-first+1)/2
	case ViewBottom:
		n = last
	}
	if n > last {
		n = last
	}
	e.sels.Replace([]types.Selection{types.Caret(types.At(snap.Line(n).Start))}, 0)
	return true
}

// GotoFile opens every file named by a non-empty selection. Relative names
// are tried against the working directory and then the document's directory.
// It returns the number of files opened.
func (e *Editor) GotoFile() (int, error) {
	if e.opener == nil {
		return 0, ErrNoOpener
	}
	snap := e.Snapshot()
	opened := 0
	var errs []error
	for _, s := range e.sels.All() {
		if s.IsEmpty() {
			continue
		}
		name := strings.TrimSpace(snap.Text(s.Span()))
		path, ok := e.resolveFile(name)
		if !ok {
			logger.DebugTagf("core", "Editor: goto-file skipped missing '%s'", name)
			continue
		}
		if err := e.opener.OpenFile(path); err != nil {
			errs = append(errs, fmt.Errorf("open '%s': %w", path, err))
			continue
		}
		opened++
	}
	return opened, errors.Join(errs...)
}

func (e *Editor) resolveFile(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	candidates := []string{name}
	if !filepath.IsAbs(name) && e.doc.FilePath() != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(e.doc.FilePath()), name))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}
