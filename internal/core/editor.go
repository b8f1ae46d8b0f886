// internal/core/editor.go
package core

import (
	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/config"
	"github.com/bethropolis/tidehx/internal/core/clipboard"
	"github.com/bethropolis/tidehx/internal/core/history"
	"github.com/bethropolis/tidehx/internal/core/selection"
	"github.com/bethropolis/tidehx/internal/event"
	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/types"
)

// Viewport reports which lines are on screen.
type Viewport interface {
	VisibleLines(lineCount int) (first, last int)
}

// FileOpener opens a named file in the host.
type FileOpener interface {
	OpenFile(path string) error
}

// Options configures an Editor. Zero values select defaults.
type Options struct {
	TabWidth   int
	MaxHistory int
	Clipboard  clipboard.Clipboard
	// Register is shared between editors when the same pointer is passed.
	Register *clipboard.Register
	Events   *event.Manager
	Viewport Viewport
	Opener   FileOpener
}

// Editor applies selection-engine operations to one document and its
// selection set.
type Editor struct {
	doc      *buffer.Document
	sels     *selection.Manager
	register *clipboard.Register
	clip     clipboard.Clipboard
	history  *history.Manager
	events   *event.Manager
	viewport Viewport
	opener   FileOpener
	tabWidth int

	grouping      bool
	groupHasEntry bool
}

// NewEditor creates an editor over doc with a single caret at offset 0.
func NewEditor(doc *buffer.Document, opts Options) *Editor {
	if opts.TabWidth <= 0 {
		opts.TabWidth = config.DefaultTabWidth
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewMemory()
	}
	if opts.Register == nil {
		opts.Register = &clipboard.Register{}
	}
	return &Editor{
		doc:      doc,
		sels:     selection.NewManager(types.At(0)),
		register: opts.Register,
		clip:     opts.Clipboard,
		history:  history.NewManager(opts.MaxHistory),
		events:   opts.Events,
		viewport: opts.Viewport,
		opener:   opts.Opener,
		tabWidth: opts.TabWidth,
	}
}

// Document returns the edited document.
func (e *Editor) Document() *buffer.Document { return e.doc }

// Snapshot returns the current snapshot.
func (e *Editor) Snapshot() *buffer.MemSnapshot { return e.doc.Snapshot() }

// Selections returns the selection set.
func (e *Editor) Selections() *selection.Manager { return e.sels }

// Register returns the yank register.
func (e *Editor) Register() *clipboard.Register { return e.register }

// TabWidth returns the tab stop width used for visual columns.
func (e *Editor) TabWidth() int { return e.tabWidth }

// SetTabWidth changes the tab stop width. Non-positive values are ignored.
func (e *Editor) SetTabWidth(w int) {
	if w > 0 {
		e.tabWidth = w
	}
}

// SetHistoryLimit changes the number of undo entries kept.
func (e *Editor) SetHistoryLimit(n int) { e.history.SetLimit(n) }

// SetViewport installs the capability used by view-relative goto targets.
func (e *Editor) SetViewport(v Viewport) { e.viewport = v }

// SetOpener installs the capability used by goto-file.
func (e *Editor) SetOpener(o FileOpener) { e.opener = o }

// BeginGroup makes the following edits one undo entry until EndGroup.
func (e *Editor) BeginGroup() {
	e.grouping = true
	e.groupHasEntry = false
}

// EndGroup closes the current undo group.
func (e *Editor) EndGroup() {
	e.grouping = false
	e.groupHasEntry = false
}

func (e *Editor) selectionState() history.SelectionState {
	return history.SelectionState{Selections: e.sels.All(), Primary: e.sels.PrimaryIndex()}
}

// edit builds one batch against the current snapshot and commits it. The
// selections are translated onto the new snapshot, then fix may adjust
// them before the history entry is recorded.
func (e *Editor) edit(build func(*buffer.Edit), fix func(*buffer.ChangeSet)) (*buffer.ChangeSet, bool) {
	before := e.doc.Snapshot()
	selsBefore := e.selectionState()

	ed := buffer.NewEdit(before)
	build(ed)
	if ed.Empty() {
		return nil, false
	}
	cs, err := e.doc.Commit(ed)
	if err != nil {
		logger.Warnf("Editor: edit rejected: %v", err)
		return nil, false
	}
	e.sels.Translate(cs)
	if fix != nil {
		fix(cs)
	}

	e.history.Record(history.Change{
		Before:     before,
		After:      e.doc.Snapshot(),
		SelsBefore: selsBefore,
		SelsAfter:  e.selectionState(),
	}, e.grouping && e.groupHasEntry)
	if e.grouping {
		e.groupHasEntry = true
	}

	e.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{From: cs.From(), To: cs.To(), Changes: cs})
	return cs, true
}

// Undo restores the snapshot and selections from before the last edit.
func (e *Editor) Undo() bool {
	c, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.restore(c.Before, c.SelsBefore)
	return true
}

// Redo reapplies the last undone edit.
func (e *Editor) Redo() bool {
	c, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.restore(c.After, c.SelsAfter)
	return true
}

func (e *Editor) restore(snap *buffer.MemSnapshot, state history.SelectionState) {
	from := e.doc.Snapshot().Version()
	e.doc.Restore(snap)
	e.sels.DropSaved()
	e.sels.Replace(state.Selections, state.Primary)
	e.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{From: from, To: snap.Version()})
}

// Reload points the editor at the document's current snapshot after a load.
// History and secondary selections are discarded.
func (e *Editor) Reload() {
	e.history.Clear()
	e.sels.DropSaved()
	e.sels.Replace([]types.Selection{types.Caret(types.At(0))}, 0)
	e.events.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: e.doc.FilePath()})
}

// Save writes the document to its bound path.
func (e *Editor) Save() error {
	if err := e.doc.Save(""); err != nil {
		return err
	}
	e.events.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.doc.FilePath()})
	return nil
}
