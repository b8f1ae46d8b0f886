package app

import (
	"github.com/bethropolis/tidehx/internal/core/cursor"
	"github.com/bethropolis/tidehx/internal/logger"
)

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d)", width, height)

	a.tuiManager.Clear()
	a.view.Draw(a.tuiManager)
	a.updateStatusBarContent()
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	doc := a.editor.Document()
	a.statusBar.SetFileInfo(doc.FilePath(), doc.IsModified())

	snap := a.editor.Snapshot()
	active := a.editor.Selections().Primary().Active
	line := snap.LineFromOffset(active.Offset).Number
	col := cursor.VisualColumn(snap, active, a.editor.TabWidth())
	a.statusBar.SetCursorInfo(line, col, a.editor.Selections().Len())
}
