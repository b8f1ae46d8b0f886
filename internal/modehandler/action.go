package modehandler

import (
	"github.com/bethropolis/tidehx/internal/input"
	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/types"
)

// runShared executes commands bound in more than one mode. It reports false
// for commands it does not know.
func (mh *ModeHandler) runShared(cmd input.Command) bool {
	switch cmd {
	case input.CmdMoveLeft:
		mh.editor.MoveLeft()
	case input.CmdMoveRight:
		mh.editor.MoveRight()
	case input.CmdMoveDown:
		mh.editor.MoveDown()
	case input.CmdMoveUp:
		mh.editor.MoveUp()
	case input.CmdLinewise:
		mh.editor.ExtendLinewise()
	case input.CmdYank:
		n := mh.editor.Yank()
		mh.statusBar.SetTemporaryMessage("Yanked %d selection(s)", n)
	case input.CmdDelete:
		mh.deleteSelections(false)
	case input.CmdChange:
		mh.deleteSelections(true)
	default:
		return false
	}
	return true
}

// deleteSelections yanks unless an Alt-modified key triggered it, deletes,
// and then enters Insert or Normal mode.
func (mh *ModeHandler) deleteSelections(insert bool) {
	if !mh.noYank {
		mh.editor.Yank()
	}
	if !mh.editor.Delete() {
		logger.DebugTagf("input", "ModeHandler: nothing to delete")
	}
	if insert {
		mh.EnterInsert()
		return
	}
	if mh.currentMode != ModeNormal {
		mh.EnterNormal()
	}
}

// searchNext selects the next or previous match of the last finished search.
func (mh *ModeHandler) searchNext(forward bool) {
	if mh.lastSearch == nil {
		mh.statusBar.SetTemporaryMessage("No search term")
		return
	}
	mh.lastSearch.Rebind(mh.editor.Snapshot())
	from := mh.editor.Selections().Primary().Active.Offset
	m, ok := mh.lastSearch.Next(from, forward)
	if !ok {
		mh.statusBar.SetTemporaryMessage("Pattern not found: %s", mh.lastSearch.Query())
		return
	}
	mh.editor.SelectSpans([]types.Span{m}, 0)
}
