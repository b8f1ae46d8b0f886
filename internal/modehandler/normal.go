package modehandler

import (
	"github.com/bethropolis/tidehx/internal/input"
)

func (mh *ModeHandler) handleNormal(r rune) bool {
	cmd, count, ok := mh.advance(r)
	if !ok {
		return true
	}
	mh.repeat(cmd, count, mh.runNormal)
	return true
}

func (mh *ModeHandler) runNormal(cmd input.Command, count int) {
	ed := mh.editor
	if mh.runShared(cmd) {
		return
	}
	switch cmd {
	case input.CmdWordForward:
		ed.WordForward(false)
	case input.CmdBigWordForward:
		ed.WordForward(true)
	case input.CmdWordBackward:
		ed.WordBackward(false)
	case input.CmdBigWordBackward:
		ed.WordBackward(true)

	case input.CmdInsert:
		ed.Selections().Save()
		ed.CollapseToStart()
		mh.EnterInsert()
	case input.CmdAppend:
		ed.Selections().Save()
		ed.CollapseToEnd()
		mh.EnterInsert()
	case input.CmdOpenBelow:
		ed.OpenLine(false)
		mh.EnterInsert()
	case input.CmdOpenAbove:
		ed.OpenLine(true)
		mh.EnterInsert()

	case input.CmdPaste:
		if !ed.Paste() {
			mh.statusBar.SetTemporaryMessage("Nothing to paste")
		}
	case input.CmdAddCaretBelow:
		ed.AddCaretBelow()
	case input.CmdAddCaretAbove:
		ed.AddCaretAbove()
	case input.CmdClearSecondary:
		ed.ClearSecondary()
	case input.CmdUndo:
		if !ed.Undo() {
			mh.statusBar.SetTemporaryMessage("Already at oldest change")
		}
	case input.CmdRedo:
		if !ed.Redo() {
			mh.statusBar.SetTemporaryMessage("Already at newest change")
		}

	case input.CmdVisual:
		mh.EnterVisual()
	case input.CmdGoto:
		mh.EnterGoto(count)
	case input.CmdMatch:
		mh.EnterMatch()
	case input.CmdSearch:
		mh.EnterSearch(false)
	case input.CmdSearchAll:
		mh.EnterSearch(true)
	case input.CmdSearchNext:
		mh.searchNext(true)
	case input.CmdSearchPrev:
		mh.searchNext(false)
	}
}
