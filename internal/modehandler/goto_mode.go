package modehandler

import (
	"github.com/bethropolis/tidehx/internal/core"
	"github.com/bethropolis/tidehx/internal/input"
	"github.com/bethropolis/tidehx/internal/logger"
)

// handleGoto resolves one goto target and returns to Normal mode. Digits
// extend the line count instead.
func (mh *ModeHandler) handleGoto(r rune) bool {
	if r >= '0' && r <= '9' {
		mh.pending = AwaitingCount{N: withDigit(countOf(mh.pending), r)}
		mh.showStatus()
		return true
	}
	count := countOf(mh.pending)
	res, cmd := mh.tries[ModeGoto].TryAdvance(r)
	if res == input.Pending {
		mh.pending = AwaitingTrieContinuation{Count: count}
		mh.showStatus()
		return true
	}
	if res == input.Matched {
		mh.runGoto(cmd, count)
	}
	mh.EnterNormal()
	return true
}

func (mh *ModeHandler) runGoto(cmd input.Command, count int) {
	ed := mh.editor
	switch cmd {
	case input.CmdGotoLine:
		ed.GotoLine(count)
	case input.CmdGotoFileEnd:
		ed.GotoFileEnd()
	case input.CmdGotoLineStart:
		ed.GotoLineStart()
	case input.CmdGotoLineEnd:
		ed.GotoLineEnd()
	case input.CmdGotoFirstNonWhitespace:
		ed.GotoFirstNonWhitespace()
	case input.CmdGotoViewTop:
		ed.GotoViewLine(core.ViewTop)
	case input.CmdGotoViewCenter:
		ed.GotoViewLine(core.ViewCenter)
	case input.CmdGotoViewBottom:
		ed.GotoViewLine(core.ViewBottom)
	case input.CmdMoveDown, input.CmdMoveUp:
		n := count
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			mh.runShared(cmd)
		}
	case input.CmdGotoFile:
		n, err := ed.GotoFile()
		if err != nil {
			logger.Warnf("ModeHandler: goto file: %v", err)
			mh.statusBar.SetTemporaryMessage("Goto file failed: %v", err)
		} else if n == 0 {
			mh.statusBar.SetTemporaryMessage("No file under selection")
		}
	}
}
