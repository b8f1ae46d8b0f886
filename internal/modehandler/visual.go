package modehandler

import (
	"github.com/bethropolis/tidehx/internal/input"
)

func (mh *ModeHandler) handleVisual(r rune) bool {
	cmd, count, ok := mh.advance(r)
	if !ok {
		return true
	}
	mh.repeat(cmd, count, mh.runVisual)
	return true
}

func (mh *ModeHandler) runVisual(cmd input.Command, _ int) {
	ed := mh.editor
	switch cmd {
	case input.CmdExtendLeft:
		ed.ExtendLeft()
	case input.CmdExtendRight:
		ed.ExtendRight()
	case input.CmdExtendDown:
		ed.ExtendDown()
	case input.CmdExtendUp:
		ed.ExtendUp()
	case input.CmdExtendWordForward:
		ed.ExtendWordForward(false)
	case input.CmdExtendBigWordForward:
		ed.ExtendWordForward(true)
	case input.CmdExtendWordBackward:
		ed.ExtendWordBackward(false)
	case input.CmdExtendBigWordBackward:
		ed.ExtendWordBackward(true)
	case input.CmdYank:
		mh.runShared(cmd)
		mh.EnterNormal()
	case input.CmdExitVisual:
		mh.EnterNormal()
	default:
		mh.runShared(cmd)
	}
}
