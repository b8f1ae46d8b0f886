package modehandler

import (
	"github.com/bethropolis/tidehx/internal/core/match"
	"github.com/bethropolis/tidehx/internal/input"
)

// handleMatch runs the Match mode state machine: a command key, then up to
// two delimiter characters, then back to Normal.
func (mh *ModeHandler) handleMatch(r rune) bool {
	ed := mh.editor
	switch p := mh.pending.(type) {
	case AwaitingSurroundChar:
		var ok bool
		if p.Op == SurroundDelete {
			ok = ed.DeleteSurround(r)
		} else {
			ok = ed.Surround(r)
		}
		mh.reportPair(r, ok)
		mh.EnterNormal()
		return true
	case AwaitingReplaceFrom:
		if _, ok := match.PairFor(r); !ok {
			mh.reportPair(r, false)
			mh.EnterNormal()
			return true
		}
		mh.pending = AwaitingReplaceTo{From: r}
		mh.showStatus()
		return true
	case AwaitingReplaceTo:
		mh.reportPair(r, ed.ReplaceSurround(p.From, r))
		mh.EnterNormal()
		return true
	case AwaitingObjectChar:
		mh.reportPair(r, ed.SelectTextObject(r, p.Around))
		mh.EnterNormal()
		return true
	}

	res, cmd := mh.tries[ModeMatch].TryAdvance(r)
	if res != input.Matched {
		if res == input.Pending {
			mh.pending = AwaitingTrieContinuation{}
			mh.showStatus()
			return true
		}
		mh.EnterNormal()
		return true
	}

	switch cmd {
	case input.CmdMatchBracket:
		ed.MatchBracket()
		mh.EnterNormal()
		return true
	case input.CmdSurroundAdd:
		mh.pending = AwaitingSurroundChar{Op: SurroundAdd}
	case input.CmdSurroundDelete:
		mh.pending = AwaitingSurroundChar{Op: SurroundDelete}
	case input.CmdSurroundReplace:
		mh.pending = AwaitingReplaceFrom{}
	case input.CmdSelectAround:
		mh.pending = AwaitingObjectChar{Around: true}
	case input.CmdSelectInside:
		mh.pending = AwaitingObjectChar{Around: false}
	}
	mh.showStatus()
	return true
}

func (mh *ModeHandler) reportPair(r rune, ok bool) {
	if ok {
		return
	}
	if _, known := match.PairFor(r); !known {
		mh.statusBar.SetTemporaryMessage("No pair for '%c'", r)
		return
	}
	mh.statusBar.SetTemporaryMessage("No enclosing '%c' pair", r)
}
