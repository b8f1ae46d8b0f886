package modehandler

import (
	"github.com/bethropolis/tidehx/internal/core/text"
)

// handleInsert types r at every selection. Control characters other than
// tab are swallowed.
func (mh *ModeHandler) handleInsert(r rune) bool {
	if text.IsControl(r) && r != '\t' {
		return true
	}
	mh.editor.InsertText(string(r))
	return true
}
