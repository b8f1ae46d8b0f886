package modehandler

import (
	"github.com/bethropolis/tidehx/internal/core/find"
	"github.com/bethropolis/tidehx/internal/core/text"
	"github.com/bethropolis/tidehx/internal/event"
	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/types"
)

// EnterSearch starts a search session over the current search domain. With
// selectAll every match becomes a selection, otherwise only the primary.
func (mh *ModeHandler) EnterSearch(selectAll bool) {
	ed := mh.editor
	ed.Selections().Save()
	mh.search = find.New(find.Options{
		Snapshot:  ed.Snapshot(),
		Domain:    ed.SearchDomain(),
		Start:     ed.Selections().Primary().Active.Offset,
		SelectAll: selectAll,
		Timeout:   mh.searchTimeout,
		Cache:     mh.patternCache,
	})
	mh.setMode(ModeSearch)
	logger.Debugf("ModeHandler: entering Search (select all: %v)", selectAll)
}

// handleSearch appends r to the query. Control characters are dropped.
func (mh *ModeHandler) handleSearch(r rune) bool {
	if text.IsControl(r) {
		return true
	}
	mh.search.Append(r)
	mh.applySearch()
	return true
}

// applySearch turns the current matches into selections. Without matches
// the pre-search selections come back.
func (mh *ModeHandler) applySearch() {
	s := mh.search
	sels := mh.editor.Selections()
	matches := s.Matches()

	switch {
	case len(matches) == 0:
		sels.Revert()
	case s.SelectAll():
		mh.editor.SelectSpans(matches, s.PrimaryIndex())
	default:
		primary, _ := s.Primary()
		mh.editor.SelectSpans([]types.Span{primary}, 0)
	}

	mh.showStatus()
	mh.eventManager.Dispatch(event.TypeSearchUpdated, event.SearchUpdatedData{
		Query:   s.Query(),
		Matches: len(matches),
		Invalid: s.Err() != nil,
	})
}

// finishSearch keeps the match selections and returns to Normal mode. A
// session without matches leaves the original selections.
func (mh *ModeHandler) finishSearch() {
	s := mh.search
	sels := mh.editor.Selections()
	if len(s.Matches()) == 0 {
		sels.Restore()
	} else {
		sels.DropSaved()
		mh.lastSearch = s
	}
	if !s.SelectAll() {
		sels.ClearSecondary()
	}
	mh.EnterNormal()
	mh.eventManager.Dispatch(event.TypeSearchUpdated, event.SearchUpdatedData{})
}
