// internal/modehandler/modehandler.go
package modehandler

import (
	"slices"
	"time"

	"github.com/bethropolis/tidehx/internal/core"
	"github.com/bethropolis/tidehx/internal/core/find"
	"github.com/bethropolis/tidehx/internal/event"
	"github.com/bethropolis/tidehx/internal/input"
	"github.com/bethropolis/tidehx/internal/logger"
)

// Mode is the active input mode of a view.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeGoto
	ModeMatch
	ModeSearch
)

var modeNames = map[Mode]string{
	ModeNormal: "NORMAL",
	ModeInsert: "INSERT",
	ModeVisual: "VISUAL",
	ModeGoto:   "GOTO",
	ModeMatch:  "MATCH",
	ModeSearch: "SEARCH",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// StatusDisplay renders the mode indicator and short messages.
type StatusDisplay interface {
	ShowMode(mode, extra string)
	SetTemporaryMessage(format string, args ...interface{})
}

// CaretStyler switches between the block caret and the bar caret used while
// inserting.
type CaretStyler interface {
	SetBarCaret(bar bool)
}

// ModeHandler owns the mode state machine of one view and routes keys to the
// active mode.
type ModeHandler struct {
	// Dependencies
	editor       *core.Editor
	eventManager *event.Manager
	statusBar    StatusDisplay
	caret        CaretStyler

	searchTimeout time.Duration
	patternCache  *find.PatternCache

	// Internal State
	currentMode Mode
	pending     PendingInput
	tries       map[Mode]*input.Trie[input.Command]
	search      *find.Engine // Live session while in ModeSearch
	lastSearch  *find.Engine // Finished session used by n/N
	noYank      bool         // Set while handling an Alt-modified key
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor       *core.Editor
	EventManager *event.Manager
	StatusBar    StatusDisplay
	Caret        CaretStyler // Optional
	// SearchTimeout bounds one regex evaluation. Zero means no limit.
	SearchTimeout time.Duration
	PatternCache  *find.PatternCache // Optional
}

// New creates a new ModeHandler in Normal mode.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.EventManager == nil || cfg.StatusBar == nil {
		// Should ideally return an error, but panic indicates programming error during setup
		panic("modehandler.New: Missing required dependencies in Config")
	}
	if cfg.PatternCache == nil {
		cfg.PatternCache = find.NewPatternCache()
	}
	return &ModeHandler{
		editor:        cfg.Editor,
		eventManager:  cfg.EventManager,
		statusBar:     cfg.StatusBar,
		caret:         cfg.Caret,
		searchTimeout: cfg.SearchTimeout,
		patternCache:  cfg.PatternCache,
		currentMode:   ModeNormal,
		pending:       Idle{},
		tries: map[Mode]*input.Trie[input.Command]{
			ModeNormal: input.BuildTrie(input.NormalBindings),
			ModeVisual: input.BuildTrie(input.VisualBindings),
			ModeGoto:   input.BuildTrie(input.GotoBindings),
			ModeMatch:  input.BuildTrie(input.MatchBindings),
		},
	}
}

// CurrentMode returns the active mode.
func (mh *ModeHandler) CurrentMode() Mode { return mh.currentMode }

// Pending returns the partial command state.
func (mh *ModeHandler) Pending() PendingInput { return mh.pending }

// Search returns the live search session, or nil outside Search mode.
func (mh *ModeHandler) Search() *find.Engine { return mh.search }

// SetSearchTimeout changes the regex time limit for later sessions.
func (mh *ModeHandler) SetSearchTimeout(d time.Duration) { mh.searchTimeout = d }

// HandleKey routes a translated key. Host keys are not handled here.
func (mh *ModeHandler) HandleKey(k input.Key) bool {
	switch k.Kind {
	case input.KeyChar:
		mh.noYank = k.Alt
		defer func() { mh.noYank = false }()
		return mh.HandleChar(k.Rune)
	case input.KeyEscape:
		return mh.HandleEscape()
	case input.KeyEnter:
		return mh.HandleEnter()
	case input.KeyBackspace:
		return mh.HandleBackspace()
	}
	return false
}

// HandleChar feeds one typed character to the active mode. Every character
// is consumed, including unbound ones.
func (mh *ModeHandler) HandleChar(r rune) bool {
	before := mh.editor.Selections().Len()
	var handled bool
	switch mh.currentMode {
	case ModeNormal:
		handled = mh.handleNormal(r)
	case ModeInsert:
		handled = mh.handleInsert(r)
	case ModeVisual:
		handled = mh.handleVisual(r)
	case ModeGoto:
		handled = mh.handleGoto(r)
	case ModeMatch:
		handled = mh.handleMatch(r)
	case ModeSearch:
		handled = mh.handleSearch(r)
	default:
		logger.Debugf("Warning: Unknown input mode: %v", mh.currentMode)
	}
	mh.notifySelections(before)
	return handled
}

// HandleBackspace shrinks the search query or the Goto count, or deletes
// backward while inserting.
func (mh *ModeHandler) HandleBackspace() bool {
	switch mh.currentMode {
	case ModeSearch:
		if mh.search.Backspace() {
			mh.applySearch()
		}
		return true
	case ModeGoto:
		mh.pending = AwaitingCount{N: countOf(mh.pending) / 10}
		mh.showStatus()
		return true
	case ModeInsert:
		before := mh.editor.Selections().Len()
		mh.editor.DeleteBackward()
		mh.notifySelections(before)
		return true
	}
	return false
}

// HandleEnter finishes a search or inserts a line break.
func (mh *ModeHandler) HandleEnter() bool {
	switch mh.currentMode {
	case ModeSearch:
		mh.finishSearch()
		return true
	case ModeInsert:
		mh.editor.InsertNewline()
		return true
	}
	return false
}

// HandleEscape cancels whatever is in progress and returns to Normal mode.
func (mh *ModeHandler) HandleEscape() bool {
	before := mh.editor.Selections().Len()
	defer mh.notifySelections(before)

	switch mh.currentMode {
	case ModeInsert:
		if !mh.editor.Selections().Restore() {
			mh.editor.Collapse()
		}
	case ModeSearch:
		mh.editor.Selections().Restore()
	case ModeNormal:
		mh.resetPending()
		mh.showStatus()
		return true
	}
	mh.EnterNormal()
	return true
}

// EnterNormal switches to Normal mode.
func (mh *ModeHandler) EnterNormal() {
	if mh.currentMode == ModeInsert {
		mh.editor.EndGroup()
	}
	mh.search = nil
	mh.setMode(ModeNormal)
}

// EnterInsert switches to Insert mode. Edits until the next mode change
// form one undo step.
func (mh *ModeHandler) EnterInsert() {
	mh.editor.BeginGroup()
	mh.setMode(ModeInsert)
}

// EnterVisual switches to Visual mode.
func (mh *ModeHandler) EnterVisual() { mh.setMode(ModeVisual) }

// EnterGoto switches to Goto mode carrying count as the line number.
func (mh *ModeHandler) EnterGoto(count int) {
	mh.setMode(ModeGoto)
	if count > 0 {
		mh.pending = AwaitingCount{N: count}
		mh.showStatus()
	}
}

// EnterMatch switches to Match mode.
func (mh *ModeHandler) EnterMatch() { mh.setMode(ModeMatch) }

func (mh *ModeHandler) setMode(m Mode) {
	from := mh.currentMode
	mh.currentMode = m
	mh.resetPending()
	if mh.caret != nil {
		mh.caret.SetBarCaret(m == ModeInsert)
	}
	mh.showStatus()
	if from != m {
		logger.Debugf("ModeHandler: %s -> %s", from, m)
		mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{From: from.String(), To: m.String()})
	}
}

func (mh *ModeHandler) resetPending() {
	mh.pending = Idle{}
	for _, t := range mh.tries {
		t.Reset()
	}
}

func (mh *ModeHandler) showStatus() {
	extra := mh.pending.String()
	if mh.currentMode == ModeSearch && mh.search != nil {
		extra = mh.search.Describe()
	}
	mh.statusBar.ShowMode(mh.currentMode.String(), extra)
}

func (mh *ModeHandler) notifySelections(before int) {
	if n := mh.editor.Selections().Len(); n != before {
		mh.eventManager.Dispatch(event.TypeSelectionsChanged, event.SelectionsChangedData{Count: n})
	}
}

// advance runs the shared count and trie handling of the command modes. ok
// is false while a sequence or count is still being typed, or when the key
// was not bound.
func (mh *ModeHandler) advance(r rune) (cmd input.Command, count int, ok bool) {
	trie := mh.tries[mh.currentMode]
	count = countOf(mh.pending)

	if !trie.Pending() && r >= '0' && r <= '9' && (r != '0' || count > 0) {
		mh.pending = AwaitingCount{N: withDigit(count, r)}
		mh.showStatus()
		return input.CmdUnknown, 0, false
	}

	res, cmd := trie.TryAdvance(r)
	switch res {
	case input.Pending:
		mh.pending = AwaitingTrieContinuation{Count: count}
		mh.showStatus()
		return input.CmdUnknown, 0, false
	case input.NoMatch:
		logger.DebugTagf("input", "ModeHandler: unbound key %q in %s", r, mh.currentMode)
		mh.resetPending()
		mh.showStatus()
		return input.CmdUnknown, count, false
	}
	mh.pending = Idle{}
	return cmd, count, true
}

// repeat runs cmd count times, at least once. It stops early when the mode
// changes or a pass leaves the text and selections as they were.
func (mh *ModeHandler) repeat(cmd input.Command, count int, run func(input.Command, int)) {
	mode := mh.currentMode
	n := count
	if n < 1 {
		n = 1
	}
	for i := 0; i < n && mh.currentMode == mode; i++ {
		version := mh.editor.Snapshot().Version()
		sels := mh.editor.Selections().All()
		run(cmd, count)
		if mh.editor.Snapshot().Version() == version && slices.Equal(sels, mh.editor.Selections().All()) {
			break
		}
	}
	if mh.currentMode == mode {
		mh.showStatus()
	}
}
