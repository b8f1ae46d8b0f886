package modehandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/core"
	"github.com/bethropolis/tidehx/internal/event"
	"github.com/bethropolis/tidehx/internal/input"
	"github.com/bethropolis/tidehx/internal/types"
)

type fakeStatus struct {
	mode  string
	extra string
	msgs  []string
}

func (f *fakeStatus) ShowMode(mode, extra string) { f.mode, f.extra = mode, extra }

func (f *fakeStatus) SetTemporaryMessage(format string, args ...interface{}) {
	f.msgs = append(f.msgs, fmt.Sprintf(format, args...))
}

type fakeCaret struct{ bar bool }

func (f *fakeCaret) SetBarCaret(bar bool) { f.bar = bar }

type harness struct {
	mh     *ModeHandler
	ed     *core.Editor
	status *fakeStatus
	caret  *fakeCaret
	events *event.Manager
}

func newHarness(text string) *harness {
	events := event.NewManager()
	ed := core.NewEditor(buffer.NewDocument(text), core.Options{Events: events})
	h := &harness{ed: ed, status: &fakeStatus{}, caret: &fakeCaret{}, events: events}
	h.mh = New(Config{Editor: ed, EventManager: events, StatusBar: h.status, Caret: h.caret})
	return h
}

func (h *harness) keys(s string) {
	for _, r := range s {
		h.mh.HandleChar(r)
	}
}

func (h *harness) text() string { return h.ed.Snapshot().String() }

func (h *harness) primary() types.Selection { return h.ed.Selections().Primary() }

func (h *harness) set(sels ...types.Selection) { h.ed.Selections().Replace(sels, 0) }

func span(start, end int) types.Selection {
	return types.NewSelection(types.NewSpan(start, end), false)
}

func rev(start, end int) types.Selection {
	return types.NewSelection(types.NewSpan(start, end), true)
}

func caret(off int) types.Selection { return types.Caret(types.At(off)) }

func TestNew_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() { New(Config{}) })
}

func TestInsert_RestoresTranslatedSelections(t *testing.T) {
	h := newHarness("hello")
	h.keys("i")
	assert.Equal(t, ModeInsert, h.mh.CurrentMode())
	assert.True(t, h.caret.bar)
	assert.Equal(t, "INSERT", h.status.mode)

	h.keys("ab")
	assert.Equal(t, "abhello", h.text())

	require.True(t, h.mh.HandleEscape())
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
	assert.False(t, h.caret.bar)
	assert.Equal(t, caret(2), h.primary())

	h.keys("u")
	assert.Equal(t, "hello", h.text(), "an insert session is one undo step")
	h.keys("U")
	assert.Equal(t, "abhello", h.text())
}

func TestAppend_AfterSelection(t *testing.T) {
	h := newHarness("hello world")
	h.keys("w")
	require.Equal(t, span(0, 6), h.primary())

	h.keys("a!")
	assert.Equal(t, "hello !world", h.text())
	h.mh.HandleEscape()
	assert.Equal(t, span(0, 7), h.primary())
}

func TestOpenLine_CollapsesOnEscape(t *testing.T) {
	h := newHarness("  foo")
	h.keys("ox")
	assert.Equal(t, "  foo\n  x", h.text())
	h.mh.HandleEscape()
	assert.Equal(t, caret(9), h.primary())
}

func TestInsert_EnterAndBackspace(t *testing.T) {
	h := newHarness("ab")
	h.set(span(0, 1))
	h.keys("a")
	require.True(t, h.mh.HandleEnter())
	assert.Equal(t, "a\nb", h.text())
	require.True(t, h.mh.HandleBackspace())
	assert.Equal(t, "ab", h.text())
	h.mh.HandleChar('\x01')
	assert.Equal(t, "ab", h.text(), "control characters are not inserted")
}

func TestNormal_CountRepeats(t *testing.T) {
	h := newHarness("abcdef")
	h.keys("3")
	assert.Equal(t, AwaitingCount{N: 3}, h.mh.Pending())
	assert.Equal(t, "3", h.status.extra)
	h.keys("l")
	assert.Equal(t, caret(3), h.primary())
	assert.Equal(t, Idle{}, h.mh.Pending())

	h = newHarness("foo bar baz")
	h.keys("2w")
	assert.Equal(t, span(4, 8), h.primary())
}

func TestNormal_CountSaturates(t *testing.T) {
	h := newHarness("a\nb\nc")
	h.keys("99999999999999999999")
	assert.Equal(t, AwaitingCount{N: MaxCount}, h.mh.Pending())
	h.keys("j")
	assert.Equal(t, caret(4), h.primary())
	assert.Equal(t, Idle{}, h.mh.Pending())

	h.keys("g")
	h.keys("1234567")
	assert.Equal(t, AwaitingCount{N: MaxCount}, h.mh.Pending())
	h.keys("g")
	assert.Equal(t, caret(4), h.primary(), "line past the end goes to the last line")
}

func TestRepeat_StopsWhenNothingChanges(t *testing.T) {
	h := newHarness("abc")
	calls := 0
	h.mh.repeat(input.CmdUnknown, MaxCount, func(input.Command, int) { calls++ })
	assert.Equal(t, 1, calls)

	calls = 0
	h.mh.repeat(input.CmdUnknown, MaxCount, func(input.Command, int) {
		calls++
		h.ed.MoveRight()
	})
	assert.Equal(t, 4, calls, "the last pass finds the caret already at the end")
	assert.Equal(t, caret(3), h.primary())
}

func TestNormal_MultiKeySequence(t *testing.T) {
	h := newHarness("a\nb\nc")
	h.mh.tries[ModeNormal].Add("zj", input.CmdMoveDown)
	h.keys("2z")
	assert.Equal(t, AwaitingTrieContinuation{Count: 2}, h.mh.Pending())
	assert.Equal(t, "2…", h.status.extra)
	h.keys("j")
	assert.Equal(t, Idle{}, h.mh.Pending())
	assert.Equal(t, caret(4), h.primary())

	h.keys("zq")
	assert.Equal(t, Idle{}, h.mh.Pending(), "a broken sequence is dropped")
	assert.Equal(t, caret(4), h.primary())
}

func TestNormal_UnboundKeysAreConsumed(t *testing.T) {
	h := newHarness("abc")
	assert.True(t, h.mh.HandleChar('Z'))
	assert.True(t, h.mh.HandleChar('0'))
	assert.Equal(t, "abc", h.text())
	assert.Equal(t, Idle{}, h.mh.Pending())

	h.keys("4")
	h.mh.HandleEscape()
	assert.Equal(t, Idle{}, h.mh.Pending(), "escape drops a pending count")
}

func TestNormal_DeleteYanksUnlessAlt(t *testing.T) {
	h := newHarness("foo bar")
	h.keys("w")
	h.keys("d")
	assert.Equal(t, "bar", h.text())
	require.Len(t, h.ed.Register().Items(), 1)
	assert.Equal(t, "foo ", h.ed.Register().Items()[0].Text)

	h.set(span(0, 3))
	require.True(t, h.mh.HandleKey(input.Key{Kind: input.KeyChar, Rune: 'd', Alt: true}))
	assert.Equal(t, "", h.text())
	assert.Equal(t, "foo ", h.ed.Register().Items()[0].Text, "alt-d leaves the register alone")

	h.keys("p")
	assert.Equal(t, "foo ", h.text())
}

func TestNormal_ChangeEntersInsert(t *testing.T) {
	h := newHarness("foo bar")
	h.keys("wcX")
	assert.Equal(t, ModeInsert, h.mh.CurrentMode())
	assert.Equal(t, "Xbar", h.text())
}

func TestNormal_MultiCursor(t *testing.T) {
	h := newHarness("ab\nab\nab")
	h.keys("2C")
	assert.Equal(t, 3, h.ed.Selections().Len())
	h.keys("iX")
	assert.Equal(t, "Xab\nXab\nXab", h.text())
	h.mh.HandleEscape()
	h.keys(",")
	assert.Equal(t, 1, h.ed.Selections().Len())
}

func TestNormal_SelectionEvents(t *testing.T) {
	h := newHarness("ab\nab")
	var counts []int
	h.events.Subscribe(event.TypeSelectionsChanged, func(e event.Event) bool {
		counts = append(counts, e.Data.(event.SelectionsChangedData).Count)
		return false
	})
	h.keys("C,")
	assert.Equal(t, []int{2, 1}, counts)
}

func TestModeEvents(t *testing.T) {
	h := newHarness("x")
	var got []event.ModeChangedData
	h.events.Subscribe(event.TypeModeChanged, func(e event.Event) bool {
		got = append(got, e.Data.(event.ModeChangedData))
		return false
	})
	h.keys("i")
	h.mh.HandleEscape()
	assert.Equal(t, []event.ModeChangedData{{From: "NORMAL", To: "INSERT"}, {From: "INSERT", To: "NORMAL"}}, got)
}

func TestVisual_ExtendYankAndDelete(t *testing.T) {
	h := newHarness("abcdef")
	h.keys("v")
	assert.Equal(t, ModeVisual, h.mh.CurrentMode())
	h.keys("2l")
	assert.Equal(t, span(0, 2), h.primary())
	h.keys("y")
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
	assert.Equal(t, "ab", h.ed.Register().Items()[0].Text)

	h.set(caret(0))
	h.keys("vld")
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
	assert.Equal(t, "bcdef", h.text())

	h.keys("vlc")
	assert.Equal(t, ModeInsert, h.mh.CurrentMode())
	assert.Equal(t, "cdef", h.text())
}

func TestVisual_EscapeAndToggle(t *testing.T) {
	h := newHarness("abc")
	h.keys("vl")
	h.mh.HandleEscape()
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
	h.keys("vv")
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
}

func TestGoto_Targets(t *testing.T) {
	h := newHarness("a\nb\nc\nd")
	h.keys("3g")
	assert.Equal(t, ModeGoto, h.mh.CurrentMode())
	assert.Equal(t, AwaitingCount{N: 3}, h.mh.Pending(), "a Normal count carries into Goto")
	h.keys("g")
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
	assert.Equal(t, caret(4), h.primary())

	h.keys("ge")
	assert.Equal(t, caret(7), h.primary())

	h.keys("g2g")
	assert.Equal(t, caret(2), h.primary())

	h.keys("g12")
	h.mh.HandleBackspace()
	assert.Equal(t, AwaitingCount{N: 1}, h.mh.Pending())
	h.keys("g")
	assert.Equal(t, caret(0), h.primary())

	h.keys("gj")
	assert.Equal(t, caret(2), h.primary())

	h.keys("gz")
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
	assert.Equal(t, caret(2), h.primary())
}

func TestMatch_BracketAndSurround(t *testing.T) {
	h := newHarness("foo(bar)baz")
	h.set(caret(3))
	h.keys("mm")
	assert.Equal(t, caret(7), h.primary())
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())

	h = newHarness("catdogfox")
	h.set(span(0, 3), span(5, 8))
	h.keys("ms")
	assert.Equal(t, AwaitingSurroundChar{Op: SurroundAdd}, h.mh.Pending())
	h.keys("(")
	assert.Equal(t, "(cat)do(gfo)x", h.text())
	h.keys("md(")
	assert.Equal(t, "catdogfox", h.text())
}

func TestMatch_ReplaceAndObjects(t *testing.T) {
	h := newHarness("(cat)")
	h.set(span(1, 4))
	h.keys("mr(")
	assert.Equal(t, AwaitingReplaceTo{From: '('}, h.mh.Pending())
	h.keys("[")
	assert.Equal(t, "[cat]", h.text())
	assert.Equal(t, span(1, 4), h.primary())

	h = newHarness("f(a[b]c)")
	h.set(caret(4))
	h.keys("mi(")
	assert.Equal(t, span(2, 7), h.primary())
	h.set(caret(4))
	h.keys("ma[")
	assert.Equal(t, span(3, 6), h.primary())
}

func TestMatch_UnknownInputReturnsToNormal(t *testing.T) {
	h := newHarness("abc")
	h.keys("mq")
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())

	h.keys("msx")
	assert.Equal(t, "abc", h.text())
	assert.Contains(t, h.status.msgs, "No pair for 'x'")
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
}

func TestSearch_SelectOneAndCycle(t *testing.T) {
	h := newHarness("foo bar foo baz")
	h.keys("/foo")
	assert.Equal(t, ModeSearch, h.mh.CurrentMode())
	assert.Equal(t, "foo [2]", h.status.extra)
	assert.Equal(t, rev(0, 3), h.primary())
	assert.Equal(t, 1, h.ed.Selections().Len())

	require.True(t, h.mh.HandleEnter())
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
	assert.False(t, h.ed.Selections().HasSaved())

	h.keys("n")
	assert.Equal(t, rev(8, 11), h.primary())
	h.keys("n")
	assert.Equal(t, rev(0, 3), h.primary(), "cycling wraps")
	h.keys("N")
	assert.Equal(t, rev(8, 11), h.primary())
}

func TestSearch_SelectAllKeepsMatches(t *testing.T) {
	h := newHarness("foo bar foo baz")
	h.keys("sba")
	assert.Equal(t, []types.Selection{rev(4, 6), rev(12, 14)}, h.ed.Selections().All())
	h.mh.HandleEnter()
	assert.Equal(t, 2, h.ed.Selections().Len())
}

func TestSearch_RestrictedToSelections(t *testing.T) {
	h := newHarness("foo bar foo baz")
	h.set(span(0, 7))
	h.keys("so")
	assert.Equal(t, []types.Selection{rev(1, 2), rev(2, 3)}, h.ed.Selections().All())
}

func TestSearch_EscapeRestores(t *testing.T) {
	h := newHarness("foo bar foo baz")
	h.set(caret(5))
	h.keys("/baz")
	assert.Equal(t, rev(12, 15), h.primary())
	h.mh.HandleEscape()
	assert.Equal(t, ModeNormal, h.mh.CurrentMode())
	assert.Equal(t, caret(5), h.primary())
	assert.Nil(t, h.mh.Search())
}

func TestSearch_InvalidPattern(t *testing.T) {
	h := newHarness("a(b")
	var last event.SearchUpdatedData
	h.events.Subscribe(event.TypeSearchUpdated, func(e event.Event) bool {
		last = e.Data.(event.SearchUpdatedData)
		return false
	})
	h.keys("/(")
	assert.True(t, last.Invalid)
	assert.Equal(t, "( [invalid]", h.status.extra)
	assert.Equal(t, caret(0), h.primary())

	h.mh.HandleEnter()
	assert.Equal(t, caret(0), h.primary())
	h.keys("n")
	assert.Contains(t, h.status.msgs, "No search term")
}

func TestSearch_EmptyQueryRestoresCaret(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[ab \n]{0,20}`).Draw(t, "text")
		start := rapid.IntRange(0, len(text)).Draw(t, "start")
		query := rapid.StringMatching(`[ab]{1,4}`).Draw(t, "query")
		selectAll := rapid.Bool().Draw(t, "selectAll")

		h := newHarness(text)
		h.set(caret(start))
		h.mh.EnterSearch(selectAll)
		h.keys(query)
		for range query {
			h.mh.HandleBackspace()
		}

		assert.Empty(t, h.mh.Search().Matches())
		assert.Equal(t, []types.Selection{caret(start)}, h.ed.Selections().All())
	})
}
