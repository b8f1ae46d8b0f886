package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTrie_PrefixAndMatch(t *testing.T) {
	tr := NewTrie[string]()
	tr.Add("mm", "bracket")
	tr.Add("ms", "surround")
	tr.Add("x", "line")

	res, _ := tr.TryAdvance('m')
	assert.Equal(t, Pending, res)
	assert.True(t, tr.Pending())

	res, h := tr.TryAdvance('s')
	assert.Equal(t, Matched, res)
	assert.Equal(t, "surround", h)
	assert.False(t, tr.Pending())

	res, h = tr.TryAdvance('x')
	assert.Equal(t, Matched, res)
	assert.Equal(t, "line", h)
}

func TestTrie_NoMatchResets(t *testing.T) {
	tr := NewTrie[int]()
	tr.Add("ab", 1)
	tr.Add("c", 2)

	res, _ := tr.TryAdvance('a')
	require.Equal(t, Pending, res)
	res, _ = tr.TryAdvance('c')
	assert.Equal(t, NoMatch, res, "c is not a child of a")
	assert.False(t, tr.Pending())

	res, h := tr.TryAdvance('c')
	assert.Equal(t, Matched, res)
	assert.Equal(t, 2, h)

	tr.TryAdvance('a')
	tr.Reset()
	res, _ = tr.TryAdvance('b')
	assert.Equal(t, NoMatch, res)
}

func TestTrie_Rebind(t *testing.T) {
	tr := NewTrie[int]()
	tr.Add("q", 1)
	tr.Add("q", 2)
	tr.Add("", 3)
	_, h := tr.TryAdvance('q')
	assert.Equal(t, 2, h)
}

// Sequences of a prefix-free set: every proper prefix is Pending, the last
// key Matches, and a stray key afterward behaves as from a fresh state.
func TestTrie_SequenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		seqs := make(map[string]int)
		for i := 0; i < n; i++ {
			s := rapid.StringMatching(`[a-d]{1,4}`).Draw(t, "seq")
			prefixFree := true
			for other := range seqs {
				if len(other) <= len(s) && s[:len(other)] == other || len(s) <= len(other) && other[:len(s)] == s {
					prefixFree = false
				}
			}
			if prefixFree {
				seqs[s] = i
			}
		}

		tr := NewTrie[int]()
		for s, h := range seqs {
			tr.Add(s, h)
		}
		for s, h := range seqs {
			for i, r := range s {
				res, got := tr.TryAdvance(r)
				if i < len(s)-1 {
					require.Equal(t, Pending, res, "prefix %q of %q", s[:i+1], s)
					continue
				}
				require.Equal(t, Matched, res)
				require.Equal(t, h, got)
			}
			require.False(t, tr.Pending())
		}

		res, _ := tr.TryAdvance('z')
		require.Equal(t, NoMatch, res)
		require.False(t, tr.Pending())
	})
}

func TestBuildTrie_Tables(t *testing.T) {
	for name, table := range map[string][]Binding{
		"normal": NormalBindings, "visual": VisualBindings, "goto": GotoBindings, "match": MatchBindings,
	} {
		tr := BuildTrie(table)
		for _, b := range table {
			var res Result
			var cmd Command
			for _, r := range b.Keys {
				res, cmd = tr.TryAdvance(r)
			}
			assert.Equal(t, Matched, res, "%s %q", name, b.Keys)
			assert.Equal(t, b.Command, cmd, "%s %q", name, b.Keys)
		}
	}
	assert.Equal(t, "surround_add", CmdSurroundAdd.String())
	assert.Equal(t, "unknown", Command(-1).String())
}

func TestInputProcessor_ProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	assert.Equal(t, Key{Kind: KeyChar, Rune: 'x'}, p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.Equal(t, Key{Kind: KeyChar, Rune: 'd', Alt: true}, p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModAlt)))
	assert.Equal(t, Key{Kind: KeyEscape}, p.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, Key{Kind: KeyEnter}, p.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, Key{Kind: KeyBackspace}, p.ProcessEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)))
	assert.Equal(t, Key{Kind: KeyHost, Host: HostSave}, p.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
	assert.Equal(t, Key{}, p.ProcessEvent(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)))
}
