package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/types"
)

func TestPairFor(t *testing.T) {
	p, ok := PairFor(')')
	require.True(t, ok)
	assert.Equal(t, Pair{'(', ')'}, p)

	p, ok = PairFor('{')
	require.True(t, ok)
	assert.Equal(t, byte('}'), p.Close)

	p, ok = PairFor('"')
	require.True(t, ok)
	assert.True(t, p.Symmetric())

	_, ok = PairFor('x')
	assert.False(t, ok)
	_, ok = PairFor('世')
	assert.False(t, ok)
}

func TestMatchingBracket_JumpsBothWays(t *testing.T) {
	snap := buffer.NewSnapshot("foo(bar)baz")

	off, ok := MatchingBracket(snap, 3)
	require.True(t, ok)
	assert.Equal(t, 7, off)

	off, ok = MatchingBracket(snap, 7)
	require.True(t, ok)
	assert.Equal(t, 3, off)
}

func TestMatchingBracket_Nesting(t *testing.T) {
	snap := buffer.NewSnapshot("a(b(c)d)e")

	off, ok := MatchingBracket(snap, 1)
	require.True(t, ok)
	assert.Equal(t, 7, off)

	off, ok = MatchingBracket(snap, 8)
	require.True(t, ok)
	assert.Equal(t, 1, off, "close before the caret searches backward")
}

func TestMatchingBracket_SymmetricSearchesForward(t *testing.T) {
	snap := buffer.NewSnapshot(`x"ab"c"`)
	off, ok := MatchingBracket(snap, 1)
	require.True(t, ok)
	assert.Equal(t, 4, off)
}

func TestMatchingBracket_NoDelimiter(t *testing.T) {
	snap := buffer.NewSnapshot("abc")
	_, ok := MatchingBracket(snap, 1)
	assert.False(t, ok)

	_, ok = MatchingBracket(buffer.NewSnapshot("(abc"), 0)
	assert.False(t, ok)
}

func TestFindEnclosing(t *testing.T) {
	snap := buffer.NewSnapshot("f(a, (b), c)")
	paren := Pair{'(', ')'}

	open, close, ok := FindEnclosing(snap, types.NewSpan(9, 10), paren)
	require.True(t, ok)
	assert.Equal(t, 1, open)
	assert.Equal(t, 11, close)

	open, close, ok = FindEnclosing(snap, types.NewSpan(6, 7), paren)
	require.True(t, ok)
	assert.Equal(t, 5, open)
	assert.Equal(t, 7, close)

	_, _, ok = FindEnclosing(snap, types.NewSpan(0, 1), paren)
	assert.False(t, ok)

	_, _, ok = FindEnclosing(snap, types.NewSpan(4, 9), paren)
	require.True(t, ok, "a selection straddling an inner pair is enclosed by the outer one")
}

func TestFindEnclosing_Symmetric(t *testing.T) {
	snap := buffer.NewSnapshot(`say "hi there" now`)
	open, close, ok := FindEnclosing(snap, types.NewSpan(8, 8), Pair{'"', '"'})
	require.True(t, ok)
	assert.Equal(t, 4, open)
	assert.Equal(t, 13, close)
}
