package find

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/types"
)

func newEngine(text string, start int, domain ...types.Span) *Engine {
	return New(Options{Snapshot: buffer.NewSnapshot(text), Domain: domain, Start: start})
}

func typeQuery(e *Engine, q string) {
	for _, r := range q {
		e.Append(r)
	}
}

func TestEngine_MatchesInDocumentOrder(t *testing.T) {
	e := newEngine("foo bar foo baz foo", 5)
	typeQuery(e, "foo")

	assert.Equal(t, []types.Span{types.NewSpan(0, 3), types.NewSpan(8, 11), types.NewSpan(16, 19)}, e.Matches())
	p, ok := e.Primary()
	require.True(t, ok)
	assert.Equal(t, types.Span{Start: 8, End: 11}, p, "first match at or after the start")
	assert.Equal(t, 1, e.PrimaryIndex())
}

func TestEngine_PrimaryWraps(t *testing.T) {
	e := newEngine("foo bar foo", 9)
	typeQuery(e, "foo")
	p, ok := e.Primary()
	require.True(t, ok)
	assert.Equal(t, types.Span{Start: 0, End: 3}, p)
}

func TestEngine_DomainRestriction(t *testing.T) {
	e := newEngine("ab ab ab ab", 0, types.NewSpan(3, 8))
	typeQuery(e, "ab")
	assert.Equal(t, []types.Span{types.NewSpan(3, 5), types.NewSpan(6, 8)}, e.Matches())
}

func TestEngine_RegexAndMultibyte(t *testing.T) {
	e := newEngine("h\u00e9llo w\u00f6rld", 0)
	typeQuery(e, `w\w+`)
	require.Len(t, e.Matches(), 1)
	assert.Equal(t, types.Span{Start: 7, End: 13}, e.Matches()[0], "rune indices convert to byte offsets")
}

func TestEngine_EmptyMatchesSkipped(t *testing.T) {
	e := newEngine("aaa", 0)
	typeQuery(e, "b*")
	assert.Empty(t, e.Matches())
	assert.NoError(t, e.Err())
}

func TestEngine_InvalidPattern(t *testing.T) {
	e := newEngine("a(b", 0)
	typeQuery(e, "(")
	assert.Empty(t, e.Matches())
	assert.Error(t, e.Err())
	assert.Contains(t, e.Describe(), "[invalid]")

	require.True(t, e.Backspace())
	assert.NoError(t, e.Err())
	assert.False(t, e.Backspace())
}

func TestEngine_ControlCharactersIgnored(t *testing.T) {
	e := newEngine("abc", 0)
	e.Append('\t')
	e.Append(0x1b)
	assert.Equal(t, "", e.Query())
}

func TestEngine_Next(t *testing.T) {
	e := newEngine("x1 x2 x3", 0)
	typeQuery(e, `x\d`)

	m, ok := e.Next(0, true)
	require.True(t, ok)
	assert.Equal(t, 3, m.Start)

	m, _ = e.Next(6, true)
	assert.Equal(t, 0, m.Start, "forward wraps")

	m, _ = e.Next(0, false)
	assert.Equal(t, 6, m.Start, "backward wraps")
}

func TestEngine_Rebind(t *testing.T) {
	e := newEngine("ab ab", 0, types.NewSpan(0, 2))
	typeQuery(e, "ab")
	require.Len(t, e.Matches(), 1)

	e.Rebind(buffer.NewSnapshot("ab ab ab"))
	assert.Len(t, e.Matches(), 3, "the original domain is dropped")
}

func TestPatternCache_ReusesCompilations(t *testing.T) {
	c := NewPatternCache()
	a, err := c.Compile("a+", 0)
	require.NoError(t, err)
	b, err := c.Compile("a+", 0)
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = c.Compile("[", 0)
	assert.Error(t, err)
	_, err = c.Compile("[", 0)
	assert.Error(t, err, "failures are cached too")
}

func TestEngine_EmptyQueryHasNoMatches(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-c ]{0,20}`).Draw(t, "text")
		q := rapid.StringMatching(`[a-c]{1,3}`).Draw(t, "query")
		e := newEngine(text, 0)
		typeQuery(e, q)
		for range q {
			e.Backspace()
		}
		if e.Query() != "" || len(e.Matches()) != 0 {
			t.Fatalf("query %q left matches %v", e.Query(), e.Matches())
		}
		if _, ok := e.Primary(); ok {
			t.Fatal("primary reported for empty query")
		}
	})
}
