package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidehx/internal/buffer"
)

func chain(texts ...string) []*buffer.MemSnapshot {
	snaps := make([]*buffer.MemSnapshot, len(texts))
	for i, t := range texts {
		snaps[i] = buffer.NewSnapshot(t)
	}
	return snaps
}

func TestManager_UndoRedo(t *testing.T) {
	s := chain("a", "ab", "abc")
	m := NewManager(10)
	m.Record(Change{Before: s[0], After: s[1]}, false)
	m.Record(Change{Before: s[1], After: s[2]}, false)

	c, ok := m.Undo()
	require.True(t, ok)
	assert.Same(t, s[1], c.Before)

	c, ok = m.Undo()
	require.True(t, ok)
	assert.Same(t, s[0], c.Before)

	_, ok = m.Undo()
	assert.False(t, ok)

	c, ok = m.Redo()
	require.True(t, ok)
	assert.Same(t, s[1], c.After)
	assert.True(t, m.CanRedo())
}

func TestManager_RecordTruncatesRedo(t *testing.T) {
	s := chain("a", "ab", "ax")
	m := NewManager(10)
	m.Record(Change{Before: s[0], After: s[1]}, false)
	m.Undo()
	m.Record(Change{Before: s[0], After: s[2]}, false)
	assert.False(t, m.CanRedo())

	c, _ := m.Undo()
	assert.Same(t, s[2], c.After)
}

func TestManager_MergeContinuation(t *testing.T) {
	s := chain("", "a", "ab", "zz")
	m := NewManager(10)
	m.Record(Change{Before: s[0], After: s[1]}, true)
	m.Record(Change{Before: s[1], After: s[2]}, true)
	m.Record(Change{Before: s[3], After: s[0]}, true)

	c, _ := m.Undo()
	assert.Same(t, s[3], c.Before, "non-continuous change is not merged")
	c, _ = m.Undo()
	assert.Same(t, s[0], c.Before)
	assert.Same(t, s[2], c.After)
	assert.False(t, m.CanUndo())
}

func TestManager_Limit(t *testing.T) {
	s := chain("0", "1", "2", "3")
	m := NewManager(2)
	for i := 0; i < 3; i++ {
		m.Record(Change{Before: s[i], After: s[i+1]}, false)
	}
	m.Undo()
	c, ok := m.Undo()
	require.True(t, ok)
	assert.Same(t, s[1], c.Before)
	assert.False(t, m.CanUndo())

	m.Clear()
	assert.False(t, m.CanRedo())
}
