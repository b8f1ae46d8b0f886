package history

import (
	"github.com/bethropolis/tidehx/internal/logger"
)

// DefaultMaxHistory bounds the stack when no limit is configured.
const DefaultMaxHistory = 100

// Manager handles the undo/redo stack.
type Manager struct {
	changes      []Change
	currentIndex int // Index of the next change to redo
	maxHistory   int
}

// NewManager creates a history manager.
func NewManager(maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// Record adds a change, clearing any redo history. With merge set, a change
// that continues the most recent one extends it instead of adding an entry.
func (m *Manager) Record(change Change, merge bool) {
	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}

	if merge && len(m.changes) > 0 {
		last := &m.changes[len(m.changes)-1]
		if last.After == change.Before {
			last.After = change.After
			last.SelsAfter = change.SelsAfter
			logger.DebugTagf("history", "History: merged into change %d", len(m.changes)-1)
			return
		}
	}

	m.changes = append(m.changes, change)
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}
	m.currentIndex = len(m.changes)

	logger.DebugTagf("history", "History: recorded change. Index: %d, Count: %d", m.currentIndex, len(m.changes))
}

// Undo steps back one change and returns it. The caller restores Before.
func (m *Manager) Undo() (Change, bool) {
	if m.currentIndex <= 0 {
		logger.Debugf("History: Nothing to undo.")
		return Change{}, false
	}
	m.currentIndex--
	logger.DebugTagf("history", "History: undoing change %d", m.currentIndex)
	return m.changes[m.currentIndex], true
}

// Redo steps forward one change and returns it. The caller restores After.
func (m *Manager) Redo() (Change, bool) {
	if m.currentIndex >= len(m.changes) {
		logger.Debugf("History: Nothing to redo.")
		return Change{}, false
	}
	c := m.changes[m.currentIndex]
	m.currentIndex++
	logger.DebugTagf("history", "History: redoing change %d", m.currentIndex-1)
	return c, true
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.changes = m.changes[:0]
	m.currentIndex = 0
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool { return m.currentIndex > 0 }

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool { return m.currentIndex < len(m.changes) }

// SetLimit changes the maximum number of entries kept.
func (m *Manager) SetLimit(maxHistory int) {
	if maxHistory <= 0 {
		return
	}
	m.maxHistory = maxHistory
	if len(m.changes) > maxHistory {
		drop := len(m.changes) - maxHistory
		m.changes = m.changes[drop:]
		m.currentIndex -= drop
		if m.currentIndex < 0 {
			m.currentIndex = 0
		}
	}
}
