package selection

import (
	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/types"
)

// Manager owns the ordered selection set of one view. The set is never
// empty and always has exactly one primary member.
type Manager struct {
	sels    []types.Selection
	primary int

	saved        []types.Selection
	savedPrimary int
}

// NewManager creates a manager holding a single caret at p.
func NewManager(p types.Position) *Manager {
	return &Manager{sels: []types.Selection{types.Caret(p)}}
}

// All returns a copy of the selections in set order.
func (m *Manager) All() []types.Selection {
	return append([]types.Selection(nil), m.sels...)
}

// Len returns the number of selections.
func (m *Manager) Len() int { return len(m.sels) }

// Primary returns the primary selection.
func (m *Manager) Primary() types.Selection { return m.sels[m.primary] }

// PrimaryIndex returns the index of the primary selection within All.
func (m *Manager) PrimaryIndex() int { return m.primary }

// Transform replaces every selection with fn applied to it, as one batch.
func (m *Manager) Transform(fn func(types.Selection) types.Selection) {
	for i, s := range m.sels {
		m.sels[i] = fn(s)
	}
	m.normalize()
}

// TransformIndexed is Transform with the selection's index passed along.
func (m *Manager) TransformIndexed(fn func(int, types.Selection) types.Selection) {
	for i, s := range m.sels {
		m.sels[i] = fn(i, s)
	}
	m.normalize()
}

// Add appends a secondary selection. The primary does not change.
func (m *Manager) Add(s types.Selection) {
	m.sels = append(m.sels, s)
	m.normalize()
	logger.DebugTagf("selection", "Selection: added %s (%d total)", s, len(m.sels))
}

// ClearSecondary drops every selection except the primary.
func (m *Manager) ClearSecondary() {
	m.sels = []types.Selection{m.sels[m.primary]}
	m.primary = 0
}

// Replace installs sels as the whole set with sels[primary] as primary.
// An empty sels leaves the set untouched.
func (m *Manager) Replace(sels []types.Selection, primary int) {
	if len(sels) == 0 {
		return
	}
	if primary < 0 || primary >= len(sels) {
		primary = 0
	}
	m.sels = append([]types.Selection(nil), sels...)
	m.primary = primary
	m.normalize()
}

// SetPrimary makes the selection at index i primary.
func (m *Manager) SetPrimary(i int) {
	if i >= 0 && i < len(m.sels) {
		m.primary = i
	}
}

// Translate maps every selection, saved ones included, onto the snapshot
// that cs produced.
func (m *Manager) Translate(cs *buffer.ChangeSet) {
	if cs.Empty() {
		return
	}
	for i, s := range m.sels {
		m.sels[i] = cs.MapSelection(s)
	}
	for i, s := range m.saved {
		m.saved[i] = cs.MapSelection(s)
	}
	m.normalize()
}

// Save remembers the current set for a later Restore.
func (m *Manager) Save() {
	m.saved = m.All()
	m.savedPrimary = m.primary
}

// HasSaved reports whether a saved set is waiting to be restored.
func (m *Manager) HasSaved() bool { return m.saved != nil }

// Restore reinstates the saved set and forgets it. It reports false when
// nothing was saved.
func (m *Manager) Restore() bool {
	if m.saved == nil {
		return false
	}
	m.sels = m.saved
	m.primary = m.savedPrimary
	m.saved = nil
	m.normalize()
	return true
}

// Revert reinstates the saved set but keeps it saved.
func (m *Manager) Revert() bool {
	if m.saved == nil {
		return false
	}
	m.sels = append([]types.Selection(nil), m.saved...)
	m.primary = m.savedPrimary
	m.normalize()
	return true
}

// DropSaved forgets the saved set.
func (m *Manager) DropSaved() { m.saved = nil }

// normalize merges overlapping or identical selections. Merged members take
// the place of the first one involved and keep its direction.
func (m *Manager) normalize() {
	before := len(m.sels)
	for m.mergePass() {
	}
	if len(m.sels) != before {
		logger.DebugTagf("selection", "Selection: merged %d selections into %d", before, len(m.sels))
	}
}

func (m *Manager) mergePass() bool {
	if len(m.sels) < 2 {
		return false
	}
	out := make([]types.Selection, 0, len(m.sels))
	primary := 0
	for i, s := range m.sels {
		merged := false
		for j, o := range out {
			if !mergeable(o, s) {
				continue
			}
			out[j] = union(o, s)
			if i == m.primary {
				primary = j
			}
			merged = true
			break
		}
		if !merged {
			if i == m.primary {
				primary = len(out)
			}
			out = append(out, s)
		}
	}
	changed := len(out) != len(m.sels)
	m.sels = out
	m.primary = primary
	return changed
}

func mergeable(a, b types.Selection) bool {
	if a.Start() == b.Start() && a.End() == b.End() {
		return true
	}
	return a.Span().Overlaps(b.Span())
}

func union(a, b types.Selection) types.Selection {
	start, end := a.Start(), a.End()
	if b.Start().Compare(start) < 0 {
		start = b.Start()
	}
	if b.End().Compare(end) > 0 {
		end = b.End()
	}
	return types.FromPoints(start, end, a.IsReversed())
}
