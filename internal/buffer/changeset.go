package buffer

import "github.com/bethropolis/tidehx/internal/types"

// Bias decides where an offset lands when text is inserted exactly at it.
type Bias int

const (
	// BiasAfter moves the offset past inserted text.
	BiasAfter Bias = iota
	// BiasBefore keeps the offset in front of inserted text.
	BiasBefore
)

type change struct {
	start  int
	oldEnd int
	newLen int
}

// ChangeSet records the replacements of one committed edit, sorted by offset.
type ChangeSet struct {
	from    uint64
	to      uint64
	changes []change
}

// From returns the version of the snapshot the changes apply to.
func (cs *ChangeSet) From() uint64 { return cs.from }

// To returns the version of the resulting snapshot.
func (cs *ChangeSet) To() uint64 { return cs.to }

// Empty reports whether nothing changed.
func (cs *ChangeSet) Empty() bool { return cs == nil || len(cs.changes) == 0 }

// MapOffset translates an offset of the old snapshot into the new one.
func (cs *ChangeSet) MapOffset(off int, bias Bias) int {
	mapped, _ := cs.mapOffset(off, bias)
	return mapped
}

func (cs *ChangeSet) mapOffset(off int, bias Bias) (int, bool) {
	if cs == nil {
		return off, false
	}
	delta := 0
	for _, c := range cs.changes {
		if off < c.start {
			break
		}
		base := c.start + delta
		if c.oldEnd == c.start {
			if off == c.start && bias == BiasBefore {
				return base, false
			}
			delta += c.newLen
			continue
		}
		if off < c.oldEnd {
			if off == c.start && bias == BiasBefore {
				return base, true
			}
			if bias == BiasAfter {
				return base + c.newLen, true
			}
			return base, true
		}
		delta += c.newLen - (c.oldEnd - c.start)
	}
	return off + delta, false
}

// MapPosition translates a position. Virtual space survives only when the
// position was not swallowed by a replaced range.
func (cs *ChangeSet) MapPosition(p types.Position, bias Bias) types.Position {
	off, touched := cs.mapOffset(p.Offset, bias)
	if touched {
		return types.At(off)
	}
	return types.Position{Offset: off, Virtual: p.Virtual}
}

// MapSelection translates both points of a selection with positive tracking.
func (cs *ChangeSet) MapSelection(s types.Selection) types.Selection {
	return types.Selection{
		Anchor: cs.MapPosition(s.Anchor, BiasAfter),
		Active: cs.MapPosition(s.Active, BiasAfter),
	}
}
