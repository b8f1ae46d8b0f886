// Package history provides undo/redo over committed snapshots.
package history

import (
	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/types"
)

// SelectionState is a selection set together with its primary index.
type SelectionState struct {
	Selections []types.Selection
	Primary    int
}

// Change is one committed edit batch. Undo restores Before, redo restores After.
type Change struct {
	Before     *buffer.MemSnapshot
	After      *buffer.MemSnapshot
	SelsBefore SelectionState
	SelsAfter  SelectionState
}
