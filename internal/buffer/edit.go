package buffer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bethropolis/tidehx/internal/types"
)

type editOp struct {
	span types.Span
	text string
}

// Edit batches replacements keyed to a single snapshot. All offsets refer to
// that snapshot; Apply commits every operation as one new snapshot, so callers
// never re-snapshot between operations of the same batch.
//
// Insertions at the same offset appear in the result in the order they were added,
// ahead of any replacement starting there.
type Edit struct {
	base    Snapshot
	ops     []editOp
	applied bool
}

// NewEdit starts an edit against snap.
func NewEdit(snap Snapshot) *Edit {
	return &Edit{base: snap}
}

// Base returns the snapshot the edit is keyed to.
func (e *Edit) Base() Snapshot { return e.base }

// Insert adds text at offset.
func (e *Edit) Insert(offset int, text string) {
	if text == "" {
		return
	}
	e.ops = append(e.ops, editOp{span: types.Span{Start: offset, End: offset}, text: text})
}

// Delete removes the span.
func (e *Edit) Delete(span types.Span) {
	if span.IsEmpty() {
		return
	}
	e.ops = append(e.ops, editOp{span: span})
}

// Replace swaps the span's text for text.
func (e *Edit) Replace(span types.Span, text string) {
	if span.IsEmpty() {
		e.Insert(span.Start, text)
		return
	}
	e.ops = append(e.ops, editOp{span: span, text: text})
}

// Empty reports whether the edit has no operations.
func (e *Edit) Empty() bool { return len(e.ops) == 0 }

// Apply validates the batch and produces the resulting snapshot together with
// the change set mapping old offsets to new ones.
func (e *Edit) Apply() (*MemSnapshot, *ChangeSet, error) {
	if e.applied {
		return nil, nil, ErrEditApplied
	}
	length := e.base.Len()
	for _, op := range e.ops {
		if op.span.Start < 0 || op.span.End > length || op.span.End < op.span.Start {
			return nil, nil, fmt.Errorf("%w: %s in snapshot of length %d", ErrOutOfRange, op.span, length)
		}
	}

	ops := make([]editOp, len(e.ops))
	copy(ops, e.ops)
	sort.SliceStable(ops, func(i, j int) bool {
		a, b := ops[i].span, ops[j].span
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.IsEmpty() && !b.IsEmpty()
	})

	prevStart, prevEnd := -1, -1
	for _, op := range ops {
		if op.span.IsEmpty() {
			if op.span.Start > prevStart && op.span.Start < prevEnd {
				return nil, nil, fmt.Errorf("%w: insert at %d inside %s", ErrOverlappingEdit, op.span.Start, types.Span{Start: prevStart, End: prevEnd})
			}
			continue
		}
		if op.span.Start < prevEnd {
			return nil, nil, fmt.Errorf("%w: %s overlaps %s", ErrOverlappingEdit, op.span, types.Span{Start: prevStart, End: prevEnd})
		}
		prevStart, prevEnd = op.span.Start, op.span.End
	}

	text := e.base.String()
	var sb strings.Builder
	sb.Grow(length)
	changes := make([]change, 0, len(ops))
	pos := 0
	for _, op := range ops {
		sb.WriteString(text[pos:op.span.Start])
		sb.WriteString(op.text)
		pos = op.span.End
		changes = append(changes, change{start: op.span.Start, oldEnd: op.span.End, newLen: len(op.text)})
	}
	sb.WriteString(text[pos:])

	e.applied = true
	next := NewSnapshot(sb.String())
	return next, &ChangeSet{from: e.base.Version(), to: next.Version(), changes: changes}, nil
}
