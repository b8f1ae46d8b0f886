// internal/buffer/buffer.go
package buffer

import (
	"errors"

	"github.com/bethropolis/tidehx/internal/types"
)

var (
	// ErrOutOfRange is returned when an edit touches offsets outside its snapshot.
	ErrOutOfRange = errors.New("edit range out of bounds")
	// ErrOverlappingEdit is returned when two operations of one edit overlap.
	ErrOverlappingEdit = errors.New("overlapping edit operations")
	// ErrStaleSnapshot is returned when committing an edit built on an older snapshot.
	ErrStaleSnapshot = errors.New("edit was built against a stale snapshot")
	// ErrEditApplied is returned when an edit is applied twice.
	ErrEditApplied = errors.New("edit already applied")
)

// Line describes one line of a snapshot. End excludes the line break,
// EndIncludingBreak includes it.
type Line struct {
	Number            int
	Start             int
	End               int
	EndIncludingBreak int
}

// Extent returns the line's content span without the break.
func (l Line) Extent() types.Span {
	return types.Span{Start: l.Start, End: l.End}
}

// ExtentIncludingBreak returns the line's span including its break.
func (l Line) ExtentIncludingBreak() types.Span {
	return types.Span{Start: l.Start, End: l.EndIncludingBreak}
}

// HasBreak reports whether the line is terminated by a line break.
func (l Line) HasBreak() bool {
	return l.EndIncludingBreak > l.End
}

// Len returns the content length in bytes.
func (l Line) Len() int {
	return l.End - l.Start
}

// Snapshot is an immutable, versioned view of document text.
// Offsets are byte offsets valid only for the snapshot they came from.
type Snapshot interface {
	Version() uint64
	Len() int
	String() string
	Text(span types.Span) string
	RuneAt(offset int) (rune, int)
	RuneBefore(offset int) (rune, int)
	LineCount() int
	Line(number int) Line
	LineFromOffset(offset int) Line
}
