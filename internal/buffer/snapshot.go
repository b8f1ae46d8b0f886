package buffer

import (
	"sort"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/bethropolis/tidehx/internal/types"
)

var versionCounter atomic.Uint64

// MemSnapshot is an in-memory Snapshot backed by a string and a line-start index.
type MemSnapshot struct {
	text       string
	lineStarts []int
	version    uint64
}

// NewSnapshot builds a snapshot over text.
func NewSnapshot(text string) *MemSnapshot {
	starts := make([]int, 1, strings.Count(text, "\n")+1)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &MemSnapshot{
		text:       text,
		lineStarts: starts,
		version:    versionCounter.Add(1),
	}
}

// Version returns a process-unique identifier for this snapshot.
func (s *MemSnapshot) Version() uint64 { return s.version }

// Len returns the text length in bytes.
func (s *MemSnapshot) Len() int { return len(s.text) }

// String returns the full text.
func (s *MemSnapshot) String() string { return s.text }

// Text returns the text covered by span, clamped to the snapshot.
func (s *MemSnapshot) Text(span types.Span) string {
	start, end := s.clamp(span.Start), s.clamp(span.End)
	if end <= start {
		return ""
	}
	return s.text[start:end]
}

// RuneAt decodes the rune starting at offset. Size is 0 at or past the end.
func (s *MemSnapshot) RuneAt(offset int) (rune, int) {
	if offset < 0 || offset >= len(s.text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.text[offset:])
}

// RuneBefore decodes the rune ending at offset. Size is 0 at the start.
func (s *MemSnapshot) RuneBefore(offset int) (rune, int) {
	if offset <= 0 || offset > len(s.text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeLastRuneInString(s.text[:offset])
}

// LineCount returns the number of lines. An empty snapshot has one line.
func (s *MemSnapshot) LineCount() int { return len(s.lineStarts) }

// Line returns line number n, clamped to the valid range.
func (s *MemSnapshot) Line(n int) Line {
	if n < 0 {
		n = 0
	}
	if n >= len(s.lineStarts) {
		n = len(s.lineStarts) - 1
	}
	start := s.lineStarts[n]
	if n+1 >= len(s.lineStarts) {
		return Line{Number: n, Start: start, End: len(s.text), EndIncludingBreak: len(s.text)}
	}
	next := s.lineStarts[n+1]
	end := next - 1
	if end > start && s.text[end-1] == '\r' {
		end--
	}
	return Line{Number: n, Start: start, End: end, EndIncludingBreak: next}
}

// LineFromOffset returns the line containing offset. An offset within a
// line break belongs to the line the break terminates.
func (s *MemSnapshot) LineFromOffset(offset int) Line {
	offset = s.clamp(offset)
	n := sort.Search(len(s.lineStarts), func(i int) bool { return s.lineStarts[i] > offset }) - 1
	return s.Line(n)
}

func (s *MemSnapshot) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(s.text) {
		return len(s.text)
	}
	return off
}
