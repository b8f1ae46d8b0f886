// Package match finds bracket pairs and enclosing delimiters in a snapshot.
// Every delimiter is ASCII, so scans work on bytes.
package match

import (
	"strings"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/types"
)

// Pair is an opening and closing delimiter. Symmetric pairs use the same byte for both.
type Pair struct {
	Open  byte
	Close byte
}

// Symmetric reports whether open and close are the same character.
func (p Pair) Symmetric() bool { return p.Open == p.Close }

var pairs = []Pair{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'<', '>'},
	{'"', '"'},
	{'\'', '\''},
	{'`', '`'},
}

// PairFor resolves a typed delimiter to its pair, whether r opens or closes it.
func PairFor(r rune) (Pair, bool) {
	if r > 0x7f {
		return Pair{}, false
	}
	b := byte(r)
	for _, p := range pairs {
		if p.Open == b || p.Close == b {
			return p, true
		}
	}
	return Pair{}, false
}

// MatchingBracket returns the offset of the delimiter matching the one next
// to active. The character before active is tried first, then the one at it.
func MatchingBracket(snap buffer.Snapshot, active int) (int, bool) {
	text := snap.String()
	if active > 0 && active <= len(text) {
		if p, ok := PairFor(rune(text[active-1])); ok {
			return matchFrom(text, active-1, p)
		}
	}
	if active >= 0 && active < len(text) {
		if p, ok := PairFor(rune(text[active])); ok {
			return matchFrom(text, active, p)
		}
	}
	return -1, false
}

// matchFrom searches away from the delimiter at pos.
func matchFrom(text string, pos int, p Pair) (int, bool) {
	if p.Symmetric() {
		i := strings.IndexByte(text[pos+1:], p.Open)
		if i < 0 {
			return -1, false
		}
		return pos + 1 + i, true
	}
	if text[pos] == p.Open {
		return scan(text, pos, p.Open, p.Close, 1)
	}
	return scan(text, pos, p.Close, p.Open, -1)
}

// scan walks from start in dir counting nesting of same until an unmatched
// other is found.
func scan(text string, start int, same, other byte, dir int) (int, bool) {
	depth := 0
	for i := start + dir; i >= 0 && i < len(text); i += dir {
		switch text[i] {
		case same:
			depth++
		case other:
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return -1, false
}

// FindEnclosing finds the nearest pair whose open lies before span and whose
// close lies at or after its end.
func FindEnclosing(snap buffer.Snapshot, span types.Span, p Pair) (open, closing int, ok bool) {
	text := snap.String()
	if span.Start > len(text) || span.End > len(text) {
		return -1, -1, false
	}
	if p.Symmetric() {
		open = strings.LastIndexByte(text[:span.Start], p.Open)
		if open < 0 {
			return -1, -1, false
		}
		i := strings.IndexByte(text[span.End:], p.Close)
		if i < 0 {
			return -1, -1, false
		}
		return open, span.End + i, true
	}
	depth := 0
	for i := span.Start - 1; i >= 0; i-- {
		switch text[i] {
		case p.Close:
			depth++
		case p.Open:
			if depth > 0 {
				depth--
				continue
			}
			if c, found := scan(text, i, p.Open, p.Close, 1); found && c >= span.End {
				return i, c, true
			}
		}
	}
	return -1, -1, false
}
