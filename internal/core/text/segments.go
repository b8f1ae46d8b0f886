// Package text holds grapheme and word segmentation helpers over document text.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// NextGrapheme returns the offset just past the grapheme cluster starting at off.
func NextGrapheme(s string, off int) int {
	if off >= len(s) {
		return len(s)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[off:], -1)
	if cluster == "" {
		return off + 1
	}
	return off + len(cluster)
}

// PrevGrapheme returns the start of the grapheme cluster ending at off.
func PrevGrapheme(s string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(s) {
		off = len(s)
	}
	if s[off-1] == '\n' {
		if off >= 2 && s[off-2] == '\r' {
			return off - 2
		}
		return off - 1
	}
	start := strings.LastIndexByte(s[:off], '\n') + 1
	prev := start
	state := -1
	rest := s[start:off]
	pos := start
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		prev = pos
		pos += len(cluster)
	}
	return prev
}

// class buckets runes for word motions.
type class int

const (
	classSpace class = iota
	classWord
	classPunct
)

func classOf(r rune, sub bool) class {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_':
		if sub {
			return classPunct
		}
		return classWord
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	}
	return classPunct
}

// NextWordStart returns the start of the word following the one at off.
// With sub set, case transitions and underscores also split words.
// Whitespace after the current word is skipped, line breaks included.
func NextWordStart(s string, off int, sub bool) int {
	if off >= len(s) {
		return len(s)
	}
	i := off
	r, size := utf8.DecodeRuneInString(s[i:])
	c := classOf(r, sub)
	if c != classSpace {
		prev := r
		i += size
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if classOf(r, sub) != c {
				break
			}
			if sub && unicode.IsUpper(r) && unicode.IsLower(prev) {
				break
			}
			prev = r
			i += size
		}
	}
	for i < len(s) {
		r, size = utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// PrevWordStart returns the start of the word before off, skipping any
// whitespace immediately before it.
func PrevWordStart(s string, off int, sub bool) int {
	if off > len(s) {
		off = len(s)
	}
	i := off
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	if i == 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	c := classOf(r, sub)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if classOf(r, sub) != c {
			break
		}
		i -= size
		if sub && unicode.IsUpper(r) && i > 0 {
			p, _ := utf8.DecodeLastRuneInString(s[:i])
			if unicode.IsLower(p) {
				break
			}
		}
	}
	return i
}

// Indent returns the leading whitespace of a line's content.
func Indent(line string) string {
	return line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
}

// IsControl reports whether r is a control character that never becomes text.
func IsControl(r rune) bool {
	return unicode.IsControl(r)
}
