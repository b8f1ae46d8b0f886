// Package clipboard holds the yank register and the clipboard backends it
// is mirrored to.
package clipboard

import (
	"errors"
	"strings"
)

// LineTerminator is appended to linewise yanks.
const LineTerminator = "\n"

// ErrEmpty is returned when a clipboard holds nothing to paste.
var ErrEmpty = errors.New("clipboard is empty")

// YankItem is the text captured from one selection.
type YankItem struct {
	Text     string
	Linewise bool
}

// Register is the ordered list of items from the last yank.
type Register struct {
	items []YankItem
}

// Set replaces the register contents.
func (r *Register) Set(items []YankItem) {
	r.items = append([]YankItem(nil), items...)
}

// Items returns a copy of the register contents.
func (r *Register) Items() []YankItem {
	return append([]YankItem(nil), r.items...)
}

// Empty reports whether nothing has been yanked.
func (r *Register) Empty() bool { return len(r.items) == 0 }

// PlainText concatenates items for external paste targets. A terminator is
// added when any item is linewise and the result does not already end in one.
func PlainText(items []YankItem) string {
	var b strings.Builder
	linewise := false
	for _, it := range items {
		b.WriteString(it.Text)
		linewise = linewise || it.Linewise
	}
	text := b.String()
	if linewise && !strings.HasSuffix(text, LineTerminator) {
		text += LineTerminator
	}
	return text
}

// FromPlainText turns foreign clipboard text into a single item, linewise
// iff it ends with a line terminator.
func FromPlainText(text string) []YankItem {
	return []YankItem{{Text: text, Linewise: strings.HasSuffix(text, LineTerminator)}}
}

// Clipboard stores a structured payload with a plain-text fallback.
type Clipboard interface {
	Write(items []YankItem, plain string) error
	Read() ([]YankItem, error)
}

// Memory is a process-local Clipboard.
type Memory struct {
	items []YankItem
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory { return &Memory{} }

// Write stores items. The plain text is implied by them.
func (m *Memory) Write(items []YankItem, _ string) error {
	m.items = append([]YankItem(nil), items...)
	return nil
}

// Read returns the stored items.
func (m *Memory) Read() ([]YankItem, error) {
	if len(m.items) == 0 {
		return nil, ErrEmpty
	}
	return append([]YankItem(nil), m.items...), nil
}
