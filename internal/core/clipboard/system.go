package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/tidehx/internal/logger"
)

// TextBackend reads and writes plain text on an OS clipboard.
type TextBackend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type atottoBackend struct{}

func (atottoBackend) ReadAll() (string, error) { return clipboard.ReadAll() }

func (atottoBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// System mirrors yanks to the OS clipboard. The structured items are kept
// locally and used for as long as the OS clipboard still holds the text
// they were written with.
type System struct {
	backend TextBackend
	items   []YankItem
	plain   string
}

// Supported reports whether an OS clipboard utility is available.
func Supported() bool { return !clipboard.Unsupported }

// NewSystem creates a clipboard backed by the OS clipboard.
func NewSystem() *System {
	return NewSystemWithBackend(atottoBackend{})
}

// NewSystemWithBackend creates a System over an arbitrary text backend.
func NewSystemWithBackend(b TextBackend) *System {
	return &System{backend: b}
}

// Write stores items and puts plain on the OS clipboard. The items are
// kept even if the OS write fails.
func (s *System) Write(items []YankItem, plain string) error {
	s.items = append([]YankItem(nil), items...)
	s.plain = plain
	if err := s.backend.WriteAll(plain); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

// Read returns the structured items when the OS clipboard is unchanged since
// the last Write, otherwise its text as one item.
func (s *System) Read() ([]YankItem, error) {
	text, err := s.backend.ReadAll()
	if err != nil {
		if len(s.items) > 0 {
			logger.Debugf("Clipboard: system read failed, using local register: %v", err)
			return append([]YankItem(nil), s.items...), nil
		}
		return nil, fmt.Errorf("read system clipboard: %w", err)
	}
	if len(s.items) > 0 && text == s.plain {
		return append([]YankItem(nil), s.items...), nil
	}
	if text == "" {
		return nil, ErrEmpty
	}
	return FromPlainText(text), nil
}
