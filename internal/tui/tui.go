// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidehx/internal/theme"
)

// Styles holds the colors used to draw a view.
type Styles struct {
	Default          tcell.Style
	LineNumber       tcell.Style
	Selection        tcell.Style
	PrimarySelection tcell.Style
	SecondaryCaret   tcell.Style
	SearchMatch      tcell.Style
}

// DefaultStyles returns the built-in theme's styles.
func DefaultStyles() Styles { return StylesFromTheme(&theme.Dark) }

// StylesFromTheme looks up the view styles in t.
func StylesFromTheme(t *theme.Theme) Styles {
	return Styles{
		Default:          t.GetStyle(theme.StyleDefault),
		LineNumber:       t.GetStyle(theme.StyleLineNumber),
		Selection:        t.GetStyle(theme.StyleSelection),
		PrimarySelection: t.GetStyle(theme.StylePrimarySelection),
		SecondaryCaret:   t.GetStyle(theme.StyleSecondaryCaret),
		SearchMatch:      t.GetStyle(theme.StyleSearchMatch),
	}
}

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a new TUI instance.
func New(style tcell.Style) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, style)
}

// NewWithScreen initializes s and wraps it.
func NewWithScreen(s tcell.Screen, style tcell.Style) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(style)
	return &TUI{screen: s}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues ev for PollEvent.
func (t *TUI) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
