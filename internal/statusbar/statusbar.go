// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg" // For proper Unicode width calculation

	"github.com/bethropolis/tidehx/internal/theme"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMode      tcell.Style // Style for the mode badge
	StyleModified  tcell.Style // Style for the modified indicator
	StyleMessage   tcell.Style // Style for temporary messages
	StyleSearch    tcell.Style // Style for the live search query
	MessageTimeout time.Duration
}

// DefaultConfig uses the built-in theme.
func DefaultConfig() Config { return ConfigFromTheme(&theme.Dark) }

// ConfigFromTheme takes the status line styles from t.
func ConfigFromTheme(t *theme.Theme) Config {
	return Config{
		StyleDefault:   t.GetStyle(theme.StyleStatusBar),
		StyleMode:      t.GetStyle(theme.StyleStatusBarMode),
		StyleModified:  t.GetStyle(theme.StyleStatusModified),
		StyleMessage:   t.GetStyle(theme.StyleStatusMessage),
		StyleSearch:    t.GetStyle(theme.StyleStatusSearch),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	isModified bool
	line, col  int // 1-based
	selections int
	mode       string
	extra      string // Pending keys or the search query

	tempMessage     string
	tempMessageTime time.Time
	now             func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, line: 1, col: 1, now: time.Now}
}

// SetConfig replaces the appearance settings.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the primary caret position and selection count.
// line and col are zero-based.
func (sb *StatusBar) SetCursorInfo(line, col, selections int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.line, sb.col = line+1, col+1
	sb.selections = selections
}

// ShowMode updates the mode badge and the pending-input text beside it.
func (sb *StatusBar) ShowMode(mode, extra string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
	sb.extra = extra
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// segment is one styled run of the status line.
type segment struct {
	text  string
	style tcell.Style
}

// segments builds the status line. The caller holds the lock.
func (sb *StatusBar) segments() []segment {
	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return []segment{{" " + sb.tempMessage, sb.config.StyleMessage}}
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var segs []segment
	if sb.mode != "" {
		segs = append(segs, segment{" " + sb.mode + " ", sb.config.StyleMode})
	}
	if sb.extra != "" {
		style := sb.config.StyleDefault
		if sb.mode == "SEARCH" {
			style = sb.config.StyleSearch
		}
		segs = append(segs, segment{" " + sb.extra, style})
	}

	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	segs = append(segs, segment{" " + fPath, sb.config.StyleDefault})
	if sb.isModified {
		segs = append(segs, segment{" [+]", sb.config.StyleModified})
	}

	pos := fmt.Sprintf(" %d:%d", sb.line, sb.col)
	if sb.selections > 1 {
		pos += fmt.Sprintf(" (%d sel)", sb.selections)
	}
	segs = append(segs, segment{pos, sb.config.StyleDefault})
	return segs
}

// Text returns the status line as plain text.
func (sb *StatusBar) Text() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	var out string
	for _, s := range sb.segments() {
		out += s.text
	}
	return out
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	segs := sb.segments()
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, sb.config.StyleDefault)
	}

	x := 0
	for _, seg := range segs {
		text := runewidth.Truncate(seg.text, width-x, "…")
		gr := uniseg.NewGraphemes(text)
		for gr.Next() {
			w := gr.Width()
			if x+w > width {
				return
			}
			runes := gr.Runes()
			screen.SetContent(x, y, runes[0], runes[1:], seg.style)
			x += w
		}
		if x >= width {
			return
		}
	}
}
