// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidehx/internal/logger"
)

// Style names looked up by the view and the status bar.
const (
	StyleDefault          = "Default"
	StyleLineNumber       = "LineNumber"
	StyleSelection        = "Selection"
	StylePrimarySelection = "Selection.Primary"
	StyleSecondaryCaret   = "Caret.Secondary"
	StyleSearchMatch      = "SearchMatch"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMode    = "StatusBar.Mode"
	StyleStatusModified   = "StatusBar.Modified"
	StyleStatusMessage    = "StatusBar.Message"
	StyleStatusSearch     = "StatusBar.Search"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name. Dotted names fall back to their base
// name, then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Dark is the built-in theme.
var Dark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	comment := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	blue := tcell.NewHexColor(0x61afef)
	selection := tcell.NewHexColor(0x3e4451)
	primary := tcell.NewHexColor(0x4b5263)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	Dark = Theme{
		Name:   "Tidehx Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleLineNumber:       base.Foreground(comment),
			StyleSelection:        base.Background(selection),
			StylePrimarySelection: base.Background(primary),
			StyleSecondaryCaret:   base.Reverse(true),
			StyleSearchMatch:      tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),
			StyleStatusBar:        bar,
			StyleStatusBarMode:    bar.Background(blue).Foreground(background).Bold(true),
			StyleStatusModified:   bar.Foreground(yellow),
			StyleStatusMessage:    bar.Bold(true),
			StyleStatusSearch:     bar.Foreground(green).Bold(true),
		},
	}
}
