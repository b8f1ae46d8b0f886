// internal/theme/loader.go
package theme

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidehx/internal/logger"
)

// TomlStyleDef is one style entry of a theme file. Unset fields inherit
// from the theme's Default style.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the layout of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile reads a theme file. Styles the file leaves out are taken
// from Dark.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	var tt TomlTheme
	metadata, err := toml.DecodeFile(filePath, &tt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme: unrecognized keys in '%s': %v", filePath, undecoded)
	}
	if tt.Name == "" {
		tt.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	t := &Theme{Name: tt.Name, IsDark: tt.IsDark, Styles: make(map[string]tcell.Style, len(Dark.Styles))}
	for name, style := range Dark.Styles {
		t.Styles[name] = style
	}

	base := Dark.Styles[StyleDefault]
	if def, ok := tt.Styles[StyleDefault]; ok {
		if base, err = convertTomlStyle(def, tcell.StyleDefault); err != nil {
			return nil, fmt.Errorf("theme '%s': style '%s': %w", t.Name, StyleDefault, err)
		}
		t.Styles[StyleDefault] = base
	}
	for name, def := range tt.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(def, base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}

	logger.Debugf("Theme: loaded '%s' from '%s'", t.Name, filePath)
	return t, nil
}

// Load returns the theme at filePath, or Dark when filePath is empty or
// cannot be loaded.
func Load(filePath string) *Theme {
	if filePath == "" {
		return &Dark
	}
	t, err := LoadThemeFromFile(filePath)
	if err != nil {
		logger.Warnf("Theme: %v, using '%s'", err, Dark.Name)
		return &Dark
	}
	return t
}

func convertTomlStyle(def TomlStyleDef, style tcell.Style) (tcell.Style, error) {
	if def.Fg != nil {
		c, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *def.Fg, err)
		}
		style = style.Foreground(c)
	}
	if def.Bg != nil {
		c, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *def.Bg, err)
		}
		style = style.Background(c)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColorString converts "#RRGGBB", a tcell color name, "reset" or
// "default" to a tcell.Color.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}
	if c, ok := tcell.ColorNames[s]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color format or name '%s'", s)
}
