// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidehx/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editing-engine settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	MaxHistory      int  `toml:"max_history"`
	SearchTimeoutMs int  `toml:"search_timeout_ms"`
	// ThemeFile is a TOML theme path. Empty selects the built-in theme.
	ThemeFile string `toml:"theme_file"`
}

// SearchTimeout returns the regex match timeout.
func (e EditorConfig) SearchTimeout() time.Duration {
	return time.Duration(e.SearchTimeoutMs) * time.Millisecond
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			MaxHistory:      DefaultMaxHistory,
			SearchTimeoutMs: DefaultSearchTimeoutMs,
		},
	}
}

// DefaultPath returns the per-user config file location, or "" when unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// mergeFile decodes filePath over cfg. Only keys present in the file are applied.
// A missing file is not an error.
func mergeFile(cfg *Config, filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	fileCfg := *cfg
	metadata, err := toml.DecodeFile(filePath, &fileCfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config: '%s' has unrecognized keys: %v", filePath, undecoded)
	}
	*cfg = fileCfg
	return nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Editor.SearchTimeoutMs <= 0 {
		c.Editor.SearchTimeoutMs = defaults.Editor.SearchTimeoutMs
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds a configuration from defaults, the file at configFilePath (or
// the default location when empty) and flag overrides, then validates it.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}
	var err error
	if path != "" {
		err = mergeFile(cfg, path)
	}
	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig loads the process-wide configuration once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
