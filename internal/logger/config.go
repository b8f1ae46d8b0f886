// Package logger provides configurable logging capabilities
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path to the output log file. Use "-" for stderr.
	LogFilePath string `toml:"log_file"`

	// EnabledTags only logs tagged messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags drops messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only logs messages from these packages (immediate
	// directory name, e.g. "modehandler").
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages drops messages from these packages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only logs messages from these base file names.
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles drops messages from these base file names.
	DisabledFiles []string `toml:"disabled_files"`

	level    slog.Level
	tags     filterSet
	packages filterSet
	files    filterSet
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{LogLevel: "info"}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (c *Config) process() {
	c.level = ParseLevel(c.LogLevel)
	c.tags = newFilterSet(c.EnabledTags, c.DisabledTags)
	c.packages = newFilterSet(c.EnabledPackages, c.DisabledPackages)
	c.files = newFilterSet(c.EnabledFiles, c.DisabledFiles)
}

// filterSet is an allow list plus a deny list. A nil allow list admits everything.
type filterSet struct {
	enabled  map[string]struct{}
	disabled map[string]struct{}
}

func newFilterSet(enabled, disabled []string) filterSet {
	return filterSet{enabled: sliceToSet(enabled), disabled: sliceToSet(disabled)}
}

func (f filterSet) allows(key string) bool {
	key = strings.ToLower(key)
	if _, found := f.disabled[key]; found {
		return false
	}
	if f.enabled == nil {
		return true
	}
	_, found := f.enabled[key]
	return found
}

func (f filterSet) restrictive() bool {
	return f.enabled != nil
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
