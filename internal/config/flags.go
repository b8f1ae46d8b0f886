// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	ScrollOff       *int
	SystemClipboard *bool
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
}

// NewFlags defines the command-line flags on a fresh flag set.
func NewFlags(name string) *Flags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &Flags{
		fs:              fs,
		ConfigFilePath:  fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <user config dir>/%s/%s)", AppName, DefaultConfigFileName)),
		Version:         fs.Bool("version", false, "Show version information and exit"),
		LogLevel:        fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file"),
		LogFilePath:     fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file"),
		TabWidth:        fs.Int("tabwidth", 0, "Number of columns per tab stop - Overrides config file"),
		ScrollOff:       fs.Int("scrolloff", -1, "Lines of context above/below the primary caret - Overrides config file"),
		SystemClipboard: fs.Bool("system-clipboard", false, "Use the system clipboard for yank/paste - Overrides config file"),
		EnableTags:      fs.String("log-tags", "", "Comma-separated list of log tags to enable"),
		DisableTags:     fs.String("log-disable-tags", "", "Comma-separated list of log tags to disable"),
		EnablePkgs:      fs.String("log-packages", "", "Comma-separated list of packages to enable"),
		DisablePkgs:     fs.String("log-disable-packages", "", "Comma-separated list of packages to disable"),
	}
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides copies every explicitly set flag onto cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
