package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.True(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, 250*time.Millisecond, cfg.Editor.SearchTimeout())
}

func TestLoad_FileOnlyOverridesPresentKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[editor]
tab_width = 8

[logger]
log_level = "debug"
disabled_tags = ["search"]
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Editor.TabWidth)
	assert.True(t, cfg.Editor.SystemClipboard, "absent key keeps its default")
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"search"}, cfg.Logger.DisabledTags)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[editor]\ntab_width = -2\nmax_history = 0\n")
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[editor\n")
	cfg, err := Load(path, nil)
	require.Error(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
}

func TestFlags_OverrideFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[editor]\ntab_width = 8\n")
	flags := NewFlags("test")
	rest, err := flags.Parse([]string{"-tabwidth", "2", "-system-clipboard=false", "-log-tags", "mode, search", "file.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"file.txt"}, rest)

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Editor.TabWidth)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, []string{"mode", "search"}, cfg.Logger.EnabledTags)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[editor]\ntab_width = 4\n")

	changed := make(chan *Config, 4)
	w, err := Watch(path, *NewDefaultConfig(), func(c *Config) { changed <- c })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_width = 6\n"), 0644))

	select {
	case cfg := <-changed:
		assert.Equal(t, 6, cfg.Editor.TabWidth)
	case <-time.After(5 * time.Second):
		t.Fatal("config reload not observed")
	}
}
