package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidehx/internal/config"
	"github.com/bethropolis/tidehx/internal/modehandler"
	"github.com/bethropolis/tidehx/internal/types"
)

func newTestApp(t *testing.T, path string) *App {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Editor.SystemClipboard = false
	s := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(Options{FilePath: path, Config: cfg, Screen: s})
	require.NoError(t, err)
	t.Cleanup(a.tuiManager.Close)
	s.SetSize(40, 10)
	return a
}

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func typeKeys(a *App, s string) {
	for _, r := range s {
		a.handleEvent(runeKey(r))
	}
}

func TestApp_EditAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("world"), 0o644))
	a := newTestApp(t, path)

	typeKeys(a, "ihello ")
	a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Equal(t, modehandler.ModeNormal, a.modeHandler.CurrentMode())
	assert.True(t, a.editor.Document().IsModified())

	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))
	assert.False(t, a.editor.Document().IsModified())
}

func TestApp_QuitAsksOnceWhenModified(t *testing.T) {
	a := newTestApp(t, "")
	typeKeys(a, "ix")

	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	assert.False(t, a.quitting)
	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	assert.True(t, a.quitting)
}

func TestApp_ForceQuit(t *testing.T) {
	a := newTestApp(t, "")
	typeKeys(a, "ix")
	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))
	assert.True(t, a.quitting)
}

func TestApp_SaveWithoutPath(t *testing.T) {
	a := newTestApp(t, "")
	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	assert.Contains(t, a.statusBar.Text(), "No file name")
}

func TestApp_GotoFileOpensSelection(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(main, []byte("other.txt"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("second"), 0o644))
	a := newTestApp(t, main)

	a.editor.Selections().Replace([]types.Selection{types.NewSelection(types.NewSpan(0, 9), false)}, 0)
	typeKeys(a, "gf")

	assert.Equal(t, other, a.editor.Document().FilePath())
	assert.Equal(t, "second", a.editor.Snapshot().String())
	assert.Equal(t, types.At(0), a.editor.Selections().Primary().Active)
}

func TestApp_OpenFileRefusesUnsaved(t *testing.T) {
	a := newTestApp(t, "")
	typeKeys(a, "ix")
	assert.ErrorIs(t, a.OpenFile(filepath.Join(t.TempDir(), "f")), ErrUnsavedChanges)
}

func TestApp_ConfigReload(t *testing.T) {
	a := newTestApp(t, "")
	cfg := config.NewDefaultConfig()
	cfg.Editor.TabWidth = 8
	cfg.Editor.ScrollOff = 1

	assert.True(t, a.handleEvent(&configReloadEvent{cfg: cfg}))
	assert.Equal(t, 8, a.editor.TabWidth())
	assert.Equal(t, 1, a.view.ScrollOff)
}

func TestApp_DrawShowsMode(t *testing.T) {
	a := newTestApp(t, "")
	typeKeys(a, "i")
	a.drawEditor()
	assert.Contains(t, a.statusBar.Text(), "INSERT")
	assert.True(t, a.view.BarCaret())
}
