package statusbar

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBar_Text(t *testing.T) {
	sb := New(DefaultConfig())
	sb.ShowMode("NORMAL", "3")
	sb.SetFileInfo("", true)
	sb.SetCursorInfo(1, 4, 2)

	assert.Equal(t, " NORMAL  3 [No Name] [+] 2:5 (2 sel)", sb.Text())
}

func TestStatusBar_TemporaryMessageExpires(t *testing.T) {
	now := time.Unix(100, 0)
	sb := New(DefaultConfig())
	sb.now = func() time.Time { return now }
	sb.ShowMode("NORMAL", "")
	sb.SetFileInfo("a.txt", false)

	sb.SetTemporaryMessage("Yanked %d selection(s)", 2)
	assert.Equal(t, " Yanked 2 selection(s)", sb.Text())

	now = now.Add(5 * time.Second)
	assert.Equal(t, " NORMAL  a.txt 1:1", sb.Text())
}

func TestStatusBar_DrawTruncates(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(12, 2)

	cfg := DefaultConfig()
	sb := New(cfg)
	sb.ShowMode("SEARCH", "abcdefgh [3]")
	sb.Draw(s, 12, 2)

	r, _, style, _ := s.GetContent(1, 1)
	assert.Equal(t, 'S', r)
	assert.Equal(t, cfg.StyleMode, style)
	r, _, style, _ = s.GetContent(9, 1)
	assert.Equal(t, 'a', r)
	assert.Equal(t, cfg.StyleSearch, style)
	r, _, _, _ = s.GetContent(11, 1)
	assert.NotEqual(t, 'c', r, "the query is truncated to the screen")
}
