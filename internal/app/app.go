// internal/app/app.go
package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/config"
	"github.com/bethropolis/tidehx/internal/core"
	"github.com/bethropolis/tidehx/internal/core/clipboard"
	"github.com/bethropolis/tidehx/internal/core/find"
	"github.com/bethropolis/tidehx/internal/event"
	"github.com/bethropolis/tidehx/internal/input"
	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/modehandler"
	"github.com/bethropolis/tidehx/internal/statusbar"
	"github.com/bethropolis/tidehx/internal/theme"
	"github.com/bethropolis/tidehx/internal/tui"
	"github.com/bethropolis/tidehx/internal/types"
)

// ErrUnsavedChanges is returned when opening another file would discard edits.
var ErrUnsavedChanges = errors.New("buffer has unsaved changes")

// Options configures NewApp.
type Options struct {
	FilePath string
	Config   *config.Config // Defaults when nil
	// ConfigPath is watched for changes when non-empty.
	ConfigPath string
	// Screen replaces the terminal, mainly for tests.
	Screen tcell.Screen
}

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager     *tui.TUI
	view           *tui.View
	editor         *core.Editor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	modeHandler    *modehandler.ModeHandler
	inputProcessor *input.InputProcessor
	watcher        *config.Watcher
	cfg            *config.Config

	quitting  bool
	quitArmed bool // A quit with unsaved changes was refused once
}

// configReloadEvent carries a reloaded configuration into the event loop.
type configReloadEvent struct {
	tcell.EventTime
	cfg *config.Config
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	th := theme.Load(cfg.Editor.ThemeFile)
	styles := tui.StylesFromTheme(th)
	var tuiManager *tui.TUI
	var err error
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, styles.Default)
	} else {
		tuiManager, err = tui.New(styles.Default)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	doc := buffer.NewDocument("")
	if opts.FilePath != "" {
		if err := doc.Load(opts.FilePath); err != nil {
			tuiManager.Close()
			return nil, err
		}
	}

	eventManager := event.NewManager()
	a := &App{
		tuiManager:     tuiManager,
		statusBar:      statusbar.New(statusbar.ConfigFromTheme(th)),
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		cfg:            cfg,
	}

	a.editor = core.NewEditor(doc, core.Options{
		TabWidth:   cfg.Editor.TabWidth,
		MaxHistory: cfg.Editor.MaxHistory,
		Clipboard:  chooseClipboard(cfg.Editor.SystemClipboard),
		Events:     eventManager,
		Opener:     a,
	})
	a.view = tui.NewView(a.editor, styles, cfg.Editor.ScrollOff)
	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:        a.editor,
		EventManager:  eventManager,
		StatusBar:     a.statusBar,
		Caret:         a.view,
		SearchTimeout: cfg.Editor.SearchTimeout(),
		PatternCache:  find.NewPatternCache(),
	})
	a.view.Matches = a.searchMatches
	a.statusBar.ShowMode(a.modeHandler.CurrentMode().String(), "")

	a.subscribe()

	if opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, *cfg, a.postConfig)
		if err != nil {
			logger.Warnf("App: config changes will not be picked up: %v", err)
		} else {
			a.watcher = w
		}
	}
	return a, nil
}

func chooseClipboard(system bool) clipboard.Clipboard {
	if system && clipboard.Supported() {
		logger.Debugf("App: using the system clipboard")
		return clipboard.NewSystem()
	}
	return clipboard.NewMemory()
}

func (a *App) searchMatches() []types.Span {
	if s := a.modeHandler.Search(); s != nil {
		return s.Matches()
	}
	return nil
}

// Editor returns the editing engine.
func (a *App) Editor() *core.Editor { return a.editor }

// ModeHandler returns the mode state machine.
func (a *App) ModeHandler() *modehandler.ModeHandler { return a.modeHandler }

// Run starts the application's main event loop and blocks until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	if a.watcher != nil {
		defer a.watcher.Close()
	}

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("tidehx - Ctrl+S Save | Ctrl+C Quit")
	a.drawEditor()

	for !a.quitting {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			break
		}
		if a.handleEvent(ev) {
			a.drawEditor()
		}
	}

	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	if a.editor.Document().IsModified() {
		logger.Warnf("App: exited with unsaved changes")
	}
	logger.Infof("Exiting application.")
	return nil
}

// handleEvent processes one terminal event and reports whether a redraw is due.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		return a.handleKey(e)
	case *configReloadEvent:
		a.applyConfig(e.cfg)
		return true
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	k := a.inputProcessor.ProcessEvent(ev)
	switch k.Kind {
	case input.KeyNone:
		return false
	case input.KeyHost:
		a.runHost(k.Host)
		return true
	}
	a.quitArmed = false
	return a.modeHandler.HandleKey(k)
}

func (a *App) runHost(action input.HostAction) {
	switch action {
	case input.HostSave:
		a.save()
	case input.HostQuit:
		if a.editor.Document().IsModified() && !a.quitArmed {
			a.quitArmed = true
			a.statusBar.SetTemporaryMessage("Unsaved changes! Ctrl+C again or Ctrl+Q to discard")
			return
		}
		a.quitting = true
	case input.HostForceQuit:
		a.quitting = true
	}
}

func (a *App) save() {
	doc := a.editor.Document()
	if doc.FilePath() == "" {
		a.statusBar.SetTemporaryMessage("No file name")
		return
	}
	if err := a.editor.Save(); err != nil {
		logger.Errorf("App: save failed: %v", err)
		a.statusBar.SetTemporaryMessage("Save failed: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("Saved %s", doc.FilePath())
}

// OpenFile replaces the document with the file at path.
func (a *App) OpenFile(path string) error {
	doc := a.editor.Document()
	if doc.IsModified() {
		return ErrUnsavedChanges
	}
	if err := doc.Load(path); err != nil {
		return err
	}
	a.editor.Reload()
	logger.Infof("App: opened '%s'", path)
	return nil
}

// postConfig runs on the watcher goroutine and hands cfg to the event loop.
func (a *App) postConfig(cfg *config.Config) {
	ev := &configReloadEvent{cfg: cfg}
	ev.SetEventNow()
	if err := a.tuiManager.PostEvent(ev); err != nil {
		logger.Warnf("App: dropped config reload: %v", err)
	}
}

func (a *App) applyConfig(cfg *config.Config) {
	a.cfg = cfg
	a.editor.SetTabWidth(cfg.Editor.TabWidth)
	a.editor.SetHistoryLimit(cfg.Editor.MaxHistory)
	a.view.ScrollOff = cfg.Editor.ScrollOff
	th := theme.Load(cfg.Editor.ThemeFile)
	a.view.Styles = tui.StylesFromTheme(th)
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(th))
	a.modeHandler.SetSearchTimeout(cfg.Editor.SearchTimeout())
	logger.SetLevel(logger.ParseLevel(cfg.Logger.LogLevel))
	a.eventManager.Dispatch(event.TypeConfigReloaded, nil)
	a.statusBar.SetTemporaryMessage("Configuration reloaded")
}
