package app

import (
	"github.com/bethropolis/tidehx/internal/event"
	"github.com/bethropolis/tidehx/internal/logger"
)

func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModifiedForStatus)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSavedForStatus)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoadedForStatus)
	a.eventManager.Subscribe(event.TypeModeChanged, a.handleModeChanged)
}

// handleBufferModifiedForStatus updates the modified indicator.
func (a *App) handleBufferModifiedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleBufferLoadedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		logger.Debugf("App: buffer loaded from '%s'", data.FilePath)
	}
	a.updateStatusBarContent()
	return false
}

func (a *App) handleModeChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		logger.DebugTagf("input", "App: mode %s -> %s", data.From, data.To)
	}
	return false
}
