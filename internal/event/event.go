// internal/event/event.go
package event

import (
	"github.com/bethropolis/tidehx/internal/buffer"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // An edit batch was committed, or undo/redo restored a snapshot
	TypeBufferLoaded
	TypeBufferSaved

	// Engine events
	TypeSelectionsChanged
	TypeModeChanged
	TypeSearchUpdated // The live search query or its matches changed

	// Application lifecycle
	TypeConfigReloaded
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeBufferModified:    "BufferModified",
	TypeBufferLoaded:      "BufferLoaded",
	TypeBufferSaved:       "BufferSaved",
	TypeSelectionsChanged: "SelectionsChanged",
	TypeModeChanged:       "ModeChanged",
	TypeSearchUpdated:     "SearchUpdated",
	TypeConfigReloaded:    "ConfigReloaded",
	TypeAppReady:          "AppReady",
	TypeAppQuit:           "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData describes a snapshot transition. Changes is nil when
// the transition was a restore rather than an edit.
type BufferModifiedData struct {
	From    uint64
	To      uint64
	Changes *buffer.ChangeSet
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// SelectionsChangedData carries the new selection count.
type SelectionsChangedData struct {
	Count int
}

// ModeChangedData names the modes of a transition.
type ModeChangedData struct {
	From string
	To   string
}

// SearchUpdatedData carries the live query state.
type SearchUpdatedData struct {
	Query   string
	Matches int
	Invalid bool
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
