// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/tidehx/internal/logger"
)

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Event Manager: Handler subscribed to %v", eventType)
}

// Dispatch sends an event to the handlers of its type, synchronously and in
// subscription order. A handler returning true stops propagation.
// Dispatch on a nil Manager is a no-op.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	if m == nil {
		return
	}
	ev := Event{Type: eventType, Data: data}

	m.mu.RLock()
	handlers := append([]Handler(nil), m.handlers[eventType]...)
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}
	logger.DebugTagf("event", "Event Manager: Dispatching %v to %d handler(s)", eventType, len(handlers))

	for _, handler := range handlers {
		if handler(ev) {
			break
		}
	}
}
