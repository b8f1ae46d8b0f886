// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyKind classifies a translated key event.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyChar
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyHost // Handled by the host, never by a mode
)

// HostAction is a command the host runs outside the modal engine.
type HostAction int

const (
	HostNone HostAction = iota
	HostSave
	HostQuit
	HostForceQuit
)

// Key is a tcell key event reduced to what the modal engine consumes.
type Key struct {
	Kind KeyKind
	Rune rune
	Alt  bool
	Host HostAction
}

// InputProcessor translates tcell events into Keys.
type InputProcessor struct {
	hostKeys map[tcell.Key]HostAction
}

// NewInputProcessor creates a processor with the default host bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{hostKeys: make(map[tcell.Key]HostAction)}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.hostKeys[tcell.KeyCtrlS] = HostSave
	p.hostKeys[tcell.KeyCtrlC] = HostQuit
	p.hostKeys[tcell.KeyCtrlQ] = HostForceQuit
}

// ProcessEvent translates one key event. Keys the engine has no use for come
// back as KeyNone.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) Key {
	if action, ok := p.hostKeys[ev.Key()]; ok {
		return Key{Kind: KeyHost, Host: action}
	}
	alt := ev.Modifiers()&tcell.ModAlt != 0

	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return Key{}
		}
		return Key{Kind: KeyChar, Rune: ev.Rune(), Alt: alt}
	case tcell.KeyTab:
		return Key{Kind: KeyChar, Rune: '\t'}
	case tcell.KeyEscape:
		return Key{Kind: KeyEscape}
	case tcell.KeyEnter:
		return Key{Kind: KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Kind: KeyBackspace}
	}
	return Key{}
}
