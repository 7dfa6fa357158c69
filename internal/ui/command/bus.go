package command

import (
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Action handles one bound key. It runs on the update loop and may return a
// follow-up command.
type Action func(key string) tea.Cmd

// Bus coordinates the execution of keyboard actions.
type Bus struct {
	actions map[string]Action
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{actions: map[string]Action{}}
}

// Register binds an action id to its handler, replacing any previous one.
func (b *Bus) Register(id string, fn Action) {
	b.actions[id] = fn
}

// Has reports whether an action id is registered.
func (b *Bus) Has(id string) bool {
	_, ok := b.actions[id]
	return ok
}

// Run executes the action registered for id while emitting trace logs. It
// reports false when no action is registered.
func (b *Bus) Run(id, key string) (tea.Cmd, bool) {
	fn, ok := b.actions[id]
	if !ok || fn == nil {
		events.Action.Unknown(key)
		return nil, false
	}
	events.Action.Run(id, key)
	return fn(key), true
}
