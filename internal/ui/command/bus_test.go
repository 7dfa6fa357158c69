package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBusRunsRegisteredAction(t *testing.T) {
	b := New()
	var got string
	b.Register(ThemeToggle, func(key string) tea.Cmd {
		got = key
		return nil
	})
	if !b.Has(ThemeToggle) {
		t.Fatalf("expected action registered")
	}
	if _, ok := b.Run(ThemeToggle, "t"); !ok {
		t.Fatalf("expected action to run")
	}
	if got != "t" {
		t.Fatalf("expected key t, got %q", got)
	}
	if _, ok := b.Run("missing", "x"); ok {
		t.Fatalf("expected unknown action to report false")
	}
}

func TestKeymapLookupAndLabels(t *testing.T) {
	km := NewKeymap(DefaultBindings())
	tests := map[string]string{
		"t":      ThemeToggle,
		"down":   ScrollDown,
		"7":      NavLink,
		"ctrl+c": Quit,
		" ":      PageDown,
		"w":      ViewWork,
	}
	for key, want := range tests {
		if got, ok := km.Lookup(key); !ok || got != want {
			t.Fatalf("key %q: expected %s, got %s", key, want, got)
		}
	}
	if _, ok := km.Lookup("z"); ok {
		t.Fatalf("expected z unbound")
	}
	var digits, page Binding
	for _, b := range km.Bindings() {
		switch b.ID {
		case NavLink:
			digits = b
		case PageDown:
			page = b
		}
	}
	if got := KeyLabel(digits); got != "1-9" {
		t.Fatalf("expected digit label 1-9, got %q", got)
	}
	if got := KeyLabel(page); got != "pgdown/space/ctrl+d" {
		t.Fatalf("expected page label, got %q", got)
	}
}
