package command

import "strings"

// Action identifiers understood by the page model.
const (
	ThemeToggle  = "theme.toggle"
	ScrollDown   = "scroll.down"
	ScrollUp     = "scroll.up"
	PageDown     = "scroll.pagedown"
	PageUp       = "scroll.pageup"
	ScrollTop    = "scroll.top"
	ScrollBottom = "scroll.bottom"
	NavMenu      = "nav.menu"
	NavLink      = "nav.link"
	Contact      = "form.contact"
	ViewWork     = "nav.work"
	Help         = "help"
	Quit         = "quit"
)

// Binding maps keys to an action id with a help line.
type Binding struct {
	Keys []string
	ID   string
	Help string
}

// Keymap resolves key strings to action ids.
type Keymap struct {
	bindings []Binding
	byKey    map[string]string
}

// DefaultBindings is the page-level key layout.
func DefaultBindings() []Binding {
	return []Binding{
		{Keys: []string{"j", "down"}, ID: ScrollDown, Help: "scroll down"},
		{Keys: []string{"k", "up"}, ID: ScrollUp, Help: "scroll up"},
		{Keys: []string{"pgdown", " ", "ctrl+d"}, ID: PageDown, Help: "page down"},
		{Keys: []string{"pgup", "ctrl+u"}, ID: PageUp, Help: "page up"},
		{Keys: []string{"g", "home"}, ID: ScrollTop, Help: "go to top"},
		{Keys: []string{"G", "end"}, ID: ScrollBottom, Help: "go to bottom"},
		{Keys: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, ID: NavLink, Help: "jump to section"},
		{Keys: []string{"m"}, ID: NavMenu, Help: "navigation menu"},
		{Keys: []string{"t"}, ID: ThemeToggle, Help: "toggle theme"},
		{Keys: []string{"c", "tab"}, ID: Contact, Help: "contact form"},
		{Keys: []string{"w"}, ID: ViewWork, Help: "view projects"},
		{Keys: []string{"?"}, ID: Help, Help: "toggle help"},
		{Keys: []string{"q", "ctrl+c"}, ID: Quit, Help: "quit"},
	}
}

// NewKeymap indexes bindings by key. Later bindings win on conflicts.
func NewKeymap(bindings []Binding) *Keymap {
	km := &Keymap{
		bindings: append([]Binding(nil), bindings...),
		byKey:    map[string]string{},
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			km.byKey[k] = b.ID
		}
	}
	return km
}

// Lookup returns the action id bound to key.
func (k *Keymap) Lookup(key string) (string, bool) {
	id, ok := k.byKey[key]
	return id, ok
}

// Bindings returns the bindings in declaration order.
func (k *Keymap) Bindings() []Binding {
	return append([]Binding(nil), k.bindings...)
}

// KeyLabel joins the keys of a binding for display, collapsing digit runs.
func KeyLabel(b Binding) string {
	if len(b.Keys) > 2 && b.Keys[0] == "1" {
		return b.Keys[0] + "-" + b.Keys[len(b.Keys)-1]
	}
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, "/")
}
