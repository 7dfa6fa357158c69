package ui

import (
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMenuKey drives the open navigation menu: cursor movement, the fuzzy
// filter and link activation.
func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	menu := m.menu
	key := msg.String()
	switch key {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		switch {
		case menu.Filter != "":
			menu.SetFilter("", 0)
			events.Nav.Filter("", len(menu.Items))
		case menu.Filtering:
			menu.Filtering = false
		default:
			m.ctrl.ToggleNavMenu()
		}
		return nil
	case "enter":
		item, ok := menu.Current()
		if !ok {
			return nil
		}
		m.ctrl.ActivateNavLink(m.doc.link(item.ID))
		menu.Reset(item.ID)
		return nil
	case "up", "ctrl+p":
		menu.MoveCursorUp()
		return nil
	case "down", "ctrl+n":
		menu.MoveCursorDown()
		return nil
	case "home":
		menu.MoveCursorHome()
		return nil
	case "end":
		menu.MoveCursorEnd()
		return nil
	case "backspace":
		if menu.Filtering && menu.DeleteFilterRuneBackward() {
			events.Nav.Filter(menu.Filter, len(menu.Items))
		}
		return nil
	}

	if !menu.Filtering {
		switch key {
		case "/":
			menu.Filtering = true
		case "k":
			menu.MoveCursorUp()
		case "j":
			menu.MoveCursorDown()
		case "m", "q":
			m.ctrl.ToggleNavMenu()
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.activateLink(int(key[0] - '1'))
			menu.Reset("")
		}
		return nil
	}

	var text string
	switch msg.Type {
	case tea.KeyRunes:
		text = string(msg.Runes)
	case tea.KeySpace:
		text = " "
	}
	if text != "" && menu.InsertFilterText(text) {
		events.Nav.Filter(menu.Filter, len(menu.Items))
	}
	return nil
}
