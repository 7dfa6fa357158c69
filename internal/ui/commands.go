package ui

import (
	"context"

	"github.com/atomicstack/portfolio-tui/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) registerActions() {
	page := func() int { return m.viewRows() - 1 }
	m.bus.Register(command.ThemeToggle, func(string) tea.Cmd {
		m.ctrl.ToggleTheme(context.Background())
		m.syncTheme()
		return nil
	})
	m.bus.Register(command.ScrollDown, func(string) tea.Cmd {
		m.scrollBy(m.rowHeight)
		return nil
	})
	m.bus.Register(command.ScrollUp, func(string) tea.Cmd {
		m.scrollBy(-m.rowHeight)
		return nil
	})
	m.bus.Register(command.PageDown, func(string) tea.Cmd {
		m.scrollBy(page() * m.rowHeight)
		return nil
	})
	m.bus.Register(command.PageUp, func(string) tea.Cmd {
		m.scrollBy(-page() * m.rowHeight)
		return nil
	})
	m.bus.Register(command.ScrollTop, func(string) tea.Cmd {
		m.scrollToRow(0)
		return nil
	})
	m.bus.Register(command.ScrollBottom, func(string) tea.Cmd {
		m.scrollToRow(m.doc.rows)
		return nil
	})
	m.bus.Register(command.NavMenu, func(string) tea.Cmd {
		if m.ctrl.ToggleNavMenu() {
			m.menu.Reset(m.ctrl.ActiveSectionID())
		}
		return nil
	})
	m.bus.Register(command.NavLink, func(key string) tea.Cmd {
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.activateLink(int(key[0] - '1'))
		}
		return nil
	})
	m.bus.Register(command.Contact, func(string) tea.Cmd {
		m.followAnchor("#contact")
		return m.focusControl(0)
	})
	m.bus.Register(command.ViewWork, func(string) tea.Cmd {
		m.followAnchor("#projects")
		return nil
	})
	m.bus.Register(command.Help, func(string) tea.Cmd {
		m.showHelp = !m.showHelp
		return nil
	})
	m.bus.Register(command.Quit, func(string) tea.Cmd {
		return tea.Quit
	})
}
