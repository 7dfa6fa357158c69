package ui

import (
	"github.com/atomicstack/portfolio-tui/internal/dom"
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
	"github.com/atomicstack/portfolio-tui/internal/observe"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelRows = 3

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	if m.showHelp && key != "ctrl+c" && key != "q" {
		m.showHelp = false
		return nil
	}
	if m.ctrl.NavMenuOpen() {
		return m.handleMenuKey(keyMsg)
	}
	if handled, cmd := m.handleFormKey(keyMsg); handled {
		return cmd
	}
	if id, ok := m.keymap.Lookup(key); ok {
		cmd, _ := m.bus.Run(id, key)
		return cmd
	}
	events.Action.Unknown(key)
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || m.ctrl.NavMenuOpen() {
		return nil
	}
	switch mouse.Type {
	case tea.MouseWheelUp:
		m.scrollBy(-wheelRows * m.rowHeight)
	case tea.MouseWheelDown:
		m.scrollBy(wheelRows * m.rowHeight)
	}
	return nil
}

// viewRows is the number of document rows visible below the navbar.
func (m *Model) viewRows() int {
	rows := m.height - 1
	if m.showFooter {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) viewport() observe.Viewport {
	return observe.Viewport{ScrollTop: m.offset, Height: m.viewRows() * m.rowHeight}
}

func (m *Model) maxOffset() int {
	limit := (m.doc.rows - m.viewRows()) * m.rowHeight
	if limit < 0 {
		return 0
	}
	return limit
}

func (m *Model) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if limit := m.maxOffset(); offset > limit {
		return limit
	}
	return offset
}

// setOffset moves the viewport and fires the page's scroll handling when the
// position changes.
func (m *Model) setOffset(offset int) {
	offset = m.clampOffset(offset)
	if offset == m.offset {
		return
	}
	m.offset = offset
	m.ctrl.Scroll(offset)
	m.observers.Update(m.viewport())
}

// scrollBy is a direct user scroll; it cancels any smooth scroll.
func (m *Model) scrollBy(delta int) {
	m.scroller.Stop()
	m.setOffset(m.offset + delta)
}

func (m *Model) scrollToRow(row int) {
	m.scroller.Stop()
	m.setOffset(row * m.rowHeight)
}

// ensureVisible scrolls just enough to bring n into view. Nothing happens
// while a smooth scroll is running.
func (m *Model) ensureVisible(n *dom.Node) {
	if n == nil || m.scroller.Active() {
		return
	}
	vp := m.viewport()
	switch {
	case n.Top < vp.ScrollTop:
		m.setOffset(n.Top)
	case n.Top+n.Height > vp.ScrollTop+vp.Height:
		m.setOffset(n.Top + n.Height - vp.Height)
	}
}

// followAnchor clicks the first in-page link for href outside the navbar,
// falling back to the bare fragment when the page has none.
func (m *Model) followAnchor(href string) bool {
	for _, a := range m.ctrl.Anchors() {
		if a.HasClass("nav-link") {
			continue
		}
		if h, _ := a.Attr("href"); h == href {
			return m.ctrl.ClickLink(a)
		}
	}
	return m.ctrl.ClickAnchor(href)
}

// activateLink follows the n-th nav link.
func (m *Model) activateLink(idx int) {
	if idx < 0 || idx >= len(m.doc.links) {
		return
	}
	m.ctrl.ActivateNavLink(m.doc.links[idx])
}
