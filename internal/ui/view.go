package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/portfolio-tui/internal/format/table"
	"github.com/atomicstack/portfolio-tui/internal/page"
	"github.com/atomicstack/portfolio-tui/internal/ui/command"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	orbGlyph    = "◉"
	footerHints = "t theme · m menu · c contact · ? help · q quit"
)

var overlayBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

// View renders the navbar, the visible slice of the page and any overlay.
func (m *Model) View() string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.navbarView())

	body := m.bodyLines()
	switch {
	case m.showHelp:
		body = overlay(body, m.helpLines())
	case m.ctrl.NavMenuOpen():
		body = overlay(body, m.menuLines())
	}
	lines = append(lines, body...)

	if m.showFooter {
		lines = append(lines, m.footerView())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) navbarView() string {
	s := m.styles
	nav := m.doc.navbar
	links := make([]string, 0, len(m.doc.links))
	for i, link := range m.doc.links {
		label := fmt.Sprintf("%d %s", i+1, link.Text())
		if link.HasClass("active") {
			links = append(links, s.NavLinkActive.Render(" "+label+" "))
			continue
		}
		links = append(links, s.NavLink.Render(" "+label+" "))
	}
	toggle := s.Muted.Render("≡")
	if m.doc.navToggle.HasClass("active") {
		toggle = s.NavToggle.Render("≡")
	}
	mode := "☾ dark"
	if m.ctrl.Theme() == page.ThemeLight {
		mode = "☀ light"
	}
	left := s.Brand.Render(m.doc.portfolio.Name) + " " + strings.Join(links, "")
	right := toggle + " " + s.Muted.Render(mode)
	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	line = ansi.Truncate(line, m.width, "…")
	style := s.Navbar
	if nav.HasClass("scrolled") {
		style = s.NavbarScrolled
	}
	return style.Render(padRight(line, m.width))
}

// bodyLines renders the visible rows with the orb gutter on the right.
// Unrevealed blocks render in the hidden style.
func (m *Model) bodyLines() []string {
	f := m.frame()
	count := m.viewRows()
	first := m.offset / m.rowHeight
	rows := m.doc.rowsIn(f, first, count, func(b block, line string) string {
		if page.Revealed(b.node) {
			return line
		}
		return m.styles.Hidden.Render(ansi.Strip(line))
	})
	orbs := m.orbRows(first, count)
	width := m.contentWidth()
	out := make([]string, count)
	for i, line := range rows {
		line = padRight(ansi.Truncate(line, width, "…"), width)
		gutter := strings.Repeat(" ", gutterWidth)
		if orbs[i] {
			gutter = " " + m.styles.Orb.Render(orbGlyph)
		}
		out[i] = line + gutter
	}
	return out
}

// orbRows marks viewport rows holding a parallax orb, drawn at its layout row
// shifted by its current transform.
func (m *Model) orbRows(first, count int) []bool {
	marks := make([]bool, count)
	for _, orb := range m.doc.orbs {
		y := float64(orb.Top) + orb.TranslateY()
		row := int(math.Floor(y/float64(m.rowHeight))) - first
		if row >= 0 && row < count {
			marks[row] = true
		}
	}
	return marks
}

func (m *Model) menuLines() []string {
	s := m.styles
	menu := m.menu
	lines := []string{s.MenuTitle.Render("Navigate")}
	switch {
	case menu.Filtering && menu.Filter == "":
		lines = append(lines, s.FilterPrompt.Render("/ ")+s.FilterPlaceholder.Render("type to filter"))
	case menu.Filtering || menu.Filter != "":
		lines = append(lines, s.FilterPrompt.Render("/ ")+s.Filter.Render(menu.Filter)+s.Muted.Render("▏"))
	default:
		lines = append(lines, s.FilterPlaceholder.Render("/ to filter · enter to go"))
	}
	if len(menu.Items) == 0 {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("No matches for %q", menu.Filter)))
	}
	for i, item := range menu.Items {
		label := "  " + item.Label
		if i == menu.Cursor {
			lines = append(lines, s.SelectedItem.Render("› "+item.Label))
			continue
		}
		lines = append(lines, s.Item.Render(label))
	}
	return strings.Split(overlayBorder.Render(strings.Join(lines, "\n")), "\n")
}

func (m *Model) helpLines() []string {
	bindings := m.keymap.Bindings()
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		rows = append(rows, []string{m.styles.Accent.Render(command.KeyLabel(b)), m.styles.Help.Render(b.Help)})
	}
	lines := []string{m.styles.MenuTitle.Render("Keys")}
	lines = append(lines, table.Format(rows, nil)...)
	return strings.Split(overlayBorder.Render(strings.Join(lines, "\n")), "\n")
}

func (m *Model) footerView() string {
	pct := 100
	if limit := m.maxOffset(); limit > 0 {
		pct = m.offset * 100 / limit
	}
	line := fmt.Sprintf("%s  %3d%%", footerHints, pct)
	return m.styles.Footer.Render(padRight(ansi.Truncate(line, m.width, "…"), m.width))
}

// overlay draws box over the top-left of body, indented by two cells.
func overlay(body, box []string) []string {
	out := append([]string(nil), body...)
	for i, line := range box {
		if i >= len(out) {
			break
		}
		out[i] = "  " + line
		if w := ansi.StringWidth(body[i]); w > ansi.StringWidth(out[i]) {
			out[i] = padRight(out[i], w)
		}
	}
	return out
}

func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
