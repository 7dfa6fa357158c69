package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/portfolio-tui/internal/logging"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderAbout renders the about Markdown for a theme and wrap width. Glamour
// failures fall back to plain wrapped text.
func renderAbout(markdown, themeName string, width int) []string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(themeName),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		var out string
		out, err = r.Render(markdown)
		if err == nil {
			return trimBlank(strings.Split(out, "\n"))
		}
	}
	logging.Error(fmt.Errorf("render about: %w", err))
	plain := lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(strings.TrimSpace(markdown))
	return trimBlank(strings.Split(plain, "\n"))
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(ansi.Strip(lines[start])) == "" {
		start++
	}
	for end > start && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	if start == end {
		return []string{""}
	}
	return append([]string{""}, lines[start:end]...)
}

// aboutLines returns the cached rendering, re-rendering after a theme or
// width change.
func (m *Model) aboutLines(themeName string, width int) []string {
	key := fmt.Sprintf("%s:%d", themeName, width)
	if key != m.aboutKey {
		m.aboutKey = key
		m.about = renderAbout(m.doc.portfolio.About, themeName, width)
	}
	return m.about
}
