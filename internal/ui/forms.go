package ui

import (
	"strings"

	"github.com/atomicstack/portfolio-tui/internal/page"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const messageRows = 3

// formField is one contact form control. It satisfies page.Input so the
// controller can read and reset it.
type formField struct {
	name  string
	label string
	multi bool
	line  textinput.Model
	area  textarea.Model
}

func newFormField(name, label, placeholder string, multi bool) *formField {
	f := &formField{name: name, label: label, multi: multi}
	if multi {
		ta := textarea.New()
		ta.Placeholder = placeholder
		ta.ShowLineNumbers = false
		ta.Prompt = "│ "
		ta.CharLimit = 2000
		ta.SetHeight(messageRows)
		ta.Cursor.SetMode(cursor.CursorStatic)
		ta.Blur()
		f.area = ta
		return f
	}
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "│ "
	ti.CharLimit = 256
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Blur()
	f.line = ti
	return f
}

func newContactFields() []*formField {
	return []*formField{
		newFormField("name", "Name", "Your name", false),
		newFormField("email", "Email", "you@example.com", false),
		newFormField("subject", "Subject", "What is this about?", false),
		newFormField("message", "Message", "Tell me about your project", true),
	}
}

func (f *formField) Value() string {
	if f.multi {
		return f.area.Value()
	}
	return f.line.Value()
}

func (f *formField) Reset() {
	if f.multi {
		f.area.Reset()
		return
	}
	f.line.Reset()
}

func (f *formField) Focus() tea.Cmd {
	if f.multi {
		return f.area.Focus()
	}
	return f.line.Focus()
}

func (f *formField) Blur() {
	if f.multi {
		f.area.Blur()
		return
	}
	f.line.Blur()
}

func (f *formField) Focused() bool {
	if f.multi {
		return f.area.Focused()
	}
	return f.line.Focused()
}

func (f *formField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.multi {
		f.area, cmd = f.area.Update(msg)
		return cmd
	}
	f.line, cmd = f.line.Update(msg)
	return cmd
}

func (f *formField) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	if f.multi {
		f.area.SetWidth(width)
		return
	}
	f.line.Width = width - 3
}

// rows is the fixed number of input lines the control occupies.
func (f *formField) rows() int {
	if f.multi {
		return messageRows
	}
	return 1
}

func (f *formField) InputView() []string {
	var view string
	if f.multi {
		view = f.area.View()
	} else {
		view = f.line.View()
	}
	return fit(strings.Split(view, "\n"), f.rows())
}

func (m *Model) fieldInputs() map[string]page.Input {
	inputs := make(map[string]page.Input, len(m.fields))
	for _, f := range m.fields {
		inputs[f.name] = f
	}
	return inputs
}

// submitFocus is the focus index of the submit button.
func (m *Model) submitFocus() int {
	return len(m.fields)
}

func (m *Model) focusedName() string {
	switch {
	case m.focus < 0:
		return ""
	case m.focus == m.submitFocus():
		return "submit"
	default:
		return m.fields[m.focus].name
	}
}

// focusControl moves keyboard focus inside the contact form. Leaving a field
// validates it the way a blur event does. A negative index leaves the form.
func (m *Model) focusControl(idx int) tea.Cmd {
	if idx == m.focus {
		return nil
	}
	if m.focus >= 0 && m.focus < len(m.fields) {
		prev := m.fields[m.focus]
		prev.Blur()
		m.ctrl.Blur(prev.name)
	}
	m.focus = idx
	var cmd tea.Cmd
	if idx >= 0 && idx < len(m.fields) {
		cmd = m.fields[idx].Focus()
	}
	if name := m.focusedName(); name != "" {
		m.ensureVisible(m.doc.root.ByID(name))
	}
	return cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	count := len(m.fields) + 1
	next := ((m.focus+delta)%count + count) % count
	return m.focusControl(next)
}

func (m *Model) submit() tea.Cmd {
	if m.ctrl.Submitting() {
		return nil
	}
	m.ctrl.Submit()
	return nil
}

// handleFormKey routes keys while a form control has focus. It reports false
// for keys the page should handle instead.
func (m *Model) handleFormKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.focus < 0 {
		return false, nil
	}
	switch msg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "esc":
		return true, m.focusControl(-1)
	case "tab":
		return true, m.moveFocus(1)
	case "shift+tab":
		return true, m.moveFocus(-1)
	case "ctrl+s":
		return true, m.submit()
	case "enter":
		if m.focus == m.submitFocus() {
			return true, m.submit()
		}
		if !m.fields[m.focus].multi {
			return true, m.moveFocus(1)
		}
	}
	if m.focus == m.submitFocus() {
		return false, nil
	}
	f := m.fields[m.focus]
	before := f.Value()
	cmd := f.Update(msg)
	if f.Value() != before {
		m.ctrl.Input(f.name)
	}
	return true, cmd
}

func fit(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
