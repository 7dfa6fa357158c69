package state

// MoveCursorHome moves the cursor to the first item.
func (m *Menu) MoveCursorHome() bool {
	if len(m.Items) == 0 {
		m.Cursor = 0
		return false
	}
	old := m.Cursor
	m.Cursor = 0
	return old != m.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (m *Menu) MoveCursorEnd() bool {
	n := len(m.Items)
	if n == 0 {
		m.Cursor = 0
		return false
	}
	old := m.Cursor
	m.Cursor = n - 1
	return old != m.Cursor
}

// MoveCursorUp moves the cursor one item up, wrapping to the end.
func (m *Menu) MoveCursorUp() bool {
	if len(m.Items) == 0 {
		return false
	}
	old := m.Cursor
	m.Cursor--
	if m.Cursor < 0 {
		m.Cursor = len(m.Items) - 1
	}
	return old != m.Cursor
}

// MoveCursorDown moves the cursor one item down, wrapping to the start.
func (m *Menu) MoveCursorDown() bool {
	if len(m.Items) == 0 {
		return false
	}
	old := m.Cursor
	m.Cursor++
	if m.Cursor >= len(m.Items) {
		m.Cursor = 0
	}
	return old != m.Cursor
}
