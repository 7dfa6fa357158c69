package ui

import tea "github.com/charmbracelet/bubbletea"

const timerQueue = 64

// timerMsg carries an expired page timer back onto the update loop.
type timerMsg struct {
	fn func()
}

type timersClosedMsg struct{}

func waitForTimer(ch <-chan func(), done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-ch:
			return timerMsg{fn: fn}
		case <-done:
			return timersClosedMsg{}
		}
	}
}

// post hands a callback from a timer goroutine to the update loop.
func (m *Model) post(fn func()) {
	select {
	case m.timers <- fn:
	case <-m.done:
	}
}

func (m *Model) handleTimerMsg(msg tea.Msg) tea.Cmd {
	tm, ok := msg.(timerMsg)
	if !ok {
		return nil
	}
	if tm.fn != nil {
		tm.fn()
	}
	return waitForTimer(m.timers, m.done)
}

func (m *Model) handleTimersClosedMsg(tea.Msg) tea.Cmd {
	m.timers = nil
	return nil
}

// Close releases timer goroutines blocked on delivery. It is safe to call
// more than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		if m.done != nil {
			close(m.done)
		}
	})
}
