package message

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// ErrorCmd wraps an error for the root model.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// After delivers msg once the delay has elapsed.  The sleep runs on
// the command goroutine, never the render loop.
func After(delay time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(delay)
		return msg
	}
}
