package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNotifierDropsAlertsUntilBound(t *testing.T) {
	notifier := NewNotifier()
	notifier.Alert("lost")

	var got []tea.Msg
	notifier.Bind(func(msg tea.Msg) {
		got = append(got, msg)
	})
	notifier.Alert("Login failed")

	assert.Equal(t, []tea.Msg{AlertMsg{Message: "Login failed"}}, got)

	notifier.Bind(nil)
	notifier.Alert("after unbind")
	assert.Len(t, got, 1)
}
