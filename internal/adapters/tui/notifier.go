package tui

import (
	"sync"

	"github.com/bnema/shopeasy-cli/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

// AlertMsg asks the storefront to show a blocking message until a key is pressed.
type AlertMsg struct {
	Message string
}

// Notifier forwards session alerts into a running program. Alerts raised
// before Bind is called are dropped.
type Notifier struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Bind routes future alerts to send, typically (*tea.Program).Send.
func (n *Notifier) Bind(send func(tea.Msg)) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.send = send
}

func (n *Notifier) Alert(message string) {
	n.mu.Lock()
	send := n.send
	n.mu.Unlock()

	if send == nil {
		return
	}
	send(AlertMsg{Message: message})
}
