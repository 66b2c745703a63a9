package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/shopeasy-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

// Run drives session interactively until the user quits. Nil in or out keep
// the terminal defaults. notifier should be the one the session was built
// with so login rejections reach the screen.
func Run(ctx context.Context, session *application.Session, notifier *Notifier, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	p := tea.NewProgram(NewModel(ctx, session), opts...)
	if notifier != nil {
		notifier.Bind(p.Send)
		defer notifier.Bind(nil)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run storefront: %w", err)
	}

	return nil
}
