package catalog

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

type drawMsg struct{}

// printer is a one-frame program: it draws its snapshot once and quits.
type printer struct {
	snapshot Snapshot
	opts     RenderOptions
	styles   styles
	frame    string
	drawn    bool
}

func (p printer) Init() tea.Cmd {
	return func() tea.Msg {
		return drawMsg{}
	}
}

func (p printer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(drawMsg); !ok {
		return p, nil
	}

	p.frame = renderView(p.snapshot, p.opts, p.styles)
	p.drawn = true
	return p, tea.Quit
}

func (p printer) View() string {
	return p.frame
}

// Render produces the catalog as a string for one-shot commands.
func Render(snapshot Snapshot, opts RenderOptions) (string, error) {
	program := tea.NewProgram(
		printer{snapshot: snapshot, opts: opts, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("render catalog: %w", err)
	}

	result, ok := final.(printer)
	if !ok || !result.drawn {
		return "", fmt.Errorf("render catalog: unexpected final model %T", final)
	}

	return result.frame, nil
}
