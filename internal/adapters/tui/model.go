package tui

import (
	"context"
	"fmt"

	"github.com/bnema/shopeasy-cli/internal/adapters/render/catalog"
	"github.com/bnema/shopeasy-cli/internal/application"
	"github.com/bnema/shopeasy-cli/internal/domain"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type productsFetchedMsg struct {
	err error
}

type loginDoneMsg struct {
	ok  bool
	err error
}

type commentPostedMsg struct {
	id  domain.ProductID
	err error
}

type loginField int

const (
	usernameField loginField = iota
	passwordField
)

// Model is the single-page storefront: a login form until the session is
// authenticated, then the listing with cart and comment drafts. Every
// backend call runs as a command; the session logs failures and the model
// only tracks how many calls are still in flight.
type Model struct {
	ctx     context.Context
	session *application.Session

	username textinput.Model
	password textinput.Model
	field    loginField

	comment   textinput.Model
	editing   bool
	editingID domain.ProductID
	selected  int

	alert    string
	inFlight int
	spinner  spinner.Model
	styles   styles
}

func NewModel(ctx context.Context, session *application.Session) Model {
	username := newInput("username")
	username.Focus()

	password := newInput("password")
	password.EchoMode = textinput.EchoPassword

	return Model{
		ctx:      ctx,
		session:  session,
		username: username,
		password: password,
		comment:  newInput("Add a comment"),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		styles: newStyles(),
		// the start fetch issued by Init
		inFlight: 1,
	}
}

func newInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Cursor.SetMode(cursor.CursorStatic)
	return input
}

func (m Model) Init() tea.Cmd {
	ctx, session := m.ctx, m.session
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return productsFetchedMsg{err: session.Start(ctx)}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.inFlight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case AlertMsg:
		m.alert = msg.Message
		return m, nil
	case productsFetchedMsg:
		m.finish()
		m.clampSelection()
		return m, nil
	case loginDoneMsg:
		m.finish()
		if msg.ok {
			m.username.Blur()
			m.password.Blur()
			m.password.Reset()
		}
		m.clampSelection()
		return m, nil
	case commentPostedMsg:
		m.finish()
		if m.editing && m.editingID == msg.id {
			m.comment.SetValue(m.session.Draft(msg.id))
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	switch {
	case !m.session.Authenticated():
		return m.handleLoginKey(msg)
	case m.editing:
		return m.handleCommentKey(msg)
	default:
		return m.handleCatalogKey(msg)
	}
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.toggleField()
		return m, nil
	case "enter":
		return m, m.begin(m.loginCmd(m.username.Value(), m.password.Value()))
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.session.Products()

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(products)-1 {
			m.selected++
		}
	case "a":
		if m.selected < len(products) {
			m.session.AddToCart(products[m.selected])
		}
	case "c", "enter":
		if m.selected < len(products) {
			m.editing = true
			m.editingID = products[m.selected].ID
			m.comment.SetValue(m.session.Draft(m.editingID))
			m.comment.Focus()
		}
	case "r":
		return m, m.begin(m.fetchCmd())
	}

	return m, nil
}

func (m Model) handleCommentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.comment.Blur()
		return m, nil
	case "enter":
		return m, m.begin(m.commentCmd(m.editingID))
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case !m.session.Authenticated():
		if m.field == usernameField {
			m.username, cmd = m.username.Update(msg)
		} else {
			m.password, cmd = m.password.Update(msg)
		}
	case m.editing:
		m.comment, cmd = m.comment.Update(msg)
		m.session.SetDraftComment(m.editingID, m.comment.Value())
	}

	return m, cmd
}

func (m *Model) toggleField() {
	if m.field == usernameField {
		m.field = passwordField
		m.username.Blur()
		m.password.Focus()
		return
	}

	m.field = usernameField
	m.password.Blur()
	m.username.Focus()
}

// begin counts call as in flight and starts the spinner when it was idle.
func (m *Model) begin(call tea.Cmd) tea.Cmd {
	m.inFlight++
	if m.inFlight == 1 {
		return tea.Batch(m.spinner.Tick, call)
	}
	return call
}

func (m *Model) finish() {
	if m.inFlight > 0 {
		m.inFlight--
	}
}

func (m *Model) clampSelection() {
	n := len(m.session.Products())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) fetchCmd() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return productsFetchedMsg{err: session.FetchProducts(ctx)}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		ok, err := session.Login(ctx, username, password)
		return loginDoneMsg{ok: ok, err: err}
	}
}

func (m Model) commentCmd(id domain.ProductID) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return commentPostedMsg{id: id, err: session.PostComment(ctx, id)}
	}
}

func (m Model) View() string {
	var parts []string
	if m.session.Authenticated() {
		parts = append(parts, m.catalogView())
	} else {
		parts = append(parts, m.loginView())
	}

	if m.inFlight > 0 {
		parts = append(parts, m.styles.busy.Render(m.spinner.View()+" working..."))
	}

	if m.alert != "" {
		parts = append(parts, m.styles.alert.Render(catalog.SanitizeText(m.alert)+"\n\npress any key"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) loginView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.title.Render("ShopEasy Login"),
		m.fieldLabel("Username", usernameField),
		m.username.View(),
		m.fieldLabel("Password", passwordField),
		m.password.View(),
		m.styles.hint.Render("tab switch field • enter log in • esc quit"),
	)
}

func (m Model) fieldLabel(label string, field loginField) string {
	if m.field == field {
		return m.styles.focused.Render(label)
	}
	return m.styles.label.Render(label)
}

func (m Model) catalogView() string {
	opts := catalog.DefaultOptions()
	opts.Selected = m.selected

	parts := []string{
		catalog.View(catalog.Snapshot{
			Products: m.session.Products(),
			Cart:     m.session.Cart(),
			Drafts:   m.session.Drafts(),
		}, opts),
	}

	if m.editing {
		parts = append(parts,
			m.styles.focused.Render(fmt.Sprintf("Comment on #%d", m.editingID)),
			m.comment.View(),
			m.styles.hint.Render("enter post • esc done"),
		)
	} else {
		parts = append(parts, m.styles.hint.Render("up/down select • a add to cart • c comment • r refresh • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
