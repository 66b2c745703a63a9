package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bnema/shopeasy-cli/internal/application"
	"github.com/bnema/shopeasy-cli/internal/domain"
	"github.com/bnema/shopeasy-cli/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postedComment struct {
	id   domain.ProductID
	text string
}

type fakeStore struct {
	mu         sync.Mutex
	products   []domain.Product
	loginOK    bool
	loginErr   error
	commentErr error
	listCalls  int
	logins     []domain.Credentials
	comments   []postedComment
}

var _ ports.StoreAPI = (*fakeStore)(nil)

func (f *fakeStore) ListProducts(context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++
	return domain.CloneProducts(f.products), nil
}

func (f *fakeStore) Login(_ context.Context, credentials domain.Credentials) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logins = append(f.logins, credentials)
	return f.loginOK, f.loginErr
}

func (f *fakeStore) PostComment(_ context.Context, id domain.ProductID, comment string) (ports.CommentReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.commentErr != nil {
		return ports.CommentReceipt{}, f.commentErr
	}
	f.comments = append(f.comments, postedComment{id: id, text: comment})
	return ports.CommentReceipt{}, nil
}

// harness runs commands synchronously and feeds their messages back into the
// model. Spinner ticks are dropped so nothing sleeps.
type harness struct {
	t       *testing.T
	api     *fakeStore
	session *application.Session
	model   Model
	quit    bool

	mu      sync.Mutex
	pending []tea.Msg
}

func newHarness(t *testing.T, api *fakeStore) *harness {
	t.Helper()

	h := &harness{t: t, api: api}
	notifier := NewNotifier()
	notifier.Bind(func(msg tea.Msg) {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.pending = append(h.pending, msg)
	})

	h.session = application.NewSession(api, notifier, nil)
	h.model = NewModel(context.Background(), h.session)
	h.run(h.model.Init())
	return h
}

func (h *harness) collect(cmd tea.Cmd) []tea.Msg {
	msgs := execCmd(cmd)

	h.mu.Lock()
	defer h.mu.Unlock()
	msgs = append(msgs, h.pending...)
	h.pending = nil
	return msgs
}

func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, execCmd(c)...)
	}
	return msgs
}

func (h *harness) run(cmd tea.Cmd) {
	queue := h.collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		switch msg.(type) {
		case spinner.TickMsg:
			continue
		case tea.QuitMsg:
			h.quit = true
			continue
		}

		next, nextCmd := h.model.Update(msg)
		model, ok := next.(Model)
		require.True(h.t, ok)
		h.model = model
		queue = append(queue, h.collect(nextCmd)...)
	}
}

func (h *harness) send(msg tea.Msg) {
	next, cmd := h.model.Update(msg)
	model, ok := next.(Model)
	require.True(h.t, ok)
	h.model = model
	h.run(cmd)
}

func (h *harness) typeText(text string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func (h *harness) press(keyType tea.KeyType) {
	h.send(tea.KeyMsg{Type: keyType})
}

func (h *harness) login(username, password string) {
	h.typeText(username)
	h.press(tea.KeyTab)
	h.typeText(password)
	h.press(tea.KeyEnter)
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Pen", Price: 2, Comments: []string{}},
		{ID: 2, Name: "Ink", Price: 5.5, Comments: []string{"smudges"}},
	}
}

func TestModelInitFetchesListingAndShowsLoginForm(t *testing.T) {
	api := &fakeStore{products: testProducts()}
	h := newHarness(t, api)

	assert.Equal(t, 1, api.listCalls)
	assert.Equal(t, 0, h.model.inFlight)
	assert.Len(t, h.session.Products(), 2)

	view := h.model.View()
	assert.Contains(t, view, "ShopEasy Login")
	assert.Contains(t, view, "Username")
	assert.NotContains(t, view, "Pen")
}

func TestModelLoginSuccessShowsCatalog(t *testing.T) {
	api := &fakeStore{products: testProducts(), loginOK: true}
	h := newHarness(t, api)

	h.login("alice", "secret")

	require.Equal(t, []domain.Credentials{{Username: "alice", Password: "secret"}}, api.logins)
	assert.True(t, h.session.Authenticated())
	assert.Equal(t, 2, api.listCalls)
	assert.Equal(t, 0, h.model.inFlight)
	assert.Equal(t, "", h.model.password.Value())

	view := h.model.View()
	assert.NotContains(t, view, "ShopEasy Login")
	assert.Contains(t, view, "> Pen")
	assert.Contains(t, view, "smudges")
	assert.Contains(t, view, "Cart (0 items)")
}

func TestModelLoginRejectedShowsAlertUntilKeyPress(t *testing.T) {
	api := &fakeStore{products: testProducts()}
	h := newHarness(t, api)

	h.login("alice", "wrong")

	assert.False(t, h.session.Authenticated())
	assert.Equal(t, 1, api.listCalls)
	assert.Equal(t, application.LoginFailedMessage, h.model.alert)
	assert.Contains(t, h.model.View(), "Login failed")

	h.typeText("x")

	assert.Empty(t, h.model.alert)
	assert.Equal(t, "wrong", h.model.password.Value())
	assert.Contains(t, h.model.View(), "ShopEasy Login")
}

func TestModelLoginTransportFailureStaysSilent(t *testing.T) {
	api := &fakeStore{products: testProducts(), loginErr: errors.New("connection refused")}
	h := newHarness(t, api)

	h.login("alice", "secret")

	assert.False(t, h.session.Authenticated())
	assert.Empty(t, h.model.alert)
	assert.Equal(t, 0, h.model.inFlight)
}

func TestModelAddToCartUsesSelection(t *testing.T) {
	api := &fakeStore{products: testProducts(), loginOK: true}
	h := newHarness(t, api)
	h.login("alice", "secret")

	h.typeText("a")
	h.press(tea.KeyDown)
	h.typeText("a")
	h.typeText("a")

	cart := h.session.Cart()
	require.Len(t, cart, 3)
	assert.Equal(t, []domain.ProductID{1, 2, 2}, []domain.ProductID{cart[0].ID, cart[1].ID, cart[2].ID})
	assert.Contains(t, h.model.View(), "Cart (3 items)")
	assert.Contains(t, h.model.View(), "Ink - $5.5")
}

func TestModelSelectionStaysInRange(t *testing.T) {
	api := &fakeStore{products: testProducts(), loginOK: true}
	h := newHarness(t, api)
	h.login("alice", "secret")

	h.press(tea.KeyUp)
	assert.Equal(t, 0, h.model.selected)

	h.press(tea.KeyDown)
	h.press(tea.KeyDown)
	h.press(tea.KeyDown)
	assert.Equal(t, 1, h.model.selected)

	api.mu.Lock()
	api.products = api.products[:1]
	api.mu.Unlock()
	h.typeText("r")

	assert.Equal(t, 0, h.model.selected)
	assert.Equal(t, 3, api.listCalls)
}

func TestModelPostCommentAppendsAndClearsDraft(t *testing.T) {
	api := &fakeStore{products: testProducts(), loginOK: true}
	h := newHarness(t, api)
	h.login("alice", "secret")

	h.press(tea.KeyDown)
	h.typeText("c")
	h.typeText("great")

	assert.Equal(t, "great", h.session.Draft(2))
	assert.Contains(t, h.model.View(), "draft: great")

	h.press(tea.KeyEnter)

	assert.Equal(t, []postedComment{{id: 2, text: "great"}}, api.comments)
	product, err := h.session.Product(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"smudges", "great"}, product.Comments)
	assert.Equal(t, "", h.session.Draft(2))
	assert.Equal(t, "", h.model.comment.Value())
	assert.True(t, h.model.editing)
}

func TestModelPostCommentFailureKeepsDraft(t *testing.T) {
	api := &fakeStore{products: testProducts(), loginOK: true, commentErr: errors.New("status 500")}
	h := newHarness(t, api)
	h.login("alice", "secret")

	h.typeText("c")
	h.typeText("hello")
	h.press(tea.KeyEnter)

	assert.Equal(t, "hello", h.session.Draft(1))
	assert.Equal(t, "hello", h.model.comment.Value())
	product, err := h.session.Product(1)
	require.NoError(t, err)
	assert.Empty(t, product.Comments)
	assert.Empty(t, h.model.alert)
}

func TestModelEditingKeepsDraftsPerProduct(t *testing.T) {
	api := &fakeStore{products: testProducts(), loginOK: true}
	h := newHarness(t, api)
	h.login("alice", "secret")

	h.typeText("c")
	h.typeText("first")
	h.press(tea.KeyEsc)

	h.press(tea.KeyDown)
	h.typeText("c")
	h.typeText("second")
	h.press(tea.KeyEsc)

	h.press(tea.KeyUp)
	h.typeText("c")

	assert.Equal(t, "first", h.model.comment.Value())
	assert.Equal(t, map[domain.ProductID]string{1: "first", 2: "second"}, h.session.Drafts())
}

func TestModelQuitKeys(t *testing.T) {
	api := &fakeStore{products: testProducts(), loginOK: true}

	h := newHarness(t, api)
	h.typeText("q")
	assert.False(t, h.quit)
	assert.Equal(t, "q", h.model.username.Value())

	h.press(tea.KeyCtrlC)
	assert.True(t, h.quit)

	h = newHarness(t, api)
	h.login("alice", "secret")
	h.typeText("q")
	assert.True(t, h.quit)
}

func TestModelAlertBlocksCatalogKeys(t *testing.T) {
	api := &fakeStore{products: testProducts(), loginOK: true}
	h := newHarness(t, api)
	h.login("alice", "secret")

	h.send(AlertMsg{Message: "heads up"})
	h.typeText("a")

	assert.Empty(t, h.model.alert)
	assert.Equal(t, 0, h.session.CartLen())
}

func TestModelSpinnerOnlyWhileBusy(t *testing.T) {
	api := &fakeStore{products: testProducts()}
	h := newHarness(t, api)

	next, cmd := h.model.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, h.model.inFlight, next.(Model).inFlight)
	assert.NotContains(t, h.model.View(), "working...")

	busy := NewModel(context.Background(), h.session)
	assert.Contains(t, busy.View(), "working...")
}
