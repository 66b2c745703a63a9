package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/shopeasy-cli/internal/domain"
	"github.com/bnema/shopeasy-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

// LoginFailedMessage is the alert raised once per rejected login.
const LoginFailedMessage = "Login failed"

// Session owns the state of one running storefront client: the auth flag,
// the product listing, the cart and the pending comment drafts.
//
// Network calls are made without holding the lock; only the final
// replace/append of state happens under it. Two overlapping fetches
// therefore resolve in completion order, not issue order.
type Session struct {
	api      ports.StoreAPI
	notifier ports.Notifier
	log      logrus.FieldLogger

	mu            sync.RWMutex
	authenticated bool
	products      []domain.Product
	cart          []domain.Product
	drafts        map[domain.ProductID]string
}

// NewSession returns an unauthenticated session with an empty listing, cart
// and drafts. A nil notifier or logger discards.
func NewSession(api ports.StoreAPI, notifier ports.Notifier, logger logrus.FieldLogger) *Session {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Session{
		api:      api,
		notifier: notifier,
		log:      logger,
		products: []domain.Product{},
		cart:     []domain.Product{},
		drafts:   map[domain.ProductID]string{},
	}
}

// Start performs the automatic listing fetch done once when a session opens.
func (s *Session) Start(ctx context.Context) error {
	s.log.Debug("loading initial product listing")
	return s.FetchProducts(ctx)
}

// FetchProducts replaces the whole listing with the backend's. On failure the
// listing is kept and the error is logged and returned.
func (s *Session) FetchProducts(ctx context.Context) error {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.log.WithError(err).Error("Error fetching products")
		return fmt.Errorf("fetch products: %w", err)
	}

	listing := domain.CloneProducts(products)

	s.mu.Lock()
	s.products = listing
	s.mu.Unlock()

	s.log.WithField("count", len(listing)).Debug("product listing replaced")
	return nil
}

// Login sends the credentials as given. A rejection alerts the user once and
// returns domain.ErrLoginRejected; a transport failure is only logged.
func (s *Session) Login(ctx context.Context, username, password string) (bool, error) {
	ok, err := s.api.Login(ctx, domain.Credentials{Username: username, Password: password})
	if err != nil {
		s.log.WithError(err).WithField("username", username).Error("Login error")
		return false, fmt.Errorf("login: %w", err)
	}

	if !ok {
		s.log.WithField("username", username).Info("login rejected")
		s.notifier.Alert(LoginFailedMessage)
		return false, domain.ErrLoginRejected
	}

	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()

	s.log.WithField("username", username).Info("logged in")

	// A failed refresh is already logged and leaves the listing as it was;
	// authentication stands either way.
	_ = s.FetchProducts(ctx)

	return true, nil
}

// AddToCart appends a snapshot of product; duplicates are kept.
func (s *Session) AddToCart(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = append(s.cart, product.Clone())
}

// SetDraftComment overwrites the pending comment for id.
func (s *Session) SetDraftComment(id domain.ProductID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[id] = text
}

func (s *Session) Draft(id domain.ProductID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.drafts[id]
}

// PostComment submits the current draft for id. On success exactly that
// draft text is appended to the product's comments and the draft is cleared.
func (s *Session) PostComment(ctx context.Context, id domain.ProductID) error {
	comment := s.Draft(id)

	receipt, err := s.api.PostComment(ctx, id, comment)
	if err != nil {
		s.log.WithError(err).WithField("product_id", id).Error("Comment error")
		return fmt.Errorf("post comment on product %d: %w", id, err)
	}

	if receipt.Comment != "" && receipt.Comment != comment {
		s.log.WithField("product_id", id).Debug("backend stored a different comment text than submitted")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[id] = ""

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = s.products[i].WithComment(comment)
			return nil
		}
	}

	err = fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
	s.log.WithError(err).Warn("comment accepted for a product missing from the listing")
	return err
}

// Drafts returns a copy of every draft, empty ones included.
func (s *Session) Drafts() map[domain.ProductID]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drafts := make(map[domain.ProductID]string, len(s.drafts))
	for id, text := range s.drafts {
		drafts[id] = text
	}
	return drafts
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.authenticated
}

func (s *Session) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CloneProducts(s.products)
}

func (s *Session) Product(id domain.ProductID) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.products {
		if product.ID == id {
			return product.Clone(), nil
		}
	}

	return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
}

func (s *Session) Cart() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CloneProducts(s.cart)
}

func (s *Session) CartLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.cart)
}

// IsLoginRejected reports whether err is a backend rejection rather than a
// transport failure.
func IsLoginRejected(err error) bool {
	return errors.Is(err, domain.ErrLoginRejected)
}

type discardNotifier struct{}

func (discardNotifier) Alert(string) {}
