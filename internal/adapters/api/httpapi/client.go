package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/shopeasy-cli/internal/domain"
	"github.com/bnema/shopeasy-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	productsPath = "/api/products"
	loginPath    = "/api/login"
	commentPath  = "/api/comment"

	// DefaultMaxResponseBytes bounds a response body when Options leaves it unset.
	DefaultMaxResponseBytes = 32 << 20
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrResponseTooLarge = errors.New("response body too large")
)

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
	// MaxResponseBytes caps every response body; zero means DefaultMaxResponseBytes.
	MaxResponseBytes int64
}

// Client talks to the storefront backend over JSON/HTTP.
type Client struct {
	baseURL   string
	userAgent string
	maxBody   int64
	http      *http.Client
	log       logrus.FieldLogger
}

var _ ports.StoreAPI = (*Client)(nil)

func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is empty")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "shopeasy"
	}

	maxBody := opts.MaxResponseBytes
	if maxBody < 0 {
		return nil, fmt.Errorf("max response bytes must not be negative, got %d", maxBody)
	}
	if maxBody == 0 {
		maxBody = DefaultMaxResponseBytes
	}

	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		maxBody:   maxBody,
		http:      httpClient,
		log:       logger.WithField("component", "store_api"),
	}, nil
}

type productPayload struct {
	ID       domain.ProductID `json:"id"`
	Name     string           `json:"name"`
	Price    float64          `json:"price"`
	Comments []string         `json:"comments"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool `json:"success"`
}

type commentRequest struct {
	ProductID domain.ProductID `json:"productId"`
	Comment   string           `json:"comment"`
}

type commentResponse struct {
	Success *bool   `json:"success"`
	Comment *string `json:"comment"`
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	body, err := c.do(ctx, http.MethodGet, productsPath, nil)
	if err != nil {
		return nil, err
	}

	var payload []productPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.log.WithError(err).Error("decode product listing")
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(payload))
	for _, entry := range payload {
		comments := entry.Comments
		if comments == nil {
			comments = []string{}
		}
		products = append(products, domain.Product{
			ID:       entry.ID,
			Name:     entry.Name,
			Price:    entry.Price,
			Comments: comments,
		})
	}

	c.log.WithField("count", len(products)).Debug("fetched product listing")
	return products, nil
}

func (c *Client) Login(ctx context.Context, credentials domain.Credentials) (bool, error) {
	body, err := c.do(ctx, http.MethodPost, loginPath, loginRequest{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	if err != nil {
		return false, err
	}

	var response loginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		c.log.WithError(err).Error("decode login response")
		return false, fmt.Errorf("decode login response: %w", err)
	}

	return response.Success, nil
}

// PostComment treats an explicit "success": false as a rejection. A missing
// success field counts as accepted.
func (c *Client) PostComment(ctx context.Context, productID domain.ProductID, comment string) (ports.CommentReceipt, error) {
	body, err := c.do(ctx, http.MethodPost, commentPath, commentRequest{ProductID: productID, Comment: comment})
	if err != nil {
		return ports.CommentReceipt{}, err
	}

	var response commentResponse
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &response); err != nil {
			c.log.WithError(err).WithField("product_id", productID).Warn("comment response is not JSON; assuming accepted")
			return ports.CommentReceipt{}, nil
		}
	}

	if response.Success != nil && !*response.Success {
		return ports.CommentReceipt{}, fmt.Errorf("product %d: %w", productID, domain.ErrCommentRejected)
	}

	receipt := ports.CommentReceipt{}
	if response.Comment != nil {
		receipt.Comment = *response.Comment
	}

	return receipt, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	endpoint := c.baseURL + path
	logger := c.log.WithFields(logrus.Fields{"method": method, "url": endpoint})

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	response, err := c.http.Do(request)
	if err != nil {
		logger.WithError(err).Warn("request failed")
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	logger = logger.WithFields(logrus.Fields{
		"status":   response.StatusCode,
		"duration": time.Since(started).String(),
	})
	if int64(len(body)) > c.maxBody {
		logger.WithField("limit", c.maxBody).Warn("response body exceeds limit")
		return nil, fmt.Errorf("%w: more than %d bytes from %s", ErrResponseTooLarge, c.maxBody, path)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		logger.Warn("unexpected response status")
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, response.StatusCode, strings.TrimSpace(string(body)))
	}

	logger.Debug("request completed")
	return body, nil
}
