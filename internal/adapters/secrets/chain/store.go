package chain

import (
	"context"
	"errors"
	"fmt"

	filesource "github.com/bnema/shopeasy-cli/internal/adapters/secrets/file"
	passsource "github.com/bnema/shopeasy-cli/internal/adapters/secrets/pass"
	"github.com/bnema/shopeasy-cli/internal/ports"
)

// Source asks primary first and falls back to fallback on any error other
// than cancellation.
type Source struct {
	primary  ports.SecretSource
	fallback ports.SecretSource
}

var _ ports.SecretSource = (*Source)(nil)

var (
	errNilPrimarySource  = errors.New("primary secret source is nil")
	errNilFallbackSource = errors.New("fallback secret source is nil")
)

func NewSource(primary ports.SecretSource, fallback ports.SecretSource) (*Source, error) {
	if primary == nil {
		return nil, errNilPrimarySource
	}
	if fallback == nil {
		return nil, errNilFallbackSource
	}

	return &Source{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(fileRoot string) (*Source, error) {
	return NewSource(passsource.NewSource(), filesource.NewSource(fileRoot))
}

func (s *Source) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
