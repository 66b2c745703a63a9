package ports

import "context"

type SecretSource interface {
	Get(ctx context.Context, key string) (string, error)
}
