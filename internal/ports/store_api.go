package ports

import (
	"context"

	"github.com/bnema/shopeasy-cli/internal/domain"
)

// CommentReceipt is what the backend reports after accepting a comment.
// Comment is empty when the backend does not echo the stored text.
type CommentReceipt struct {
	Comment string
}

type StoreAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	Login(ctx context.Context, credentials domain.Credentials) (bool, error)
	PostComment(ctx context.Context, productID domain.ProductID, comment string) (CommentReceipt, error)
}
