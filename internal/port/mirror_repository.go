package port

import (
	"context"

	"github.com/rl1809/storefront/internal/core/domain"
)

// MirrorRepository receives best-effort copies of catalog changes. The
// in-memory stores stay authoritative; mirror failures never roll back
// local state.
type MirrorRepository interface {
	// UpsertProduct inserts or replaces the mirrored product row.
	UpsertProduct(ctx context.Context, p domain.Product) error

	// DeleteProduct removes the mirrored product row if present.
	DeleteProduct(ctx context.Context, productID string) error

	// SaveOrder inserts the order, or updates its status when already mirrored.
	SaveOrder(ctx context.Context, o domain.Order) error
}
