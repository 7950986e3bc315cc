package product

import (
	"context"

	"barberdesk/internal/core/id"
	"barberdesk/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// GetForUpdate retrieves a product with a row lock (for stock decrements).
	GetForUpdate(ctx context.Context, id id.ID) (*Product, error)

	// AdjustStock changes stock by delta (negative for a sale).
	// Must run inside the caller's transaction.
	AdjustStock(ctx context.Context, id id.ID, delta int) error
}
