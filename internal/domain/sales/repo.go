package sales

import (
	"context"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// PeriodTotals summarizes sales over a date range.
type PeriodTotals struct {
	SaleCount int         `json:"saleCount"`
	Total     types.Money `json:"total"`
}

// Repository defines the interface for Sale persistence.
type Repository interface {
	// Create inserts the sale and all its lines.
	Create(ctx context.Context, sale *Sale) error

	// GetByID returns the sale with its lines.
	GetByID(ctx context.Context, saleID id.ID) (*Sale, error)

	// ListForPeriod returns sales whose timestamp falls in the period,
	// inclusive, newest first, with lines.
	ListForPeriod(ctx context.Context, period types.Period) ([]*Sale, error)

	// TotalsForPeriod sums count and revenue over the period.
	TotalsForPeriod(ctx context.Context, period types.Period) (PeriodTotals, error)
}
