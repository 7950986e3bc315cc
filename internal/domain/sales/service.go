package sales

import (
	"context"
	"fmt"

	"barberdesk/internal/core/apperror"
	appctx "barberdesk/internal/core/context"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/tx"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/catalogs/product"
	"barberdesk/pkg/logger"
)

// Service creates and reads sales. Creation decrements product stock
// in the same transaction; a shortage aborts the whole sale.
type Service struct {
	repo      Repository
	products  product.Repository
	txManager tx.Manager
}

// NewService creates a sales Service.
func NewService(repo Repository, products product.Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, products: products, txManager: txManager}
}

// Create validates and persists a sale, decrementing stock for every
// product line. After this call the sale is immutable.
func (s *Service) Create(ctx context.Context, sale *Sale) error {
	if err := sale.Validate(ctx); err != nil {
		return err
	}
	sale.CreatedBy = appctx.GetUserID(ctx)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, line := range sale.Lines {
			if line.ProductID == nil {
				continue
			}
			p, err := s.products.GetForUpdate(ctx, *line.ProductID)
			if err != nil {
				return err
			}
			if p.Stock < line.Quantity {
				return apperror.NewInsufficientStock(p.ID.String(), line.Quantity, p.Stock)
			}
			if err := s.products.AdjustStock(ctx, p.ID, -line.Quantity); err != nil {
				return fmt.Errorf("adjust stock: %w", err)
			}
		}
		if err := s.repo.Create(ctx, sale); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "sale created",
		"sale_id", sale.ID.String(),
		"total", types.FormatMoney(sale.Total),
		"lines", len(sale.Lines),
	)
	return nil
}

// GetByID returns one sale with its lines.
func (s *Service) GetByID(ctx context.Context, saleID id.ID) (*Sale, error) {
	return s.repo.GetByID(ctx, saleID)
}

// ListForPeriod lists sales in the inclusive date range.
func (s *Service) ListForPeriod(ctx context.Context, period types.Period) ([]*Sale, error) {
	return s.repo.ListForPeriod(ctx, period)
}

// CurrentMonthTotals sums this month's sales.
func (s *Service) CurrentMonthTotals(ctx context.Context) (PeriodTotals, error) {
	return s.repo.TotalsForPeriod(ctx, types.MonthOf(types.Today()))
}
