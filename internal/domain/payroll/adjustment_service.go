package payroll

import (
	"context"
	"fmt"

	"barberdesk/internal/core/apperror"
	appctx "barberdesk/internal/core/context"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/tx"
	"barberdesk/internal/core/types"
	"barberdesk/pkg/logger"
)

// AdjustmentService is the mutation surface of the adjustment ledger.
// Flipping adjustments to applied is not exposed here: that happens
// only inside settlement, atomically with the paid-flag flip.
type AdjustmentService struct {
	repo      AdjustmentRepository
	txManager tx.Manager
}

// NewAdjustmentService creates an AdjustmentService.
func NewAdjustmentService(repo AdjustmentRepository, txManager tx.Manager) *AdjustmentService {
	return &AdjustmentService{repo: repo, txManager: txManager}
}

// Create records a pending adjustment, stamping the authenticated actor
// as creator.
func (s *AdjustmentService) Create(ctx context.Context, adj *Adjustment) error {
	if err := adj.Validate(ctx); err != nil {
		return err
	}
	adj.Applied = false
	adj.CalculationID = nil
	adj.CreatedBy = appctx.GetUserID(ctx)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, adj); err != nil {
			return fmt.Errorf("create adjustment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "adjustment created",
		"barber_id", adj.BarberID.String(),
		"kind", string(adj.Kind),
		"amount", types.FormatMoney(adj.Amount),
	)
	return nil
}

// GetByID returns one adjustment.
func (s *AdjustmentService) GetByID(ctx context.Context, adjID id.ID) (*Adjustment, error) {
	return s.repo.GetByID(ctx, adjID)
}

// ListForBarber lists the barber's adjustments in the date range.
func (s *AdjustmentService) ListForBarber(ctx context.Context, barberID id.ID, period types.Period, includeApplied bool) ([]*Adjustment, error) {
	return s.repo.ListForBarber(ctx, barberID, period, includeApplied)
}

// PendingForPeriod lists applied=false adjustments in the period.
func (s *AdjustmentService) PendingForPeriod(ctx context.Context, barberID id.ID, period types.Period) ([]*Adjustment, error) {
	return s.repo.PendingForPeriod(ctx, barberID, period)
}

// Delete removes a pending adjustment. The row is read under a lock so
// the applied check cannot race a settlement flipping it; an applied
// adjustment has been folded into a paid calculation and can never be
// deleted.
func (s *AdjustmentService) Delete(ctx context.Context, adjID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		adj, err := s.repo.GetByIDForUpdate(ctx, adjID)
		if err != nil {
			return err
		}
		if adj.Applied {
			return apperror.NewConflict("adjustment already applied to a paid calculation").
				WithDetail("adjustment_id", adjID.String())
		}
		if err := s.repo.Delete(ctx, adjID); err != nil {
			return fmt.Errorf("delete adjustment: %w", err)
		}
		return nil
	})
}
