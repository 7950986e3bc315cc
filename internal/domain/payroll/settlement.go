package payroll

import (
	"context"
	"fmt"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/tx"
	"barberdesk/internal/core/types"
	"barberdesk/pkg/logger"
)

// SettlementService owns the Calculation lifecycle: idempotent
// per-period recalculation and the terminal mark-paid transition.
//
// Per-(barber, period) serialization: the calculations table carries a
// unique index on that key; Recalculate inserts with ON CONFLICT DO
// NOTHING and then locks the row FOR UPDATE, so two concurrent calls
// for the same key execute strictly one after the other inside their
// transactions.
type SettlementService struct {
	calcs      CalculationRepository
	adjs       AdjustmentRepository
	policies   PolicyRepository
	aggregator *Aggregator
	txManager  tx.Manager
}

// NewSettlementService creates a SettlementService.
func NewSettlementService(
	calcs CalculationRepository,
	adjs AdjustmentRepository,
	policies PolicyRepository,
	aggregator *Aggregator,
	txManager tx.Manager,
) *SettlementService {
	return &SettlementService{
		calcs:      calcs,
		adjs:       adjs,
		policies:   policies,
		aggregator: aggregator,
		txManager:  txManager,
	}
}

// BarberResult pairs a barber with the outcome of a bulk recalculation.
type BarberResult struct {
	BarberID    id.ID        `json:"barberId"`
	Calculation *Calculation `json:"calculation,omitempty"`
	Err         error        `json:"-"`
}

// Recalculate computes (or recomputes) the settlement for one barber
// and period. Idempotent: identical inputs yield an identical stored
// record. A paid calculation is returned unchanged, never recomputed.
func (s *SettlementService) Recalculate(ctx context.Context, barberID id.ID, period types.Period) (*Calculation, error) {
	if id.IsNil(barberID) {
		return nil, apperror.NewValidation("barber is required")
	}
	if _, err := types.NewPeriod(period.Start, period.End); err != nil {
		return nil, apperror.NewValidation(err.Error())
	}

	var result *Calculation
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.calcs.EnsureExists(ctx, NewCalculation(barberID, period)); err != nil {
			return fmt.Errorf("ensure calculation row: %w", err)
		}

		calc, err := s.calcs.GetForUpdate(ctx, barberID, period)
		if err != nil {
			return err
		}
		if calc.Paid {
			// Terminal state: recomputation is a silent no-op.
			result = calc
			return nil
		}

		policy, err := s.policies.GetActive(ctx, barberID)
		if err != nil {
			return err
		}
		terms, err := policy.Terms()
		if err != nil {
			return err
		}

		totals, err := s.aggregator.Aggregate(ctx, barberID, period)
		if err != nil {
			return err
		}

		figures, err := Evaluate(terms, policy.Goal(), totals.ServiceRevenue, totals.ProductRevenue)
		if err != nil {
			return err
		}

		pending, err := s.adjs.PendingForPeriod(ctx, barberID, period)
		if err != nil {
			return err
		}

		calc.ApplyFigures(figures, NetTotal(pending), totals.SaleCount)
		if err := s.calcs.Update(ctx, calc); err != nil {
			return fmt.Errorf("store calculation: %w", err)
		}
		result = calc
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "settlement recalculated",
		"barber_id", barberID.String(),
		"period", period.String(),
		"net_payable", types.FormatMoney(result.NetPayable),
		"paid", result.Paid,
	)
	return result, nil
}

// RecalculateAll recalculates the period for every barber that has an
// active policy. One barber's failure does not abort the others; it is
// reported in that barber's result.
func (s *SettlementService) RecalculateAll(ctx context.Context, period types.Period) ([]BarberResult, error) {
	barberIDs, err := s.policies.BarberIDsWithActivePolicy(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]BarberResult, 0, len(barberIDs))
	for _, barberID := range barberIDs {
		calc, err := s.Recalculate(ctx, barberID, period)
		if err != nil {
			logger.Warn(ctx, "settlement recalculation failed",
				"barber_id", barberID.String(),
				"period", period.String(),
				"error", err,
			)
		}
		results = append(results, BarberResult{BarberID: barberID, Calculation: calc, Err: err})
	}
	return results, nil
}

// MarkPaid transitions a calculation to its terminal paid state and
// flips every pending adjustment in the period to applied, in one
// transaction. Calling it on an already-paid calculation is a no-op.
func (s *SettlementService) MarkPaid(ctx context.Context, calcID id.ID, paymentDate types.Date, notes string) (*Calculation, error) {
	if paymentDate.IsZero() {
		paymentDate = types.Today()
	}

	var result *Calculation
	var appliedCount int64
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		calc, err := s.calcs.GetByIDForUpdate(ctx, calcID)
		if err != nil {
			return err
		}
		if calc.Paid {
			result = calc
			return nil
		}

		calc.SettlePaid(paymentDate, notes)
		if err := s.calcs.Update(ctx, calc); err != nil {
			return fmt.Errorf("store paid calculation: %w", err)
		}

		appliedCount, err = s.adjs.MarkApplied(ctx, calc.BarberID, calc.Period(), calc.ID)
		if err != nil {
			return fmt.Errorf("apply adjustments: %w", err)
		}

		result = calc
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "settlement marked paid",
		"calculation_id", calcID.String(),
		"payment_date", paymentDate.String(),
		"adjustments_applied", appliedCount,
	)
	return result, nil
}

// GetByID returns one calculation.
func (s *SettlementService) GetByID(ctx context.Context, calcID id.ID) (*Calculation, error) {
	return s.calcs.GetByID(ctx, calcID)
}

// ListForBarber returns the barber's calculations, newest period first.
func (s *SettlementService) ListForBarber(ctx context.Context, barberID id.ID) ([]*Calculation, error) {
	return s.calcs.ListForBarber(ctx, barberID)
}
