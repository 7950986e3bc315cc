package payroll_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
	"barberdesk/internal/infrastructure/storage/postgres"
	"barberdesk/internal/infrastructure/storage/postgres/document_repo"
)

const adjustmentTable = "pay_adjustments"

// AdjustmentRepo implements payroll.AdjustmentRepository.
type AdjustmentRepo struct {
	*document_repo.BaseDocumentRepo[*payroll.Adjustment]
}

// NewAdjustmentRepo creates a new adjustment repository.
func NewAdjustmentRepo(txm *postgres.TxManager) *AdjustmentRepo {
	return &AdjustmentRepo{
		BaseDocumentRepo: document_repo.NewBaseDocumentRepo[*payroll.Adjustment](
			txm,
			adjustmentTable,
			postgres.ExtractDBColumns[payroll.Adjustment](),
			func() *payroll.Adjustment { return &payroll.Adjustment{} },
		),
	}
}

// ListForBarber returns adjustments within the date range, optionally
// including already-applied entries.
func (r *AdjustmentRepo) ListForBarber(ctx context.Context, barberID id.ID, period types.Period, includeApplied bool) ([]*payroll.Adjustment, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.GtOrEq{"effective_date": period.Start}).
		Where(squirrel.LtOrEq{"effective_date": period.End}).
		OrderBy("effective_date DESC", "created_at DESC")

	if !includeApplied {
		q = q.Where(squirrel.Eq{"applied": false})
	}

	return r.SelectMany(ctx, q)
}

// PendingForPeriod returns applied=false adjustments whose effective
// date falls within the period.
func (r *AdjustmentRepo) PendingForPeriod(ctx context.Context, barberID id.ID, period types.Period) ([]*payroll.Adjustment, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"applied": false}).
		Where(squirrel.GtOrEq{"effective_date": period.Start}).
		Where(squirrel.LtOrEq{"effective_date": period.End}).
		OrderBy("effective_date ASC", "created_at ASC")

	return r.SelectMany(ctx, q)
}

// MarkApplied flips every pending adjustment in scope to applied,
// stamping the calculation it was folded into. Runs in the caller's
// transaction, after the calculation row lock is held.
func (r *AdjustmentRepo) MarkApplied(ctx context.Context, barberID id.ID, period types.Period, calculationID id.ID) (int64, error) {
	q := r.Builder().
		Update(adjustmentTable).
		Set("applied", true).
		Set("calculation_id", calculationID).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"applied": false}).
		Where(squirrel.GtOrEq{"effective_date": period.Start}).
		Where(squirrel.LtOrEq{"effective_date": period.End})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark applied: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("mark applied: %w", err)
	}

	return result.RowsAffected(), nil
}

var _ payroll.AdjustmentRepository = (*AdjustmentRepo)(nil)
