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

const calculationTable = "pay_calculations"

// CalculationRepo implements payroll.CalculationRepository.
//
// The table carries UNIQUE (barber_id, period_start, period_end);
// EnsureExists plus GetForUpdate turn that key into the settlement
// engine's writer lock.
type CalculationRepo struct {
	*document_repo.BaseDocumentRepo[*payroll.Calculation]
}

// NewCalculationRepo creates a new calculation repository.
func NewCalculationRepo(txm *postgres.TxManager) *CalculationRepo {
	return &CalculationRepo{
		BaseDocumentRepo: document_repo.NewBaseDocumentRepo[*payroll.Calculation](
			txm,
			calculationTable,
			postgres.ExtractDBColumns[payroll.Calculation](),
			func() *payroll.Calculation { return &payroll.Calculation{} },
		),
	}
}

// EnsureExists inserts the (barber, period) row if absent. Losing the
// insert race is fine: the caller locks the surviving row next.
func (r *CalculationRepo) EnsureExists(ctx context.Context, calc *payroll.Calculation) error {
	data := postgres.StructToMap(calc)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	cols := postgres.ExtractDBColumns[payroll.Calculation]()
	filteredData := make(map[string]any, len(cols))
	for _, col := range cols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.Builder().
		Insert(calculationTable).
		SetMap(filteredData).
		Suffix("ON CONFLICT (barber_id, period_start, period_end) DO NOTHING")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build ensure exists: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("ensure calculation exists: %w", err)
	}

	return nil
}

// GetForUpdate loads the row by its period key with FOR UPDATE.
// Must run inside a transaction.
func (r *CalculationRepo) GetForUpdate(ctx context.Context, barberID id.ID, period types.Period) (*payroll.Calculation, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"period_start": period.Start}).
		Where(squirrel.Eq{"period_end": period.End}).
		Suffix("FOR UPDATE")

	return r.FindOne(ctx, q)
}

// ListForBarber returns the barber's calculations, newest period first.
func (r *CalculationRepo) ListForBarber(ctx context.Context, barberID id.ID) ([]*payroll.Calculation, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("period_start DESC", "period_end DESC")

	return r.SelectMany(ctx, q)
}

var _ payroll.CalculationRepository = (*CalculationRepo)(nil)
