package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/domain/catalogs/barber"
	"barberdesk/internal/infrastructure/storage/postgres"
)

const barberTable = "cat_barbers"

// BarberRepo implements barber.Repository.
type BarberRepo struct {
	*BaseCatalogRepo[*barber.Barber]
}

// NewBarberRepo creates a new barber repository.
func NewBarberRepo(txm *postgres.TxManager) *BarberRepo {
	return &BarberRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*barber.Barber](
			txm,
			barberTable,
			postgres.ExtractDBColumns[barber.Barber](),
			func() *barber.Barber { return &barber.Barber{} },
		),
	}
}

// SetActive flips the active flag without touching other fields.
func (r *BarberRepo) SetActive(ctx context.Context, barberID id.ID, active bool) error {
	q := r.Builder().
		Update(barberTable).
		Set("is_active", active).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": barberID}).
		Where(squirrel.Eq{"deletion_mark": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build set active: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(barberTable, barberID.String())
	}

	return nil
}

var _ barber.Repository = (*BarberRepo)(nil)
