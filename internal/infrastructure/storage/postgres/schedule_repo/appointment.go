// Package schedule_repo provides the PostgreSQL implementation of
// appointment persistence.
package schedule_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/scheduling"
	"barberdesk/internal/infrastructure/storage/postgres"
	"barberdesk/internal/infrastructure/storage/postgres/document_repo"
)

const appointmentTable = "doc_appointments"

// AppointmentRepo implements scheduling.Repository.
type AppointmentRepo struct {
	*document_repo.BaseDocumentRepo[*scheduling.Appointment]
}

// NewAppointmentRepo creates a new appointment repository.
func NewAppointmentRepo(txm *postgres.TxManager) *AppointmentRepo {
	return &AppointmentRepo{
		BaseDocumentRepo: document_repo.NewBaseDocumentRepo[*scheduling.Appointment](
			txm,
			appointmentTable,
			postgres.ExtractDBColumns[scheduling.Appointment](),
			func() *scheduling.Appointment { return &scheduling.Appointment{} },
		),
	}
}

// List returns appointments matching the filter, ordered by date and
// start time.
func (r *AppointmentRepo) List(ctx context.Context, filter scheduling.ListFilter) ([]*scheduling.Appointment, error) {
	q := r.BaseSelect().
		OrderBy("date ASC", "start_time ASC")

	if filter.Date != nil {
		q = q.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.BarberID != nil {
		q = q.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}

	return r.SelectMany(ctx, q)
}

// SlotTaken reports whether the barber already has a non-cancelled
// appointment at the exact date and start time.
func (r *AppointmentRepo) SlotTaken(ctx context.Context, barberID id.ID, date types.Date, startTime string) (bool, error) {
	q := r.Builder().
		Select("1").
		From(appointmentTable).
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(squirrel.NotEq{"status": scheduling.StatusCancelled}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var taken int
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&taken)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("slot taken: %w", err)
	}

	return true, nil
}

var _ scheduling.Repository = (*AppointmentRepo)(nil)
