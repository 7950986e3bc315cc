// Package report_repo provides the PostgreSQL read side for reports.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
	"barberdesk/internal/domain/reports"
	"barberdesk/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	txm      *postgres.TxManager
	builder  squirrel.StatementBuilderType
	calcCols []string
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txm:      txm,
		builder:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		calcCols: postgres.ExtractDBColumns[payroll.Calculation](),
	}
}

// CalculationsForPeriod returns calculations overlapping the filter
// period, optionally for one barber, newest first.
func (r *ReportRepo) CalculationsForPeriod(ctx context.Context, filter reports.PayrollSummaryFilter) ([]*payroll.Calculation, error) {
	q := r.builder.
		Select(r.calcCols...).
		From("pay_calculations").
		Where(squirrel.LtOrEq{"period_start": filter.Period.End}).
		Where(squirrel.GtOrEq{"period_end": filter.Period.Start}).
		OrderBy("period_start DESC", "created_at DESC")

	if filter.BarberID != nil {
		q = q.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var calcs []*payroll.Calculation
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &calcs, sql, args...); err != nil {
		return nil, fmt.Errorf("calculations for period: %w", err)
	}

	return calcs, nil
}

// ActiveBarberCount counts active, non-deleted barbers.
func (r *ReportRepo) ActiveBarberCount(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM cat_barbers WHERE is_active = TRUE AND deletion_mark = FALSE`

	var count int
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("active barber count: %w", err)
	}

	return count, nil
}

// TopPerformers ranks barbers by calculation revenue in the period.
func (r *ReportRepo) TopPerformers(ctx context.Context, period types.Period, limit int) ([]reports.TopPerformer, error) {
	query := `
		SELECT
			c.barber_id,
			b.name AS barber_name,
			COALESCE(SUM(c.total_revenue), 0) AS total_revenue,
			COALESCE(SUM(c.net_payable), 0) AS net_payable
		FROM pay_calculations c
		JOIN cat_barbers b ON b.id = c.barber_id
		WHERE c.period_start <= $1 AND c.period_end >= $2
		GROUP BY c.barber_id, b.name
		ORDER BY total_revenue DESC, b.name
		LIMIT $3
	`

	var top []reports.TopPerformer
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &top, query, period.End, period.Start, limit); err != nil {
		return nil, fmt.Errorf("top performers: %w", err)
	}

	return top, nil
}

// OldestPending returns the oldest unpaid calculations.
func (r *ReportRepo) OldestPending(ctx context.Context, limit int) ([]*payroll.Calculation, error) {
	q := r.builder.
		Select(r.calcCols...).
		From("pay_calculations").
		Where(squirrel.Eq{"paid": false}).
		OrderBy("period_start ASC", "created_at ASC").
		Limit(uint64(limit))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var calcs []*payroll.Calculation
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &calcs, sql, args...); err != nil {
		return nil, fmt.Errorf("oldest pending: %w", err)
	}

	return calcs, nil
}

var _ reports.Repository = (*ReportRepo)(nil)
