// Package payroll_repo provides PostgreSQL implementations for the
// payroll repositories: commission policies, adjustments and
// calculations. Locking queries here are the write-side serialization
// points of the settlement engine.
package payroll_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
	"barberdesk/internal/infrastructure/storage/postgres"
	"barberdesk/internal/infrastructure/storage/postgres/document_repo"
)

const policyTable = "pay_policies"

// PolicyRepo implements payroll.PolicyRepository.
type PolicyRepo struct {
	*document_repo.BaseDocumentRepo[*payroll.CommissionPolicy]
}

// NewPolicyRepo creates a new commission policy repository.
func NewPolicyRepo(txm *postgres.TxManager) *PolicyRepo {
	return &PolicyRepo{
		BaseDocumentRepo: document_repo.NewBaseDocumentRepo[*payroll.CommissionPolicy](
			txm,
			policyTable,
			postgres.ExtractDBColumns[payroll.CommissionPolicy](),
			func() *payroll.CommissionPolicy { return &payroll.CommissionPolicy{} },
		),
	}
}

// GetActive returns the barber's single active policy.
func (r *PolicyRepo) GetActive(ctx context.Context, barberID id.ID) (*payroll.CommissionPolicy, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}

// GetAsOf returns the policy effective on the given date: the latest
// one whose [effective_from, effective_to] range contains it.
func (r *PolicyRepo) GetAsOf(ctx context.Context, barberID id.ID, asOf types.Date) (*payroll.CommissionPolicy, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.LtOrEq{"effective_from": asOf}).
		Where(squirrel.Or{
			squirrel.Eq{"effective_to": nil},
			squirrel.GtOrEq{"effective_to": asOf},
		}).
		OrderBy("effective_from DESC", "created_at DESC").
		Limit(1)

	return r.FindOne(ctx, q)
}

// ListForBarber returns the barber's policy history, newest first.
func (r *PolicyRepo) ListForBarber(ctx context.Context, barberID id.ID) ([]*payroll.CommissionPolicy, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("effective_from DESC", "created_at DESC")

	return r.SelectMany(ctx, q)
}

// LockForBarber serializes policy writes for one barber through a
// transaction scoped advisory lock. Row locks cannot serve here: a
// barber activating their first policy has no rows to lock, so two
// concurrent first activations would both pass and both insert an
// active row. The advisory lock is released when the transaction ends.
func (r *PolicyRepo) LockForBarber(ctx context.Context, barberID id.ID) error {
	sql := "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))"

	if _, err := r.Querier(ctx).Exec(ctx, sql, policyTable+":"+barberID.String()); err != nil {
		return fmt.Errorf("lock policies: %w", err)
	}

	return nil
}

// BarberIDsWithActivePolicy lists every barber that currently has an
// active policy.
func (r *PolicyRepo) BarberIDsWithActivePolicy(ctx context.Context) ([]id.ID, error) {
	q := r.Builder().
		Select("DISTINCT barber_id").
		From(policyTable).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("barber_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var ids []id.ID
	if err := pgxscan.Select(ctx, r.Querier(ctx), &ids, sql, args...); err != nil {
		return nil, fmt.Errorf("barbers with active policy: %w", err)
	}

	return ids, nil
}

var _ payroll.PolicyRepository = (*PolicyRepo)(nil)
