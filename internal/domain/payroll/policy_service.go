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

// PolicyService manages the commission policy lifecycle. Activation is
// the only mutation: policies are never edited in place, a new one
// supersedes the old.
type PolicyService struct {
	repo      PolicyRepository
	txManager tx.Manager
}

// NewPolicyService creates a PolicyService.
func NewPolicyService(repo PolicyRepository, txManager tx.Manager) *PolicyService {
	return &PolicyService{repo: repo, txManager: txManager}
}

// GetActivePolicy returns the barber's currently active policy.
func (s *PolicyService) GetActivePolicy(ctx context.Context, barberID id.ID) (*CommissionPolicy, error) {
	return s.repo.GetActive(ctx, barberID)
}

// GetPolicyAsOf returns the policy that was effective on the given date.
func (s *PolicyService) GetPolicyAsOf(ctx context.Context, barberID id.ID, asOf types.Date) (*CommissionPolicy, error) {
	if asOf.IsZero() {
		return nil, apperror.NewValidation("as-of date is required")
	}
	return s.repo.GetAsOf(ctx, barberID, asOf)
}

// ListPolicies returns the barber's policy history, newest first.
func (s *PolicyService) ListPolicies(ctx context.Context, barberID id.ID) ([]*CommissionPolicy, error) {
	return s.repo.ListForBarber(ctx, barberID)
}

// ActivatePolicy supersedes the barber's current policy with a new one
// in a single transaction. Concurrent activations for the same barber
// serialize on a per-barber lock taken before the active policy is
// read; after commit exactly one active policy exists for the barber.
func (s *PolicyService) ActivatePolicy(ctx context.Context, policy *CommissionPolicy) (*CommissionPolicy, error) {
	if err := policy.Validate(ctx); err != nil {
		return nil, err
	}

	today := types.Today()
	policy.EffectiveFrom = today
	policy.EffectiveTo = nil
	policy.IsActive = true

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.LockForBarber(ctx, policy.BarberID); err != nil {
			return fmt.Errorf("lock policies: %w", err)
		}

		current, err := s.repo.GetActive(ctx, policy.BarberID)
		switch {
		case err == nil:
			current.Supersede(today)
			if err := s.repo.Update(ctx, current); err != nil {
				return fmt.Errorf("supersede policy: %w", err)
			}
		case apperror.IsNotFound(err):
			// First policy for this barber.
		default:
			return err
		}

		if err := s.repo.Create(ctx, policy); err != nil {
			return fmt.Errorf("create policy: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "commission policy activated",
		"barber_id", policy.BarberID.String(),
		"kind", string(policy.Kind),
	)

	return policy, nil
}
