package payroll

import (
	"context"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// PolicyRepository persists commission policies.
type PolicyRepository interface {
	Create(ctx context.Context, policy *CommissionPolicy) error

	// GetActive returns the barber's single active policy or NotFound.
	GetActive(ctx context.Context, barberID id.ID) (*CommissionPolicy, error)

	// GetAsOf returns the policy effective on the given date or NotFound.
	GetAsOf(ctx context.Context, barberID id.ID, asOf types.Date) (*CommissionPolicy, error)

	// ListForBarber returns the barber's policy history, newest first.
	ListForBarber(ctx context.Context, barberID id.ID) ([]*CommissionPolicy, error)

	// LockForBarber takes a per-barber lock held until the transaction
	// ends. Must block concurrent activations even when the barber has
	// no policy rows yet.
	LockForBarber(ctx context.Context, barberID id.ID) error

	// Update persists policy changes with optimistic locking.
	Update(ctx context.Context, policy *CommissionPolicy) error

	// BarberIDsWithActivePolicy lists every barber that currently has
	// an active policy (the RecalculateAll scope).
	BarberIDsWithActivePolicy(ctx context.Context) ([]id.ID, error)
}

// AdjustmentRepository persists manual adjustments.
type AdjustmentRepository interface {
	Create(ctx context.Context, adj *Adjustment) error

	GetByID(ctx context.Context, adjID id.ID) (*Adjustment, error)

	// GetByIDForUpdate loads one adjustment with a row lock. Must run
	// inside a transaction; serializes deletes against MarkApplied.
	GetByIDForUpdate(ctx context.Context, adjID id.ID) (*Adjustment, error)

	// ListForBarber returns adjustments within the date range,
	// optionally including already-applied entries.
	ListForBarber(ctx context.Context, barberID id.ID, period types.Period, includeApplied bool) ([]*Adjustment, error)

	// PendingForPeriod returns applied=false adjustments whose
	// effective date falls within the period.
	PendingForPeriod(ctx context.Context, barberID id.ID, period types.Period) ([]*Adjustment, error)

	// MarkApplied flips every pending adjustment in scope to applied,
	// stamping the calculation it was folded into. Returns the number
	// of rows flipped. Must run inside the caller's transaction.
	MarkApplied(ctx context.Context, barberID id.ID, period types.Period, calculationID id.ID) (int64, error)

	// Delete removes an adjustment row. Applied rows are guarded at
	// the service layer.
	Delete(ctx context.Context, adjID id.ID) error
}

// CalculationRepository persists settlement records.
type CalculationRepository interface {
	// EnsureExists inserts the (barber, period) row if absent,
	// using ON CONFLICT DO NOTHING on the unique period key.
	EnsureExists(ctx context.Context, calc *Calculation) error

	// GetForUpdate loads the row by its period key with FOR UPDATE.
	// Must run inside a transaction; this is the per-key writer lock.
	GetForUpdate(ctx context.Context, barberID id.ID, period types.Period) (*Calculation, error)

	// GetByIDForUpdate loads the row by id with FOR UPDATE.
	GetByIDForUpdate(ctx context.Context, calcID id.ID) (*Calculation, error)

	GetByID(ctx context.Context, calcID id.ID) (*Calculation, error)

	// Update overwrites the derived fields of an unpaid row.
	Update(ctx context.Context, calc *Calculation) error

	// ListForBarber returns the barber's calculations, newest period first.
	ListForBarber(ctx context.Context, barberID id.ID) ([]*Calculation, error)
}
