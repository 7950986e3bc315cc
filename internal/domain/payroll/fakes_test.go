package payroll

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// passthroughTx satisfies tx.Manager without a database; settlement
// semantics under real transactions are exercised at the repository layer.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- in-memory policy repository ---

type memPolicyRepo struct {
	policies []*CommissionPolicy
}

func (r *memPolicyRepo) Create(ctx context.Context, p *CommissionPolicy) error {
	cp := *p
	r.policies = append(r.policies, &cp)
	return nil
}

func (r *memPolicyRepo) GetActive(ctx context.Context, barberID id.ID) (*CommissionPolicy, error) {
	for _, p := range r.policies {
		if p.BarberID == barberID && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("commission policy", barberID.String())
}

func (r *memPolicyRepo) GetAsOf(ctx context.Context, barberID id.ID, asOf types.Date) (*CommissionPolicy, error) {
	for _, p := range r.policies {
		if p.BarberID != barberID || p.EffectiveFrom.After(asOf) {
			continue
		}
		if p.EffectiveTo != nil && p.EffectiveTo.Before(asOf) {
			continue
		}
		cp := *p
		return &cp, nil
	}
	return nil, apperror.NewNotFound("commission policy", barberID.String())
}

func (r *memPolicyRepo) ListForBarber(ctx context.Context, barberID id.ID) ([]*CommissionPolicy, error) {
	var out []*CommissionPolicy
	for _, p := range r.policies {
		if p.BarberID == barberID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[j].EffectiveFrom.Before(out[i].EffectiveFrom)
	})
	return out, nil
}

func (r *memPolicyRepo) LockForBarber(ctx context.Context, barberID id.ID) error { return nil }

func (r *memPolicyRepo) Update(ctx context.Context, p *CommissionPolicy) error {
	for i, existing := range r.policies {
		if existing.ID == p.ID {
			cp := *p
			r.policies[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound("commission policy", p.ID.String())
}

func (r *memPolicyRepo) BarberIDsWithActivePolicy(ctx context.Context) ([]id.ID, error) {
	var out []id.ID
	for _, p := range r.policies {
		if p.IsActive {
			out = append(out, p.BarberID)
		}
	}
	return out, nil
}

func (r *memPolicyRepo) activeCount(barberID id.ID) int {
	n := 0
	for _, p := range r.policies {
		if p.BarberID == barberID && p.IsActive {
			n++
		}
	}
	return n
}

// --- transaction-scoped locking fakes ---

// txLockSet collects the locks taken inside one transaction so
// lockingTx can release them when the transaction finishes, the way
// pg_advisory_xact_lock releases at commit.
type txLockSet struct {
	mu   sync.Mutex
	held []*sync.Mutex
}

func (s *txLockSet) add(mu *sync.Mutex) {
	s.mu.Lock()
	s.held = append(s.held, mu)
	s.mu.Unlock()
}

type txLockSetKey struct{}

// lockingTx runs the callback without a database like passthroughTx,
// but releases any locks taken inside it when the callback returns.
type lockingTx struct{}

func (lockingTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	locks := &txLockSet{}
	err := fn(context.WithValue(ctx, txLockSetKey{}, locks))
	for _, mu := range locks.held {
		mu.Unlock()
	}
	return err
}

// lockingPolicyRepo layers the per-barber lock of the Postgres
// implementation over memPolicyRepo: LockForBarber blocks until no
// other transaction holds the barber, including barbers with no policy
// rows yet.
type lockingPolicyRepo struct {
	memPolicyRepo

	mu       sync.Mutex
	barberMu map[id.ID]*sync.Mutex
}

func newLockingPolicyRepo() *lockingPolicyRepo {
	return &lockingPolicyRepo{barberMu: make(map[id.ID]*sync.Mutex)}
}

func (r *lockingPolicyRepo) LockForBarber(ctx context.Context, barberID id.ID) error {
	r.mu.Lock()
	barberMu, ok := r.barberMu[barberID]
	if !ok {
		barberMu = &sync.Mutex{}
		r.barberMu[barberID] = barberMu
	}
	r.mu.Unlock()

	barberMu.Lock()

	locks, ok := ctx.Value(txLockSetKey{}).(*txLockSet)
	if !ok {
		barberMu.Unlock()
		return fmt.Errorf("lock taken outside a transaction")
	}
	locks.add(barberMu)
	return nil
}

// --- in-memory adjustment repository ---

type memAdjustmentRepo struct {
	adjs map[id.ID]*Adjustment
}

func newMemAdjustmentRepo() *memAdjustmentRepo {
	return &memAdjustmentRepo{adjs: make(map[id.ID]*Adjustment)}
}

func (r *memAdjustmentRepo) Create(ctx context.Context, a *Adjustment) error {
	cp := *a
	r.adjs[a.ID] = &cp
	return nil
}

func (r *memAdjustmentRepo) GetByID(ctx context.Context, adjID id.ID) (*Adjustment, error) {
	if a, ok := r.adjs[adjID]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, apperror.NewNotFound("adjustment", adjID.String())
}

func (r *memAdjustmentRepo) GetByIDForUpdate(ctx context.Context, adjID id.ID) (*Adjustment, error) {
	return r.GetByID(ctx, adjID)
}

func (r *memAdjustmentRepo) ListForBarber(ctx context.Context, barberID id.ID, period types.Period, includeApplied bool) ([]*Adjustment, error) {
	var out []*Adjustment
	for _, a := range r.adjs {
		if a.BarberID != barberID || !period.Contains(a.EffectiveDate) {
			continue
		}
		if !includeApplied && a.Applied {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAdjustmentRepo) PendingForPeriod(ctx context.Context, barberID id.ID, period types.Period) ([]*Adjustment, error) {
	return r.ListForBarber(ctx, barberID, period, false)
}

func (r *memAdjustmentRepo) MarkApplied(ctx context.Context, barberID id.ID, period types.Period, calculationID id.ID) (int64, error) {
	var n int64
	for _, a := range r.adjs {
		if a.BarberID == barberID && !a.Applied && period.Contains(a.EffectiveDate) {
			a.Applied = true
			calcID := calculationID
			a.CalculationID = &calcID
			n++
		}
	}
	return n, nil
}

func (r *memAdjustmentRepo) Delete(ctx context.Context, adjID id.ID) error {
	if _, ok := r.adjs[adjID]; !ok {
		return apperror.NewNotFound("adjustment", adjID.String())
	}
	delete(r.adjs, adjID)
	return nil
}

// staleAdjustmentRepo answers the plain GetByID with the row as it
// looked at creation time, the way an unlocked read can observe a row
// version from before a concurrent settlement committed its flip.
// GetByIDForUpdate always sees the current row.
type staleAdjustmentRepo struct {
	*memAdjustmentRepo
	snapshots map[id.ID]*Adjustment
}

func newStaleAdjustmentRepo() *staleAdjustmentRepo {
	return &staleAdjustmentRepo{
		memAdjustmentRepo: newMemAdjustmentRepo(),
		snapshots:         make(map[id.ID]*Adjustment),
	}
}

func (r *staleAdjustmentRepo) Create(ctx context.Context, a *Adjustment) error {
	if err := r.memAdjustmentRepo.Create(ctx, a); err != nil {
		return err
	}
	cp := *a
	r.snapshots[a.ID] = &cp
	return nil
}

func (r *staleAdjustmentRepo) GetByID(ctx context.Context, adjID id.ID) (*Adjustment, error) {
	if a, ok := r.snapshots[adjID]; ok {
		cp := *a
		return &cp, nil
	}
	return r.memAdjustmentRepo.GetByID(ctx, adjID)
}

// --- in-memory calculation repository ---

type memCalculationRepo struct {
	byKey map[string]*Calculation
	byID  map[id.ID]*Calculation
}

func newMemCalculationRepo() *memCalculationRepo {
	return &memCalculationRepo{
		byKey: make(map[string]*Calculation),
		byID:  make(map[id.ID]*Calculation),
	}
}

func calcKey(barberID id.ID, period types.Period) string {
	return fmt.Sprintf("%s|%s", barberID, period)
}

func (r *memCalculationRepo) EnsureExists(ctx context.Context, calc *Calculation) error {
	key := calcKey(calc.BarberID, calc.Period())
	if _, ok := r.byKey[key]; ok {
		return nil
	}
	cp := *calc
	r.byKey[key] = &cp
	r.byID[cp.ID] = &cp
	return nil
}

func (r *memCalculationRepo) GetForUpdate(ctx context.Context, barberID id.ID, period types.Period) (*Calculation, error) {
	if c, ok := r.byKey[calcKey(barberID, period)]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, apperror.NewNotFound("calculation", calcKey(barberID, period))
}

func (r *memCalculationRepo) GetByIDForUpdate(ctx context.Context, calcID id.ID) (*Calculation, error) {
	return r.GetByID(ctx, calcID)
}

func (r *memCalculationRepo) GetByID(ctx context.Context, calcID id.ID) (*Calculation, error) {
	if c, ok := r.byID[calcID]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, apperror.NewNotFound("calculation", calcID.String())
}

func (r *memCalculationRepo) Update(ctx context.Context, calc *Calculation) error {
	stored, ok := r.byID[calc.ID]
	if !ok {
		return apperror.NewNotFound("calculation", calc.ID.String())
	}
	*stored = *calc
	return nil
}

func (r *memCalculationRepo) ListForBarber(ctx context.Context, barberID id.ID) ([]*Calculation, error) {
	var out []*Calculation
	for _, c := range r.byID {
		if c.BarberID == barberID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[j].PeriodStart.Before(out[i].PeriodStart)
	})
	return out, nil
}
