package payroll

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

type settlementFixture struct {
	policies *memPolicyRepo
	adjs     *memAdjustmentRepo
	calcs    *memCalculationRepo
	sales    *fakeSalesReader
	svc      *SettlementService
	barberID id.ID
	period   types.Period
}

func newSettlementFixture(t *testing.T) *settlementFixture {
	t.Helper()
	f := &settlementFixture{
		policies: &memPolicyRepo{},
		adjs:     newMemAdjustmentRepo(),
		calcs:    newMemCalculationRepo(),
		sales:    &fakeSalesReader{},
		barberID: id.New(),
		period:   testPeriod(t),
	}
	f.svc = NewSettlementService(f.calcs, f.adjs, f.policies, NewAggregator(f.sales), passthroughTx{})
	return f
}

func (f *settlementFixture) withPercentagePolicy(t *testing.T, servicePct, productPct string) {
	t.Helper()
	p := NewCommissionPolicy(f.barberID, KindPercentage)
	p.ServicePct = money(servicePct)
	p.ProductPct = money(productPct)
	p.IsActive = true
	p.EffectiveFrom = f.period.Start
	require.NoError(t, f.policies.Create(context.Background(), p))
}

func (f *settlementFixture) withSales(sales ...SaleFact) {
	f.sales.sales = sales
}

func TestRecalculateComputesNetPayable(t *testing.T) {
	f := newSettlementFixture(t)
	f.withPercentagePolicy(t, "50", "30")
	f.withSales(SaleFact{ID: id.New(), Lines: []SaleLineFact{
		serviceLine("1000", 1, "1000"),
		productLine("200", 1, "200"),
	}})

	discount := NewAdjustment(f.barberID, AdjustmentDiscount, money("50"), types.MustDate("2026-08-15"))
	require.NoError(t, f.adjs.Create(context.Background(), discount))

	calc, err := f.svc.Recalculate(context.Background(), f.barberID, f.period)
	require.NoError(t, err)

	assert.Equal(t, "500.00", types.FormatMoney(calc.CommissionServices))
	assert.Equal(t, "60.00", types.FormatMoney(calc.CommissionProducts))
	assert.Equal(t, "0.00", types.FormatMoney(calc.Bonus))
	assert.Equal(t, "560.00", types.FormatMoney(calc.GrossPayable))
	assert.Equal(t, "50.00", types.FormatMoney(calc.AdjustmentTotal))
	assert.Equal(t, "510.00", types.FormatMoney(calc.NetPayable))
	assert.Equal(t, 1, calc.SaleCount)
	assert.False(t, calc.Paid)
}

func TestRecalculateIsIdempotent(t *testing.T) {
	f := newSettlementFixture(t)
	f.withPercentagePolicy(t, "40", "20")
	f.withSales(SaleFact{ID: id.New(), Lines: []SaleLineFact{serviceLine("333.33", 1, "333.33")}})

	first, err := f.svc.Recalculate(context.Background(), f.barberID, f.period)
	require.NoError(t, err)
	second, err := f.svc.Recalculate(context.Background(), f.barberID, f.period)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same period key must map to the same row")
	assert.Equal(t, types.FormatMoney(first.NetPayable), types.FormatMoney(second.NetPayable))
	assert.Equal(t, types.FormatMoney(first.GrossPayable), types.FormatMoney(second.GrossPayable))
	assert.Equal(t, types.FormatMoney(first.TotalRevenue), types.FormatMoney(second.TotalRevenue))
}

func TestRecalculateOnPaidRecordIsNoOp(t *testing.T) {
	f := newSettlementFixture(t)
	f.withPercentagePolicy(t, "50", "0")
	f.withSales(SaleFact{ID: id.New(), Lines: []SaleLineFact{serviceLine("100", 1, "100")}})

	calc, err := f.svc.Recalculate(context.Background(), f.barberID, f.period)
	require.NoError(t, err)
	paid, err := f.svc.MarkPaid(context.Background(), calc.ID, types.MustDate("2026-09-01"), "paid in cash")
	require.NoError(t, err)
	require.True(t, paid.Paid)

	// New sales arrive after payment; they must not change the record.
	f.withSales(SaleFact{ID: id.New(), Lines: []SaleLineFact{serviceLine("9999", 1, "9999")}})

	after, err := f.svc.Recalculate(context.Background(), f.barberID, f.period)
	require.NoError(t, err)

	assert.True(t, after.Paid)
	assert.Equal(t, types.FormatMoney(paid.NetPayable), types.FormatMoney(after.NetPayable))
	assert.Equal(t, types.FormatMoney(paid.TotalRevenue), types.FormatMoney(after.TotalRevenue))
	assert.Equal(t, paid.Notes, after.Notes)
}

func TestMarkPaidFlipsPendingAdjustments(t *testing.T) {
	f := newSettlementFixture(t)
	f.withPercentagePolicy(t, "50", "0")
	f.withSales(SaleFact{ID: id.New(), Lines: []SaleLineFact{serviceLine("400", 1, "400")}})

	advance := NewAdjustment(f.barberID, AdjustmentAdvance, money("100"), types.MustDate("2026-08-05"))
	fine := NewAdjustment(f.barberID, AdjustmentFine, money("25"), types.MustDate("2026-08-20"))
	outside := NewAdjustment(f.barberID, AdjustmentFine, money("10"), types.MustDate("2026-09-02"))
	for _, a := range []*Adjustment{advance, fine, outside} {
		require.NoError(t, f.adjs.Create(context.Background(), a))
	}

	calc, err := f.svc.Recalculate(context.Background(), f.barberID, f.period)
	require.NoError(t, err)

	paid, err := f.svc.MarkPaid(context.Background(), calc.ID, types.MustDate("2026-09-01"), "")
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	require.NotNil(t, paid.PaymentDate)
	assert.Equal(t, "2026-09-01", paid.PaymentDate.String())

	for _, tc := range []struct {
		adj  *Adjustment
		want bool
	}{
		{advance, true},
		{fine, true},
		{outside, false},
	} {
		stored, err := f.adjs.GetByID(context.Background(), tc.adj.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.want, stored.Applied, "adjustment %s", tc.adj.Kind)
		if tc.want {
			require.NotNil(t, stored.CalculationID)
			assert.Equal(t, calc.ID, *stored.CalculationID)
		}
	}
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	f := newSettlementFixture(t)
	f.withPercentagePolicy(t, "50", "0")

	calc, err := f.svc.Recalculate(context.Background(), f.barberID, f.period)
	require.NoError(t, err)

	first, err := f.svc.MarkPaid(context.Background(), calc.ID, types.MustDate("2026-09-01"), "first")
	require.NoError(t, err)
	second, err := f.svc.MarkPaid(context.Background(), calc.ID, types.MustDate("2026-09-15"), "second")
	require.NoError(t, err)

	// Terminal state: the second call changes nothing.
	assert.Equal(t, "2026-09-01", second.PaymentDate.String())
	assert.Equal(t, first.Notes, second.Notes)
}

func TestMarkPaidUnknownCalculation(t *testing.T) {
	f := newSettlementFixture(t)

	_, err := f.svc.MarkPaid(context.Background(), id.New(), types.MustDate("2026-09-01"), "")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRecalculateWithoutActivePolicy(t *testing.T) {
	f := newSettlementFixture(t)

	_, err := f.svc.Recalculate(context.Background(), f.barberID, f.period)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRecalculateRejectsInvertedPeriod(t *testing.T) {
	f := newSettlementFixture(t)
	f.withPercentagePolicy(t, "50", "0")

	_, err := f.svc.Recalculate(context.Background(), f.barberID, types.Period{
		Start: types.MustDate("2026-08-31"),
		End:   types.MustDate("2026-08-01"),
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestRecalculateAllCoversEveryActivePolicy(t *testing.T) {
	f := newSettlementFixture(t)
	f.withPercentagePolicy(t, "50", "10")

	other := id.New()
	p := NewCommissionPolicy(other, KindFixedMonthly)
	p.MonthlyAmount = money("1200")
	p.IsActive = true
	p.EffectiveFrom = f.period.Start
	require.NoError(t, f.policies.Create(context.Background(), p))

	results, err := f.svc.RecalculateAll(context.Background(), f.period)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, res := range results {
		require.NoError(t, res.Err)
		require.NotNil(t, res.Calculation)
	}
}

func TestDeleteAppliedAdjustmentConflicts(t *testing.T) {
	f := newSettlementFixture(t)
	f.withPercentagePolicy(t, "50", "0")

	adj := NewAdjustment(f.barberID, AdjustmentDiscount, money("30"), types.MustDate("2026-08-10"))
	require.NoError(t, f.adjs.Create(context.Background(), adj))

	calc, err := f.svc.Recalculate(context.Background(), f.barberID, f.period)
	require.NoError(t, err)
	_, err = f.svc.MarkPaid(context.Background(), calc.ID, types.MustDate("2026-09-01"), "")
	require.NoError(t, err)

	adjSvc := NewAdjustmentService(f.adjs, passthroughTx{})
	err = adjSvc.Delete(context.Background(), adj.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	// Pending adjustments outside a paid period remain deletable.
	pending := NewAdjustment(f.barberID, AdjustmentFine, money("5"), types.MustDate("2026-09-10"))
	require.NoError(t, f.adjs.Create(context.Background(), pending))
	require.NoError(t, adjSvc.Delete(context.Background(), pending.ID))
}

func TestDeleteChecksAppliedUnderRowLock(t *testing.T) {
	repo := newStaleAdjustmentRepo()
	svc := NewAdjustmentService(repo, passthroughTx{})
	barberID := id.New()

	adj := NewAdjustment(barberID, AdjustmentAdvance, money("200"), types.MustDate("2026-08-12"))
	require.NoError(t, svc.Create(context.Background(), adj))

	// A settlement flips the adjustment to applied after the delete's
	// creation-time snapshot was taken. Only the locked read sees it.
	_, err := repo.MarkApplied(context.Background(), barberID, testPeriod(t), id.New())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), adj.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	// The applied row survives the delete attempt.
	got, err := repo.GetByIDForUpdate(context.Background(), adj.ID)
	require.NoError(t, err)
	assert.True(t, got.Applied)
}

func TestActivatePolicyLeavesExactlyOneActive(t *testing.T) {
	repo := &memPolicyRepo{}
	svc := NewPolicyService(repo, passthroughTx{})
	barberID := id.New()

	first := NewCommissionPolicy(barberID, KindPercentage)
	first.ServicePct = money("40")
	_, err := svc.ActivatePolicy(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.activeCount(barberID))

	second := NewCommissionPolicy(barberID, KindChairRent)
	second.RentAmount = money("500")
	activated, err := svc.ActivatePolicy(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.activeCount(barberID))
	assert.True(t, activated.IsActive)

	history, err := svc.ListPolicies(context.Background(), barberID)
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func TestConcurrentFirstActivationsLeaveOneActive(t *testing.T) {
	repo := newLockingPolicyRepo()
	svc := NewPolicyService(repo, lockingTx{})
	barberID := id.New()

	// The barber has no policy rows yet, so nothing but the per-barber
	// lock stands between two simultaneous first activations.
	start := make(chan struct{})
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := NewCommissionPolicy(barberID, KindPercentage)
			p.ServicePct = money("40")
			<-start
			_, errs[i] = svc.ActivatePolicy(context.Background(), p)
		}(i)
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, repo.activeCount(barberID))
}
