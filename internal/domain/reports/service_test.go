package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
)

type fakeReportRepo struct {
	calcs   []*payroll.Calculation
	barbers int
}

func (f *fakeReportRepo) CalculationsForPeriod(ctx context.Context, filter PayrollSummaryFilter) ([]*payroll.Calculation, error) {
	return f.calcs, nil
}

func (f *fakeReportRepo) ActiveBarberCount(ctx context.Context) (int, error) {
	return f.barbers, nil
}

func (f *fakeReportRepo) TopPerformers(ctx context.Context, period types.Period, limit int) ([]TopPerformer, error) {
	return nil, nil
}

func (f *fakeReportRepo) OldestPending(ctx context.Context, limit int) ([]*payroll.Calculation, error) {
	return nil, nil
}

func calcWith(net string, paid bool) *payroll.Calculation {
	c := payroll.NewCalculation(id.New(), types.Period{
		Start: types.MustDate("2026-08-01"),
		End:   types.MustDate("2026-08-31"),
	})
	c.TotalRevenue = types.MustMoney("1000")
	c.GrossPayable = types.MustMoney(net)
	c.NetPayable = types.MustMoney(net)
	c.Paid = paid
	return c
}

func TestPayrollSummaryTotals(t *testing.T) {
	repo := &fakeReportRepo{calcs: []*payroll.Calculation{
		calcWith("500.00", true),
		calcWith("300.00", false),
		calcWith("200.00", false),
	}}
	svc := NewService(repo)

	summary, err := svc.PayrollSummary(context.Background(), PayrollSummaryFilter{
		Period: types.Period{Start: types.MustDate("2026-08-01"), End: types.MustDate("2026-08-31")},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.BarberCount)
	assert.Equal(t, "3000.00", types.FormatMoney(summary.TotalRevenue))
	assert.Equal(t, "1000.00", types.FormatMoney(summary.TotalNet))
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, "500.00", types.FormatMoney(summary.PaidTotal))
	assert.Equal(t, 2, summary.PendingCount)
	assert.Equal(t, "500.00", types.FormatMoney(summary.PendingTotal))
}

func TestPayrollSummaryRejectsInvertedPeriod(t *testing.T) {
	svc := NewService(&fakeReportRepo{})
	_, err := svc.PayrollSummary(context.Background(), PayrollSummaryFilter{
		Period: types.Period{Start: types.MustDate("2026-08-31"), End: types.MustDate("2026-08-01")},
	})
	require.Error(t, err)
}

func TestDashboardPaidPercent(t *testing.T) {
	t.Run("no calculations yields zero percent", func(t *testing.T) {
		svc := NewService(&fakeReportRepo{barbers: 4})
		d, err := svc.Dashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, d.ActiveBarbers)
		assert.True(t, d.PaidPercent.IsZero())
	})

	t.Run("one of three paid is 33.33 percent", func(t *testing.T) {
		svc := NewService(&fakeReportRepo{calcs: []*payroll.Calculation{
			calcWith("100", true),
			calcWith("100", false),
			calcWith("100", false),
		}})
		d, err := svc.Dashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "33.33", types.FormatMoney(d.PaidPercent))
	})
}
