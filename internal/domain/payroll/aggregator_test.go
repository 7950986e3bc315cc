package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

type fakeSalesReader struct {
	sales []SaleFact
	err   error
}

func (f *fakeSalesReader) SalesForBarber(ctx context.Context, barberID id.ID, period types.Period) ([]SaleFact, error) {
	return f.sales, f.err
}

func serviceLine(subtotal string, qty int, unitPrice string) SaleLineFact {
	svcID := id.New()
	return SaleLineFact{
		SaleID:    id.New(),
		ServiceID: &svcID,
		Quantity:  qty,
		UnitPrice: money(unitPrice),
		Subtotal:  money(subtotal),
	}
}

func productLine(subtotal string, qty int, unitPrice string) SaleLineFact {
	prodID := id.New()
	return SaleLineFact{
		SaleID:    id.New(),
		ProductID: &prodID,
		Quantity:  qty,
		UnitPrice: money(unitPrice),
		Subtotal:  money(subtotal),
	}
}

func testPeriod(t *testing.T) types.Period {
	t.Helper()
	p, err := types.NewPeriod(types.MustDate("2026-08-01"), types.MustDate("2026-08-31"))
	require.NoError(t, err)
	return p
}

func TestAggregateSplitsRevenue(t *testing.T) {
	reader := &fakeSalesReader{sales: []SaleFact{
		{ID: id.New(), Lines: []SaleLineFact{
			serviceLine("100", 2, "50"),
			productLine("30", 1, "30"),
		}},
		{ID: id.New(), Lines: []SaleLineFact{
			serviceLine("45.50", 1, "45.50"),
		}},
	}}

	totals, err := NewAggregator(reader).Aggregate(context.Background(), id.New(), testPeriod(t))
	require.NoError(t, err)

	assert.True(t, totals.ServiceRevenue.Equal(money("145.50")), "serviceRevenue = %s", totals.ServiceRevenue)
	assert.True(t, totals.ProductRevenue.Equal(money("30")), "productRevenue = %s", totals.ProductRevenue)
	assert.Equal(t, 2, totals.SaleCount)
}

func TestAggregateEmptyPeriodYieldsZeroTotals(t *testing.T) {
	totals, err := NewAggregator(&fakeSalesReader{}).Aggregate(context.Background(), id.New(), testPeriod(t))
	require.NoError(t, err)

	assert.True(t, totals.ServiceRevenue.IsZero())
	assert.True(t, totals.ProductRevenue.IsZero())
	assert.Equal(t, 0, totals.SaleCount)
}

func TestAggregateSurfacesIntegrityErrors(t *testing.T) {
	prodID := id.New()
	svcID := id.New()

	tests := []struct {
		name string
		line SaleLineFact
	}{
		{
			name: "line referencing neither product nor service",
			line: SaleLineFact{SaleID: id.New(), Quantity: 1, UnitPrice: money("10"), Subtotal: money("10")},
		},
		{
			name: "line referencing both",
			line: SaleLineFact{SaleID: id.New(), ProductID: &prodID, ServiceID: &svcID, Quantity: 1, UnitPrice: money("10"), Subtotal: money("10")},
		},
		{
			name: "subtotal mismatch",
			line: serviceLine("99", 2, "50"),
		},
		{
			name: "non-positive quantity",
			line: SaleLineFact{SaleID: id.New(), ServiceID: &svcID, Quantity: 0, UnitPrice: money("10"), Subtotal: money("0")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakeSalesReader{sales: []SaleFact{
				{ID: id.New(), Lines: []SaleLineFact{serviceLine("50", 1, "50"), tt.line}},
			}}

			_, err := NewAggregator(reader).Aggregate(context.Background(), id.New(), testPeriod(t))
			require.Error(t, err)
			assert.True(t, apperror.IsIntegrity(err), "want DATA_INTEGRITY, got %v", err)
		})
	}
}
