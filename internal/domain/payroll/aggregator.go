package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
	"barberdesk/pkg/logger"
)

// SaleLineFact is the engine's read-only view of one sale line.
// Exactly one of ProductID/ServiceID must be set.
type SaleLineFact struct {
	SaleID    id.ID
	ProductID *id.ID
	ServiceID *id.ID
	Quantity  int
	UnitPrice types.Money
	Subtotal  types.Money
}

// SaleFact is the engine's read-only view of one sale.
type SaleFact struct {
	ID    id.ID
	Lines []SaleLineFact
}

// SalesReader supplies committed sales for aggregation. The sales
// subsystem owns the records; the engine only reads them.
type SalesReader interface {
	// SalesForBarber returns every sale of the barber whose timestamp
	// falls within the period, inclusive on both ends.
	SalesForBarber(ctx context.Context, barberID id.ID, period types.Period) ([]SaleFact, error)
}

// RevenueTotals is the aggregation result for one barber and period.
type RevenueTotals struct {
	ServiceRevenue types.Money
	ProductRevenue types.Money
	SaleCount      int
}

// Aggregator splits a barber's period revenue into service and product
// totals. Bad upstream data aborts the whole aggregation with a
// DATA_INTEGRITY error; an empty period yields zero totals, not an error.
type Aggregator struct {
	sales SalesReader
}

// NewAggregator creates an Aggregator over the given sales source.
func NewAggregator(sales SalesReader) *Aggregator {
	return &Aggregator{sales: sales}
}

// Aggregate sums line subtotals into service and product revenue.
func (a *Aggregator) Aggregate(ctx context.Context, barberID id.ID, period types.Period) (RevenueTotals, error) {
	sales, err := a.sales.SalesForBarber(ctx, barberID, period)
	if err != nil {
		return RevenueTotals{}, err
	}

	totals := RevenueTotals{
		ServiceRevenue: types.Zero(),
		ProductRevenue: types.Zero(),
		SaleCount:      len(sales),
	}

	for _, sale := range sales {
		for _, line := range sale.Lines {
			if err := checkLine(line); err != nil {
				return RevenueTotals{}, err
			}
			if line.ServiceID != nil {
				totals.ServiceRevenue = totals.ServiceRevenue.Add(line.Subtotal)
			} else {
				totals.ProductRevenue = totals.ProductRevenue.Add(line.Subtotal)
			}
		}
	}

	logger.Debug(ctx, "revenue aggregated",
		"barber_id", barberID.String(),
		"period", period.String(),
		"sales", totals.SaleCount,
	)

	return totals, nil
}

// checkLine surfaces upstream invariant violations instead of silently
// correcting them.
func checkLine(line SaleLineFact) error {
	hasProduct := line.ProductID != nil
	hasService := line.ServiceID != nil
	if hasProduct == hasService {
		return apperror.NewIntegrity("sale line must reference exactly one of product or service").
			WithDetail("sale_id", line.SaleID.String())
	}
	if line.Quantity <= 0 {
		return apperror.NewIntegrity("sale line quantity must be positive").
			WithDetail("sale_id", line.SaleID.String()).
			WithDetail("quantity", line.Quantity)
	}
	expected := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
	if !line.Subtotal.Equal(expected) {
		return apperror.NewIntegrity("sale line subtotal does not match quantity and unit price").
			WithDetail("sale_id", line.SaleID.String()).
			WithDetail("subtotal", types.FormatMoney(line.Subtotal)).
			WithDetail("expected", types.FormatMoney(expected))
	}
	return nil
}
