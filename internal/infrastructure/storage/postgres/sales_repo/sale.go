// Package sales_repo provides the PostgreSQL implementation of sale
// persistence, including the read-only sales feed for the payroll
// engine.
package sales_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
	"barberdesk/internal/domain/sales"
	"barberdesk/internal/infrastructure/storage/postgres"
	"barberdesk/internal/infrastructure/storage/postgres/document_repo"
)

const (
	saleTable     = "doc_sales"
	saleLineTable = "doc_sale_lines"
)

// SaleRepo implements sales.Repository and payroll.SalesReader.
type SaleRepo struct {
	*document_repo.BaseDocumentRepo[*sales.Sale]
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txm *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: document_repo.NewBaseDocumentRepo[*sales.Sale](
			txm,
			saleTable,
			postgres.ExtractDBColumns[sales.Sale](),
			func() *sales.Sale { return &sales.Sale{} },
		),
	}
}

// Create inserts the sale and all its lines. Must run inside the
// caller's transaction so the stock decrement and the sale commit
// together.
func (r *SaleRepo) Create(ctx context.Context, sale *sales.Sale) error {
	if err := r.BaseDocumentRepo.Create(ctx, sale); err != nil {
		return err
	}

	if len(sale.Lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(saleLineTable).
		Columns("id", "sale_id", "product_id", "service_id", "quantity", "unit_price", "subtotal")
	for _, line := range sale.Lines {
		q = q.Values(line.ID, sale.ID, line.ProductID, line.OfferingID, line.Quantity, line.UnitPrice, line.Subtotal)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert sale lines: %w", err)
	}

	return nil
}

// GetByID returns the sale with its lines.
func (r *SaleRepo) GetByID(ctx context.Context, saleID id.ID) (*sales.Sale, error) {
	sale, err := r.BaseDocumentRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	lines, err := r.loadLines(ctx, []id.ID{saleID})
	if err != nil {
		return nil, err
	}
	sale.Lines = lines[saleID]

	return sale, nil
}

// ListForPeriod returns sales whose timestamp falls in the period,
// inclusive, newest first, with lines.
func (r *SaleRepo) ListForPeriod(ctx context.Context, period types.Period) ([]*sales.Sale, error) {
	q := r.BaseSelect().
		Where(squirrel.GtOrEq{"sold_at": period.Start.Time()}).
		Where(squirrel.LtOrEq{"sold_at": period.End.EndOfDay()}).
		OrderBy("sold_at DESC")

	items, err := r.SelectMany(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	saleIDs := make([]id.ID, len(items))
	for i, s := range items {
		saleIDs[i] = s.ID
	}

	lines, err := r.loadLines(ctx, saleIDs)
	if err != nil {
		return nil, err
	}
	for _, s := range items {
		s.Lines = lines[s.ID]
	}

	return items, nil
}

// TotalsForPeriod sums count and revenue over the period.
func (r *SaleRepo) TotalsForPeriod(ctx context.Context, period types.Period) (sales.PeriodTotals, error) {
	q := r.Builder().
		Select("COUNT(*) AS sale_count", "COALESCE(SUM(total), 0) AS total").
		From(saleTable).
		Where(squirrel.GtOrEq{"sold_at": period.Start.Time()}).
		Where(squirrel.LtOrEq{"sold_at": period.End.EndOfDay()})

	sql, args, err := q.ToSql()
	if err != nil {
		return sales.PeriodTotals{}, fmt.Errorf("build totals: %w", err)
	}

	var totals sales.PeriodTotals
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&totals.SaleCount, &totals.Total)
	if err != nil {
		return sales.PeriodTotals{}, fmt.Errorf("period totals: %w", err)
	}

	return totals, nil
}

// SalesForBarber implements payroll.SalesReader: the committed sales of
// one barber within the period, flattened to facts.
func (r *SaleRepo) SalesForBarber(ctx context.Context, barberID id.ID, period types.Period) ([]payroll.SaleFact, error) {
	q := r.Builder().
		Select(
			"l.sale_id",
			"l.product_id",
			"l.service_id",
			"l.quantity",
			"l.unit_price",
			"l.subtotal",
		).
		From(saleLineTable+" l").
		Join(saleTable+" s ON s.id = l.sale_id").
		Where(squirrel.Eq{"s.barber_id": barberID}).
		Where(squirrel.GtOrEq{"s.sold_at": period.Start.Time()}).
		Where(squirrel.LtOrEq{"s.sold_at": period.End.EndOfDay()}).
		OrderBy("s.sold_at ASC", "l.sale_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sales facts: %w", err)
	}

	var rows []payroll.SaleLineFact
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("sales for barber: %w", err)
	}

	// Group lines into facts preserving query order.
	var facts []payroll.SaleFact
	index := make(map[id.ID]int, len(rows))
	for _, line := range rows {
		i, ok := index[line.SaleID]
		if !ok {
			facts = append(facts, payroll.SaleFact{ID: line.SaleID})
			i = len(facts) - 1
			index[line.SaleID] = i
		}
		facts[i].Lines = append(facts[i].Lines, line)
	}

	return facts, nil
}

func (r *SaleRepo) loadLines(ctx context.Context, saleIDs []id.ID) (map[id.ID][]*sales.SaleLine, error) {
	q := r.Builder().
		Select("id", "sale_id", "product_id", "service_id", "quantity", "unit_price", "subtotal").
		From(saleLineTable).
		Where(squirrel.Eq{"sale_id": saleIDs}).
		OrderBy("sale_id", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load lines: %w", err)
	}

	var lines []*sales.SaleLine
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("load sale lines: %w", err)
	}

	bySale := make(map[id.ID][]*sales.SaleLine, len(saleIDs))
	for _, line := range lines {
		bySale[line.SaleID] = append(bySale[line.SaleID], line)
	}

	return bySale, nil
}

var (
	_ sales.Repository    = (*SaleRepo)(nil)
	_ payroll.SalesReader = (*SaleRepo)(nil)
)
