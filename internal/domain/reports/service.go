package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
)

// Repository is the read side the reports are built from.
type Repository interface {
	// CalculationsForPeriod returns calculations overlapping the
	// filter period, optionally for one barber, newest first.
	CalculationsForPeriod(ctx context.Context, filter PayrollSummaryFilter) ([]*payroll.Calculation, error)

	// ActiveBarberCount counts active, non-deleted barbers.
	ActiveBarberCount(ctx context.Context) (int, error)

	// TopPerformers ranks barbers by calculation revenue in the period.
	TopPerformers(ctx context.Context, period types.Period, limit int) ([]TopPerformer, error)

	// OldestPending returns the oldest unpaid calculations.
	OldestPending(ctx context.Context, limit int) ([]*payroll.Calculation, error)
}

// Service assembles the reports.
type Service struct {
	repo Repository
}

// NewService creates a reports Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

const topPerformerLimit = 5

// PayrollSummary sums the period's calculations into the payment report.
func (s *Service) PayrollSummary(ctx context.Context, filter PayrollSummaryFilter) (*PayrollSummary, error) {
	if _, err := types.NewPeriod(filter.Period.Start, filter.Period.End); err != nil {
		return nil, apperror.NewValidation(err.Error())
	}

	calcs, err := s.repo.CalculationsForPeriod(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &PayrollSummary{
		Period:       filter.Period,
		Calculations: calcs,
		TotalRevenue: types.Zero(),
		TotalGross:   types.Zero(),
		TotalNet:     types.Zero(),
		PaidTotal:    types.Zero(),
		PendingTotal: types.Zero(),
	}

	barbers := make(map[string]struct{})
	for _, c := range calcs {
		barbers[c.BarberID.String()] = struct{}{}
		summary.TotalRevenue = summary.TotalRevenue.Add(c.TotalRevenue)
		summary.TotalGross = summary.TotalGross.Add(c.GrossPayable)
		summary.TotalNet = summary.TotalNet.Add(c.NetPayable)
		if c.Paid {
			summary.PaidCount++
			summary.PaidTotal = summary.PaidTotal.Add(c.NetPayable)
		} else {
			summary.PendingCount++
			summary.PendingTotal = summary.PendingTotal.Add(c.NetPayable)
		}
	}
	summary.BarberCount = len(barbers)

	return summary, nil
}

// Dashboard builds the owner's landing view over the current month.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	month := types.MonthOf(types.Today())

	activeBarbers, err := s.repo.ActiveBarberCount(ctx)
	if err != nil {
		return nil, err
	}

	calcs, err := s.repo.CalculationsForPeriod(ctx, PayrollSummaryFilter{Period: month})
	if err != nil {
		return nil, err
	}

	top, err := s.repo.TopPerformers(ctx, month, topPerformerLimit)
	if err != nil {
		return nil, err
	}

	pending, err := s.repo.OldestPending(ctx, topPerformerLimit)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		ActiveBarbers:   activeBarbers,
		MonthRevenue:    types.Zero(),
		MonthNetPayable: types.Zero(),
		PaidPercent:     types.Zero(),
		TopPerformers:   top,
		OldestPending:   pending,
	}

	paid := 0
	for _, c := range calcs {
		d.MonthRevenue = d.MonthRevenue.Add(c.TotalRevenue)
		d.MonthNetPayable = d.MonthNetPayable.Add(c.NetPayable)
		if c.Paid {
			paid++
		}
	}
	if len(calcs) > 0 {
		d.PaidPercent = decimal.NewFromInt(int64(paid)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(len(calcs)))).
			Round(2)
	}

	return d, nil
}
