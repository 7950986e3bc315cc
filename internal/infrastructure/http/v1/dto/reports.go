package dto

import (
	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/reports"
)

// PayrollSummaryQuery scopes the payment summary report.
type PayrollSummaryQuery struct {
	PeriodStart types.Date `form:"periodStart" binding:"required"`
	PeriodEnd   types.Date `form:"periodEnd" binding:"required"`
	BarberID    *string    `form:"barberId"`
}

// ToFilter converts query params to the report filter.
func (q *PayrollSummaryQuery) ToFilter() (reports.PayrollSummaryFilter, error) {
	period, err := types.NewPeriod(q.PeriodStart, q.PeriodEnd)
	if err != nil {
		return reports.PayrollSummaryFilter{}, apperror.NewValidation(err.Error())
	}
	barberID, err := parseOptionalID("barberId", q.BarberID)
	if err != nil {
		return reports.PayrollSummaryFilter{}, err
	}
	return reports.PayrollSummaryFilter{Period: period, BarberID: barberID}, nil
}

// PayrollSummaryResponse is the payment report for a period.
type PayrollSummaryResponse struct {
	PeriodStart  types.Date             `json:"periodStart"`
	PeriodEnd    types.Date             `json:"periodEnd"`
	Calculations []*CalculationResponse `json:"calculations"`

	BarberCount  int    `json:"barberCount"`
	TotalRevenue string `json:"totalRevenue"`
	TotalGross   string `json:"totalGross"`
	TotalNet     string `json:"totalNet"`

	PaidCount    int    `json:"paidCount"`
	PaidTotal    string `json:"paidTotal"`
	PendingCount int    `json:"pendingCount"`
	PendingTotal string `json:"pendingTotal"`
}

// FromPayrollSummary creates response DTO from the report.
func FromPayrollSummary(s *reports.PayrollSummary) *PayrollSummaryResponse {
	return &PayrollSummaryResponse{
		PeriodStart:  s.Period.Start,
		PeriodEnd:    s.Period.End,
		Calculations: FromCalculations(s.Calculations),
		BarberCount:  s.BarberCount,
		TotalRevenue: types.FormatMoney(s.TotalRevenue),
		TotalGross:   types.FormatMoney(s.TotalGross),
		TotalNet:     types.FormatMoney(s.TotalNet),
		PaidCount:    s.PaidCount,
		PaidTotal:    types.FormatMoney(s.PaidTotal),
		PendingCount: s.PendingCount,
		PendingTotal: types.FormatMoney(s.PendingTotal),
	}
}

// TopPerformerResponse is one row of the dashboard ranking.
type TopPerformerResponse struct {
	BarberID     string `json:"barberId"`
	BarberName   string `json:"barberName"`
	TotalRevenue string `json:"totalRevenue"`
	NetPayable   string `json:"netPayable"`
}

// DashboardResponse is the owner's landing view.
type DashboardResponse struct {
	ActiveBarbers   int                    `json:"activeBarbers"`
	MonthRevenue    string                 `json:"monthRevenue"`
	MonthNetPayable string                 `json:"monthNetPayable"`
	PaidPercent     string                 `json:"paidPercent"`
	TopPerformers   []TopPerformerResponse `json:"topPerformers"`
	OldestPending   []*CalculationResponse `json:"oldestPending"`
}

// FromDashboard creates response DTO from the dashboard view.
func FromDashboard(d *reports.Dashboard) *DashboardResponse {
	performers := make([]TopPerformerResponse, 0, len(d.TopPerformers))
	for _, p := range d.TopPerformers {
		performers = append(performers, TopPerformerResponse{
			BarberID:     p.BarberID.String(),
			BarberName:   p.BarberName,
			TotalRevenue: types.FormatMoney(p.TotalRevenue),
			NetPayable:   types.FormatMoney(p.NetPayable),
		})
	}
	return &DashboardResponse{
		ActiveBarbers:   d.ActiveBarbers,
		MonthRevenue:    types.FormatMoney(d.MonthRevenue),
		MonthNetPayable: types.FormatMoney(d.MonthNetPayable),
		PaidPercent:     types.FormatMoney(d.PaidPercent),
		TopPerformers:   performers,
		OldestPending:   FromCalculations(d.OldestPending),
	}
}
