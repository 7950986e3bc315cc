// Package reports provides read-only aggregation over committed
// payroll data: the payment summary and the owner dashboard. No
// invariants of its own beyond summing stored Calculation fields.
package reports

import (
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
)

// PayrollSummaryFilter scopes the summary report.
type PayrollSummaryFilter struct {
	Period   types.Period
	BarberID *id.ID
}

// PayrollSummary is the payment report for a period.
type PayrollSummary struct {
	Period       types.Period           `json:"period"`
	Calculations []*payroll.Calculation `json:"calculations"`

	BarberCount  int         `json:"barberCount"`
	TotalRevenue types.Money `json:"totalRevenue"`
	TotalGross   types.Money `json:"totalGross"`
	TotalNet     types.Money `json:"totalNet"`

	PaidCount    int         `json:"paidCount"`
	PaidTotal    types.Money `json:"paidTotal"`
	PendingCount int         `json:"pendingCount"`
	PendingTotal types.Money `json:"pendingTotal"`
}

// TopPerformer is one row of the dashboard ranking.
type TopPerformer struct {
	BarberID     id.ID       `json:"barberId"`
	BarberName   string      `json:"barberName"`
	TotalRevenue types.Money `json:"totalRevenue"`
	NetPayable   types.Money `json:"netPayable"`
}

// Dashboard is the owner's landing view.
type Dashboard struct {
	ActiveBarbers int `json:"activeBarbers"`

	// Current calendar month.
	MonthRevenue    types.Money `json:"monthRevenue"`
	MonthNetPayable types.Money `json:"monthNetPayable"`

	// PaidPercent is the share of this month's calculations already
	// paid, 0..100 with two decimals; 0 when there are none.
	PaidPercent types.Money `json:"paidPercent"`

	TopPerformers []TopPerformer         `json:"topPerformers"`
	OldestPending []*payroll.Calculation `json:"oldestPending"`
}
