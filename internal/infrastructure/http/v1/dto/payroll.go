package dto

import (
	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
)

// --- Request DTOs ---

// ActivatePolicyRequest is the request body for activating a new
// commission policy. Monetary and percentage fields arrive as decimal
// strings; omitted ones default to zero.
type ActivatePolicyRequest struct {
	BarberID      string `json:"barberId" binding:"required"`
	Kind          string `json:"kind" binding:"required"`
	ServicePct    string `json:"servicePct"`
	ProductPct    string `json:"productPct"`
	RentAmount    string `json:"rentAmount"`
	MonthlyAmount string `json:"monthlyAmount"`
	GoalAmount    string `json:"goalAmount"`
	BonusPct      string `json:"bonusPct"`
}

// ToEntity converts DTO to domain entity.
func (r *ActivatePolicyRequest) ToEntity() (*payroll.CommissionPolicy, error) {
	barberID, err := parseID("barberId", r.BarberID)
	if err != nil {
		return nil, err
	}

	kind := payroll.PolicyKind(r.Kind)
	if !payroll.ValidKind(kind) {
		return nil, apperror.NewValidation("unknown policy kind").
			WithDetail("field", "kind").
			WithDetail("value", r.Kind)
	}

	policy := payroll.NewCommissionPolicy(barberID, kind)

	for _, f := range []struct {
		name  string
		value string
		dst   *types.Money
	}{
		{"servicePct", r.ServicePct, &policy.ServicePct},
		{"productPct", r.ProductPct, &policy.ProductPct},
		{"rentAmount", r.RentAmount, &policy.RentAmount},
		{"monthlyAmount", r.MonthlyAmount, &policy.MonthlyAmount},
		{"goalAmount", r.GoalAmount, &policy.GoalAmount},
		{"bonusPct", r.BonusPct, &policy.BonusPct},
	} {
		m, err := parseMoney(f.name, f.value)
		if err != nil {
			return nil, err
		}
		*f.dst = m
	}

	return policy, nil
}

// CreateAdjustmentRequest is the request body for a manual adjustment.
type CreateAdjustmentRequest struct {
	BarberID      string     `json:"barberId" binding:"required"`
	Kind          string     `json:"kind" binding:"required"`
	Description   string     `json:"description"`
	Amount        string     `json:"amount" binding:"required"`
	EffectiveDate types.Date `json:"effectiveDate" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAdjustmentRequest) ToEntity() (*payroll.Adjustment, error) {
	barberID, err := parseID("barberId", r.BarberID)
	if err != nil {
		return nil, err
	}

	kind := payroll.AdjustmentKind(r.Kind)
	if !payroll.ValidAdjustmentKind(kind) {
		return nil, apperror.NewValidation("unknown adjustment kind").
			WithDetail("field", "kind").
			WithDetail("value", r.Kind)
	}

	amount, err := parseMoney("amount", r.Amount)
	if err != nil {
		return nil, err
	}

	adj := payroll.NewAdjustment(barberID, kind, amount, r.EffectiveDate)
	adj.Description = r.Description
	return adj, nil
}

// RecalculateRequest is the request body for the settlement run. With
// BarberID set one barber is recalculated; without it, every barber
// with an active policy.
type RecalculateRequest struct {
	BarberID    *string    `json:"barberId"`
	PeriodStart types.Date `json:"periodStart" binding:"required"`
	PeriodEnd   types.Date `json:"periodEnd" binding:"required"`
}

// Period validates and returns the requested date range.
func (r *RecalculateRequest) Period() (types.Period, error) {
	period, err := types.NewPeriod(r.PeriodStart, r.PeriodEnd)
	if err != nil {
		return types.Period{}, apperror.NewValidation(err.Error())
	}
	return period, nil
}

// MarkPaidRequest is the request body for settling a calculation.
type MarkPaidRequest struct {
	PaymentDate types.Date `json:"paymentDate"`
	Notes       string     `json:"notes"`
}

// AdjustmentListQuery filters the adjustment listing.
type AdjustmentListQuery struct {
	BarberID       string     `form:"barberId" binding:"required"`
	PeriodStart    types.Date `form:"periodStart" binding:"required"`
	PeriodEnd      types.Date `form:"periodEnd" binding:"required"`
	IncludeApplied bool       `form:"includeApplied"`
}

// --- Response DTOs ---

// PolicyResponse is the response body for a commission policy.
type PolicyResponse struct {
	DocumentResponse
	BarberID      string      `json:"barberId"`
	Kind          string      `json:"kind"`
	ServicePct    string      `json:"servicePct"`
	ProductPct    string      `json:"productPct"`
	RentAmount    string      `json:"rentAmount"`
	MonthlyAmount string      `json:"monthlyAmount"`
	GoalAmount    string      `json:"goalAmount"`
	BonusPct      string      `json:"bonusPct"`
	EffectiveFrom types.Date  `json:"effectiveFrom"`
	EffectiveTo   *types.Date `json:"effectiveTo,omitempty"`
	IsActive      bool        `json:"isActive"`
}

// FromPolicy creates response DTO from domain entity.
func FromPolicy(p *payroll.CommissionPolicy) *PolicyResponse {
	return &PolicyResponse{
		DocumentResponse: FromDocument(p.BaseDocument),
		BarberID:         p.BarberID.String(),
		Kind:             string(p.Kind),
		ServicePct:       types.FormatMoney(p.ServicePct),
		ProductPct:       types.FormatMoney(p.ProductPct),
		RentAmount:       types.FormatMoney(p.RentAmount),
		MonthlyAmount:    types.FormatMoney(p.MonthlyAmount),
		GoalAmount:       types.FormatMoney(p.GoalAmount),
		BonusPct:         types.FormatMoney(p.BonusPct),
		EffectiveFrom:    p.EffectiveFrom,
		EffectiveTo:      p.EffectiveTo,
		IsActive:         p.IsActive,
	}
}

// FromPolicies maps a slice of policies.
func FromPolicies(items []*payroll.CommissionPolicy) []*PolicyResponse {
	out := make([]*PolicyResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPolicy(p))
	}
	return out
}

// AdjustmentResponse is the response body for an adjustment.
type AdjustmentResponse struct {
	DocumentResponse
	BarberID      string     `json:"barberId"`
	CalculationID *string    `json:"calculationId,omitempty"`
	Kind          string     `json:"kind"`
	Description   string     `json:"description"`
	Amount        string     `json:"amount"`
	EffectiveDate types.Date `json:"effectiveDate"`
	Applied       bool       `json:"applied"`
}

// FromAdjustment creates response DTO from domain entity.
func FromAdjustment(a *payroll.Adjustment) *AdjustmentResponse {
	resp := &AdjustmentResponse{
		DocumentResponse: FromDocument(a.BaseDocument),
		BarberID:         a.BarberID.String(),
		Kind:             string(a.Kind),
		Description:      a.Description,
		Amount:           types.FormatMoney(a.Amount),
		EffectiveDate:    a.EffectiveDate,
		Applied:          a.Applied,
	}
	if a.CalculationID != nil {
		v := a.CalculationID.String()
		resp.CalculationID = &v
	}
	return resp
}

// FromAdjustments maps a slice of adjustments.
func FromAdjustments(items []*payroll.Adjustment) []*AdjustmentResponse {
	out := make([]*AdjustmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAdjustment(a))
	}
	return out
}

// CalculationResponse is the response body for a settlement record.
type CalculationResponse struct {
	DocumentResponse
	BarberID    string     `json:"barberId"`
	PeriodStart types.Date `json:"periodStart"`
	PeriodEnd   types.Date `json:"periodEnd"`

	TotalRevenue       string `json:"totalRevenue"`
	ServiceRevenue     string `json:"serviceRevenue"`
	ProductRevenue     string `json:"productRevenue"`
	CommissionServices string `json:"commissionServices"`
	CommissionProducts string `json:"commissionProducts"`
	RentDeducted       string `json:"rentDeducted"`
	Bonus              string `json:"bonus"`
	GrossPayable       string `json:"grossPayable"`
	AdjustmentTotal    string `json:"adjustmentTotal"`
	NetPayable         string `json:"netPayable"`
	SaleCount          int    `json:"saleCount"`

	Paid        bool        `json:"paid"`
	PaymentDate *types.Date `json:"paymentDate,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// FromCalculation creates response DTO from domain entity.
func FromCalculation(c *payroll.Calculation) *CalculationResponse {
	return &CalculationResponse{
		DocumentResponse:   FromDocument(c.BaseDocument),
		BarberID:           c.BarberID.String(),
		PeriodStart:        c.PeriodStart,
		PeriodEnd:          c.PeriodEnd,
		TotalRevenue:       types.FormatMoney(c.TotalRevenue),
		ServiceRevenue:     types.FormatMoney(c.ServiceRevenue),
		ProductRevenue:     types.FormatMoney(c.ProductRevenue),
		CommissionServices: types.FormatMoney(c.CommissionServices),
		CommissionProducts: types.FormatMoney(c.CommissionProducts),
		RentDeducted:       types.FormatMoney(c.RentDeducted),
		Bonus:              types.FormatMoney(c.Bonus),
		GrossPayable:       types.FormatMoney(c.GrossPayable),
		AdjustmentTotal:    types.FormatMoney(c.AdjustmentTotal),
		NetPayable:         types.FormatMoney(c.NetPayable),
		SaleCount:          c.SaleCount,
		Paid:               c.Paid,
		PaymentDate:        c.PaymentDate,
		Notes:              c.Notes,
	}
}

// FromCalculations maps a slice of calculations.
func FromCalculations(items []*payroll.Calculation) []*CalculationResponse {
	out := make([]*CalculationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCalculation(c))
	}
	return out
}

// RecalculateResultResponse is one barber's outcome of a bulk run.
type RecalculateResultResponse struct {
	BarberID    string               `json:"barberId"`
	Calculation *CalculationResponse `json:"calculation,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// FromBarberResults maps bulk recalculation outcomes.
func FromBarberResults(results []payroll.BarberResult) []*RecalculateResultResponse {
	out := make([]*RecalculateResultResponse, 0, len(results))
	for _, r := range results {
		resp := &RecalculateResultResponse{BarberID: r.BarberID.String()}
		if r.Calculation != nil {
			resp.Calculation = FromCalculation(r.Calculation)
		}
		if r.Err != nil {
			resp.Error = r.Err.Error()
		}
		out = append(out, resp)
	}
	return out
}
