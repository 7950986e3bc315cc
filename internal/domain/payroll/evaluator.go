package payroll

import (
	"fmt"

	"barberdesk/internal/core/types"
)

// Figures is the output of one commission evaluation. All values carry
// full decimal precision; rounding to 2 digits happens only when a
// Calculation row is written.
type Figures struct {
	TotalRevenue       types.Money
	ServiceRevenue     types.Money
	ProductRevenue     types.Money
	CommissionServices types.Money
	CommissionProducts types.Money
	RentDeducted       types.Money
	Bonus              types.Money
	GrossPayable       types.Money
}

// Evaluate applies commission terms to aggregated period revenue.
// It is a pure function: no storage access, no clock, deterministic.
//
// grossPayable = commissionServices + commissionProducts + bonus − rentDeducted.
func Evaluate(terms Terms, goal GoalBonus, serviceRevenue, productRevenue types.Money) (Figures, error) {
	f := Figures{
		ServiceRevenue: serviceRevenue,
		ProductRevenue: productRevenue,
		TotalRevenue:   serviceRevenue.Add(productRevenue),
	}

	switch t := terms.(type) {
	case PercentageTerms:
		f.CommissionServices = types.Percent(serviceRevenue, t.ServicePct)
		f.CommissionProducts = types.Percent(productRevenue, t.ProductPct)

	case FixedMonthlyTerms:
		// Flat amount, independent of actual service revenue.
		f.CommissionServices = t.MonthlyAmount
		f.CommissionProducts = types.Percent(productRevenue, t.ProductPct)

	case ChairRentTerms:
		f.RentDeducted = t.RentAmount
		// The barber keeps service revenue above the rent floor,
		// never a negative amount below it.
		kept := serviceRevenue.Sub(t.RentAmount)
		if kept.IsNegative() {
			kept = types.Zero()
		}
		f.CommissionServices = kept
		f.CommissionProducts = types.Percent(productRevenue, t.ProductPct)

	default:
		return Figures{}, fmt.Errorf("evaluate: unhandled terms %T", terms)
	}

	if goal.GoalAmount.IsPositive() && f.TotalRevenue.GreaterThanOrEqual(goal.GoalAmount) {
		f.Bonus = types.Percent(f.TotalRevenue, goal.BonusPct)
	}

	f.GrossPayable = f.CommissionServices.
		Add(f.CommissionProducts).
		Add(f.Bonus).
		Sub(f.RentDeducted)

	return f, nil
}
