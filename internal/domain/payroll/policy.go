// Package payroll implements the commission and settlement engine:
// commission policies, revenue aggregation, manual adjustments and the
// per-period Calculation lifecycle.
package payroll

import (
	"context"
	"time"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// PolicyKind identifies one of the three closed commission schemes.
type PolicyKind string

const (
	KindPercentage   PolicyKind = "percentage"
	KindFixedMonthly PolicyKind = "fixed_monthly"
	KindChairRent    PolicyKind = "chair_rent"
)

// ValidKind reports whether k is a known policy kind.
func ValidKind(k PolicyKind) bool {
	switch k {
	case KindPercentage, KindFixedMonthly, KindChairRent:
		return true
	}
	return false
}

// CommissionPolicy is the commission rule set for a barber over a date
// range. At most one active policy exists per barber at any instant;
// superseded policies are immutable history.
type CommissionPolicy struct {
	entity.BaseDocument

	BarberID id.ID      `db:"barber_id" json:"barberId"`
	Kind     PolicyKind `db:"kind" json:"kind"`

	// Percentages are expressed as 0..100.
	ServicePct types.Money `db:"service_pct" json:"servicePct"`
	ProductPct types.Money `db:"product_pct" json:"productPct"`

	RentAmount    types.Money `db:"rent_amount" json:"rentAmount"`
	MonthlyAmount types.Money `db:"monthly_amount" json:"monthlyAmount"`

	// Goal bonus applies to every kind: when GoalAmount > 0 and total
	// period revenue reaches it, BonusPct of total revenue is granted.
	GoalAmount types.Money `db:"goal_amount" json:"goalAmount"`
	BonusPct   types.Money `db:"bonus_pct" json:"bonusPct"`

	EffectiveFrom types.Date  `db:"effective_from" json:"effectiveFrom"`
	EffectiveTo   *types.Date `db:"effective_to" json:"effectiveTo,omitempty"`
	IsActive      bool        `db:"is_active" json:"isActive"`
}

// NewCommissionPolicy creates a policy document for a barber.
func NewCommissionPolicy(barberID id.ID, kind PolicyKind) *CommissionPolicy {
	return &CommissionPolicy{
		BaseDocument: entity.NewBaseDocument(),
		BarberID:     barberID,
		Kind:         kind,
	}
}

// Validate implements entity.Validatable.
func (p *CommissionPolicy) Validate(ctx context.Context) error {
	if id.IsNil(p.BarberID) {
		return apperror.NewValidation("barber is required").WithDetail("field", "barberId")
	}
	if !ValidKind(p.Kind) {
		return apperror.NewValidation("unknown policy kind").WithDetail("kind", string(p.Kind))
	}
	hundred := types.NewMoney(100)
	for field, pct := range map[string]types.Money{
		"servicePct": p.ServicePct,
		"productPct": p.ProductPct,
		"bonusPct":   p.BonusPct,
	} {
		if pct.IsNegative() || pct.GreaterThan(hundred) {
			return apperror.NewValidation("percentage must be between 0 and 100").
				WithDetail("field", field)
		}
	}
	for field, amount := range map[string]types.Money{
		"rentAmount":    p.RentAmount,
		"monthlyAmount": p.MonthlyAmount,
		"goalAmount":    p.GoalAmount,
	} {
		if amount.IsNegative() {
			return apperror.NewValidation("amount cannot be negative").
				WithDetail("field", field)
		}
	}
	return nil
}

// Supersede closes the policy as of endDate.
func (p *CommissionPolicy) Supersede(endDate types.Date) {
	p.IsActive = false
	p.EffectiveTo = &endDate
	p.SetUpdatedAt(time.Now().UTC())
}

// --- Terms: tagged variant over the three kinds ---

// Terms is the evaluation-time view of a policy: each variant carries
// only the fields its scheme needs, so invalid combinations cannot be
// expressed. Evaluate dispatches exhaustively on the variant.
type Terms interface {
	Kind() PolicyKind
}

// PercentageTerms pays a percentage of service and product revenue.
type PercentageTerms struct {
	ServicePct types.Money
	ProductPct types.Money
}

func (PercentageTerms) Kind() PolicyKind { return KindPercentage }

// FixedMonthlyTerms pays a flat amount regardless of service revenue,
// plus a percentage of product revenue.
type FixedMonthlyTerms struct {
	MonthlyAmount types.Money
	ProductPct    types.Money
}

func (FixedMonthlyTerms) Kind() PolicyKind { return KindFixedMonthly }

// ChairRentTerms deducts a fixed chair rent; the barber keeps service
// revenue above the rent floor and a percentage of product revenue.
type ChairRentTerms struct {
	RentAmount types.Money
	ProductPct types.Money
}

func (ChairRentTerms) Kind() PolicyKind { return KindChairRent }

// GoalBonus is the goal/bonus pair common to every kind.
type GoalBonus struct {
	GoalAmount types.Money
	BonusPct   types.Money
}

// Terms projects the stored policy row into its tagged variant.
// Unknown kinds are rejected before any revenue is read.
func (p *CommissionPolicy) Terms() (Terms, error) {
	switch p.Kind {
	case KindPercentage:
		return PercentageTerms{ServicePct: p.ServicePct, ProductPct: p.ProductPct}, nil
	case KindFixedMonthly:
		return FixedMonthlyTerms{MonthlyAmount: p.MonthlyAmount, ProductPct: p.ProductPct}, nil
	case KindChairRent:
		return ChairRentTerms{RentAmount: p.RentAmount, ProductPct: p.ProductPct}, nil
	default:
		return nil, apperror.NewValidation("unknown policy kind").WithDetail("kind", string(p.Kind))
	}
}

// Goal returns the policy's goal/bonus pair.
func (p *CommissionPolicy) Goal() GoalBonus {
	return GoalBonus{GoalAmount: p.GoalAmount, BonusPct: p.BonusPct}
}
