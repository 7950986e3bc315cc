package payroll

import (
	"context"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// AdjustmentKind identifies a manual ledger entry type.
type AdjustmentKind string

const (
	AdjustmentDiscount AdjustmentKind = "discount"
	AdjustmentAdvance  AdjustmentKind = "advance"
	AdjustmentBonus    AdjustmentKind = "bonus"
	AdjustmentFine     AdjustmentKind = "fine"
)

// ValidAdjustmentKind reports whether k is a known adjustment kind.
func ValidAdjustmentKind(k AdjustmentKind) bool {
	switch k {
	case AdjustmentDiscount, AdjustmentAdvance, AdjustmentBonus, AdjustmentFine:
		return true
	}
	return false
}

// Adjustment is a manual monetary correction against a barber's payable
// amount. Amount is always positive; the kind determines the sign in
// NetTotal. Once applied (folded into a paid Calculation) the record is
// immutable and undeletable.
//
// The "bonus" kind is a manual ledger entry, distinct from the
// policy-driven goal bonus computed by Evaluate.
type Adjustment struct {
	entity.BaseDocument

	BarberID      id.ID          `db:"barber_id" json:"barberId"`
	CalculationID *id.ID         `db:"calculation_id" json:"calculationId,omitempty"`
	Kind          AdjustmentKind `db:"kind" json:"kind"`
	Description   string         `db:"description" json:"description"`
	Amount        types.Money    `db:"amount" json:"amount"`
	EffectiveDate types.Date     `db:"effective_date" json:"effectiveDate"`
	Applied       bool           `db:"applied" json:"applied"`
}

// NewAdjustment creates an adjustment document.
func NewAdjustment(barberID id.ID, kind AdjustmentKind, amount types.Money, effectiveDate types.Date) *Adjustment {
	return &Adjustment{
		BaseDocument:  entity.NewBaseDocument(),
		BarberID:      barberID,
		Kind:          kind,
		Amount:        amount,
		EffectiveDate: effectiveDate,
	}
}

// Validate implements entity.Validatable.
func (a *Adjustment) Validate(ctx context.Context) error {
	if id.IsNil(a.BarberID) {
		return apperror.NewValidation("barber is required").WithDetail("field", "barberId")
	}
	if !ValidAdjustmentKind(a.Kind) {
		return apperror.NewValidation("unknown adjustment kind").WithDetail("kind", string(a.Kind))
	}
	if !a.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount").
			WithDetail("amount", types.FormatMoney(a.Amount))
	}
	if a.EffectiveDate.IsZero() {
		return apperror.NewValidation("effective date is required").WithDetail("field", "effectiveDate")
	}
	return nil
}

// NetTotal computes the net deduction of a set of adjustments:
// discounts and fines increase the deduction from the barber, advances
// and manual bonuses decrease it (money already given or additionally
// owed is netted out of what remains payable). The result may be
// negative.
func NetTotal(adjs []*Adjustment) types.Money {
	total := types.Zero()
	for _, adj := range adjs {
		switch adj.Kind {
		case AdjustmentDiscount, AdjustmentFine:
			total = total.Add(adj.Amount)
		case AdjustmentAdvance, AdjustmentBonus:
			total = total.Sub(adj.Amount)
		}
	}
	return total
}
