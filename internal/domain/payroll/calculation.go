package payroll

import (
	"strings"
	"time"

	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// Calculation is the persisted settlement record for one barber and one
// inclusive period. Unique per (barber, period_start, period_end).
//
// State machine: PENDING → PENDING on every recalculation (fields
// overwritten), PENDING → PAID via MarkPaid. PAID is terminal; a paid
// record is never mutated again.
type Calculation struct {
	entity.BaseDocument

	BarberID    id.ID      `db:"barber_id" json:"barberId"`
	PeriodStart types.Date `db:"period_start" json:"periodStart"`
	PeriodEnd   types.Date `db:"period_end" json:"periodEnd"`

	TotalRevenue       types.Money `db:"total_revenue" json:"totalRevenue"`
	ServiceRevenue     types.Money `db:"service_revenue" json:"serviceRevenue"`
	ProductRevenue     types.Money `db:"product_revenue" json:"productRevenue"`
	CommissionServices types.Money `db:"commission_services" json:"commissionServices"`
	CommissionProducts types.Money `db:"commission_products" json:"commissionProducts"`
	RentDeducted       types.Money `db:"rent_deducted" json:"rentDeducted"`
	Bonus              types.Money `db:"bonus" json:"bonus"`
	GrossPayable       types.Money `db:"gross_payable" json:"grossPayable"`
	AdjustmentTotal    types.Money `db:"adjustment_total" json:"adjustmentTotal"`
	NetPayable         types.Money `db:"net_payable" json:"netPayable"`
	SaleCount          int         `db:"sale_count" json:"saleCount"`

	Paid        bool        `db:"paid" json:"paid"`
	PaymentDate *types.Date `db:"payment_date" json:"paymentDate,omitempty"`
	Notes       string      `db:"notes" json:"notes,omitempty"`
}

// NewCalculation creates a pending calculation row for a barber/period key.
func NewCalculation(barberID id.ID, period types.Period) *Calculation {
	return &Calculation{
		BaseDocument: entity.NewBaseDocument(),
		BarberID:     barberID,
		PeriodStart:  period.Start,
		PeriodEnd:    period.End,
	}
}

// Period returns the calculation's inclusive date range.
func (c *Calculation) Period() types.Period {
	return types.Period{Start: c.PeriodStart, End: c.PeriodEnd}
}

// ApplyFigures writes evaluation output and the adjustment net into the
// record, rounding every monetary field to the 2-digit persistence scale.
func (c *Calculation) ApplyFigures(f Figures, adjustmentTotal types.Money, saleCount int) {
	c.TotalRevenue = types.RoundMoney(f.TotalRevenue)
	c.ServiceRevenue = types.RoundMoney(f.ServiceRevenue)
	c.ProductRevenue = types.RoundMoney(f.ProductRevenue)
	c.CommissionServices = types.RoundMoney(f.CommissionServices)
	c.CommissionProducts = types.RoundMoney(f.CommissionProducts)
	c.RentDeducted = types.RoundMoney(f.RentDeducted)
	c.Bonus = types.RoundMoney(f.Bonus)
	c.GrossPayable = types.RoundMoney(f.GrossPayable)
	c.AdjustmentTotal = types.RoundMoney(adjustmentTotal)
	c.NetPayable = types.RoundMoney(f.GrossPayable.Sub(adjustmentTotal))
	c.SaleCount = saleCount
	// Version is bumped by the repository on update.
	c.SetUpdatedAt(time.Now().UTC())
}

// SettlePaid transitions the record to its terminal paid state.
func (c *Calculation) SettlePaid(paymentDate types.Date, notes string) {
	c.Paid = true
	c.PaymentDate = &paymentDate
	c.MergeNotes(notes)
	c.SetUpdatedAt(time.Now().UTC())
}

// MergeNotes appends notes without discarding what is already recorded.
func (c *Calculation) MergeNotes(notes string) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return
	}
	if c.Notes == "" {
		c.Notes = notes
		return
	}
	c.Notes = c.Notes + "\n" + notes
}
