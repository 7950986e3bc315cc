// Package sales provides point-of-sale entry: a Sale with its lines,
// created once and immutable afterwards. The payroll engine reads
// committed sales, it never writes them.
package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// PaymentMethod identifies how the sale was paid.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentPix   PaymentMethod = "pix"
	PaymentOther PaymentMethod = "other"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentPix, PaymentOther:
		return true
	}
	return false
}

// Sale is one counter transaction.
type Sale struct {
	entity.BaseDocument

	ClientID *id.ID `db:"client_id" json:"clientId,omitempty"`
	BarberID *id.ID `db:"barber_id" json:"barberId,omitempty"`

	Total         types.Money   `db:"total" json:"total"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"paymentMethod"`
	SoldAt        time.Time     `db:"sold_at" json:"soldAt"`

	// Lines are stored in their own table.
	Lines []*SaleLine `db:"-" json:"lines"`
}

// SaleLine is one item of a sale. Exactly one of ProductID/OfferingID
// must be set.
type SaleLine struct {
	ID         id.ID       `db:"id" json:"id"`
	SaleID     id.ID       `db:"sale_id" json:"saleId"`
	ProductID  *id.ID      `db:"product_id" json:"productId,omitempty"`
	OfferingID *id.ID      `db:"service_id" json:"serviceId,omitempty"`
	Quantity   int         `db:"quantity" json:"quantity"`
	UnitPrice  types.Money `db:"unit_price" json:"unitPrice"`
	Subtotal   types.Money `db:"subtotal" json:"subtotal"`
}

// NewSale creates a sale document timestamped now.
func NewSale(paymentMethod PaymentMethod) *Sale {
	return &Sale{
		BaseDocument:  entity.NewBaseDocument(),
		PaymentMethod: paymentMethod,
		SoldAt:        time.Now().UTC(),
	}
}

// AddLine appends a line and keeps the total consistent.
func (s *Sale) AddLine(productID, offeringID *id.ID, quantity int, unitPrice types.Money) *SaleLine {
	line := &SaleLine{
		ID:         id.New(),
		SaleID:     s.ID,
		ProductID:  productID,
		OfferingID: offeringID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Subtotal:   unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
	s.Lines = append(s.Lines, line)
	s.Total = s.Total.Add(line.Subtotal)
	return line
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if !ValidPaymentMethod(s.PaymentMethod) {
		return apperror.NewValidation("unknown payment method").
			WithDetail("paymentMethod", string(s.PaymentMethod))
	}
	if len(s.Lines) == 0 {
		return apperror.NewValidation("sale must have at least one line")
	}

	sum := types.Zero()
	for i, line := range s.Lines {
		if err := line.validate(i); err != nil {
			return err
		}
		sum = sum.Add(line.Subtotal)
	}
	if !s.Total.Equal(sum) {
		return apperror.NewValidation("sale total does not match line subtotals").
			WithDetail("total", types.FormatMoney(s.Total)).
			WithDetail("lines", types.FormatMoney(sum))
	}
	return nil
}

func (l *SaleLine) validate(idx int) error {
	hasProduct := l.ProductID != nil
	hasOffering := l.OfferingID != nil
	if hasProduct == hasOffering {
		return apperror.NewValidation("line must reference exactly one of product or service").
			WithDetail("line", idx)
	}
	if l.Quantity <= 0 {
		return apperror.NewValidation("line quantity must be positive").
			WithDetail("line", idx)
	}
	if l.UnitPrice.IsNegative() {
		return apperror.NewValidation("line unit price cannot be negative").
			WithDetail("line", idx)
	}
	expected := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
	if !l.Subtotal.Equal(expected) {
		return apperror.NewValidation("line subtotal does not match quantity and unit price").
			WithDetail("line", idx).
			WithDetail("subtotal", types.FormatMoney(l.Subtotal)).
			WithDetail("expected", types.FormatMoney(expected))
	}
	return nil
}
