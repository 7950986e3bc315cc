package dto

import (
	"time"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/sales"
)

// --- Request DTOs ---

// SaleLineRequest is one line of a sale being created. Exactly one of
// ProductID/ServiceID must be set.
type SaleLineRequest struct {
	ProductID *string `json:"productId"`
	ServiceID *string `json:"serviceId"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice string  `json:"unitPrice" binding:"required"`
}

// CreateSaleRequest is the request body for recording a sale.
type CreateSaleRequest struct {
	ClientID      *string            `json:"clientId"`
	BarberID      *string            `json:"barberId"`
	PaymentMethod string             `json:"paymentMethod" binding:"required"`
	SoldAt        *time.Time         `json:"soldAt"`
	Lines         []*SaleLineRequest `json:"lines" binding:"required"`
}

// ToEntity converts DTO to domain entity, computing line subtotals and
// the sale total from quantity and unit price.
func (r *CreateSaleRequest) ToEntity() (*sales.Sale, error) {
	method := sales.PaymentMethod(r.PaymentMethod)
	if !sales.ValidPaymentMethod(method) {
		return nil, apperror.NewValidation("unknown payment method").
			WithDetail("field", "paymentMethod").
			WithDetail("value", r.PaymentMethod)
	}

	sale := sales.NewSale(method)

	clientID, err := parseOptionalID("clientId", r.ClientID)
	if err != nil {
		return nil, err
	}
	sale.ClientID = clientID

	barberID, err := parseOptionalID("barberId", r.BarberID)
	if err != nil {
		return nil, err
	}
	sale.BarberID = barberID

	if r.SoldAt != nil {
		sale.SoldAt = r.SoldAt.UTC()
	}

	for _, line := range r.Lines {
		productID, err := parseOptionalID("productId", line.ProductID)
		if err != nil {
			return nil, err
		}
		serviceID, err := parseOptionalID("serviceId", line.ServiceID)
		if err != nil {
			return nil, err
		}
		unitPrice, err := parseMoney("unitPrice", line.UnitPrice)
		if err != nil {
			return nil, err
		}
		sale.AddLine(productID, serviceID, line.Quantity, unitPrice)
	}

	return sale, nil
}

// --- Response DTOs ---

// SaleLineResponse is one line of a sale.
type SaleLineResponse struct {
	ID        string  `json:"id"`
	ProductID *string `json:"productId,omitempty"`
	ServiceID *string `json:"serviceId,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice string  `json:"unitPrice"`
	Subtotal  string  `json:"subtotal"`
}

// SaleResponse is the response body for a sale.
type SaleResponse struct {
	DocumentResponse
	ClientID      *string             `json:"clientId,omitempty"`
	BarberID      *string             `json:"barberId,omitempty"`
	Total         string              `json:"total"`
	PaymentMethod string              `json:"paymentMethod"`
	SoldAt        time.Time           `json:"soldAt"`
	Lines         []*SaleLineResponse `json:"lines"`
}

// FromSale creates response DTO from domain entity.
func FromSale(s *sales.Sale) *SaleResponse {
	lines := make([]*SaleLineResponse, 0, len(s.Lines))
	for _, line := range s.Lines {
		lr := &SaleLineResponse{
			ID:        line.ID.String(),
			Quantity:  line.Quantity,
			UnitPrice: types.FormatMoney(line.UnitPrice),
			Subtotal:  types.FormatMoney(line.Subtotal),
		}
		if line.ProductID != nil {
			v := line.ProductID.String()
			lr.ProductID = &v
		}
		if line.OfferingID != nil {
			v := line.OfferingID.String()
			lr.ServiceID = &v
		}
		lines = append(lines, lr)
	}

	resp := &SaleResponse{
		DocumentResponse: FromDocument(s.BaseDocument),
		Total:            types.FormatMoney(s.Total),
		PaymentMethod:    string(s.PaymentMethod),
		SoldAt:           s.SoldAt,
		Lines:            lines,
	}
	if s.ClientID != nil {
		v := s.ClientID.String()
		resp.ClientID = &v
	}
	if s.BarberID != nil {
		v := s.BarberID.String()
		resp.BarberID = &v
	}
	return resp
}

// FromSales maps a slice of sales.
func FromSales(items []*sales.Sale) []*SaleResponse {
	out := make([]*SaleResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSale(s))
	}
	return out
}

// PeriodTotalsResponse summarizes sales over a period.
type PeriodTotalsResponse struct {
	SaleCount int    `json:"saleCount"`
	Total     string `json:"total"`
}

// FromPeriodTotals creates response DTO from the totals.
func FromPeriodTotals(t sales.PeriodTotals) PeriodTotalsResponse {
	return PeriodTotalsResponse{
		SaleCount: t.SaleCount,
		Total:     types.FormatMoney(t.Total),
	}
}
