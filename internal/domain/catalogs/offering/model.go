// Package offering provides the Service catalog: the haircuts and
// treatments the shop sells. Named "offering" to keep the word
// "service" for the application layer.
package offering

import (
	"context"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/types"
)

// Offering represents one sellable service.
type Offering struct {
	entity.Catalog

	// DurationMinutes is the slot length booked for an appointment.
	DurationMinutes int `db:"duration_minutes" json:"durationMinutes"`

	Price types.Money `db:"price" json:"price"`

	Description *string `db:"description" json:"description,omitempty"`
}

// NewOffering creates a new Offering with required fields.
func NewOffering(code, name string, durationMinutes int, price types.Money) *Offering {
	return &Offering{
		Catalog:         entity.NewCatalog(code, name),
		DurationMinutes: durationMinutes,
		Price:           price,
	}
}

// Validate implements entity.Validatable interface.
func (o *Offering) Validate(ctx context.Context) error {
	if err := o.Catalog.Validate(ctx); err != nil {
		return err
	}

	if o.DurationMinutes <= 0 {
		return apperror.NewValidation("duration must be positive").
			WithDetail("field", "durationMinutes")
	}
	if o.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}

	return nil
}
