// Package barber provides the Barber catalog: the staff who perform
// services and earn commission. Deactivating a barber never deletes
// their financial history.
package barber

import (
	"context"

	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/types"
)

// Barber represents a staff member.
type Barber struct {
	entity.Catalog

	Phone *string `db:"phone" json:"phone,omitempty"`
	Email *string `db:"email" json:"email,omitempty"`

	// Specialties is a free-form description of what the barber does
	// (cuts, beard work, coloring).
	Specialties *string `db:"specialties" json:"specialties,omitempty"`

	// WorkingHours describes the weekly schedule as display text.
	WorkingHours *string `db:"working_hours" json:"workingHours,omitempty"`

	HireDate *types.Date `db:"hire_date" json:"hireDate,omitempty"`
}

// NewBarber creates a new Barber with required fields.
func NewBarber(code, name string) *Barber {
	return &Barber{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (b *Barber) Validate(ctx context.Context) error {
	return b.Catalog.Validate(ctx)
}
