package scheduling

import (
	"context"

	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// ListFilter narrows appointment listings.
type ListFilter struct {
	Date     *types.Date
	BarberID *id.ID
	Status   *Status
}

// Repository defines the interface for Appointment persistence.
type Repository interface {
	Create(ctx context.Context, appt *Appointment) error

	GetByID(ctx context.Context, apptID id.ID) (*Appointment, error)

	// Update persists status/notes changes with optimistic locking.
	Update(ctx context.Context, appt *Appointment) error

	Delete(ctx context.Context, apptID id.ID) error

	// List returns appointments matching the filter, ordered by date
	// and start time.
	List(ctx context.Context, filter ListFilter) ([]*Appointment, error)

	// SlotTaken reports whether the barber already has a non-cancelled
	// appointment at the exact date and start time.
	SlotTaken(ctx context.Context, barberID id.ID, date types.Date, startTime string) (bool, error)
}
