// Package scheduling provides appointment booking with per-slot
// conflict checking and a small status state machine.
package scheduling

import (
	"context"
	"regexp"
	"time"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
)

// Status is the appointment lifecycle state.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is a known status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// allowedTransitions encodes the status state machine. Completed and
// cancelled are terminal.
var allowedTransitions = map[Status][]Status{
	StatusScheduled:  {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether from → to is a legal move.
func CanTransition(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Appointment books one barber for one client at a date and time slot.
type Appointment struct {
	entity.BaseDocument

	ClientID   id.ID `db:"client_id" json:"clientId"`
	BarberID   id.ID `db:"barber_id" json:"barberId"`
	OfferingID id.ID `db:"service_id" json:"serviceId"`

	Date types.Date `db:"date" json:"date"`

	// StartTime is the slot start as "HH:MM".
	StartTime string `db:"start_time" json:"startTime"`

	Status Status  `db:"status" json:"status"`
	Notes  *string `db:"notes" json:"notes,omitempty"`
}

// NewAppointment creates a scheduled appointment.
func NewAppointment(clientID, barberID, offeringID id.ID, date types.Date, startTime string) *Appointment {
	return &Appointment{
		BaseDocument: entity.NewBaseDocument(),
		ClientID:     clientID,
		BarberID:     barberID,
		OfferingID:   offeringID,
		Date:         date,
		StartTime:    startTime,
		Status:       StatusScheduled,
	}
}

// Validate implements entity.Validatable.
func (a *Appointment) Validate(ctx context.Context) error {
	if id.IsNil(a.ClientID) {
		return apperror.NewValidation("client is required").WithDetail("field", "clientId")
	}
	if id.IsNil(a.BarberID) {
		return apperror.NewValidation("barber is required").WithDetail("field", "barberId")
	}
	if id.IsNil(a.OfferingID) {
		return apperror.NewValidation("service is required").WithDetail("field", "serviceId")
	}
	if a.Date.IsZero() {
		return apperror.NewValidation("date is required").WithDetail("field", "date")
	}
	if !timeOfDayRe.MatchString(a.StartTime) {
		return apperror.NewValidation("start time must be HH:MM").
			WithDetail("field", "startTime").
			WithDetail("value", a.StartTime)
	}
	if !ValidStatus(a.Status) {
		return apperror.NewValidation("unknown status").WithDetail("status", string(a.Status))
	}
	return nil
}

// Transition moves the appointment to a new status or conflicts.
func (a *Appointment) Transition(to Status) error {
	if !ValidStatus(to) {
		return apperror.NewValidation("unknown status").WithDetail("status", string(to))
	}
	if !CanTransition(a.Status, to) {
		return apperror.NewConflict("illegal status transition").
			WithDetail("from", string(a.Status)).
			WithDetail("to", string(to))
	}
	a.Status = to
	a.SetUpdatedAt(time.Now().UTC())
	return nil
}
