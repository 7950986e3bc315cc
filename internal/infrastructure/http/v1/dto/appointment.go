package dto

import (
	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/scheduling"
)

// --- Request DTOs ---

// CreateAppointmentRequest is the request body for booking an appointment.
type CreateAppointmentRequest struct {
	ClientID  string     `json:"clientId" binding:"required"`
	BarberID  string     `json:"barberId" binding:"required"`
	ServiceID string     `json:"serviceId" binding:"required"`
	Date      types.Date `json:"date" binding:"required"`
	StartTime string     `json:"startTime" binding:"required"`
	Notes     *string    `json:"notes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAppointmentRequest) ToEntity() (*scheduling.Appointment, error) {
	clientID, err := parseID("clientId", r.ClientID)
	if err != nil {
		return nil, err
	}
	barberID, err := parseID("barberId", r.BarberID)
	if err != nil {
		return nil, err
	}
	serviceID, err := parseID("serviceId", r.ServiceID)
	if err != nil {
		return nil, err
	}
	appt := scheduling.NewAppointment(clientID, barberID, serviceID, r.Date, r.StartTime)
	appt.Notes = r.Notes
	return appt, nil
}

// ChangeAppointmentStatusRequest is the request body for a status move.
type ChangeAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ToStatus validates and converts the wire status.
func (r *ChangeAppointmentStatusRequest) ToStatus() (scheduling.Status, error) {
	status := scheduling.Status(r.Status)
	if !scheduling.ValidStatus(status) {
		return "", apperror.NewValidation("unknown status").
			WithDetail("field", "status").
			WithDetail("value", r.Status)
	}
	return status, nil
}

// AppointmentListQuery filters the appointment listing.
type AppointmentListQuery struct {
	Date     *types.Date `form:"date"`
	BarberID *string     `form:"barberId"`
	Status   *string     `form:"status"`
}

// ToFilter converts query params to the repository filter.
func (q *AppointmentListQuery) ToFilter() (scheduling.ListFilter, error) {
	filter := scheduling.ListFilter{Date: q.Date}

	barberID, err := parseOptionalID("barberId", q.BarberID)
	if err != nil {
		return filter, err
	}
	filter.BarberID = barberID

	if q.Status != nil && *q.Status != "" {
		status := scheduling.Status(*q.Status)
		if !scheduling.ValidStatus(status) {
			return filter, apperror.NewValidation("unknown status").
				WithDetail("field", "status").
				WithDetail("value", *q.Status)
		}
		filter.Status = &status
	}
	return filter, nil
}

// --- Response DTOs ---

// AppointmentResponse is the response body for an appointment.
type AppointmentResponse struct {
	DocumentResponse
	ClientID  string     `json:"clientId"`
	BarberID  string     `json:"barberId"`
	ServiceID string     `json:"serviceId"`
	Date      types.Date `json:"date"`
	StartTime string     `json:"startTime"`
	Status    string     `json:"status"`
	Notes     *string    `json:"notes,omitempty"`
}

// FromAppointment creates response DTO from domain entity.
func FromAppointment(a *scheduling.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		DocumentResponse: FromDocument(a.BaseDocument),
		ClientID:         a.ClientID.String(),
		BarberID:         a.BarberID.String(),
		ServiceID:        a.OfferingID.String(),
		Date:             a.Date,
		StartTime:        a.StartTime,
		Status:           string(a.Status),
		Notes:            a.Notes,
	}
}

// FromAppointments maps a slice of appointments.
func FromAppointments(appts []*scheduling.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, FromAppointment(a))
	}
	return out
}
