package handlers

import (
	"github.com/gin-gonic/gin"

	"barberdesk/internal/domain/scheduling"
	"barberdesk/internal/infrastructure/http/v1/dto"
)

// AppointmentHandler provides booking endpoints.
type AppointmentHandler struct {
	*BaseHandler
	service *scheduling.Service
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(base *BaseHandler, service *scheduling.Service) *AppointmentHandler {
	return &AppointmentHandler{BaseHandler: base, service: service}
}

// Create handles POST /appointments - book an appointment.
func (h *AppointmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAppointmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	appt, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, appt); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromAppointment(appt))
}

// Get handles GET /appointments/:id.
func (h *AppointmentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	apptID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	appt, err := h.service.GetByID(ctx, apptID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromAppointment(appt))
}

// List handles GET /appointments with optional date/barber/status filters.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.AppointmentListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	appts, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromAppointments(appts))
}

// Today handles GET /appointments/today.
func (h *AppointmentHandler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	appts, err := h.service.Today(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromAppointments(appts))
}

// ChangeStatus handles PATCH /appointments/:id/status.
func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	ctx := c.Request.Context()

	apptID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeAppointmentStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	status, err := req.ToStatus()
	if err != nil {
		h.Error(c, err)
		return
	}

	appt, err := h.service.ChangeStatus(ctx, apptID, status)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromAppointment(appt))
}

// Delete handles DELETE /appointments/:id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	apptID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, apptID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
