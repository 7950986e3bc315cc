package handlers

import (
	"github.com/gin-gonic/gin"

	"barberdesk/internal/domain/reports"
	"barberdesk/internal/infrastructure/http/v1/dto"
)

// ReportsHandler exposes read-only aggregation endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// PayrollSummary handles GET /reports/payroll-summary.
func (h *ReportsHandler) PayrollSummary(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.PayrollSummaryQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	summary, err := h.service.PayrollSummary(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPayrollSummary(summary))
}

// Dashboard handles GET /reports/dashboard.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	dashboard, err := h.service.Dashboard(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDashboard(dashboard))
}
