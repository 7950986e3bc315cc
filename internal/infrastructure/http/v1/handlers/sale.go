package handlers

import (
	"github.com/gin-gonic/gin"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/sales"
	"barberdesk/internal/infrastructure/http/v1/dto"
)

// SaleHandler provides point-of-sale endpoints.
type SaleHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, service *sales.Service) *SaleHandler {
	return &SaleHandler{BaseHandler: base, service: service}
}

// Create handles POST /sales - record a sale and decrement stock.
func (h *SaleHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sale, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, sale); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromSale(sale))
}

// Get handles GET /sales/:id.
func (h *SaleHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	saleID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	sale, err := h.service.GetByID(ctx, saleID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSale(sale))
}

// List handles GET /sales?periodStart=&periodEnd=.
func (h *SaleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	period, err := periodFromQuery(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	items, err := h.service.ListForPeriod(ctx, period)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSales(items))
}

// CurrentMonth handles GET /sales/current-month - this month's totals.
func (h *SaleHandler) CurrentMonth(c *gin.Context) {
	ctx := c.Request.Context()

	totals, err := h.service.CurrentMonthTotals(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPeriodTotals(totals))
}

// periodFromQuery reads the periodStart/periodEnd pair.
func periodFromQuery(c *gin.Context) (types.Period, error) {
	start, err := types.ParseDate(c.Query("periodStart"))
	if err != nil {
		return types.Period{}, apperror.NewValidation("invalid period start").
			WithDetail("field", "periodStart")
	}
	end, err := types.ParseDate(c.Query("periodEnd"))
	if err != nil {
		return types.Period{}, apperror.NewValidation("invalid period end").
			WithDetail("field", "periodEnd")
	}
	period, err := types.NewPeriod(start, end)
	if err != nil {
		return types.Period{}, apperror.NewValidation(err.Error())
	}
	return period, nil
}
