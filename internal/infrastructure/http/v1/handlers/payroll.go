package handlers

import (
	"github.com/gin-gonic/gin"

	"barberdesk/internal/core/apperror"
	"barberdesk/internal/core/id"
	"barberdesk/internal/core/types"
	"barberdesk/internal/domain/payroll"
	"barberdesk/internal/infrastructure/http/v1/dto"
)

// PayrollHandler exposes the commission engine: policies, settlement
// runs and the adjustment ledger.
type PayrollHandler struct {
	*BaseHandler
	policies    *payroll.PolicyService
	settlements *payroll.SettlementService
	adjustments *payroll.AdjustmentService
}

// NewPayrollHandler creates a new payroll handler.
func NewPayrollHandler(
	base *BaseHandler,
	policies *payroll.PolicyService,
	settlements *payroll.SettlementService,
	adjustments *payroll.AdjustmentService,
) *PayrollHandler {
	return &PayrollHandler{
		BaseHandler: base,
		policies:    policies,
		settlements: settlements,
		adjustments: adjustments,
	}
}

// requiredIDQuery reads a mandatory UUID query parameter.
func requiredIDQuery(c *gin.Context, key string) (id.ID, error) {
	value := c.Query(key)
	if value == "" {
		return id.Nil(), apperror.NewValidation("missing query parameter").WithDetail("param", key)
	}
	parsed, err := id.Parse(value)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid id format").WithDetail("param", key)
	}
	return parsed, nil
}

// parseBarberID parses a barber id arriving in a body or query string.
func parseBarberID(value string) (id.ID, error) {
	parsed, err := id.Parse(value)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid barber id").WithDetail("value", value)
	}
	return parsed, nil
}

// --- Policies ---

// ListPolicies handles GET /payroll/policies?barberId= - policy history.
func (h *PayrollHandler) ListPolicies(c *gin.Context) {
	ctx := c.Request.Context()

	barberID, err := requiredIDQuery(c, "barberId")
	if err != nil {
		h.Error(c, err)
		return
	}

	policies, err := h.policies.ListPolicies(ctx, barberID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPolicies(policies))
}

// ActivatePolicy handles POST /payroll/policies - supersede and activate.
func (h *PayrollHandler) ActivatePolicy(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ActivatePolicyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	policy, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	activated, err := h.policies.ActivatePolicy(ctx, policy)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromPolicy(activated))
}

// GetActivePolicy handles GET /payroll/policies/active/:barberId.
func (h *PayrollHandler) GetActivePolicy(c *gin.Context) {
	ctx := c.Request.Context()

	barberID, ok := h.ParamID(c, "barberId")
	if !ok {
		return
	}

	policy, err := h.policies.GetActivePolicy(ctx, barberID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPolicy(policy))
}

// --- Settlement ---

// Recalculate handles POST /payroll/recalculate. With barberId set one
// barber is recalculated; without it, every barber with an active policy.
func (h *PayrollHandler) Recalculate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RecalculateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	period, err := req.Period()
	if err != nil {
		h.Error(c, err)
		return
	}

	if req.BarberID != nil && *req.BarberID != "" {
		barberID, perr := parseBarberID(*req.BarberID)
		if perr != nil {
			h.Error(c, perr)
			return
		}
		calc, rerr := h.settlements.Recalculate(ctx, barberID, period)
		if rerr != nil {
			h.Error(c, rerr)
			return
		}
		h.OK(c, dto.FromCalculation(calc))
		return
	}

	results, err := h.settlements.RecalculateAll(ctx, period)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBarberResults(results))
}

// ListCalculations handles GET /payroll/calculations?barberId=.
func (h *PayrollHandler) ListCalculations(c *gin.Context) {
	ctx := c.Request.Context()

	barberID, err := requiredIDQuery(c, "barberId")
	if err != nil {
		h.Error(c, err)
		return
	}

	calcs, err := h.settlements.ListForBarber(ctx, barberID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCalculations(calcs))
}

// GetCalculation handles GET /payroll/calculations/:id.
func (h *PayrollHandler) GetCalculation(c *gin.Context) {
	ctx := c.Request.Context()

	calcID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	calc, err := h.settlements.GetByID(ctx, calcID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCalculation(calc))
}

// MarkPaid handles POST /payroll/calculations/:id/pay.
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	ctx := c.Request.Context()

	calcID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	var req dto.MarkPaidRequest
	if !h.BindJSON(c, &req) {
		return
	}

	calc, err := h.settlements.MarkPaid(ctx, calcID, req.PaymentDate, req.Notes)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCalculation(calc))
}

// --- Adjustments ---

// ListAdjustments handles GET /payroll/adjustments.
func (h *PayrollHandler) ListAdjustments(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.AdjustmentListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	barberID, err := parseBarberID(query.BarberID)
	if err != nil {
		h.Error(c, err)
		return
	}

	period, err := types.NewPeriod(query.PeriodStart, query.PeriodEnd)
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	adjs, err := h.adjustments.ListForBarber(ctx, barberID, period, query.IncludeApplied)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromAdjustments(adjs))
}

// CreateAdjustment handles POST /payroll/adjustments.
func (h *PayrollHandler) CreateAdjustment(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAdjustmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	adj, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.adjustments.Create(ctx, adj); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromAdjustment(adj))
}

// DeleteAdjustment handles DELETE /payroll/adjustments/:id.
// Applied adjustments are immutable and refuse deletion.
func (h *PayrollHandler) DeleteAdjustment(c *gin.Context) {
	ctx := c.Request.Context()

	adjID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.adjustments.Delete(ctx, adjID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
