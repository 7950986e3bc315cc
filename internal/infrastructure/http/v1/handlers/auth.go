package handlers

import (
	"github.com/gin-gonic/gin"

	"barberdesk/internal/domain/auth"
	"barberdesk/internal/infrastructure/http/v1/dto"
)

// AuthHandler provides sign-in and identity endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromLoginResult(result))
}

// Me handles GET /auth/me - the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.service.CurrentUser(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUser(user))
}
