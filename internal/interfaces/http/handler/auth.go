package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/erp/odoo-dashboard/internal/infrastructure/logger"
	"github.com/erp/odoo-dashboard/internal/infrastructure/odoo"
	"github.com/erp/odoo-dashboard/internal/interfaces/http/dto"
	"github.com/erp/odoo-dashboard/internal/interfaces/http/middleware"
)

// AuthHandler handles ERP session endpoints
type AuthHandler struct {
	BaseHandler
	sessions *odoo.SessionManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions *odoo.SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// RegisterRoutes registers the session endpoints
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
}

func authResponse(auth *odoo.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		UID:                auth.UIDValue(),
		Name:               auth.Name,
		Username:           auth.Username,
		PartnerDisplayName: auth.PartnerDisplayName,
		CompanyID:          auth.CompanyIDValue(),
		PartnerID:          auth.PartnerIDValue(),
		ServerVersion:      auth.ServerVersion,
		DB:                 auth.DB,
		IsAdmin:            auth.IsAdmin,
		IsSystem:           auth.IsSystem,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	log := logger.FromGin(c)
	log.Info("authentication attempt", zap.String("login", req.Login))

	auth, err := h.sessions.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Authentication successful", authResponse(auth))
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		// Local state is already cleared; an upstream destroy failure is
		// not worth failing the logout over.
		logger.FromGin(c).Warn("upstream session destroy failed", zap.Error(err))
	}
	h.SuccessWithMessage(c, "Session closed", nil)
}
