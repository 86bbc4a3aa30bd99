package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/erp/odoo-dashboard/internal/infrastructure/config"
	"github.com/erp/odoo-dashboard/internal/infrastructure/logger"
	"github.com/erp/odoo-dashboard/internal/infrastructure/odoo"
	"github.com/erp/odoo-dashboard/internal/interfaces/http/dto"
)

// SystemHandler handles configuration and health endpoints
type SystemHandler struct {
	BaseHandler
	cfg      *config.Config
	sessions *odoo.SessionManager
	started  time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(cfg *config.Config, sessions *odoo.SessionManager) *SystemHandler {
	return &SystemHandler{cfg: cfg, sessions: sessions, started: time.Now()}
}

// RegisterRoutes registers the configuration endpoints
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/odoo-config", h.OdooConfig)
	rg.POST("/test-odoo", h.TestConnection)
}

// OdooConfig handles GET /api/odoo-config. Credentials never leave the
// server; the payload only says whether they are configured.
func (h *SystemHandler) OdooConfig(c *gin.Context) {
	h.Success(c, dto.ConnectionInfo{
		OdooURL:        h.cfg.Odoo.URL,
		OdooDB:         h.cfg.Odoo.Database,
		HasCredentials: h.cfg.Odoo.Login != "" && h.cfg.Odoo.Password != "",
	})
}

// TestConnection handles POST /api/test-odoo by authenticating with the
// configured service credentials.
func (h *SystemHandler) TestConnection(c *gin.Context) {
	log := logger.FromGin(c)
	log.Info("testing ERP connection", zap.String("url", h.cfg.Odoo.URL))

	auth, err := h.sessions.Login(c.Request.Context(), h.cfg.Odoo.Login, h.cfg.Odoo.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Connection to Odoo succeeded", dto.ConnectionTestResponse{
		OdooURL:    h.cfg.Odoo.URL,
		OdooDB:     h.cfg.Odoo.Database,
		AuthResult: authResponse(auth),
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"app":     h.cfg.App.Name,
		"env":     h.cfg.App.Env,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
		"session": h.sessions.Current() != nil,
	})
}
