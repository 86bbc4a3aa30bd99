package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erp/odoo-dashboard/internal/infrastructure/config"
	"github.com/erp/odoo-dashboard/internal/infrastructure/odoo"
)

func systemRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := odoo.NewClient(&odoo.Config{
		BaseURL:  cfg.Odoo.URL,
		Database: cfg.Odoo.Database,
	}, zap.NewNop())
	require.NoError(t, err)
	sessions := odoo.NewSessionManager(client, cfg.Odoo.Login, cfg.Odoo.Password, zap.NewNop())

	engine := gin.New()
	h := NewSystemHandler(cfg, sessions)
	api := engine.Group("/api")
	h.RegisterRoutes(api)
	engine.GET("/health", h.Health)
	return engine
}

func TestOdooConfigEndpoint(t *testing.T) {
	cfg := &config.Config{
		App:  config.AppConfig{Name: "odoo-dashboard", Env: "test"},
		Odoo: config.OdooConfig{URL: "https://erp.example.com", Database: "erp_prod", Login: "svc", Password: "pw"},
	}
	engine := systemRouter(t, cfg)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/odoo-config", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope["data"].(map[string]any)

	assert.Equal(t, "https://erp.example.com", data["odooUrl"])
	assert.Equal(t, "erp_prod", data["odooDb"])
	assert.Equal(t, true, data["hasCredentials"])
	// The password itself never appears anywhere in the payload
	assert.NotContains(t, w.Body.String(), "pw")
}

func TestConnectionTestEndpoint(t *testing.T) {
	erp := erpStub(t)
	cfg := &config.Config{
		App:  config.AppConfig{Name: "odoo-dashboard", Env: "test"},
		Odoo: config.OdooConfig{URL: erp.URL, Database: "erp_test", Login: "good", Password: "secret"},
	}
	engine := systemRouter(t, cfg)

	w, envelope := postJSON(t, engine, "/api/test-odoo", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]any)
	assert.Equal(t, erp.URL, data["odooUrl"])
	auth := data["authResult"].(map[string]any)
	assert.Equal(t, float64(9), auth["uid"])
	assert.Equal(t, "17.0", auth["server_version"])
}

func TestHealthEndpoint(t *testing.T) {
	cfg := &config.Config{
		App:  config.AppConfig{Name: "odoo-dashboard", Env: "test"},
		Odoo: config.OdooConfig{URL: "https://erp.example.com", Database: "erp_prod"},
	}
	engine := systemRouter(t, cfg)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, false, data["session"])
}
