package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/odoo-dashboard/internal/interfaces/http/dto"
)

type rangeBody struct {
	DateFrom string `json:"dateFrom" binding:"required,datetime=2006-01-02"`
	DateTo   string `json:"dateTo" binding:"required,datetime=2006-01-02"`
	State    string `json:"state" binding:"omitempty,oneof=draft posted"`
}

func validationEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetupValidator()

	engine := gin.New()
	engine.Use(RequestID())
	engine.POST("/probe", func(c *gin.Context) {
		var body rangeBody
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(body))
	})
	return engine
}

func TestHandleValidationError(t *testing.T) {
	engine := validationEngine()

	t.Run("missing fields report json names", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/probe",
			strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

		fields := make([]string, 0, len(resp.Error.Details))
		for _, d := range resp.Error.Details {
			fields = append(fields, d.Field)
		}
		assert.Contains(t, fields, "dateFrom")
		assert.Contains(t, fields, "dateTo")
	})

	t.Run("malformed date names the format", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/probe",
			strings.NewReader(`{"dateFrom":"2025-13-40","dateTo":"2025-01-31"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "dateFrom", resp.Error.Details[0].Field)
		assert.Equal(t, "Must be a date formatted as YYYY-MM-DD", resp.Error.Details[0].Message)
	})

	t.Run("oneof violation lists the choices", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/probe",
			strings.NewReader(`{"dateFrom":"2025-01-01","dateTo":"2025-01-31","state":"void"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "state", resp.Error.Details[0].Field)
		assert.Equal(t, "Must be one of: draft posted", resp.Error.Details[0].Message)
	})

	t.Run("valid body passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/probe",
			strings.NewReader(`{"dateFrom":"2025-01-01","dateTo":"2025-01-31","state":"posted"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
