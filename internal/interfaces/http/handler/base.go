package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp/odoo-dashboard/internal/domain/reporting"
	"github.com/erp/odoo-dashboard/internal/domain/shared"
	"github.com/erp/odoo-dashboard/internal/infrastructure/odoo"
	"github.com/erp/odoo-dashboard/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMessage sends a success response with a message
func (h *BaseHandler) SuccessWithMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMessage(message, data))
}

// Page sends one page of records with pagination metadata
func (h *BaseHandler) Page(c *gin.Context, message string, data any, pagination reporting.Pagination, degraded bool) {
	c.JSON(http.StatusOK, dto.NewPageResponse(message, data, pagination, degraded))
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// ValidationError sends a 400 validation error response
func (h *BaseHandler) ValidationError(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeAuth, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError classifies an error by type and sends the matching
// response. Classification never inspects error text.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	var upstreamErr *odoo.UpstreamError
	switch {
	case errors.Is(err, odoo.ErrAuthenticationFailed):
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeAuth,
			"Authentication with the ERP failed")
	case errors.As(err, &upstreamErr):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeUpstream), dto.ErrCodeUpstream, upstreamErr.Message)
	case errors.Is(err, odoo.ErrUnreachable):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeTransport), dto.ErrCodeTransport,
			"The ERP server could not be reached")
	case errors.Is(err, odoo.ErrInvalidResponse):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeUpstream), dto.ErrCodeUpstream,
			"The ERP server returned an unreadable response")
	default:
		h.InternalError(c, "An unexpected error occurred")
	}
}
