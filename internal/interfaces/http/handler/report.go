package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appreporting "github.com/erp/odoo-dashboard/internal/application/reporting"
	"github.com/erp/odoo-dashboard/internal/infrastructure/logger"
	"github.com/erp/odoo-dashboard/internal/interfaces/http/dto"
	"github.com/erp/odoo-dashboard/internal/interfaces/http/middleware"
)

// ReportHandler handles the dashboard report endpoints
type ReportHandler struct {
	BaseHandler
	service *appreporting.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *appreporting.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers the report endpoints
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.POST("/daily-payments", h.DailyPayments)
	reports.POST("/payment-table", h.PaymentTable)
	reports.POST("/invoices", h.Invoices)
}

// DailyPayments handles POST /api/reports/daily-payments
func (h *ReportHandler) DailyPayments(c *gin.Context) {
	var req dto.StatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	stats, err := h.service.DailyPayments(c.Request.Context(), req.Filter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	logger.FromGin(c).Info("daily payment statistics computed",
		zap.String("dateFrom", req.DateFrom),
		zap.String("dateTo", req.DateTo),
		zap.Int("days", len(stats.DailyData)))

	h.SuccessWithMessage(c, "Payment statistics ready", stats)
}

// PaymentTable handles POST /api/reports/payment-table
func (h *ReportHandler) PaymentTable(c *gin.Context) {
	var req dto.PaymentTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.service.PaymentTable(c.Request.Context(), req.PageRequest())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	message := fmt.Sprintf("%d payment records, page %d of %d",
		len(result.Records), result.Pagination.Page, result.Pagination.TotalPages)
	h.Page(c, message, result.Records, result.Pagination, false)
}

// Invoices handles POST /api/reports/invoices. When the ERP is down the
// page comes from the demo data set and is marked degraded.
func (h *ReportHandler) Invoices(c *gin.Context) {
	var req dto.InvoiceTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.service.InvoiceTable(c.Request.Context(), req.PageRequest())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	message := fmt.Sprintf("%d invoice records, page %d of %d",
		len(result.Records), result.Pagination.Page, result.Pagination.TotalPages)
	if result.Degraded {
		message = fmt.Sprintf("Demo data loaded (%d records)", len(result.Records))
	}
	h.Page(c, message, result.Records, result.Pagination, result.Degraded)
}
