package dto

import "github.com/erp/odoo-dashboard/internal/domain/reporting"

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StatisticsRequest is the body of POST /api/reports/daily-payments
type StatisticsRequest struct {
	DateFrom  string `json:"dateFrom" binding:"required,datetime=2006-01-02"`
	DateTo    string `json:"dateTo" binding:"required,datetime=2006-01-02"`
	EstadoRep string `json:"estadoRep" binding:"omitempty,oneof=pago_no_enviado pago_correcto"`
}

// Filter converts the request to a domain statistics filter
func (r StatisticsRequest) Filter() reporting.StatisticsFilter {
	return reporting.StatisticsFilter{
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
		RepStatus: r.EstadoRep,
	}
}

// PaymentTableRequest is the body of POST /api/reports/payment-table
type PaymentTableRequest struct {
	DateFrom   string `json:"dateFrom" binding:"required,datetime=2006-01-02"`
	DateTo     string `json:"dateTo" binding:"required,datetime=2006-01-02"`
	EstadoPago string `json:"estadoPago" binding:"omitempty,oneof=pago_no_enviado pago_correcto"`
	Page       int    `json:"page" binding:"omitempty,min=1"`
	PageSize   int    `json:"pageSize" binding:"omitempty,min=1,max=100"`
}

// PageRequest converts the request to a normalized domain page request
func (r PaymentTableRequest) PageRequest() reporting.PageRequest {
	req := reporting.PageRequest{
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
		RepStatus: r.EstadoPago,
		Page:      r.Page,
		PageSize:  r.PageSize,
	}
	req.Normalize()
	return req
}

// InvoiceTableRequest is the body of POST /api/reports/invoices
type InvoiceTableRequest struct {
	DateFrom string `json:"dateFrom" binding:"required,datetime=2006-01-02"`
	DateTo   string `json:"dateTo" binding:"required,datetime=2006-01-02"`
	State    string `json:"state" binding:"omitempty,oneof=draft posted cancel all"`
	Page     int    `json:"page" binding:"omitempty,min=1"`
	PageSize int    `json:"pageSize" binding:"omitempty,min=1,max=100"`
}

// PageRequest converts the request to a normalized domain page request.
// A state of "all" means no state filter upstream.
func (r InvoiceTableRequest) PageRequest() reporting.PageRequest {
	state := r.State
	if state == "all" {
		state = ""
	}
	req := reporting.PageRequest{
		DateFrom: r.DateFrom,
		DateTo:   r.DateTo,
		State:    state,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
	req.Normalize()
	return req
}
