package dto

import (
	"time"

	"github.com/erp/odoo-dashboard/internal/domain/reporting"
)

// Response is the standard API envelope
type Response struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message,omitempty"`
	Data       interface{}           `json:"data,omitempty"`
	Pagination *reporting.Pagination `json:"pagination,omitempty"`
	Degraded   bool                  `json:"degraded,omitempty"`
	Error      *ErrorInfo            `json:"error,omitempty"`
	RequestID  string                `json:"request_id,omitempty"`
	Timestamp  string                `json:"timestamp"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes a single failed field validation
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	}
}

// NewSuccessResponseWithMessage creates a success response with a message
func NewSuccessResponseWithMessage(message string, data interface{}) Response {
	return Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	}
}

// NewPageResponse creates a success response carrying one page of records.
// degraded marks pages served from the demo fallback instead of the ERP.
func NewPageResponse(message string, data interface{}, pagination reporting.Pagination, degraded bool) Response {
	return Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
		Degraded:   degraded,
		Timestamp:  now(),
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success:   false,
		Error:     &ErrorInfo{Code: code, Message: message},
		Timestamp: now(),
	}
}

// NewErrorResponseWithRequestID creates an error response tagged with the request ID
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success:   false,
		Error:     &ErrorInfo{Code: code, Message: message},
		RequestID: requestID,
		Timestamp: now(),
	}
}

// NewValidationErrorResponse creates a validation error response with
// per-field details
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	return Response{
		Success:   false,
		Error:     &ErrorInfo{Code: ErrCodeValidation, Message: message, Details: details},
		RequestID: requestID,
		Timestamp: now(),
	}
}
