package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>

const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeValidation is used when request parameters fail validation
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed request bodies
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeAuth is used when the ERP rejects the credentials or session
	ErrCodeAuth = "ERR_AUTH"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeUpstream is used when the ERP answers with an application error
	ErrCodeUpstream = "ERR_UPSTREAM"
	// ErrCodeTransport is used when the ERP cannot be reached at all
	ErrCodeTransport = "ERR_TRANSPORT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeAuth:       http.StatusUnauthorized,
	ErrCodeNotFound:   http.StatusNotFound,
	ErrCodeUpstream:   http.StatusInternalServerError,
	ErrCodeTransport:  http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainCodeMap translates domain error codes into API error codes
var domainCodeMap = map[string]string{
	"VALIDATION_ERROR":      ErrCodeValidation,
	"AUTHENTICATION_FAILED": ErrCodeAuth,
	"UPSTREAM_ERROR":        ErrCodeUpstream,
	"TRANSPORT_ERROR":       ErrCodeTransport,
	"NOT_FOUND":             ErrCodeNotFound,
}

// NormalizeErrorCode maps a domain error code onto the API error code set
func NormalizeErrorCode(code string) string {
	if mapped, ok := domainCodeMap[code]; ok {
		return mapped
	}
	return ErrCodeInternal
}
