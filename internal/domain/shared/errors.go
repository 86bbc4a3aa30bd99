package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrValidation     = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrAuthentication = NewDomainError("AUTHENTICATION_FAILED", "Upstream rejected the credentials")
	ErrUpstream       = NewDomainError("UPSTREAM_ERROR", "Upstream ERP returned an error")
	ErrTransport      = NewDomainError("TRANSPORT_ERROR", "Upstream ERP is unreachable")
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
)
