package odoo

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the client. Callers classify with errors.Is /
// errors.As; error text is never inspected.
var (
	// ErrUnreachable indicates a network-level failure talking to the ERP.
	ErrUnreachable = errors.New("odoo: upstream unreachable")
	// ErrAuthenticationFailed indicates the ERP rejected the credentials.
	ErrAuthenticationFailed = errors.New("odoo: authentication failed")
	// ErrInvalidResponse indicates the ERP answered with an unparseable body.
	ErrInvalidResponse = errors.New("odoo: invalid response")
	// ErrNoSession indicates an operation that needs a session before login.
	ErrNoSession = errors.New("odoo: no active session")
)

// UpstreamError is an application-level error payload from the ERP,
// carrying the upstream code and message verbatim.
type UpstreamError struct {
	Code    int64
	Message string
	Data    string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("odoo: upstream error %d: %s", e.Code, e.Message)
}
