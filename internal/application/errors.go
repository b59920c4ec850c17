package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound          = errors.New("not found")
	ErrTwoFactorRequired = errors.New("two-factor authentication required")
	ErrAuthExpired       = errors.New("session expired")
	ErrNoCredentials     = errors.New("no credentials configured")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AuthenticationFailedError means the sign-on itself was rejected. It carries
// the vendor error code and message for operator diagnosis; retrying without
// correcting credentials will not help.
type AuthenticationFailedError struct {
	Code    string
	Message string
}

func (e *AuthenticationFailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("authentication failed (%s)", e.Code)
	}
	return fmt.Sprintf("authentication failed (%s): %s", e.Code, e.Message)
}

// AuthExpiredError means a previously valid session was rejected. The session
// has already been evicted; the operation is safe to retry.
type AuthExpiredError struct {
	Principal string
	Status    int
}

func (e *AuthExpiredError) Error() string {
	return fmt.Sprintf("session for %s rejected with HTTP %d", e.Principal, e.Status)
}

func (e *AuthExpiredError) Is(target error) bool {
	return target == ErrAuthExpired
}

// IncompatibleProtocolError means a session-only endpoint was requested on the
// token surface. That surface answers such paths with a misleading 404, so
// the router refuses before any network I/O.
type IncompatibleProtocolError struct {
	Endpoint string
	Auth     AuthMethod
}

func (e *IncompatibleProtocolError) Error() string {
	return fmt.Sprintf("endpoint %s requires session authentication, got %s", e.Endpoint, e.Auth)
}

// ProtocolError means the remote service deviated from its expected wire
// contract (for example a sign-on response with no token anywhere).
type ProtocolError struct {
	Endpoint string
	Reason   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected response from %s: %s", e.Endpoint, e.Reason)
}

// APIError represents a non-2xx response that is not an auth failure. It
// keeps the original status and body for diagnostics.
type APIError struct {
	Status   int
	Endpoint string
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.Status, e.Body)
}
