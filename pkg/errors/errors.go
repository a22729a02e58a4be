package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
)

// ErrorType classifies the failures that can cross the repository boundary
type ErrorType string

const (
	// ErrorTypeNoConnection indicates the host could not be reached at all
	ErrorTypeNoConnection ErrorType = "NO_CONNECTION"

	// ErrorTypeTimeout indicates the request ran out of time
	ErrorTypeTimeout ErrorType = "TIMEOUT"

	// ErrorTypeUnauthorized indicates a 401 response
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"

	// ErrorTypeForbidden indicates a 403 response
	ErrorTypeForbidden ErrorType = "FORBIDDEN"

	// ErrorTypeNotFound indicates a 404 response or a missing resource
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeServer indicates a 500 response
	ErrorTypeServer ErrorType = "SERVER"

	// ErrorTypeHTTP indicates any other non-2xx response
	ErrorTypeHTTP ErrorType = "HTTP"

	// ErrorTypeValidation indicates input rejected before any network call
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeUnknown indicates an unclassified failure
	ErrorTypeUnknown ErrorType = "UNKNOWN"
)

// Fixed user-facing messages surfaced by the view-model Error state.
const (
	MsgNoConnection       = "No hay conexión a internet"
	MsgTimeout            = "Tiempo de espera agotado"
	MsgUnauthorized       = "No autorizado"
	MsgForbidden          = "Acceso denegado"
	MsgNotFound           = "Recurso no encontrado"
	MsgServer             = "Error del servidor"
	MsgUnknown            = "Error desconocido"
	MsgInvalidCredentials = "Credenciales inválidas"
)

// AppError is the single error type returned by repositories and services.
// Message is the fixed user-facing string; Err keeps the underlying cause
// for logs.
type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// UserMessage returns the message shown to the user
func (e *AppError) UserMessage() string {
	return e.Message
}

// New creates an error with an explicit type and message
func New(errType ErrorType, message string) *AppError {
	return &AppError{Type: errType, Message: message}
}

// NewValidationError creates a pre-network validation error
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message, StatusCode: http.StatusUnauthorized}
}

// NewUnknownError wraps an unclassified failure
func NewUnknownError(err error) *AppError {
	return &AppError{Type: ErrorTypeUnknown, Message: MsgUnknown, Err: err}
}

// FromStatusCode maps a non-2xx HTTP status to its fixed user message.
func FromStatusCode(code int) *AppError {
	switch code {
	case http.StatusUnauthorized:
		return &AppError{Type: ErrorTypeUnauthorized, Message: MsgUnauthorized, StatusCode: code}
	case http.StatusForbidden:
		return &AppError{Type: ErrorTypeForbidden, Message: MsgForbidden, StatusCode: code}
	case http.StatusNotFound:
		return &AppError{Type: ErrorTypeNotFound, Message: MsgNotFound, StatusCode: code}
	case http.StatusInternalServerError:
		return &AppError{Type: ErrorTypeServer, Message: MsgServer, StatusCode: code}
	default:
		return &AppError{
			Type:       ErrorTypeHTTP,
			Message:    fmt.Sprintf("Error de red (%d)", code),
			StatusCode: code,
		}
	}
}

// FromTransport maps a transport-level failure (DNS, refused connection,
// timeout) to its fixed user message.
func FromTransport(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return &AppError{Type: ErrorTypeTimeout, Message: MsgTimeout, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &AppError{Type: ErrorTypeTimeout, Message: MsgTimeout, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &AppError{Type: ErrorTypeNoConnection, Message: MsgNoConnection, Err: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &AppError{Type: ErrorTypeNoConnection, Message: MsgNoConnection, Err: err}
	}

	return NewUnknownError(err)
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// UserMessage extracts the user-facing message from any error. Non-AppError
// values fall back to the unknown message.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return MsgUnknown
}
