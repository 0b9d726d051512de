package client

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates nothing is listening at the address
	ErrTypeConnectionRefused
	// ErrTypeHTTP indicates a non-200 status code
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ServerError is an error talking to a tipsplit server
type ServerError struct {
	Type       ErrorType
	Message    string
	StatusCode int   // HTTP status code (if applicable)
	Err        error // Underlying error (if any)
	Retryable  bool
}

// Error implements the error interface
func (e *ServerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ServerError) Unwrap() error {
	return e.Err
}

// classifyNetworkError maps a transport error to a ServerError
func classifyNetworkError(message string, err error) *ServerError {
	if os.IsTimeout(err) || errors.Is(err, os.ErrDeadlineExceeded) {
		return &ServerError{Type: ErrTypeTimeout, Message: message, Err: err, Retryable: true}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		// Retrying will not start the server
		return &ServerError{Type: ErrTypeConnectionRefused, Message: message, Err: err}
	}

	return &ServerError{Type: ErrTypeNetwork, Message: message, Err: err, Retryable: true}
}

func newHTTPError(statusCode int) *ServerError {
	return &ServerError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Retryable:  statusCode >= 500,
	}
}

func newParseError(message string, err error) *ServerError {
	return &ServerError{Type: ErrTypeParse, Message: message, Err: err}
}

// IsRetryable reports whether err is worth retrying
func IsRetryable(err error) bool {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Retryable
	}
	return false
}

// ShortMessage returns a one-word status for listings
func ShortMessage(err error) string {
	if err == nil {
		return "online"
	}
	var se *ServerError
	if !errors.As(err, &se) {
		return "error"
	}
	switch se.Type {
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeConnectionRefused:
		return "refused"
	case ErrTypeHTTP:
		return fmt.Sprintf("http %d", se.StatusCode)
	case ErrTypeParse:
		return "bad response"
	default:
		return "unreachable"
	}
}
