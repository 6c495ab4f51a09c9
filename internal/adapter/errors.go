package adapter

import (
	"errors"
	"fmt"
)

// DefaultErrorMessage is the user-facing message used when a failed response
// does not carry an "error" field.
const DefaultErrorMessage = "An error occurred while communicating with the API"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport marks failures where no HTTP response was received.
	ErrTransport = errors.New("transport error")
	// ErrDecodeResponse marks 2xx responses whose body could not be decoded.
	ErrDecodeResponse = errors.New("decode response")
)

// ResponseError describes a failed API call. All failures are reported with
// this single type; StatusCode is 0 when no response was received.
type ResponseError struct {
	StatusCode int
	Method     string
	URL        string
	// Body is the raw response body, if any.
	Body []byte
	// Message is the human-readable text to show to the user.
	Message string
	// Err is the underlying cause; it wraps one of the package sentinels.
	Err error
}

func (e *ResponseError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: http %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// AsResponseError returns err as a *ResponseError. Errors of any other type
// are wrapped with [DefaultErrorMessage] so that callers always get a message
// to display.
func AsResponseError(err error) *ResponseError {
	if err == nil {
		return nil
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr
	}

	return &ResponseError{Message: DefaultErrorMessage, Err: err}
}
