package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the uniform failure type every backend operation surfaces.
// StatusCode 0 means the request never reached the server, 408 means
// the request was aborted locally after the configured deadline, and
// anything >= 400 is an HTTP error carrying the server's payload when
// it was parseable.
type Error struct {
	Message    string
	StatusCode int
	Payload    map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// NewError builds an HTTP-classified Error from a status and an
// optional server payload. The payload's "message" field wins over
// the generic "HTTP <status>" text when present.
func NewError(statusCode int, payload map[string]any) *Error {
	message := fmt.Sprintf("HTTP %d", statusCode)
	if m, ok := payload["message"].(string); ok && m != "" {
		message = m
	}
	return &Error{Message: message, StatusCode: statusCode, Payload: payload}
}

func newNetworkError() *Error {
	return &Error{Message: "Network error", StatusCode: 0}
}

func newTimeoutError() *Error {
	return &Error{Message: "Request timeout", StatusCode: http.StatusRequestTimeout}
}

// IsTimeout reports whether err is a locally aborted request.
func IsTimeout(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusRequestTimeout
}

// IsNetwork reports whether err is a connectivity failure that never
// produced a response.
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == 0
}

// StatusCode extracts the classified status from err. The second
// return is false when err is not an apiclient Error.
func StatusCode(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}
