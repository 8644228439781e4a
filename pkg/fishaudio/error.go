package fishaudio

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrClosed is returned by requests made on a closed Client.
var ErrClosed = errors.New("fishaudio: client closed")

// Error represents a Fish Audio API error.
type Error struct {
	// Status is the status reported by the API body, or the HTTP status when
	// the body carries none.
	Status int `json:"status"`

	// Message is the error message.
	Message string `json:"message"`

	// HTTPStatus is the HTTP status code.
	HTTPStatus int `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("fishaudio: %s (status=%d)", e.Message, e.Status)
}

// IsUnauthorized returns true if the API key was rejected.
func (e *Error) IsUnauthorized() bool {
	return e.HTTPStatus == http.StatusUnauthorized || e.HTTPStatus == http.StatusForbidden
}

// IsPaymentRequired returns true if the account has no credit left.
func (e *Error) IsPaymentRequired() bool {
	return e.HTTPStatus == http.StatusPaymentRequired
}

// IsNotFound returns true if the referenced resource does not exist.
func (e *Error) IsNotFound() bool {
	return e.HTTPStatus == http.StatusNotFound
}

// IsInvalidRequest returns true if the request was rejected as malformed.
func (e *Error) IsInvalidRequest() bool {
	return e.HTTPStatus == http.StatusBadRequest || e.HTTPStatus == http.StatusUnprocessableEntity
}

// IsServerError returns true if this is a server-side error.
func (e *Error) IsServerError() bool {
	return e.HTTPStatus >= 500
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := fishaudio.AsError(err); ok && e.IsUnauthorized() {
//	    // ask for a new key
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
