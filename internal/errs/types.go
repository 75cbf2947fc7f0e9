package errs

import (
	"net/http"
)

// newHTTPError fills Code from status unless the caller passes one.
func newHTTPError(status int, message string, override bool, code *string) *HTTPError {
	e := &HTTPError{
		Code:     StatusCode(status),
		Message:  message,
		Status:   status,
		Override: override,
	}
	if code != nil {
		e.Code = *code
	}
	return e
}

// NewBadRequestError is a 400 for payloads that fail binding or
// validation; errors carries the per-field details.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, message, override, code)
	e.Errors = errors
	return e
}

// NewNotFoundError is a 404 for an id that names no product or employee.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, override, code)
}

// NewConflictError is a 409 for writes that break a uniqueness rule, such as
// a second product with the same name in one category or a reused email.
func NewConflictError(message string, override bool, code *string) *HTTPError {
	return newHTTPError(http.StatusConflict, message, override, code)
}

// NewTooManyRequestsError is a 429 for clients over the rate limit.
func NewTooManyRequestsError() *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, "too many requests, slow down", true, nil)
}

// NewInternalServerError is a 500 carrying only the status text. Driver
// messages never reach clients.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false, nil)
}
