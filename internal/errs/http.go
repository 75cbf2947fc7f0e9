package errs

import (
	"net/http"
	"strings"
)

// FieldError is one rejected request field, e.g.
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the only error body the API writes.
//
// Code is machine readable (PRODUCT_ALREADY_EXISTS), Message is for people.
// Override marks a Message written for end users, so the dashboard can show
// it verbatim instead of a generic text. Errors lists field-level problems
// of a rejected payload.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError; compare Status or Code after errors.As when
// the kind matters.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// StatusCode derives the default code for status, e.g. 409 -> "CONFLICT".
func StatusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
