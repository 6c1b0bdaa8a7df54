package failure

import (
	"errors"
	"net/http"
	"strings"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ErrNoSession = &Failure{Code: http.StatusUnauthorized, Message: "no active session, run login first"}
var ErrSessionCleared = &Failure{Code: http.StatusUnauthorized, Message: "session is no longer valid and has been cleared"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation carries field-level form errors. It is produced before any
// network call is made, so a Validation error guarantees the server was never
// contacted.
type Validation struct {
	Fields map[string]string `json:"fields"`
}

func (e *Validation) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}

	return strings.Join(parts, "; ")
}

// Field returns the message for a single field, or the empty string.
func (e *Validation) Field(name string) string {
	return e.Fields[name]
}

// NewValidation returns a Validation error, or nil when no fields are set.
func NewValidation(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	return &Validation{Fields: fields}
}

// IsValidation reports whether err is a field-level validation error.
func IsValidation(err error) bool {
	var v *Validation

	return errors.As(err, &v)
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// FromStatus builds a Failure from an HTTP response status and a
// server-provided message, falling back to the generic status text.
func FromStatus(code int, msg string) error {
	if msg == "" {
		msg = http.StatusText(code)
	}

	return &Failure{
		Code:    code,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	var v *Validation
	if errors.As(err, &v) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
