// Package failure maps service errors onto HTTP status codes. Services
// return a *Failure and the transport layer reads the code back with
// GetCode, so handlers never inspect error strings.
package failure

import (
	"errors"
	"net/http"
)

// Details carries structured context alongside the message, such as the
// conflict list on a rejected booking.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

var (
	InvalidPageParam        = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam       = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400, keeping its message. Returns nil for a nil err.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError wraps err as a 500. Returns nil for a nil err.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound takes the entity name as the message, e.g. NotFound("booking").
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict signals that the request is valid but collides with current
// state, such as an overlapping booking or a cancelled chalan.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// ConflictWithDetails is Conflict plus the colliding entities, so the
// response can name every conflict instead of just reporting that one exists.
func ConflictWithDetails(message string, details any) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Details: details,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode extracts the HTTP status from err, defaulting to 500 for errors
// that are not a *Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
