package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so callers can render distinct messages without parsing text.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
	KindPersistence  Kind = "persistence"
	KindInternal     Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	cause   error
}

const persistenceMessage = "the booking store is unavailable, please try again later"

var ErrInvalidDates = &Failure{Code: http.StatusBadRequest, Kind: KindInvalidInput, Message: "dates are not valid"}
var ErrInvalidRoomNumber = &Failure{Code: http.StatusNotFound, Kind: KindNotFound, Message: "invalid room number for room type"}
var ErrRoomNotAvailable = &Failure{Code: http.StatusConflict, Kind: KindUnavailable, Message: "room specified isn't available within dates"}
var ErrNoRoomAvailable = &Failure{Code: http.StatusConflict, Kind: KindUnavailable, Message: "there is no room available within dates"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// InvalidInput returns a new Failure for malformed or missing input.
func InvalidInput(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: msg,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindInvalidInput,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: msg,
	}
}

// Unavailable returns a new Failure for a request that conflicts with existing bookings.
func Unavailable(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindUnavailable,
		Message: msg,
	}
}

// Persistence wraps a storage error. The message shown to callers is generic, the cause stays reachable
// through errors.Unwrap for logging.
func Persistence(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindPersistence,
			Message: persistenceMessage,
			cause:   err,
		}
	}

	return nil
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface, KindInternal for foreign errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}
