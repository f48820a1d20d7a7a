package failure_test

import (
	"errors"
	"fmt"
	"hotel/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Kind:    failure.KindInvalidInput,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		kind    failure.Kind
	}{
		{
			name:    "ErrInvalidDates",
			failure: failure.ErrInvalidDates,
			code:    http.StatusBadRequest,
			kind:    failure.KindInvalidInput,
		},
		{
			name:    "ErrInvalidRoomNumber",
			failure: failure.ErrInvalidRoomNumber,
			code:    http.StatusNotFound,
			kind:    failure.KindNotFound,
		},
		{
			name:    "ErrRoomNotAvailable",
			failure: failure.ErrRoomNotAvailable,
			code:    http.StatusConflict,
			kind:    failure.KindUnavailable,
		},
		{
			name:    "ErrNoRoomAvailable",
			failure: failure.ErrNoRoomAvailable,
			code:    http.StatusConflict,
			kind:    failure.KindUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.Equal(t, tt.kind, tt.failure.Kind)
			assert.NotEmpty(t, tt.failure.Message)
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind failure.Kind
		msg  string
	}{
		{
			name: "invalid input",
			err:  failure.InvalidInput("name is required"),
			code: http.StatusBadRequest,
			kind: failure.KindInvalidInput,
			msg:  "name is required",
		},
		{
			name: "bad request from error",
			err:  failure.BadRequest(errors.New("validation failed")),
			code: http.StatusBadRequest,
			kind: failure.KindInvalidInput,
			msg:  "validation failed",
		},
		{
			name: "not found",
			err:  failure.NotFound("room type not found"),
			code: http.StatusNotFound,
			kind: failure.KindNotFound,
			msg:  "room type not found",
		},
		{
			name: "unavailable",
			err:  failure.Unavailable("dates conflict"),
			code: http.StatusConflict,
			kind: failure.KindUnavailable,
			msg:  "dates conflict",
		},
		{
			name: "internal",
			err:  failure.InternalError(errors.New("boom")),
			code: http.StatusInternalServerError,
			kind: failure.KindInternal,
			msg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.msg, f.Message)
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.Persistence(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestPersistence_HidesCause(t *testing.T) {
	cause := errors.New("open data/bookings.json: permission denied")
	err := failure.Persistence(cause)

	assert.NotContains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.True(t, failure.IsKind(err, failure.KindPersistence))
}

func TestGetCodeAndKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind failure.Kind
	}{
		{
			name: "failure error",
			err:  failure.NotFound("x"),
			code: http.StatusNotFound,
			kind: failure.KindNotFound,
		},
		{
			name: "wrapped failure error",
			err:  fmt.Errorf("failed to book: %w", failure.ErrRoomNotAvailable),
			code: http.StatusConflict,
			kind: failure.KindUnavailable,
		},
		{
			name: "regular error",
			err:  errors.New("regular error"),
			code: http.StatusInternalServerError,
			kind: failure.KindInternal,
		},
		{
			name: "nil error",
			err:  nil,
			code: http.StatusInternalServerError,
			kind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.kind, failure.GetKind(tt.err))
		})
	}
}

func TestIsKind_NilError(t *testing.T) {
	assert.False(t, failure.IsKind(nil, failure.KindInternal))
}
