package dto_test

import (
	"hotel/internal/domains/booking/model/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomType: "Deluxe",
		Name:     "Ada Lovelace",
		Phone:    "555-0101",
		Email:    "ada@example.com",
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-05",
	}
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.CreateBookingRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(_ *dto.CreateBookingRequest) {}},
		{name: "padded dates", mutate: func(req *dto.CreateBookingRequest) {
			req.CheckIn = " 2024-06-01"
			req.CheckOut = "2024-06-05 "
		}},
		{name: "datetime form", mutate: func(req *dto.CreateBookingRequest) {
			req.CheckIn = "2024-06-01T14:00"
		}},
		{
			name:    "missing check-in",
			mutate:  func(req *dto.CreateBookingRequest) { req.CheckIn = "" },
			wantMsg: "check_in is required",
		},
		{
			name:    "unreadable check-out",
			mutate:  func(req *dto.CreateBookingRequest) { req.CheckOut = "2024-02-30" },
			wantMsg: "check_out must be a valid date (YYYY-MM-DD)",
		},
		{
			name:    "blank check-in",
			mutate:  func(req *dto.CreateBookingRequest) { req.CheckIn = "  " },
			wantMsg: "check_in must be a valid date (YYYY-MM-DD)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, failure.KindInvalidInput, failure.GetKind(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomType: "Deluxe",
		Name:     "  Ada Lovelace ",
		Phone:    " 555-0101",
		Email:    "ada@example.com ",
		CheckIn:  " 2024-06-01",
		CheckOut: "2024-06-05\t",
	}

	booking := req.ToModel()

	assert.Equal(t, "Ada Lovelace", booking.Name)
	assert.Equal(t, "555-0101", booking.Phone)
	assert.Equal(t, "ada@example.com", booking.Email)
	assert.Equal(t, "2024-06-01", booking.CheckIn)
	assert.Equal(t, "2024-06-05", booking.CheckOut)
}
