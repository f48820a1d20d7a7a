package dto

import (
	"hotel/internal/domains/booking/model"
	"strings"
	"time"
)

type CreateBookingRequest struct {
	RoomType   string `json:"room_type"   validate:"required,notblank,max=100"`
	RoomNumber *int   `json:"room_number" validate:"omitempty,gt=0"`
	Name       string `json:"name"        validate:"required,notblank,max=100"`
	Phone      string `json:"phone"       validate:"required,notblank,max=30"`
	Email      string `json:"email"       validate:"required,email,max=100"`
	CheckIn    string `json:"check_in"    validate:"required,isodate"`
	CheckOut   string `json:"check_out"   validate:"required,isodate"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		Name:     strings.TrimSpace(c.Name),
		Phone:    strings.TrimSpace(c.Phone),
		Email:    strings.TrimSpace(c.Email),
		CheckIn:  strings.TrimSpace(c.CheckIn),
		CheckOut: strings.TrimSpace(c.CheckOut),
	}
}

// AvailabilityResult carries the room number only when the room is available.
type AvailabilityResult struct {
	Available  bool `json:"available"`
	RoomNumber *int `json:"room_number"`
}

func Available(roomNumber int) AvailabilityResult {
	return AvailabilityResult{Available: true, RoomNumber: &roomNumber}
}

func Unavailable() AvailabilityResult {
	return AvailabilityResult{}
}

type BookingResponse struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
}

// BookingResult is returned by a successful booking attempt and by the booking lookup.
type BookingResult struct {
	RoomNumber int             `json:"room_number"`
	Booking    BookingResponse `json:"booking"`
}

func (r *BookingResult) FromModel(roomNumber int, model model.Booking) {
	r.RoomNumber = roomNumber
	r.Booking.FromModel(model)
}

// BookingRecordedEvent is published after a booking reaches the ledger.
type BookingRecordedEvent struct {
	EventID    string        `json:"event_id"`
	RoomNumber int           `json:"room_number"`
	Booking    model.Booking `json:"booking"`
	RecordedAt time.Time     `json:"recorded_at"`
}
