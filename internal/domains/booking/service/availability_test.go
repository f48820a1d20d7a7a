package service_test

import (
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/service"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := timezone.ParseDate(value)
	require.NoError(t, err)

	return parsed
}

func ledgerWith(roomNumber int, bookings ...model.Booking) model.Ledger {
	ledger := model.Ledger{}
	for _, booking := range bookings {
		ledger.Add(roomNumber, booking)
	}

	return ledger
}

func TestIsAvailable(t *testing.T) {
	booked := ledgerWith(101, model.Booking{Name: "Ada", CheckIn: "2024-06-01", CheckOut: "2024-06-05"})

	tests := []struct {
		name      string
		ledger    model.Ledger
		checkIn   string
		checkOut  string
		available bool
	}{
		{name: "no entry", ledger: model.Ledger{}, checkIn: "2024-06-01", checkOut: "2024-06-05", available: true},
		{name: "entry without bookings", ledger: model.Ledger{Rooms: []model.RoomLedgerEntry{{RoomNumber: 101}}}, checkIn: "2024-06-01", checkOut: "2024-06-05", available: true},
		{name: "starts inside", ledger: booked, checkIn: "2024-06-03", checkOut: "2024-06-07"},
		{name: "starts on booked check-in", ledger: booked, checkIn: "2024-06-01", checkOut: "2024-06-02"},
		{name: "ends inside", ledger: booked, checkIn: "2024-05-30", checkOut: "2024-06-03"},
		{name: "ends on booked check-out", ledger: booked, checkIn: "2024-06-04", checkOut: "2024-06-05"},
		{name: "covers booking", ledger: booked, checkIn: "2024-05-30", checkOut: "2024-06-07"},
		{name: "identical stay", ledger: booked, checkIn: "2024-06-01", checkOut: "2024-06-05"},
		{name: "inside booking", ledger: booked, checkIn: "2024-06-02", checkOut: "2024-06-04"},
		{name: "arrives on booked check-out", ledger: booked, checkIn: "2024-06-05", checkOut: "2024-06-07", available: true},
		{name: "leaves on booked check-in", ledger: booked, checkIn: "2024-05-28", checkOut: "2024-06-01", available: true},
		{name: "well before", ledger: booked, checkIn: "2024-05-01", checkOut: "2024-05-03", available: true},
		{name: "zero length on booked check-in", ledger: booked, checkIn: "2024-06-01", checkOut: "2024-06-01"},
		{name: "zero length on booked check-out", ledger: booked, checkIn: "2024-06-05", checkOut: "2024-06-05"},
		{
			name:     "stored dates with surrounding whitespace",
			ledger:   ledgerWith(101, model.Booking{CheckIn: " 2024-06-01", CheckOut: "2024-06-05 "}),
			checkIn:  "2024-06-02",
			checkOut: "2024-06-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := service.IsAvailable(tt.ledger, 101, date(t, tt.checkIn), date(t, tt.checkOut))

			assert.Equal(t, tt.available, res.Available)

			if tt.available {
				require.NotNil(t, res.RoomNumber)
				assert.Equal(t, 101, *res.RoomNumber)
			} else {
				assert.Nil(t, res.RoomNumber)
			}
		})
	}
}

func TestIsAvailable_OtherRoomsIgnored(t *testing.T) {
	ledger := ledgerWith(102, model.Booking{CheckIn: "2024-06-01", CheckOut: "2024-06-05"})

	res := service.IsAvailable(ledger, 101, date(t, "2024-06-01"), date(t, "2024-06-05"))

	assert.True(t, res.Available)
}

func TestIsAvailable_UnreadableStoredDates(t *testing.T) {
	ledger := ledgerWith(101,
		model.Booking{CheckIn: "soon", CheckOut: "later"},
		model.Booking{CheckIn: "2024-07-01", CheckOut: "2024-07-03"},
	)

	assert.True(t, service.IsAvailable(ledger, 101, date(t, "2024-06-01"), date(t, "2024-06-05")).Available)
	assert.False(t, service.IsAvailable(ledger, 101, date(t, "2024-07-02"), date(t, "2024-07-04")).Available)
}

func TestFindAvailableRoom(t *testing.T) {
	rooms := []roomModel.RoomInstance{
		{RoomNumber: 101, RoomType: "Deluxe"},
		{RoomNumber: 102, RoomType: "Deluxe"},
		{RoomNumber: 103, RoomType: "Deluxe"},
	}
	stay := model.Booking{CheckIn: "2024-06-01", CheckOut: "2024-06-05"}

	t.Run("only the third room is free", func(t *testing.T) {
		ledger := model.Ledger{}
		ledger.Add(101, stay)
		ledger.Add(102, stay)

		res := service.FindAvailableRoom(ledger, rooms, date(t, "2024-06-02"), date(t, "2024-06-04"))

		require.True(t, res.Available)
		assert.Equal(t, 103, *res.RoomNumber)
	})

	t.Run("first free room in catalog order", func(t *testing.T) {
		ledger := ledgerWith(101, stay)

		res := service.FindAvailableRoom(ledger, rooms, date(t, "2024-06-02"), date(t, "2024-06-04"))

		require.True(t, res.Available)
		assert.Equal(t, 102, *res.RoomNumber)
	})

	t.Run("every room taken", func(t *testing.T) {
		ledger := model.Ledger{}
		for _, room := range rooms {
			ledger.Add(room.RoomNumber, stay)
		}

		res := service.FindAvailableRoom(ledger, rooms, date(t, "2024-06-02"), date(t, "2024-06-04"))

		assert.False(t, res.Available)
		assert.Nil(t, res.RoomNumber)
	})

	t.Run("no rooms", func(t *testing.T) {
		res := service.FindAvailableRoom(model.Ledger{}, nil, date(t, "2024-06-02"), date(t, "2024-06-04"))

		assert.False(t, res.Available)
	})
}
