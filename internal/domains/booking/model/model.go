package model

const (
	EntityName = "booking"
)

// Booking is one confirmed stay. Dates are kept exactly as submitted; the stay covers [CheckIn, CheckOut).
type Booking struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// RoomLedgerEntry holds the bookings of one room in arrival order.
type RoomLedgerEntry struct {
	RoomNumber int       `json:"room_number"`
	Bookings   []Booking `json:"bookings"`
}

type Ledger struct {
	Rooms []RoomLedgerEntry `json:"rooms"`
}

// Entry returns the entry for the room, if one was ever created.
func (l *Ledger) Entry(roomNumber int) (RoomLedgerEntry, bool) {
	for _, entry := range l.Rooms {
		if entry.RoomNumber == roomNumber {
			return entry, true
		}
	}

	return RoomLedgerEntry{}, false
}

// Add appends the booking to the room's entry, creating the entry on the room's first booking.
func (l *Ledger) Add(roomNumber int, booking Booking) {
	for i := range l.Rooms {
		if l.Rooms[i].RoomNumber == roomNumber {
			l.Rooms[i].Bookings = append(l.Rooms[i].Bookings, booking)

			return
		}
	}

	l.Rooms = append(l.Rooms, RoomLedgerEntry{
		RoomNumber: roomNumber,
		Bookings:   []Booking{booking},
	})
}
