package service

import (
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// conflicts reports whether the stay [checkIn, checkOut) collides with a booked stay. The three clauses
// are kept as they are: a stay starting inside a booking, a stay ending inside a booking, or a stay that
// covers a booking. Clause one closes the booking on the left, clause two on the right.
func conflicts(checkIn, checkOut, bookedIn, bookedOut time.Time) bool {
	startsInside := !checkIn.Before(bookedIn) && checkIn.Before(bookedOut)
	endsInside := checkOut.After(bookedIn) && !checkOut.After(bookedOut)
	covers := !checkIn.After(bookedIn) && !checkOut.Before(bookedOut)

	return startsInside || endsInside || covers
}

// IsAvailable checks one room against its ledger entry. A room without an entry, or with no bookings,
// is available.
func IsAvailable(ledger model.Ledger, roomNumber int, checkIn, checkOut time.Time) dto.AvailabilityResult {
	entry, ok := ledger.Entry(roomNumber)
	if !ok || len(entry.Bookings) == 0 {
		return dto.Available(roomNumber)
	}

	for _, booking := range entry.Bookings {
		bookedIn, errIn := timezone.ParseDate(booking.CheckIn)
		bookedOut, errOut := timezone.ParseDate(booking.CheckOut)

		if errIn != nil || errOut != nil {
			log.Warn().
				Int("roomNumber", roomNumber).
				Str("checkIn", booking.CheckIn).
				Str("checkOut", booking.CheckOut).
				Msg("skipping stored booking with unreadable dates")

			continue
		}

		if conflicts(checkIn, checkOut, bookedIn, bookedOut) {
			return dto.Unavailable()
		}
	}

	return dto.Available(roomNumber)
}

// FindAvailableRoom returns the first room, in the order given, that is free for the whole stay.
func FindAvailableRoom(ledger model.Ledger, rooms []roomModel.RoomInstance, checkIn, checkOut time.Time) dto.AvailabilityResult {
	for _, room := range rooms {
		result := IsAvailable(ledger, room.RoomNumber, checkIn, checkOut)
		if result.Available {
			return result
		}
	}

	return dto.Unavailable()
}
