// Package availability decides, for a single hotel and a single date, which
// rooms can still be booked. It operates on plain values handed to it by the
// caller and never touches storage itself.
package availability

import (
	"sort"
)

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusUnavailable Status = "Unavailable"
)

// Room is one row of a hotel's room inventory.
type Room struct {
	Number int
	Price  float64
}

// Booking is an existing reservation of a room for a date. Date carries the
// YYYY-MM-DD wire format.
type Booking struct {
	RoomNumber int
	Date       string
}

// Entry is the availability verdict for a single room.
type Entry struct {
	RoomNumber int     `json:"room_number"`
	Price      float64 `json:"price"`
	Status     Status  `json:"status"`
}

// Resolve tags every room of the inventory as available or unavailable on
// targetDate. Bookings on other dates do not affect the verdict. The result
// contains exactly one entry per distinct room number, ordered ascending.
func Resolve(rooms []Room, bookings []Booking, targetDate string) []Entry {
	occupied := make(map[int]struct{}, len(bookings))

	for _, booking := range bookings {
		if booking.Date == targetDate {
			occupied[booking.RoomNumber] = struct{}{}
		}
	}

	entries := make([]Entry, 0, len(rooms))
	seen := make(map[int]struct{}, len(rooms))

	for _, room := range rooms {
		if _, dup := seen[room.Number]; dup {
			continue
		}

		seen[room.Number] = struct{}{}

		status := StatusAvailable
		if _, taken := occupied[room.Number]; taken {
			status = StatusUnavailable
		}

		entries = append(entries, Entry{
			RoomNumber: room.Number,
			Price:      room.Price,
			Status:     status,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RoomNumber < entries[j].RoomNumber
	})

	return entries
}
