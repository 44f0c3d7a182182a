package seats

import (
	"saunie/internal/patrons"
	"saunie/internal/trips"
)

// BuildSeatMap projects a trip and its bookings onto one entry per seat,
// 1..BusCapacity in ascending order. Bookings outside that range are
// ignored, and the first booking seen for a seat number wins.
func BuildSeatMap(trip *trips.Trip, bookings []Booking) []SeatMapEntry {
	if trip == nil || trip.BusCapacity <= 0 {
		return []SeatMapEntry{}
	}

	bySeat := make(map[int]*Booking, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		if b.SeatNumber < 1 || b.SeatNumber > trip.BusCapacity {
			continue
		}
		if _, seen := bySeat[b.SeatNumber]; !seen {
			bySeat[b.SeatNumber] = b
		}
	}

	seatMap := make([]SeatMapEntry, trip.BusCapacity)
	for n := 1; n <= trip.BusCapacity; n++ {
		seatMap[n-1] = seatEntry(n, bySeat[n])
	}
	return seatMap
}

func seatEntry(seatNumber int, b *Booking) SeatMapEntry {
	entry := SeatMapEntry{SeatNumber: seatNumber}
	if b == nil {
		return entry
	}

	bookingID := b.ID
	bookingDate := b.BookingDate
	entry.IsBooked = true
	entry.BookingID = &bookingID
	entry.BookingDate = &bookingDate
	if b.Patron != nil {
		entry.Patron = b.Patron.Snapshot()
	} else {
		entry.Patron = &patrons.Snapshot{ID: b.PatronID}
	}
	return entry
}
