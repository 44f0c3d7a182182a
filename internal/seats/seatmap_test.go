package seats

import (
	"testing"
	"time"

	"saunie/internal/patrons"
	"saunie/internal/trips"

	"github.com/google/uuid"
)

func bookingOn(seat int) Booking {
	return Booking{ID: uuid.New(), SeatNumber: seat, PatronID: uuid.New(), BookingDate: time.Now()}
}

func TestBuildSeatMapLengthEqualsCapacity(t *testing.T) {
	trip := &trips.Trip{ID: uuid.New(), BusCapacity: 10}

	full := make([]Booking, 0, 10)
	for n := 1; n <= 10; n++ {
		full = append(full, bookingOn(n))
	}

	tests := []struct {
		name     string
		bookings []Booking
		booked   int
	}{
		{"empty", nil, 0},
		{"partial", []Booking{bookingOn(3), bookingOn(9)}, 2},
		{"full", full, 10},
		{"out of range ignored", []Booking{bookingOn(0), bookingOn(11), bookingOn(-2), bookingOn(4)}, 1},
		{"duplicate seat counted once", []Booking{bookingOn(6), bookingOn(6)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seatMap := BuildSeatMap(trip, tt.bookings)
			if len(seatMap) != trip.BusCapacity {
				t.Fatalf("len = %d, want %d", len(seatMap), trip.BusCapacity)
			}
			booked := 0
			for i, entry := range seatMap {
				if entry.SeatNumber != i+1 {
					t.Fatalf("entry %d has seat %d", i, entry.SeatNumber)
				}
				if entry.IsBooked {
					booked++
				}
			}
			if booked != tt.booked {
				t.Errorf("booked = %d, want %d", booked, tt.booked)
			}
		})
	}
}

func TestBuildSeatMapCarriesPatronSnapshot(t *testing.T) {
	trip := &trips.Trip{ID: uuid.New(), BusCapacity: 4}
	patron := &patrons.Patron{ID: uuid.New(), Name: "Ines", Phone: "911", Address: "Braga", Notes: "window seat"}
	when := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	seatMap := BuildSeatMap(trip, []Booking{
		{ID: uuid.New(), SeatNumber: 2, PatronID: patron.ID, Patron: patron, BookingDate: when},
		{ID: uuid.New(), SeatNumber: 3, PatronID: uuid.New(), BookingDate: when},
	})

	seat2 := seatMap[1]
	if !seat2.IsBooked || seat2.Patron == nil || seat2.Patron.Name != "Ines" || seat2.Patron.Address != "Braga" {
		t.Errorf("seat 2 = %+v", seat2)
	}
	if seat2.BookingDate == nil || !seat2.BookingDate.Equal(when) {
		t.Errorf("booking date = %v", seat2.BookingDate)
	}
	if seatMap[2].Patron == nil || seatMap[2].Patron.ID == uuid.Nil {
		t.Error("unloaded patron should still carry its id")
	}
	if seatMap[0].IsBooked || seatMap[0].Patron != nil || seatMap[0].BookingDate != nil {
		t.Errorf("seat 1 should be free, got %+v", seatMap[0])
	}
}

func TestBuildSeatMapWithoutTrip(t *testing.T) {
	if got := BuildSeatMap(nil, []Booking{bookingOn(1)}); len(got) != 0 {
		t.Errorf("len = %d", len(got))
	}
}
