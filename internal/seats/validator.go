package seats

import (
	"strings"

	"saunie/internal/shared/apperrors"
	"saunie/internal/trips"

	"github.com/google/uuid"
)

// ValidateBooking reports why req cannot be booked on trip given its current
// bookings, or nil when it can. It has no side effects.
func ValidateBooking(trip *trips.Trip, bookings []Booking, req BookingRequest) error {
	if trip == nil {
		return apperrors.New(apperrors.ErrUnknownTrip, "trip not found")
	}

	if req.SeatNumber < 1 || req.SeatNumber > trip.BusCapacity {
		return apperrors.New(apperrors.ErrInvalidSeat, "seat %d is outside 1..%d", req.SeatNumber, trip.BusCapacity)
	}

	patronID := strings.TrimSpace(req.PatronID)
	if patronID == "" {
		return apperrors.New(apperrors.ErrMissingPatron, "a patron is required to book seat %d", req.SeatNumber)
	}
	if _, err := uuid.Parse(patronID); err != nil {
		return apperrors.New(apperrors.ErrMissingPatron, "patron id %q is not valid", req.PatronID)
	}

	for _, b := range bookings {
		if b.SeatNumber == req.SeatNumber {
			return apperrors.New(apperrors.ErrSeatTaken, "seat %d is already booked", req.SeatNumber)
		}
	}

	return nil
}
