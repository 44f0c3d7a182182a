package seats

import (
	"encoding/json"
	"strconv"
	"strings"

	"saunie/internal/shared/apperrors"
)

// BookSeatRequest keeps the seat number undecoded so any value that is not
// a whole number is reported as an invalid seat instead of a bad body.
// A quoted whole number is accepted.
type BookSeatRequest struct {
	PatronID   string          `json:"patronId"`
	SeatNumber json.RawMessage `json:"seatNumber" swaggertype:"integer"`
}

func (r BookSeatRequest) toBookingRequest() (BookingRequest, error) {
	raw := strings.TrimSpace(string(r.SeatNumber))
	if raw == "null" {
		raw = ""
	}
	seat, err := parseSeatNumber(strings.Trim(raw, `"`))
	if err != nil {
		return BookingRequest{}, err
	}
	return BookingRequest{SeatNumber: seat, PatronID: r.PatronID}, nil
}

func parseSeatNumber(raw string) (int, error) {
	if raw == "" {
		return 0, apperrors.New(apperrors.ErrInvalidSeat, "seat number is required")
	}
	seat, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrInvalidSeat, "seat number %q is not a whole number", raw)
	}
	return seat, nil
}
