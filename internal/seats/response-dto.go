package seats

import (
	"time"

	"saunie/internal/analytics"
	"saunie/internal/shared/utils/money"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SeatMapResponse struct {
	TripID  uuid.UUID         `json:"tripId"`
	SeatMap []SeatMapEntry    `json:"seatMap"`
	Summary analytics.Summary `json:"summary"`
}

type BookingResponse struct {
	Booking Booking      `json:"booking"`
	Seat    SeatMapEntry `json:"seat"`
}

// PatronBooking is one seat a patron holds, with enough of the trip to list it
type PatronBooking struct {
	BookingID   uuid.UUID      `json:"bookingId" gorm:"column:booking_id"`
	TripID      uuid.UUID      `json:"tripId" gorm:"column:trip_id"`
	SeatNumber  int            `json:"seatNumber" gorm:"column:seat_number"`
	BookingDate time.Time      `json:"bookingDate" gorm:"column:booking_date"`
	Destination string         `json:"destination" gorm:"column:destination"`
	TripDate    datatypes.Date `json:"tripDate" gorm:"column:trip_date"`
	TripTime    string         `json:"tripTime" gorm:"column:trip_time"`
	Price       money.Amount   `json:"price" gorm:"column:price"`
}
