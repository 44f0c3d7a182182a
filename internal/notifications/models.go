package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSeatBooked       EventType = "SEAT_BOOKED"
	EventBookingCancelled EventType = "BOOKING_CANCELLED"
)

// BookingEvent is published after a seat is booked or released
type BookingEvent struct {
	ID          uuid.UUID `json:"id"`
	Type        EventType `json:"type"`
	BookingID   uuid.UUID `json:"bookingId"`
	TripID      uuid.UUID `json:"tripId"`
	PatronID    uuid.UUID `json:"patronId"`
	SeatNumber  int       `json:"seatNumber"`
	Destination string    `json:"destination"`
	TripDate    time.Time `json:"tripDate"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func NewBookingEvent(eventType EventType, bookingID, tripID, patronID uuid.UUID, seatNumber int) *BookingEvent {
	return &BookingEvent{
		ID:         uuid.New(),
		Type:       eventType,
		BookingID:  bookingID,
		TripID:     tripID,
		PatronID:   patronID,
		SeatNumber: seatNumber,
		OccurredAt: time.Now().UTC(),
	}
}

// GetPartitionKey keeps every event of one trip on the same partition, in order
func (e *BookingEvent) GetPartitionKey() string {
	return e.TripID.String()
}

func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
