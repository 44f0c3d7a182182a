package seats

import (
	"time"

	"saunie/internal/patrons"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking binds one seat of one trip to one patron. A booking is never
// edited; moving a patron means cancel then book.
type Booking struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TripID      uuid.UUID `json:"tripId" gorm:"type:uuid;not null;uniqueIndex:idx_trip_seat,priority:1"`
	SeatNumber  int       `json:"seatNumber" gorm:"not null;uniqueIndex:idx_trip_seat,priority:2;check:seat_number > 0"`
	PatronID    uuid.UUID `json:"patronId" gorm:"type:uuid;not null;index"`
	BookingDate time.Time `json:"bookingDate" gorm:"not null"`

	Patron *patrons.Patron `json:"patron,omitempty" gorm:"foreignKey:PatronID"`
}

func (Booking) TableName() string {
	return "trip_bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// SeatMapEntry is one cell of the derived seat map; it is never stored
type SeatMapEntry struct {
	SeatNumber  int               `json:"seatNumber"`
	IsBooked    bool              `json:"isBooked"`
	BookingID   *uuid.UUID        `json:"bookingId,omitempty"`
	Patron      *patrons.Snapshot `json:"patron,omitempty"`
	BookingDate *time.Time        `json:"bookingDate,omitempty"`
}

// BookingRequest is what the validator checks before a seat is assigned
type BookingRequest struct {
	SeatNumber int
	PatronID   string
}
