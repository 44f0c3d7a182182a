package analytics

import (
	"time"

	"saunie/internal/shared/utils/money"
)

// TripFigures is the minimal per-trip input every aggregation works from.
type TripFigures struct {
	TripID      string       `json:"tripId" gorm:"column:trip_id"`
	Destination string       `json:"destination" gorm:"column:destination"`
	Date        time.Time    `json:"date" gorm:"column:date"`
	Capacity    int          `json:"capacity" gorm:"column:capacity"`
	Price       money.Amount `json:"price" gorm:"column:price"`
	Booked      int          `json:"booked" gorm:"column:booked"`
}

// Summary is the seat-management figure block shown next to a seat map and in trip listings.
type Summary struct {
	BookedSeats      int          `json:"bookedSeats"`
	AvailableSeats   int          `json:"availableSeats"`
	TotalSeats       int          `json:"totalSeats"`
	OccupancyPercent int          `json:"occupancyPercent"`
	Revenue          money.Amount `json:"revenue"`
}

// Dashboard is the fleet-wide overview.
type Dashboard struct {
	TotalTrips     int            `json:"totalTrips"`
	TotalPatrons   int64          `json:"totalPatrons"`
	TotalBookings  int            `json:"totalBookings"`
	TotalRevenue   money.Amount   `json:"totalRevenue"`
	UpcomingCount  int            `json:"upcomingTrips"`
	CompletedCount int            `json:"completedTrips"`
	UpcomingTrips  []UpcomingTrip `json:"upcoming"`
}

type UpcomingTrip struct {
	TripID           string    `json:"tripId"`
	Destination      string    `json:"destination"`
	Date             time.Time `json:"date"`
	BookedSeats      int       `json:"bookedSeats"`
	TotalSeats       int       `json:"totalSeats"`
	OccupancyPercent int       `json:"occupancyPercent"`
}
