package analytics

import (
	"errors"
	"math"
	"sort"
	"time"

	"saunie/internal/shared/utils/money"
)

// ErrZeroCapacity is returned when occupancy is asked of a trip without seats.
var ErrZeroCapacity = errors.New("occupancy is undefined for a trip with no seats")

// BookedCount bounds a raw booking count by the bus capacity.
func BookedCount(bookings, capacity int) int {
	if bookings < 0 {
		return 0
	}
	if capacity >= 0 && bookings > capacity {
		return capacity
	}
	return bookings
}

// OccupancyPercent is round(100 * booked / capacity).
func OccupancyPercent(booked, capacity int) (int, error) {
	if capacity <= 0 {
		return 0, ErrZeroCapacity
	}
	return int(math.Round(100 * float64(booked) / float64(capacity))), nil
}

// Revenue is booked seats times the trip price.
func Revenue(booked int, price money.Amount) money.Amount {
	return price.Times(booked)
}

// AvailableSeats never goes negative, even for inconsistent input.
func AvailableSeats(booked, capacity int) int {
	if booked >= capacity {
		return 0
	}
	return capacity - booked
}

// Summarize computes every per-trip figure at once.
func Summarize(f TripFigures) (Summary, error) {
	booked := BookedCount(f.Booked, f.Capacity)
	occupancy, err := OccupancyPercent(booked, f.Capacity)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		BookedSeats:      booked,
		AvailableSeats:   AvailableSeats(booked, f.Capacity),
		TotalSeats:       f.Capacity,
		OccupancyPercent: occupancy,
		Revenue:          Revenue(booked, f.Price),
	}, nil
}

// BuildDashboard folds per-trip figures into fleet totals. A trip is upcoming
// when its date is strictly after now and completed otherwise.
func BuildDashboard(trips []TripFigures, totalPatrons int64, now time.Time, upcomingLimit int) Dashboard {
	d := Dashboard{
		TotalTrips:    len(trips),
		TotalPatrons:  totalPatrons,
		UpcomingTrips: []UpcomingTrip{},
	}

	var revenue money.Amount
	var upcoming []TripFigures
	for _, t := range trips {
		booked := BookedCount(t.Booked, t.Capacity)
		d.TotalBookings += booked
		revenue += Revenue(booked, t.Price)

		if t.Date.After(now) {
			d.UpcomingCount++
			upcoming = append(upcoming, t)
		} else {
			d.CompletedCount++
		}
	}
	d.TotalRevenue = revenue.Round()

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	for i, t := range upcoming {
		if upcomingLimit > 0 && i >= upcomingLimit {
			break
		}
		entry := UpcomingTrip{
			TripID:      t.TripID,
			Destination: t.Destination,
			Date:        t.Date,
			BookedSeats: BookedCount(t.Booked, t.Capacity),
			TotalSeats:  t.Capacity,
		}
		// zero-capacity rows are reported without an occupancy figure
		if occupancy, err := OccupancyPercent(entry.BookedSeats, t.Capacity); err == nil {
			entry.OccupancyPercent = occupancy
		}
		d.UpcomingTrips = append(d.UpcomingTrips, entry)
	}

	return d
}
