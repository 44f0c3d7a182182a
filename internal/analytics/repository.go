package analytics

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository reads the raw figures aggregations are computed from
type Repository interface {
	ListTripFigures(ctx context.Context) ([]TripFigures, error)
	CountPatrons(ctx context.Context) (int64, error)
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new analytics repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const tripFiguresQuery = `
	SELECT t.id AS trip_id,
	       t.destination,
	       t.date,
	       t.bus_capacity AS capacity,
	       t.price,
	       COUNT(b.id) AS booked
	FROM trips t
	LEFT JOIN trip_bookings b ON b.trip_id = t.id
	GROUP BY t.id, t.destination, t.date, t.bus_capacity, t.price
	ORDER BY t.date ASC`

func (r *repository) ListTripFigures(ctx context.Context) ([]TripFigures, error) {
	var figures []TripFigures
	if err := r.db.WithContext(ctx).Raw(tripFiguresQuery).Scan(&figures).Error; err != nil {
		return nil, fmt.Errorf("failed to load trip figures: %w", err)
	}
	return figures, nil
}

func (r *repository) CountPatrons(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("patrons").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count patrons: %w", err)
	}
	return count, nil
}
