package seats

import (
	"context"
	"errors"
	"fmt"

	"saunie/internal/patrons"
	"saunie/internal/shared/apperrors"
	"saunie/internal/trips"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence the allocation service runs against
type Store interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (*trips.Trip, error)
	ListBookings(ctx context.Context, tripID uuid.UUID) ([]Booking, error)
	// InsertBooking fails with a conflict when the seat was taken underneath us
	InsertBooking(ctx context.Context, booking *Booking) error
	// DeleteBooking returns the removed booking, or BookingNotFound
	DeleteBooking(ctx context.Context, tripID uuid.UUID, seatNumber int) (*Booking, error)
	GetPatron(ctx context.Context, patronID uuid.UUID) (*patrons.Patron, error)

	CountPatronBookings(ctx context.Context, patronID uuid.UUID) (int64, error)
	ListPatronBookings(ctx context.Context, patronID uuid.UUID) ([]PatronBooking, error)
	MaxBookedSeat(ctx context.Context, tripID uuid.UUID) (int, error)
	CountBookingsByTrip(ctx context.Context, tripIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository expects db to be opened with TranslateError so unique
// violations surface as gorm.ErrDuplicatedKey
func NewRepository(db *gorm.DB) Store {
	return &repository{db: db}
}

func (r *repository) GetTrip(ctx context.Context, tripID uuid.UUID) (*trips.Trip, error) {
	var trip trips.Trip
	if err := r.db.WithContext(ctx).Where("id = ?", tripID).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrUnknownTrip, "trip %s not found", tripID)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

func (r *repository) ListBookings(ctx context.Context, tripID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Patron").
		Where("trip_id = ?", tripID).
		Order("seat_number ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) InsertBooking(ctx context.Context, booking *Booking) error {
	// the patron is already stored; only the booking row is written
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrConcurrentBooking, err)
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *repository) DeleteBooking(ctx context.Context, tripID uuid.UUID, seatNumber int) (*Booking, error) {
	var booking Booking
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("trip_id = ? AND seat_number = ?", tripID, seatNumber).
		Delete(&booking)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.New(apperrors.ErrBookingNotFound, "seat %d has no booking", seatNumber)
	}
	return &booking, nil
}

func (r *repository) GetPatron(ctx context.Context, patronID uuid.UUID) (*patrons.Patron, error) {
	var patron patrons.Patron
	if err := r.db.WithContext(ctx).Where("id = ?", patronID).First(&patron).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrPatronNotFound, "patron %s not found", patronID)
		}
		return nil, fmt.Errorf("failed to get patron: %w", err)
	}
	return &patron, nil
}

func (r *repository) CountPatronBookings(ctx context.Context, patronID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Booking{}).Where("patron_id = ?", patronID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count patron bookings: %w", err)
	}
	return count, nil
}

const patronBookingsQuery = `
	SELECT b.id AS booking_id,
	       b.trip_id,
	       b.seat_number,
	       b.booking_date,
	       t.destination,
	       t.date AS trip_date,
	       t.time AS trip_time,
	       t.price
	FROM trip_bookings b
	JOIN trips t ON t.id = b.trip_id
	WHERE b.patron_id = ?
	ORDER BY t.date DESC, b.seat_number ASC`

func (r *repository) ListPatronBookings(ctx context.Context, patronID uuid.UUID) ([]PatronBooking, error) {
	var bookings []PatronBooking
	if err := r.db.WithContext(ctx).Raw(patronBookingsQuery, patronID).Scan(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list patron bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) MaxBookedSeat(ctx context.Context, tripID uuid.UUID) (int, error) {
	var highest int
	err := r.db.WithContext(ctx).Model(&Booking{}).
		Select("COALESCE(MAX(seat_number), 0)").
		Where("trip_id = ?", tripID).
		Scan(&highest).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read highest booked seat: %w", err)
	}
	return highest, nil
}

type tripCount struct {
	TripID uuid.UUID
	Booked int
}

func (r *repository) CountBookingsByTrip(ctx context.Context, tripIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(tripIDs))
	if len(tripIDs) == 0 {
		return counts, nil
	}

	var rows []tripCount
	err := r.db.WithContext(ctx).Model(&Booking{}).
		Select("trip_id, COUNT(*) AS booked").
		Where("trip_id IN ?", tripIDs).
		Group("trip_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	for _, row := range rows {
		counts[row.TripID] = row.Booked
	}
	return counts, nil
}
