package trips

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"saunie/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, trip *Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*Trip, error)
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, query TripListQuery) ([]Trip, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, trip *Trip) error {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Trip, error) {
	var trip Trip
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrUnknownTrip, "trip %s not found", id)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// Update writes only the given columns, so a concurrent edit of another
// column (bus_capacity in particular) is never overwritten with a stale value
func (r *repository) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&Trip{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return fmt.Errorf("failed to update trip: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.ErrUnknownTrip, "trip %s not found", id)
	}
	return nil
}

// Delete removes the trip; its bookings go with it through ON DELETE CASCADE
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Trip{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete trip: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.ErrUnknownTrip, "trip %s not found", id)
	}
	return nil
}

func (r *repository) List(ctx context.Context, query TripListQuery) ([]Trip, int64, error) {
	db := r.db.WithContext(ctx).Model(&Trip{})

	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + search + "%"
		db = db.Where("destination ILIKE ? OR departure_location ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	var trips []Trip
	offset := (query.Page - 1) * query.Limit
	err := db.Order("date ASC, time ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&trips).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}

	return trips, total, nil
}
