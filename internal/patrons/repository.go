package patrons

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
	Create(ctx context.Context, patron *Patron) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patron, error)
	Update(ctx context.Context, patron *Patron) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, query PatronListQuery) ([]Patron, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, patron *Patron) error {
	if err := r.db.WithContext(ctx).Create(patron).Error; err != nil {
		return fmt.Errorf("failed to create patron: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Patron, error) {
	var patron Patron
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&patron).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrPatronNotFound, "patron %s not found", id)
		}
		return nil, fmt.Errorf("failed to get patron: %w", err)
	}
	return &patron, nil
}

func (r *repository) Update(ctx context.Context, patron *Patron) error {
	if err := r.db.WithContext(ctx).Save(patron).Error; err != nil {
		return fmt.Errorf("failed to update patron: %w", err)
	}
	return nil
}

// Delete relies on ON DELETE RESTRICT from trip_bookings to refuse
// patrons that gained a booking after the service checked
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Patron{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return apperrors.Wrap(apperrors.ErrPatronHasBookings, result.Error)
		}
		return fmt.Errorf("failed to delete patron: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.ErrPatronNotFound, "patron %s not found", id)
	}
	return nil
}

func (r *repository) List(ctx context.Context, query PatronListQuery) ([]Patron, int64, error) {
	db := r.db.WithContext(ctx).Model(&Patron{})

	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + search + "%"
		db = db.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count patrons: %w", err)
	}

	var patrons []Patron
	err := db.Order("name ASC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&patrons).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patrons: %w", err)
	}

	return patrons, total, nil
}
