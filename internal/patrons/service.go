package patrons

import (
	"context"
	"fmt"
	"math"

	"saunie/internal/shared/apperrors"
	"saunie/internal/shared/constants"
	"saunie/internal/shared/utils/validation"
	"saunie/pkg/cache"
	"saunie/pkg/logger"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BookingCounter reports how many seats a patron currently holds
type BookingCounter interface {
	CountPatronBookings(ctx context.Context, patronID uuid.UUID) (int64, error)
}

type Service interface {
	CreatePatron(ctx context.Context, req CreatePatronRequest) (*Patron, error)
	GetPatron(ctx context.Context, id uuid.UUID) (*Patron, error)
	UpdatePatron(ctx context.Context, id uuid.UUID, req UpdatePatronRequest) (*Patron, error)
	DeletePatron(ctx context.Context, id uuid.UUID) error
	ListPatrons(ctx context.Context, query PatronListQuery) (*PaginatedPatrons, error)

	SetCacheService(cacheService cache.Service)
	SetBookingCounter(counter BookingCounter)
}

type service struct {
	repo           Repository
	cacheService   cache.Service
	bookingCounter BookingCounter
}

func NewService(repo Repository) Service {
	return &service{
		repo:         repo,
		cacheService: cache.NewNoopService(),
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	if cacheService != nil {
		s.cacheService = cacheService
	}
}

func (s *service) SetBookingCounter(counter BookingCounter) {
	s.bookingCounter = counter
}

func (s *service) invalidatePatronCache(ctx context.Context, id uuid.UUID) {
	if err := s.cacheService.Delete(ctx, constants.BuildPatronDetailKey(id.String())); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "Failed to invalidate patron cache", err, map[string]interface{}{"patron_id": id.String()})
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ANALYTICS); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "Failed to invalidate analytics cache", err, nil)
	}
}

func (s *service) CreatePatron(ctx context.Context, req CreatePatronRequest) (*Patron, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patron := &Patron{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		Notes:            req.Notes,
	}
	if err := s.repo.Create(ctx, patron); err != nil {
		return nil, err
	}
	s.invalidatePatronCache(ctx, patron.ID)

	logger.GetDefault().InfoWithContext(ctx, "Patron Created", map[string]interface{}{"patron_id": patron.ID.String()})
	return patron, nil
}

func (s *service) GetPatron(ctx context.Context, id uuid.UUID) (*Patron, error) {
	var patron Patron
	err := s.cacheService.GetOrSet(ctx, constants.BuildPatronDetailKey(id.String()), constants.TTL_PATRON_DETAIL,
		func() (interface{}, error) {
			return s.repo.GetByID(ctx, id)
		}, &patron)
	if err != nil {
		return nil, err
	}
	return &patron, nil
}

func (s *service) UpdatePatron(ctx context.Context, id uuid.UUID, req UpdatePatronRequest) (*Patron, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patron, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		patron.Name = *req.Name
	}
	if req.Phone != nil {
		patron.Phone = *req.Phone
	}
	if req.Email != nil {
		patron.Email = *req.Email
	}
	if req.Address != nil {
		patron.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		patron.EmergencyContact = *req.EmergencyContact
	}
	if req.Notes != nil {
		patron.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, patron); err != nil {
		return nil, err
	}
	s.invalidatePatronCache(ctx, patron.ID)
	return patron, nil
}

// DeletePatron refuses while the patron still holds seats; bookings must be
// cancelled first so no seat map points at a missing patron
func (s *service) DeletePatron(ctx context.Context, id uuid.UUID) error {
	if s.bookingCounter != nil {
		count, err := s.bookingCounter.CountPatronBookings(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count patron bookings: %w", err)
		}
		if count > 0 {
			return apperrors.New(apperrors.ErrPatronHasBookings, "patron %s still holds %d booking(s)", id, count)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePatronCache(ctx, id)

	logger.GetDefault().InfoWithContext(ctx, "Patron Deleted", map[string]interface{}{"patron_id": id.String()})
	return nil
}

func (s *service) ListPatrons(ctx context.Context, query PatronListQuery) (*PaginatedPatrons, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = defaultPageSize
	}
	if query.Limit > maxPageSize {
		query.Limit = maxPageSize
	}

	patrons, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if patrons == nil {
		patrons = []Patron{}
	}

	return &PaginatedPatrons{
		Patrons:    patrons,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}, nil
}
