package trips

import (
	"context"
	"fmt"
	"math"
	"time"

	"saunie/internal/analytics"
	"saunie/internal/shared/apperrors"
	"saunie/internal/shared/constants"
	"saunie/internal/shared/utils/validation"
	"saunie/pkg/cache"
	"saunie/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CapacityGuard serializes a capacity change against concurrent bookings and
// rejects it when a booked seat would fall outside the new capacity. apply is
// only called once the change has been cleared.
type CapacityGuard interface {
	ChangeCapacity(ctx context.Context, tripID uuid.UUID, newCapacity int, apply func(ctx context.Context) error) error
}

// BookingCounter reports how many seats are booked on each trip
type BookingCounter interface {
	CountBookingsByTrip(ctx context.Context, tripIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type Service interface {
	CreateTrip(ctx context.Context, req CreateTripRequest) (*TripResponse, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*TripResponse, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, req UpdateTripRequest) (*TripResponse, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	ListTrips(ctx context.Context, query TripListQuery) (*PaginatedTrips, error)

	SetCacheService(cacheService cache.Service)
	SetCapacityGuard(guard CapacityGuard)
	SetBookingCounter(counter BookingCounter)
}

type service struct {
	repo           Repository
	cacheService   cache.Service
	capacityGuard  CapacityGuard
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

func (s *service) SetCapacityGuard(guard CapacityGuard) {
	s.capacityGuard = guard
}

func (s *service) SetBookingCounter(counter BookingCounter) {
	s.bookingCounter = counter
}

func (s *service) invalidateTripCache(ctx context.Context, id uuid.UUID) {
	l := logger.GetDefault()
	if err := s.cacheService.Delete(ctx, constants.BuildTripDetailKey(id.String())); err != nil {
		l.ErrorWithContext(ctx, "Failed to invalidate trip cache", err, map[string]interface{}{"trip_id": id.String()})
	}
	for _, pattern := range []string{constants.PATTERN_INVALIDATE_TRIPS_LIST, constants.PATTERN_INVALIDATE_ANALYTICS} {
		if err := s.cacheService.DeletePattern(ctx, pattern); err != nil {
			l.ErrorWithContext(ctx, "Failed to invalidate cache pattern", err, map[string]interface{}{"pattern": pattern})
		}
	}
}

func (s *service) CreateTrip(ctx context.Context, req CreateTripRequest) (*TripResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	capacity := req.BusCapacity
	if capacity == 0 {
		capacity = DefaultBusCapacity
	}

	trip := &Trip{
		Destination:       req.Destination,
		Date:              date,
		Time:              req.Time,
		ReturnTime:        req.ReturnTime,
		BusCapacity:       capacity,
		Price:             req.Price.Round(),
		DepartureLocation: req.DepartureLocation,
		Description:       req.Description,
		Driver:            req.Driver,
		Bus:               req.Bus,
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}
	s.invalidateTripCache(ctx, trip.ID)

	logger.GetDefault().InfoWithContext(ctx, "Trip Created", map[string]interface{}{
		"trip_id":      trip.ID.String(),
		"destination":  trip.Destination,
		"bus_capacity": trip.BusCapacity,
	})

	resp := s.toResponse(*trip, 0)
	return &resp, nil
}

func (s *service) GetTrip(ctx context.Context, id uuid.UUID) (*TripResponse, error) {
	var resp TripResponse
	err := s.cacheService.GetOrSet(ctx, constants.BuildTripDetailKey(id.String()), constants.TTL_TRIP_DETAIL,
		func() (interface{}, error) {
			trip, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			counts, err := s.countBookings(ctx, []uuid.UUID{trip.ID})
			if err != nil {
				return nil, err
			}
			return s.toResponse(*trip, counts[trip.ID]), nil
		}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) UpdateTrip(ctx context.Context, id uuid.UUID, req UpdateTripRequest) (*TripResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	changes, err := buildChanges(req)
	if err != nil {
		return nil, err
	}

	save := func(ctx context.Context) error {
		return s.repo.Update(ctx, id, changes)
	}

	// bus_capacity is only ever written under the seat ledger's trip lock,
	// checked against the bookings present at that moment
	if req.BusCapacity != nil && s.capacityGuard != nil {
		err = s.capacityGuard.ChangeCapacity(ctx, id, *req.BusCapacity, save)
	} else {
		err = save(ctx)
	}
	if err != nil {
		return nil, err
	}
	s.invalidateTripCache(ctx, id)

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.countBookings(ctx, []uuid.UUID{trip.ID})
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(*trip, counts[trip.ID])
	return &resp, nil
}

func (s *service) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateTripCache(ctx, id)

	logger.GetDefault().InfoWithContext(ctx, "Trip Deleted", map[string]interface{}{"trip_id": id.String()})
	return nil
}

func (s *service) ListTrips(ctx context.Context, query TripListQuery) (*PaginatedTrips, error) {
	query = normalizeListQuery(query)

	var result PaginatedTrips
	cacheKey := constants.BuildTripListKey(query.Page, query.Limit, query.Search)
	err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_TRIPS_LIST, func() (interface{}, error) {
		trips, total, err := s.repo.List(ctx, query)
		if err != nil {
			return nil, err
		}

		ids := make([]uuid.UUID, len(trips))
		for i, trip := range trips {
			ids[i] = trip.ID
		}
		counts, err := s.countBookings(ctx, ids)
		if err != nil {
			return nil, err
		}

		responses := make([]TripResponse, len(trips))
		for i, trip := range trips {
			responses[i] = s.toResponse(trip, counts[trip.ID])
		}

		return PaginatedTrips{
			Trips:      responses,
			Page:       query.Page,
			Limit:      query.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
		}, nil
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) countBookings(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	if s.bookingCounter == nil || len(ids) == 0 {
		return map[uuid.UUID]int{}, nil
	}
	counts, err := s.bookingCounter.CountBookingsByTrip(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	return counts, nil
}

func (s *service) toResponse(trip Trip, booked int) TripResponse {
	// capacity is always positive for stored trips
	summary, _ := analytics.Summarize(analytics.TripFigures{
		TripID:   trip.ID.String(),
		Capacity: trip.BusCapacity,
		Price:    trip.Price,
		Booked:   booked,
	})
	return TripResponse{Trip: trip, Summary: summary}
}

// buildChanges maps the fields present in req to their columns
func buildChanges(req UpdateTripRequest) (map[string]interface{}, error) {
	changes := map[string]interface{}{}
	if req.Destination != nil {
		changes["destination"] = *req.Destination
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		changes["date"] = date
	}
	if req.Time != nil {
		changes["time"] = *req.Time
	}
	if req.ReturnTime != nil {
		changes["return_time"] = *req.ReturnTime
	}
	if req.BusCapacity != nil {
		changes["bus_capacity"] = *req.BusCapacity
	}
	if req.Price != nil {
		changes["price"] = float64(req.Price.Round())
	}
	if req.DepartureLocation != nil {
		changes["departure_location"] = *req.DepartureLocation
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Driver != nil {
		changes["driver_name"] = req.Driver.Name
		changes["driver_phone"] = req.Driver.Phone
		changes["driver_license"] = req.Driver.License
	}
	if req.Bus != nil {
		changes["bus_number"] = req.Bus.Number
		changes["bus_model"] = req.Bus.Model
		changes["bus_seat_count"] = req.Bus.Capacity
	}
	return changes, nil
}

func parseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return datatypes.Date{}, apperrors.Validation("date must match the format %s", dateLayout)
	}
	return datatypes.Date(t), nil
}

func normalizeListQuery(query TripListQuery) TripListQuery {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = defaultPageSize
	}
	if query.Limit > maxPageSize {
		query.Limit = maxPageSize
	}
	return query
}
