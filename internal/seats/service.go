package seats

import (
	"context"
	"strings"
	"time"

	"saunie/internal/analytics"
	"saunie/internal/notifications"
	"saunie/internal/shared/apperrors"
	"saunie/internal/shared/constants"
	"saunie/internal/trips"
	"saunie/pkg/cache"
	"saunie/pkg/logger"

	"github.com/google/uuid"
)

// Service is the seat allocation core. Every seat cell moves only between
// available and booked, and every move happens while the trip is locked.
type Service interface {
	GetSeatMap(ctx context.Context, tripID uuid.UUID) (*SeatMapResponse, error)
	BookSeat(ctx context.Context, tripID uuid.UUID, req BookingRequest) (*BookingResponse, error)
	CancelBooking(ctx context.Context, tripID uuid.UUID, seatNumber int) (*Booking, error)
	ListPatronBookings(ctx context.Context, patronID uuid.UUID) ([]PatronBooking, error)

	// ChangeCapacity implements trips.CapacityGuard
	ChangeCapacity(ctx context.Context, tripID uuid.UUID, newCapacity int, apply func(ctx context.Context) error) error
	// CountBookingsByTrip implements trips.BookingCounter
	CountBookingsByTrip(ctx context.Context, tripIDs []uuid.UUID) (map[uuid.UUID]int, error)
	// CountPatronBookings implements patrons.BookingCounter
	CountPatronBookings(ctx context.Context, patronID uuid.UUID) (int64, error)

	SetCacheService(cacheService cache.Service)
	SetPublisher(publisher notifications.Publisher)
}

type service struct {
	store        Store
	locker       Locker
	lockWait     time.Duration
	cacheService cache.Service
	publisher    notifications.Publisher
	now          func() time.Time
}

// NewService builds the allocation service. A nil locker falls back to an
// in-process lock, which is enough for a single replica.
func NewService(store Store, locker Locker, lockWait time.Duration) Service {
	if locker == nil {
		locker = NewLocalLocker()
	}
	return &service{
		store:        store,
		locker:       locker,
		lockWait:     lockWait,
		cacheService: cache.NewNoopService(),
		publisher:    notifications.NewLogPublisher(nil),
		now:          time.Now,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	if cacheService != nil {
		s.cacheService = cacheService
	}
}

func (s *service) SetPublisher(publisher notifications.Publisher) {
	if publisher != nil {
		s.publisher = publisher
	}
}

func (s *service) GetSeatMap(ctx context.Context, tripID uuid.UUID) (*SeatMapResponse, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.store.ListBookings(ctx, tripID)
	if err != nil {
		return nil, err
	}

	seatMap := BuildSeatMap(trip, bookings)
	booked := 0
	for _, entry := range seatMap {
		if entry.IsBooked {
			booked++
		}
	}

	summary, err := analytics.Summarize(analytics.TripFigures{
		TripID:      trip.ID.String(),
		Destination: trip.Destination,
		Date:        trip.DateTime(),
		Capacity:    trip.BusCapacity,
		Price:       trip.Price,
		Booked:      booked,
	})
	if err != nil {
		return nil, err
	}

	return &SeatMapResponse{TripID: trip.ID, SeatMap: seatMap, Summary: summary}, nil
}

func (s *service) BookSeat(ctx context.Context, tripID uuid.UUID, req BookingRequest) (*BookingResponse, error) {
	unlock, err := acquireTrip(ctx, s.locker, tripID, s.lockWait)
	if err != nil {
		return nil, err
	}
	defer unlock()

	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.store.ListBookings(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if err := ValidateBooking(trip, bookings, req); err != nil {
		s.logRejection(ctx, tripID, req.SeatNumber, err)
		return nil, err
	}

	// well-formed, checked by ValidateBooking
	patronID, _ := uuid.Parse(strings.TrimSpace(req.PatronID))
	patron, err := s.store.GetPatron(ctx, patronID)
	if err != nil {
		s.logRejection(ctx, tripID, req.SeatNumber, err)
		return nil, err
	}

	booking := &Booking{
		TripID:      trip.ID,
		SeatNumber:  req.SeatNumber,
		PatronID:    patron.ID,
		BookingDate: s.now().UTC(),
	}
	if err := s.store.InsertBooking(ctx, booking); err != nil {
		s.logRejection(ctx, tripID, req.SeatNumber, err)
		return nil, err
	}
	booking.Patron = patron

	logger.GetDefault().LogBookingCreated(ctx, booking.ID.String(), trip.ID.String(), booking.SeatNumber, patron.ID.String())
	s.afterMutation(ctx, notifications.EventSeatBooked, trip, booking)

	return &BookingResponse{
		Booking: *booking,
		Seat:    seatEntry(booking.SeatNumber, booking),
	}, nil
}

// CancelBooking frees a booked seat. Cancelling a free seat is an error,
// never a silent no-op.
func (s *service) CancelBooking(ctx context.Context, tripID uuid.UUID, seatNumber int) (*Booking, error) {
	unlock, err := acquireTrip(ctx, s.locker, tripID, s.lockWait)
	if err != nil {
		return nil, err
	}
	defer unlock()

	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	booking, err := s.store.DeleteBooking(ctx, tripID, seatNumber)
	if err != nil {
		return nil, err
	}

	logger.GetDefault().LogBookingCancelled(ctx, booking.ID.String(), trip.ID.String(), booking.SeatNumber, booking.PatronID.String())
	s.afterMutation(ctx, notifications.EventBookingCancelled, trip, booking)
	return booking, nil
}

func (s *service) ListPatronBookings(ctx context.Context, patronID uuid.UUID) ([]PatronBooking, error) {
	if _, err := s.store.GetPatron(ctx, patronID); err != nil {
		return nil, err
	}
	bookings, err := s.store.ListPatronBookings(ctx, patronID)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []PatronBooking{}
	}
	return bookings, nil
}

// ChangeCapacity runs apply under the trip lock once no booked seat would
// fall outside newCapacity
func (s *service) ChangeCapacity(ctx context.Context, tripID uuid.UUID, newCapacity int, apply func(ctx context.Context) error) error {
	unlock, err := acquireTrip(ctx, s.locker, tripID, s.lockWait)
	if err != nil {
		return err
	}
	defer unlock()

	highest, err := s.store.MaxBookedSeat(ctx, tripID)
	if err != nil {
		return err
	}
	if newCapacity < highest {
		return apperrors.New(apperrors.ErrCapacityBelowBookings,
			"seat %d is booked, capacity cannot drop to %d", highest, newCapacity)
	}

	return apply(ctx)
}

func (s *service) CountBookingsByTrip(ctx context.Context, tripIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	return s.store.CountBookingsByTrip(ctx, tripIDs)
}

func (s *service) CountPatronBookings(ctx context.Context, patronID uuid.UUID) (int64, error) {
	return s.store.CountPatronBookings(ctx, patronID)
}

// afterMutation runs the side effects of a booking change. Failures here
// are logged and never undo or fail the booking itself.
func (s *service) afterMutation(ctx context.Context, eventType notifications.EventType, trip *trips.Trip, booking *Booking) {
	l := logger.GetDefault()

	if err := s.cacheService.Delete(ctx, constants.BuildTripDetailKey(trip.ID.String())); err != nil {
		l.ErrorWithContext(ctx, "Failed to invalidate trip cache", err, map[string]interface{}{"trip_id": trip.ID.String()})
	}
	for _, pattern := range []string{constants.PATTERN_INVALIDATE_TRIPS_LIST, constants.PATTERN_INVALIDATE_ANALYTICS} {
		if err := s.cacheService.DeletePattern(ctx, pattern); err != nil {
			l.ErrorWithContext(ctx, "Failed to invalidate cache pattern", err, map[string]interface{}{"pattern": pattern})
		}
	}

	event := notifications.NewBookingEvent(eventType, booking.ID, trip.ID, booking.PatronID, booking.SeatNumber)
	event.Destination = trip.Destination
	event.TripDate = trip.DateTime()
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		l.ErrorWithContext(ctx, "Failed to publish booking event", err, map[string]interface{}{
			"trip_id":    trip.ID.String(),
			"event_type": string(eventType),
		})
	}
}

func (s *service) logRejection(ctx context.Context, tripID uuid.UUID, seatNumber int, err error) {
	reason := "INTERNAL"
	if appErr, ok := apperrors.As(err); ok {
		reason = string(appErr.Reason)
	}
	logger.GetDefault().LogBookingRejected(ctx, tripID.String(), seatNumber, reason)
}
