package seats

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"saunie/internal/notifications"
	"saunie/internal/shared/apperrors"

	"github.com/google/uuid"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*notifications.BookingEvent
	err    error
}

func (p *recordingPublisher) PublishBookingEvent(_ context.Context, event *notifications.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestService(store Store) (*service, *testClock) {
	clock := &testClock{t: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)}
	svc := NewService(store, nil, time.Second).(*service)
	svc.now = clock.now
	return svc, clock
}

func book(svc Service, tripID uuid.UUID, seat int, patronID uuid.UUID) (*BookingResponse, error) {
	return svc.BookSeat(context.Background(), tripID, BookingRequest{SeatNumber: seat, PatronID: patronID.String()})
}

func TestBookSeatOutsideCapacityIsInvalid(t *testing.T) {
	store := newMemoryStore()
	trip := store.addTrip(10, 20)
	patron := store.addPatron("P")
	svc, _ := newTestService(store)

	for _, seat := range []int{0, -1, 11, 1000} {
		_, err := book(svc, trip.ID, seat, patron.ID)
		if !errors.Is(err, apperrors.ErrInvalidSeat) {
			t.Errorf("seat %d: got %v, want InvalidSeat", seat, err)
		}
	}
	if n := store.count(trip.ID); n != 0 {
		t.Errorf("bookings = %d, want 0", n)
	}
}

func TestBookSameSeatTwice(t *testing.T) {
	store := newMemoryStore()
	trip := store.addTrip(10, 20)
	p, q := store.addPatron("P"), store.addPatron("Q")
	svc, _ := newTestService(store)

	if _, err := book(svc, trip.ID, 3, p.ID); err != nil {
		t.Fatal(err)
	}
	_, err := book(svc, trip.ID, 3, q.ID)
	if !errors.Is(err, apperrors.ErrSeatTaken) {
		t.Fatalf("second booking: got %v, want SeatTaken", err)
	}
	if n := store.count(trip.ID); n != 1 {
		t.Errorf("bookings = %d, want 1", n)
	}
}

func TestCancelFreeSeatIsNotFound(t *testing.T) {
	store := newMemoryStore()
	trip := store.addTrip(10, 20)
	patron := store.addPatron("P")
	svc, _ := newTestService(store)

	if _, err := book(svc, trip.ID, 1, patron.ID); err != nil {
		t.Fatal(err)
	}

	_, err := svc.CancelBooking(context.Background(), trip.ID, 2)
	if !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Fatalf("got %v, want BookingNotFound", err)
	}
	if n := store.count(trip.ID); n != 1 {
		t.Errorf("bookings = %d, want 1", n)
	}

	if _, err := svc.CancelBooking(context.Background(), trip.ID, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CancelBooking(context.Background(), trip.ID, 1); !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Errorf("cancelling twice: got %v, want BookingNotFound", err)
	}
}

func TestBookSeatFiveFiguresAndSeatMap(t *testing.T) {
	store := newMemoryStore()
	trip := store.addTrip(10, 20)
	patron := store.addPatron("P")
	svc, _ := newTestService(store)

	resp, err := book(svc, trip.ID, 5, patron.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Seat.IsBooked || resp.Seat.SeatNumber != 5 || resp.Seat.Patron.ID != patron.ID {
		t.Errorf("seat = %+v", resp.Seat)
	}

	seatMap, err := svc.GetSeatMap(context.Background(), trip.ID)
	if err != nil {
		t.Fatal(err)
	}
	entry := seatMap.SeatMap[4]
	if !entry.IsBooked || entry.Patron == nil || entry.Patron.ID != patron.ID {
		t.Errorf("entry 5 = %+v", entry)
	}
	if seatMap.Summary.Revenue != 20 || seatMap.Summary.OccupancyPercent != 10 {
		t.Errorf("summary = %+v", seatMap.Summary)
	}
}

func TestFullTrip(t *testing.T) {
	store := newMemoryStore()
	trip := store.addTrip(10, 20)
	patron := store.addPatron("P")
	svc, _ := newTestService(store)

	for seat := 1; seat <= 10; seat++ {
		if _, err := book(svc, trip.ID, seat, patron.ID); err != nil {
			t.Fatalf("seat %d: %v", seat, err)
		}
	}

	if _, err := book(svc, trip.ID, 11, patron.ID); !errors.Is(err, apperrors.ErrInvalidSeat) {
		t.Errorf("seat 11: got %v, want InvalidSeat", err)
	}
	for seat := 1; seat <= 10; seat++ {
		if _, err := book(svc, trip.ID, seat, patron.ID); !errors.Is(err, apperrors.ErrSeatTaken) {
			t.Errorf("seat %d: got %v, want SeatTaken", seat, err)
		}
	}

	seatMap, err := svc.GetSeatMap(context.Background(), trip.ID)
	if err != nil {
		t.Fatal(err)
	}
	if seatMap.Summary.OccupancyPercent != 100 || seatMap.Summary.AvailableSeats != 0 {
		t.Errorf("summary = %+v", seatMap.Summary)
	}
}

func TestCancelThenRebookForAnotherPatron(t *testing.T) {
	store := newMemoryStore()
	trip := store.addTrip(10, 20)
	p, q := store.addPatron("P"), store.addPatron("Q")
	svc, clock := newTestService(store)

	first, err := book(svc, trip.ID, 5, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CancelBooking(context.Background(), trip.ID, 5); err != nil {
		t.Fatal(err)
	}

	clock.advance(time.Hour)
	second, err := book(svc, trip.ID, 5, q.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Booking.BookingDate.After(first.Booking.BookingDate) {
		t.Error("rebooking must carry a new booking date")
	}
	if second.Booking.ID == first.Booking.ID {
		t.Error("rebooking must create a fresh booking")
	}

	seatMap, err := svc.GetSeatMap(context.Background(), trip.ID)
	if err != nil {
		t.Fatal(err)
	}
	if seatMap.SeatMap[4].Patron.ID != q.ID {
		t.Errorf("seat 5 patron = %v, want Q", seatMap.SeatMap[4].Patron.ID)
	}
}

func TestOccupancyOfFreshAndSingleSeatTrips(t *testing.T) {
	store := newMemoryStore()
	fresh := store.addTrip(30, 15)
	single := store.addTrip(1, 15)
	patron := store.addPatron("P")
	svc, _ := newTestService(store)

	seatMap, err := svc.GetSeatMap(context.Background(), fresh.ID)
	if err != nil {
		t.Fatal(err)
	}
	if seatMap.Summary.OccupancyPercent != 0 || len(seatMap.SeatMap) != 30 {
		t.Errorf("fresh trip summary = %+v", seatMap.Summary)
	}

	if _, err := book(svc, single.ID, 1, patron.ID); err != nil {
		t.Fatal(err)
	}
	seatMap, err = svc.GetSeatMap(context.Background(), single.ID)
	if err != nil {
		t.Fatal(err)
	}
	if seatMap.Summary.OccupancyPercent != 100 {
		t.Errorf("single seat occupancy = %d", seatMap.Summary.OccupancyPercent)
	}
}

func TestBookSeatUnknownTripAndPatron(t *testing.T) {
	store := newMemoryStore()
	trip := store.addTrip(10, 20)
	svc, _ := newTestService(store)

	if _, err := book(svc, uuid.New(), 1, uuid.New()); !errors.Is(err, apperrors.ErrUnknownTrip) {
		t.Errorf("got %v, want UnknownTrip", err)
	}
	if _, err := book(svc, trip.ID, 1, uuid.New()); !errors.Is(err, apperrors.ErrPatronNotFound) {
		t.Errorf("got %v, want PatronNotFound", err)
	}
	if _, err := svc.BookSeat(context.Background(), trip.ID, BookingRequest{SeatNumber: 1}); !errors.Is(err, apperrors.ErrMissingPatron) {
		t.Errorf("got %v, want MissingPatron", err)
	}
	if n := store.count(trip.ID); n != 0 {
		t.Errorf("bookings = %d, want 0", n)
	}
}

func TestConcurrentBookingsOfOneSeat(t *testing.T) {
	store := newMemoryStore()
	store.readDelay = 2 * time.Millisecond
	trip := store.addTrip(10, 20)
	svc, _ := newTestService(store)
	svc.lockWait = 5 * time.Second

	const callers = 20
	patronIDs := make([]uuid.UUID, callers)
	for i := range patronIDs {
		patronIDs[i] = store.addPatron("caller").ID
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		taken     int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(patronID uuid.UUID) {
			defer wg.Done()
			_, err := book(svc, trip.ID, 7, patronID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, apperrors.ErrSeatTaken):
				taken++
			default:
				t.Errorf("unexpected error %v", err)
			}
		}(patronIDs[i])
	}
	wg.Wait()

	if successes != 1 || taken != callers-1 {
		t.Errorf("successes = %d, taken = %d", successes, taken)
	}
	if n := store.count(trip.ID); n != 1 {
		t.Errorf("bookings = %d, want 1", n)
	}
}

func TestStorageConflictIsSurfaced(t *testing.T) {
	store := newMemoryStore()
	store.insertErr = apperrors.Wrap(apperrors.ErrConcurrentBooking, errors.New("duplicate key"))
	trip := store.addTrip(10, 20)
	patron := store.addPatron("P")
	publisher := &recordingPublisher{}
	svc, _ := newTestService(store)
	svc.SetPublisher(publisher)

	_, err := book(svc, trip.ID, 2, patron.ID)
	if !apperrors.IsConflict(err) || !errors.Is(err, apperrors.ErrConcurrentBooking) {
		t.Fatalf("got %v, want ConcurrentBooking conflict", err)
	}
	if len(publisher.events) != 0 {
		t.Error("failed booking must not publish an event")
	}
}

func TestMutationsPublishEvents(t *testing.T) {
	store := newMemoryStore()
	trip := store.addTrip(10, 20)
	patron := store.addPatron("P")
	publisher := &recordingPublisher{err: errors.New("broker down")}
	svc, _ := newTestService(store)
	svc.SetPublisher(publisher)

	if _, err := book(svc, trip.ID, 4, patron.ID); err != nil {
		t.Fatalf("publish failure must not fail the booking: %v", err)
	}
	if _, err := svc.CancelBooking(context.Background(), trip.ID, 4); err != nil {
		t.Fatal(err)
	}

	if len(publisher.events) != 2 {
		t.Fatalf("events = %d, want 2", len(publisher.events))
	}
	if publisher.events[0].Type != notifications.EventSeatBooked || publisher.events[1].Type != notifications.EventBookingCancelled {
		t.Errorf("event types = %s, %s", publisher.events[0].Type, publisher.events[1].Type)
	}
	if publisher.events[1].SeatNumber != 4 || publisher.events[1].PatronID != patron.ID {
		t.Errorf("cancel event = %+v", publisher.events[1])
	}
}

func TestChangeCapacity(t *testing.T) {
	store := newMemoryStore()
	trip := store.addTrip(10, 20)
	patron := store.addPatron("P")
	svc, _ := newTestService(store)

	if _, err := book(svc, trip.ID, 8, patron.ID); err != nil {
		t.Fatal(err)
	}

	applied := 0
	apply := func(context.Context) error { applied++; return nil }

	err := svc.ChangeCapacity(context.Background(), trip.ID, 7, apply)
	if !errors.Is(err, apperrors.ErrCapacityBelowBookings) {
		t.Fatalf("got %v, want CapacityBelowBookings", err)
	}
	if applied != 0 {
		t.Error("rejected change must not be applied")
	}

	if err := svc.ChangeCapacity(context.Background(), trip.ID, 8, apply); err != nil {
		t.Fatal(err)
	}
	if applied != 1 {
		t.Errorf("applied = %d", applied)
	}
}

func TestCountsAndPatronBookings(t *testing.T) {
	store := newMemoryStore()
	a, b := store.addTrip(10, 20), store.addTrip(5, 30)
	patron := store.addPatron("P")
	svc, _ := newTestService(store)

	for _, seat := range []int{1, 2} {
		if _, err := book(svc, a.ID, seat, patron.ID); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := book(svc, b.ID, 5, patron.ID); err != nil {
		t.Fatal(err)
	}

	counts, err := svc.CountBookingsByTrip(context.Background(), []uuid.UUID{a.ID, b.ID})
	if err != nil {
		t.Fatal(err)
	}
	if counts[a.ID] != 2 || counts[b.ID] != 1 {
		t.Errorf("counts = %v", counts)
	}

	held, err := svc.CountPatronBookings(context.Background(), patron.ID)
	if err != nil || held != 3 {
		t.Errorf("held = %d, err = %v", held, err)
	}

	list, err := svc.ListPatronBookings(context.Background(), patron.ID)
	if err != nil || len(list) != 3 {
		t.Errorf("list = %d, err = %v", len(list), err)
	}

	if _, err := svc.ListPatronBookings(context.Background(), uuid.New()); !apperrors.IsNotFound(err) {
		t.Errorf("unknown patron: got %v", err)
	}
}
