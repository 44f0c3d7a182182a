package seats

import (
	"context"
	"sort"
	"sync"
	"time"

	"saunie/internal/patrons"
	"saunie/internal/shared/apperrors"
	"saunie/internal/shared/utils/money"
	"saunie/internal/trips"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// memoryStore keeps no uniqueness of its own, so double bookings can only be
// prevented by the service's trip lock
type memoryStore struct {
	mu        sync.Mutex
	trips     map[uuid.UUID]*trips.Trip
	patrons   map[uuid.UUID]*patrons.Patron
	bookings  map[uuid.UUID][]Booking
	readDelay time.Duration
	insertErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		trips:    map[uuid.UUID]*trips.Trip{},
		patrons:  map[uuid.UUID]*patrons.Patron{},
		bookings: map[uuid.UUID][]Booking{},
	}
}

func (m *memoryStore) addTrip(capacity int, price money.Amount) *trips.Trip {
	m.mu.Lock()
	defer m.mu.Unlock()
	trip := &trips.Trip{
		ID:          uuid.New(),
		Destination: "Nazare",
		Date:        datatypes.Date(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		Time:        "09:00",
		BusCapacity: capacity,
		Price:       price,
	}
	m.trips[trip.ID] = trip
	return trip
}

func (m *memoryStore) addPatron(name string) *patrons.Patron {
	m.mu.Lock()
	defer m.mu.Unlock()
	patron := &patrons.Patron{ID: uuid.New(), Name: name, Phone: "+351 910 000 000", Address: "Rua do Carmo 1"}
	m.patrons[patron.ID] = patron
	return patron
}

func (m *memoryStore) count(tripID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings[tripID])
}

func (m *memoryStore) GetTrip(_ context.Context, tripID uuid.UUID) (*trips.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	trip, ok := m.trips[tripID]
	if !ok {
		return nil, apperrors.New(apperrors.ErrUnknownTrip, "trip %s not found", tripID)
	}
	copied := *trip
	return &copied, nil
}

func (m *memoryStore) ListBookings(_ context.Context, tripID uuid.UUID) ([]Booking, error) {
	m.mu.Lock()
	out := make([]Booking, len(m.bookings[tripID]))
	copy(out, m.bookings[tripID])
	m.mu.Unlock()

	if m.readDelay > 0 {
		time.Sleep(m.readDelay)
	}
	return out, nil
}

func (m *memoryStore) InsertBooking(_ context.Context, booking *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	m.bookings[booking.TripID] = append(m.bookings[booking.TripID], *booking)
	return nil
}

func (m *memoryStore) DeleteBooking(_ context.Context, tripID uuid.UUID, seatNumber int) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.bookings[tripID]
	for i, b := range list {
		if b.SeatNumber == seatNumber {
			m.bookings[tripID] = append(list[:i:i], list[i+1:]...)
			return &b, nil
		}
	}
	return nil, apperrors.New(apperrors.ErrBookingNotFound, "seat %d has no booking", seatNumber)
}

func (m *memoryStore) GetPatron(_ context.Context, patronID uuid.UUID) (*patrons.Patron, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	patron, ok := m.patrons[patronID]
	if !ok {
		return nil, apperrors.New(apperrors.ErrPatronNotFound, "patron %s not found", patronID)
	}
	copied := *patron
	return &copied, nil
}

func (m *memoryStore) CountPatronBookings(_ context.Context, patronID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, list := range m.bookings {
		for _, b := range list {
			if b.PatronID == patronID {
				n++
			}
		}
	}
	return n, nil
}

func (m *memoryStore) ListPatronBookings(_ context.Context, patronID uuid.UUID) ([]PatronBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []PatronBooking
	for tripID, list := range m.bookings {
		for _, b := range list {
			if b.PatronID == patronID {
				out = append(out, PatronBooking{
					BookingID:   b.ID,
					TripID:      tripID,
					SeatNumber:  b.SeatNumber,
					BookingDate: b.BookingDate,
					Destination: m.trips[tripID].Destination,
				})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatNumber < out[j].SeatNumber })
	return out, nil
}

func (m *memoryStore) MaxBookedSeat(_ context.Context, tripID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	highest := 0
	for _, b := range m.bookings[tripID] {
		if b.SeatNumber > highest {
			highest = b.SeatNumber
		}
	}
	return highest, nil
}

func (m *memoryStore) CountBookingsByTrip(_ context.Context, tripIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[uuid.UUID]int{}
	for _, id := range tripIDs {
		out[id] = len(m.bookings[id])
	}
	return out, nil
}
