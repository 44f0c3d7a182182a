package seats

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"saunie/internal/shared/apperrors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	return db, mock
}

func TestRepositoryInsertDuplicateSeatIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "trip_bookings"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"idx_trip_seat\""})
	mock.ExpectRollback()

	err := NewRepository(db).InsertBooking(context.Background(), &Booking{
		TripID:      uuid.New(),
		SeatNumber:  4,
		PatronID:    uuid.New(),
		BookingDate: time.Now(),
	})
	if !errors.Is(err, apperrors.ErrConcurrentBooking) || !apperrors.IsConflict(err) {
		t.Fatalf("got %v, want ConcurrentBooking", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepositoryInsertBooking(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "trip_bookings" ("id","trip_id","seat_number","patron_id","booking_date")`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	booking := &Booking{TripID: uuid.New(), SeatNumber: 1, PatronID: uuid.New(), BookingDate: time.Now()}
	if err := NewRepository(db).InsertBooking(context.Background(), booking); err != nil {
		t.Fatal(err)
	}
	if booking.ID == uuid.Nil {
		t.Error("booking id should be assigned before insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepositoryDeleteMissingBooking(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM "trip_bookings" WHERE trip_id = $1 AND seat_number = $2 RETURNING *`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "seat_number", "patron_id", "booking_date"}))
	mock.ExpectCommit()

	_, err := NewRepository(db).DeleteBooking(context.Background(), uuid.New(), 3)
	if !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Fatalf("got %v, want BookingNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepositoryDeleteBookingReturnsRow(t *testing.T) {
	db, mock := newMockDB(t)
	tripID, patronID := uuid.New(), uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM "trip_bookings"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "seat_number", "patron_id", "booking_date"}).
			AddRow(uuid.NewString(), tripID.String(), 3, patronID.String(), time.Now()))
	mock.ExpectCommit()

	booking, err := NewRepository(db).DeleteBooking(context.Background(), tripID, 3)
	if err != nil {
		t.Fatal(err)
	}
	if booking.PatronID != patronID || booking.SeatNumber != 3 {
		t.Errorf("booking = %+v", booking)
	}
}

func TestRepositoryGetTripNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "trips" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := NewRepository(db).GetTrip(context.Background(), uuid.New()); !errors.Is(err, apperrors.ErrUnknownTrip) {
		t.Fatalf("got %v, want UnknownTrip", err)
	}
}

func TestRepositoryMaxBookedSeat(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(seat_number), 0) FROM "trip_bookings" WHERE trip_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(12))

	highest, err := NewRepository(db).MaxBookedSeat(context.Background(), uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if highest != 12 {
		t.Errorf("highest = %d", highest)
	}
}

func TestRepositoryCountBookingsByTrip(t *testing.T) {
	db, mock := newMockDB(t)
	a, b := uuid.New(), uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT trip_id, COUNT(*) AS booked FROM "trip_bookings" WHERE trip_id IN ($1,$2) GROUP BY "trip_id"`)).
		WillReturnRows(sqlmock.NewRows([]string{"trip_id", "booked"}).AddRow(a.String(), 4))

	counts, err := NewRepository(db).CountBookingsByTrip(context.Background(), []uuid.UUID{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if counts[a] != 4 || counts[b] != 0 {
		t.Errorf("counts = %v", counts)
	}

	empty, err := NewRepository(db).CountBookingsByTrip(context.Background(), nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("empty = %v, err = %v", empty, err)
	}
}
