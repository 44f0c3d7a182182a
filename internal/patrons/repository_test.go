package patrons

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepositoryDeleteRestrictedByBookings(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "patrons" WHERE id = $1`)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	err := NewRepository(db).Delete(context.Background(), uuid.New())
	if !errors.Is(err, apperrors.ErrPatronHasBookings) {
		t.Fatalf("expected patron-has-bookings, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "patrons" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewRepository(db).GetByID(context.Background(), uuid.New())
	if !errors.Is(err, apperrors.ErrPatronNotFound) {
		t.Fatalf("expected patron not found, got %v", err)
	}
}

func TestRepositoryListSearch(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "patrons" WHERE name ILIKE $1 OR phone ILIKE $2 OR email ILIKE $3`)).
		WithArgs("%ana%", "%ana%", "%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "patrons" WHERE name ILIKE $1 OR phone ILIKE $2 OR email ILIKE $3 ORDER BY name ASC LIMIT`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "emergency_name"}).
			AddRow(uuid.New().String(), "Ana Costa", "912", "Rui"))

	patrons, total, err := NewRepository(db).List(context.Background(), PatronListQuery{Page: 1, Limit: 20, Search: "ana"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(patrons) != 1 || patrons[0].EmergencyContact.Name != "Rui" {
		t.Errorf("unexpected result total=%d patrons=%+v", total, patrons)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
