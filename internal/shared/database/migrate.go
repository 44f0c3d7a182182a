package database

import (
	"saunie/internal/patrons"
	"saunie/internal/seats"
	"saunie/internal/trips"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&trips.Trip{},
		&patrons.Patron{},
		&seats.Booking{},
	)
}
