package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Foreign keys are added here rather than by AutoMigrate so their delete
// rules are explicit: a trip takes its bookings with it, a patron with
// bookings cannot be removed.
var constraintStatements = []struct {
	name string
	sql  string
}{
	{
		name: "fk_trip_bookings_trip",
		sql: `
		DO $$ BEGIN
			ALTER TABLE trip_bookings
			ADD CONSTRAINT fk_trip_bookings_trip
			FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE;
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$;`,
	},
	{
		name: "fk_trip_bookings_patron",
		sql: `
		DO $$ BEGIN
			ALTER TABLE trip_bookings
			ADD CONSTRAINT fk_trip_bookings_patron
			FOREIGN KEY (patron_id) REFERENCES patrons (id) ON DELETE RESTRICT;
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$;`,
	},
	{
		name: "idx_trip_bookings_patron_trip",
		sql: `
		CREATE INDEX IF NOT EXISTS idx_trip_bookings_patron_trip
		ON trip_bookings (patron_id, trip_id);`,
	},
}

// MigrateConstraints adds the referential rules bookings depend on. It is
// safe to run on every start.
func MigrateConstraints(db *gorm.DB) error {
	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt.sql).Error; err != nil {
			return fmt.Errorf("failed to apply %s: %w", stmt.name, err)
		}
	}
	return nil
}
