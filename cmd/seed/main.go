package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"saunie/internal/patrons"
	"saunie/internal/seats"
	"saunie/internal/shared/config"
	"saunie/internal/shared/database"
	"saunie/internal/shared/utils/money"
	"saunie/internal/trips"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeder fills an empty database with demo trips, patrons and bookings.
// Everything goes through the services so the data obeys the same rules as the API.
type Seeder struct {
	db        *database.DB
	trips     trips.Service
	patrons   patrons.Service
	seats     seats.Service
	tripIDs   []uuid.UUID
	patronIDs []uuid.UUID
}

func main() {
	fmt.Println("🌱 Starting Saunie Database Seeder...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	// the seeder never needs the cache or the distributed lock
	cfg.Redis.Enabled = false

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := NewSeeder(db, cfg)

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Console is ready for testing.")
}

func NewSeeder(db *database.DB, cfg *config.Config) *Seeder {
	seatService := seats.NewService(seats.NewRepository(db.PostgreSQL), seats.NewLocalLocker(), cfg.SeatLock.Wait)

	tripService := trips.NewService(trips.NewRepository(db.PostgreSQL))
	tripService.SetCapacityGuard(seatService)
	tripService.SetBookingCounter(seatService)

	patronService := patrons.NewService(patrons.NewRepository(db.PostgreSQL))
	patronService.SetBookingCounter(seatService)

	return &Seeder{
		db:      db,
		trips:   tripService,
		patrons: patronService,
		seats:   seatService,
	}
}

// CleanDatabase truncates every table, bookings first
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"trip_bookings",
		"patrons",
		"trips",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds trips, then patrons, then bookings across them
func (s *Seeder) SeedAll(ctx context.Context) error {
	if err := s.SeedTrips(ctx); err != nil {
		return fmt.Errorf("failed to seed trips: %w", err)
	}
	if err := s.SeedPatrons(ctx); err != nil {
		return fmt.Errorf("failed to seed patrons: %w", err)
	}
	if err := s.SeedBookings(ctx); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}
	return nil
}

func (s *Seeder) SeedTrips(ctx context.Context) error {
	fmt.Println("  Creating trips...")

	base := time.Now().AddDate(0, 0, 7)
	requests := []trips.CreateTripRequest{
		{
			Destination:       "Sintra",
			Date:              base.Format("2006-01-02"),
			Time:              "08:30",
			ReturnTime:        "18:00",
			BusCapacity:       30,
			Price:             money.Amount(25),
			DepartureLocation: "Lisbon Oriente",
			Description:       "Palaces and gardens day trip",
			Driver:            trips.DriverInfo{Name: "Rui Costa", Phone: "+351 912 000 111", License: "C-4471"},
			Bus:               trips.BusInfo{Number: "BUS-07", Model: "Setra S 415", Capacity: 30},
		},
		{
			Destination:       "Evora",
			Date:              base.AddDate(0, 0, 3).Format("2006-01-02"),
			Time:              "07:45",
			BusCapacity:       40,
			Price:             money.Amount(32.5),
			DepartureLocation: "Lisbon Sete Rios",
			Driver:            trips.DriverInfo{Name: "Ana Lopes", Phone: "+351 913 222 333"},
			Bus:               trips.BusInfo{Number: "BUS-12", Model: "Mercedes Tourismo", Capacity: 40},
		},
		{
			Destination:       "Porto",
			Date:              base.AddDate(0, 0, 10).Format("2006-01-02"),
			Time:              "06:30",
			ReturnTime:        "22:00",
			Price:             money.Amount(49.9),
			DepartureLocation: "Coimbra B",
			Description:       "Ribeira and wine cellars",
		},
		{
			Destination:       "Fatima",
			Date:              time.Now().AddDate(0, 0, -14).Format("2006-01-02"),
			Time:              "09:00",
			BusCapacity:       20,
			Price:             money.Amount(18),
			DepartureLocation: "Lisbon Oriente",
		},
	}

	for _, req := range requests {
		trip, err := s.trips.CreateTrip(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to create trip %s: %w", req.Destination, err)
		}
		s.tripIDs = append(s.tripIDs, trip.ID)
		fmt.Printf("    ✓ %s on %s (%d seats)\n", trip.Destination, req.Date, trip.BusCapacity)
	}
	return nil
}

func (s *Seeder) SeedPatrons(ctx context.Context) error {
	fmt.Println("  Creating patrons...")

	requests := []patrons.CreatePatronRequest{
		{Name: "Maria Silva", Phone: "+351 910 100 200", Email: "maria.silva@example.com", Address: "Rua Augusta 12, Lisboa"},
		{Name: "Joao Pereira", Phone: "+351 910 300 400", Email: "joao.pereira@example.com",
			EmergencyContact: patrons.EmergencyContact{Name: "Sofia Pereira", Phone: "+351 910 300 401", Relationship: "spouse"}},
		{Name: "Helena Santos", Phone: "+351 910 500 600", Notes: "Prefers front seats"},
		{Name: "Carlos Mendes", Phone: "+351 910 700 800", Email: "carlos.mendes@example.com"},
		{Name: "Ines Rocha", Phone: "+351 910 900 000", Address: "Av. da Liberdade 90, Lisboa"},
	}

	for _, req := range requests {
		patron, err := s.patrons.CreatePatron(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to create patron %s: %w", req.Name, err)
		}
		s.patronIDs = append(s.patronIDs, patron.ID)
		fmt.Printf("    ✓ %s\n", patron.Name)
	}
	return nil
}

// SeedBookings spreads patrons over the first seats of each trip
func (s *Seeder) SeedBookings(ctx context.Context) error {
	fmt.Println("  Booking seats...")

	for i, tripID := range s.tripIDs {
		for j, patronID := range s.patronIDs {
			if (i+j)%2 == 1 {
				continue
			}
			seat := j + 1
			_, err := s.seats.BookSeat(ctx, tripID, seats.BookingRequest{
				SeatNumber: seat,
				PatronID:   patronID.String(),
			})
			if err != nil {
				return fmt.Errorf("failed to book seat %d: %w", seat, err)
			}
		}
	}

	counts, err := s.seats.CountBookingsByTrip(ctx, s.tripIDs)
	if err != nil {
		return err
	}
	for _, tripID := range s.tripIDs {
		fmt.Printf("    ✓ trip %s: %d seats booked\n", tripID, counts[tripID])
	}
	return nil
}
