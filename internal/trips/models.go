package trips

import (
	"time"

	"saunie/internal/shared/utils/money"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultBusCapacity = 45

// DriverInfo is stored inline on the trip row with a driver_ prefix
type DriverInfo struct {
	Name    string `json:"name" gorm:"size:255"`
	Phone   string `json:"phone" gorm:"size:50"`
	License string `json:"license" gorm:"size:100"`
}

// BusInfo is stored inline on the trip row with a bus_ prefix. Capacity is
// the vehicle's nominal size and lives in bus_seat_count; the bookable seat
// count is Trip.BusCapacity.
type BusInfo struct {
	Number   string `json:"number" gorm:"size:50"`
	Model    string `json:"model" gorm:"size:100"`
	Capacity int    `json:"capacity" gorm:"column:seat_count"`
}

type Trip struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Destination       string         `json:"destination" gorm:"not null;size:255"`
	Date              datatypes.Date `json:"date" gorm:"not null;index"`
	Time              string         `json:"time" gorm:"not null;size:5"`
	ReturnTime        string         `json:"returnTime" gorm:"size:5"`
	BusCapacity       int            `json:"busCapacity" gorm:"not null;check:bus_capacity > 0"`
	Price             money.Amount   `json:"price" gorm:"type:numeric(10,2);not null;check:price >= 0"`
	DepartureLocation string         `json:"departureLocation" gorm:"not null;size:255"`
	Description       string         `json:"description" gorm:"type:text"`
	Driver            DriverInfo     `json:"driver" gorm:"embedded;embeddedPrefix:driver_"`
	Bus               BusInfo        `json:"bus" gorm:"embedded;embeddedPrefix:bus_"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns the id client-side so the row never depends on a database extension
func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// DateTime returns the calendar date as a time value
func (t *Trip) DateTime() time.Time {
	return time.Time(t.Date)
}
