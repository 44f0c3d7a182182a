package trips

import "saunie/internal/shared/utils/money"

const dateLayout = "2006-01-02"

type CreateTripRequest struct {
	Destination       string       `json:"destination" validate:"required,max=255"`
	Date              string       `json:"date" validate:"required,datetime=2006-01-02"`
	Time              string       `json:"time" validate:"required,datetime=15:04"`
	ReturnTime        string       `json:"returnTime" validate:"omitempty,datetime=15:04"`
	BusCapacity       int          `json:"busCapacity" validate:"omitempty,min=1,max=60"`
	Price             money.Amount `json:"price" validate:"min=0"`
	DepartureLocation string       `json:"departureLocation" validate:"required,max=255"`
	Description       string       `json:"description" validate:"max=2000"`
	Driver            DriverInfo   `json:"driver"`
	Bus               BusInfo      `json:"bus"`
}

// UpdateTripRequest applies only the fields that are present
type UpdateTripRequest struct {
	Destination       *string       `json:"destination" validate:"omitempty,min=1,max=255"`
	Date              *string       `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time              *string       `json:"time" validate:"omitempty,datetime=15:04"`
	ReturnTime        *string       `json:"returnTime" validate:"omitempty,datetime=15:04"`
	BusCapacity       *int          `json:"busCapacity" validate:"omitempty,min=1,max=60"`
	Price             *money.Amount `json:"price" validate:"omitempty,min=0"`
	DepartureLocation *string       `json:"departureLocation" validate:"omitempty,min=1,max=255"`
	Description       *string       `json:"description" validate:"omitempty,max=2000"`
	Driver            *DriverInfo   `json:"driver"`
	Bus               *BusInfo      `json:"bus"`
}

type TripListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
}
