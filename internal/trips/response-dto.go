package trips

import "saunie/internal/analytics"

// TripResponse is a trip plus its booking figures
type TripResponse struct {
	Trip
	Summary analytics.Summary `json:"summary"`
}

type PaginatedTrips struct {
	Trips      []TripResponse `json:"trips"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"totalPages"`
}
