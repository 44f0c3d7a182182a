package patrons

type PaginatedPatrons struct {
	Patrons    []Patron `json:"patrons"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	Total      int64    `json:"total"`
	TotalPages int      `json:"totalPages"`
}
