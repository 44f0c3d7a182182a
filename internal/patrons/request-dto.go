package patrons

type CreatePatronRequest struct {
	Name             string           `json:"name" validate:"required,max=255"`
	Phone            string           `json:"phone" validate:"required,max=50"`
	Email            string           `json:"email" validate:"omitempty,email,max=255"`
	Address          string           `json:"address" validate:"max=500"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Notes            string           `json:"notes" validate:"max=2000"`
}

type UpdatePatronRequest struct {
	Name             *string           `json:"name" validate:"omitempty,min=1,max=255"`
	Phone            *string           `json:"phone" validate:"omitempty,min=1,max=50"`
	Email            *string           `json:"email" validate:"omitempty,email,max=255"`
	Address          *string           `json:"address" validate:"omitempty,max=500"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
	Notes            *string           `json:"notes" validate:"omitempty,max=2000"`
}

type PatronListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
}
