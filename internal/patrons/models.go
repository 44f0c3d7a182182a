package patrons

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmergencyContact struct {
	Name         string `json:"name" gorm:"size:255"`
	Phone        string `json:"phone" gorm:"size:50"`
	Relationship string `json:"relationship" gorm:"size:100"`
}

type Patron struct {
	ID               uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string           `json:"name" gorm:"not null;size:255;index"`
	Phone            string           `json:"phone" gorm:"not null;size:50"`
	Email            string           `json:"email" gorm:"size:255"`
	Address          string           `json:"address" gorm:"size:500"`
	EmergencyContact EmergencyContact `json:"emergencyContact" gorm:"embedded;embeddedPrefix:emergency_"`
	Notes            string           `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (p *Patron) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Snapshot is the slice of a patron shown on an occupied seat
type Snapshot struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Address string    `json:"address,omitempty"`
}

func (p *Patron) Snapshot() *Snapshot {
	return &Snapshot{
		ID:      p.ID,
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address,
	}
}
