package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clock event types.
const (
	RecordArrival   = "arrival"
	RecordDeparture = "departure"
)

// TimeRecord is one accepted clock-in or clock-out punch.
// Records are append-only: never edited, never deleted. Duplicate or
// out-of-order arrival/departure pairs are stored as submitted.
type TimeRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
	Type       string    `gorm:"not null" json:"type"` // arrival, departure
	Latitude   float64   `gorm:"not null" json:"latitude"`
	Longitude  float64   `gorm:"not null" json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
}

func (t *TimeRecord) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
