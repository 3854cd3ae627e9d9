package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	// Location is captured from the device at creation and never edited.
	Name      string    `gorm:"not null" json:"name"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	OpenTime  string    `gorm:"not null;default:'09:00'" json:"open_time"`
	CloseTime string    `gorm:"not null;default:'22:00'" json:"close_time"`
	DaysOpen  []string  `gorm:"serializer:json" json:"days_open"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
