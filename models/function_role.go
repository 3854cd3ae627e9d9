package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FunctionRole is a job title within a restaurant (cook, waiter, cashier).
// Purely descriptive; it carries no permission weight.
type FunctionRole struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (f *FunctionRole) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
