package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Description     string     `json:"description"`
	AssigneeID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"assignee_id"`
	StartTime       string     `gorm:"not null;default:'09:00'" json:"start_time"` // HH:MM
	EndTime         string     `gorm:"not null;default:'10:00'" json:"end_time"`   // HH:MM
	DeadlineMinutes int        `gorm:"default:60" json:"deadline_minutes"`
	Frequency       string     `gorm:"default:once" json:"frequency"`
	Completed       bool       `gorm:"default:false" json:"completed"`
	RestaurantID    *uuid.UUID `gorm:"type:uuid;index" json:"restaurant_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
