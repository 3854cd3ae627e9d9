package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Access roles, in descending privilege.
const (
	RoleOwner    = "owner"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Recurrence values shared by employee schedules and tasks.
const (
	RecurrenceDaily    = "daily"
	RecurrenceWeekly   = "weekly"
	RecurrenceBiweekly = "biweekly"
	RecurrenceMonthly  = "monthly"
	RecurrenceOnce     = "once"
)

func IsValidRecurrence(r string) bool {
	switch r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly, RecurrenceOnce:
		return true
	}
	return false
}

type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string     `json:"name"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Password      string     `gorm:"not null" json:"-"`
	Role          string     `gorm:"default:employee" json:"role"` // owner, manager, employee
	RestaurantID  *uuid.UUID `gorm:"type:uuid;index" json:"restaurant_id,omitempty"`
	ScheduleStart string     `json:"schedule_start,omitempty"` // HH:MM
	ScheduleEnd   string     `json:"schedule_end,omitempty"`   // HH:MM
	Recurrence    string     `json:"recurrence,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
