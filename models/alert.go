package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert kinds surfaced on the management dashboard.
const (
	AlertTaskOverdue    = "task-overdue"
	AlertEmployeeLate   = "employee-late"
	AlertEmployeeAbsent = "employee-absent"
)

// Alert is derived from live tasks and time records on every request.
// It is never persisted, so it carries no gorm tags.
type Alert struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	RelatedID uuid.UUID `json:"related_id"`
}
