package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"shiftpoint-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	lateGraceMinutes   = 15
	absentAfterMinutes = 120
)

// AlertHandler derives operational alerts on demand. Alerts are computed
// from the current state of tasks and clock events, never stored.
type AlertHandler struct {
	DB *gorm.DB
}

func (h *AlertHandler) GetAlerts(c *gin.Context) {
	now := time.Now()

	var tasks []models.Task
	if err := h.DB.Where("completed = ?", false).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	var users []models.User
	if err := h.DB.Where("role <> ?", models.RoleOwner).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	alerts := make([]models.Alert, 0)

	for _, task := range tasks {
		start, ok := todayAt(now, task.StartTime)
		if !ok {
			continue
		}
		deadline := start.Add(time.Duration(task.DeadlineMinutes) * time.Minute)
		if now.After(deadline) {
			assignee := "an employee"
			var user models.User
			if err := h.DB.Select("name").Where("id = ?", task.AssigneeID).First(&user).Error; err == nil {
				assignee = user.Name
			}
			alerts = append(alerts, models.Alert{
				ID:        task.ID,
				Type:      models.AlertTaskOverdue,
				Message:   fmt.Sprintf("Task %q assigned to %s is past its deadline", task.Description, assignee),
				Timestamp: deadline,
				RelatedID: task.ID,
			})
		}
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, user := range users {
		start, ok := todayAt(now, user.ScheduleStart)
		if !ok || !scheduledToday(user, now) {
			continue
		}

		var arrival models.TimeRecord
		err := h.DB.Where("employee_id = ? AND type = ? AND timestamp >= ?", user.ID, models.RecordArrival, dayStart).
			Order("timestamp").First(&arrival).Error

		switch {
		case err == nil:
			if arrival.Timestamp.After(start.Add(lateGraceMinutes * time.Minute)) {
				alerts = append(alerts, models.Alert{
					ID:        user.ID,
					Type:      models.AlertEmployeeLate,
					Message:   fmt.Sprintf("%s clocked in at %s, after their %s shift start", user.Name, arrival.Timestamp.Format("15:04"), user.ScheduleStart),
					Timestamp: arrival.Timestamp,
					RelatedID: user.ID,
				})
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if now.After(start.Add(absentAfterMinutes * time.Minute)) {
				alerts = append(alerts, models.Alert{
					ID:        user.ID,
					Type:      models.AlertEmployeeAbsent,
					Message:   fmt.Sprintf("%s has not clocked in for their %s shift", user.Name, user.ScheduleStart),
					Timestamp: start,
					RelatedID: user.ID,
				})
			} else if now.After(start.Add(lateGraceMinutes * time.Minute)) {
				alerts = append(alerts, models.Alert{
					ID:        user.ID,
					Type:      models.AlertEmployeeLate,
					Message:   fmt.Sprintf("%s has not clocked in yet for their %s shift", user.Name, user.ScheduleStart),
					Timestamp: start,
					RelatedID: user.ID,
				})
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
			return
		}
	}

	c.JSON(http.StatusOK, alerts)
}

// scheduledToday reports whether the employee's recurrence places a shift
// on now's date. The hire date anchors weekly and longer cycles.
func scheduledToday(user models.User, now time.Time) bool {
	created := user.CreatedAt.In(now.Location())
	switch user.Recurrence {
	case models.RecurrenceWeekly:
		return now.Weekday() == created.Weekday()
	case models.RecurrenceBiweekly:
		if now.Weekday() != created.Weekday() {
			return false
		}
		anchor := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, now.Location())
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		days := int(today.Sub(anchor).Hours() / 24)
		return (days/7)%2 == 0
	case models.RecurrenceMonthly:
		return now.Day() == created.Day()
	case models.RecurrenceOnce:
		return now.Year() == created.Year() && now.YearDay() == created.YearDay()
	default:
		return true
	}
}

// todayAt resolves an HH:MM clock time to an instant on now's date.
func todayAt(now time.Time, hhmm string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), true
}
