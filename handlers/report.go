package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"shiftpoint-backend/gemini"
	"shiftpoint-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SummaryUnavailableMessage is returned in place of a generated summary when
// the language model cannot be reached.
const SummaryUnavailableMessage = "Sorry, the activity summary could not be generated right now. Please try again later."

type ReportHandler struct {
	DB      *gorm.DB
	Summary gemini.SummaryClient
}

type reportRecord struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Timestamp    string    `json:"timestamp"`
	Type         string    `json:"type"`
}

type reportTask struct {
	ID           uuid.UUID `json:"id"`
	Description  string    `json:"description"`
	AssigneeID   uuid.UUID `json:"assignee_id"`
	AssigneeName string    `json:"assignee_name"`
	Completed    bool      `json:"completed"`
}

// GetReport returns clock events and tasks with employee names resolved.
// Records referencing a deleted user keep their row with the name "Unknown".
func (h *ReportHandler) GetReport(c *gin.Context) {
	records, tasks, names, err := h.loadReportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	outRecords := make([]reportRecord, 0, len(records))
	for _, r := range records {
		outRecords = append(outRecords, reportRecord{
			ID:           r.ID,
			EmployeeID:   r.EmployeeID,
			EmployeeName: nameOrUnknown(names, r.EmployeeID),
			Timestamp:    r.Timestamp.Format("2006-01-02 15:04"),
			Type:         r.Type,
		})
	}

	outTasks := make([]reportTask, 0, len(tasks))
	for _, t := range tasks {
		outTasks = append(outTasks, reportTask{
			ID:           t.ID,
			Description:  t.Description,
			AssigneeID:   t.AssigneeID,
			AssigneeName: nameOrUnknown(names, t.AssigneeID),
			Completed:    t.Completed,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"time_records": outRecords,
		"tasks":        outTasks,
	})
}

// GenerateSummary asks the language model for a short narrative of recent
// activity. Model failures degrade to a fixed message rather than an error
// status; the report data itself is still available through GetReport.
func (h *ReportHandler) GenerateSummary(c *gin.Context) {
	records, tasks, names, err := h.loadReportData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	if h.Summary == nil {
		c.JSON(http.StatusOK, gin.H{"summary": SummaryUnavailableMessage})
		return
	}

	summary, err := h.Summary.GenerateSummary(buildSummaryPrompt(records, tasks, names))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"summary": SummaryUnavailableMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *ReportHandler) loadReportData() ([]models.TimeRecord, []models.Task, map[uuid.UUID]string, error) {
	var records []models.TimeRecord
	if err := h.DB.Order("timestamp").Find(&records).Error; err != nil {
		return nil, nil, nil, err
	}

	var tasks []models.Task
	if err := h.DB.Order("created_at").Find(&tasks).Error; err != nil {
		return nil, nil, nil, err
	}

	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		return nil, nil, nil, err
	}

	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	return records, tasks, names, nil
}

func nameOrUnknown(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return "Unknown"
}

func buildSummaryPrompt(records []models.TimeRecord, tasks []models.Task, names map[uuid.UUID]string) string {
	var b strings.Builder

	b.WriteString("You are an assistant for a restaurant manager. Write a brief summary, in plain language, of the team's recent activity based on the data below. Highlight anything a manager should follow up on.\n\n")

	b.WriteString("Clock events:\n")
	if len(records) == 0 {
		b.WriteString("- none\n")
	}
	for _, r := range records {
		fmt.Fprintf(&b, "- %s: %s at %s\n", nameOrUnknown(names, r.EmployeeID), r.Type, r.Timestamp.Format("2006-01-02 15:04"))
	}

	b.WriteString("\nTasks:\n")
	if len(tasks) == 0 {
		b.WriteString("- none\n")
	}
	for _, t := range tasks {
		status := "pending"
		if t.Completed {
			status = "completed"
		}
		fmt.Fprintf(&b, "- %q assigned to %s (%s)\n", t.Description, nameOrUnknown(names, t.AssigneeID), status)
	}

	return b.String()
}
