package api

import (
	"net/http"

	"stormfins/club-app/internal/domain"
	"stormfins/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the weekly schedule and training plans.
type ScheduleHandler struct {
	store *store.Store
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(st *store.Store) *ScheduleHandler {
	return &ScheduleHandler{store: st}
}

// --- Request Structs ---

type CreateEventRequest struct {
	Title     string `json:"title" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=Training Competition Meeting"`
	DayOfWeek *int   `json:"dayOfWeek" binding:"required,min=0,max=6"`
	Time      string `json:"time" binding:"required,datetime=15:04"`
}

type CreatePlanRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Focus       string `json:"focus"` // comma-separated tags
}

// --- Handler Methods ---

// ListSchedule returns the weekly schedule sorted by day and time.
func (h *ScheduleHandler) ListSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Schedule())
}

// CreateEvent adds a schedule entry.
func (h *ScheduleHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.AddScheduleEvent(domain.ScheduleEvent{
		Title:     req.Title,
		Type:      domain.EventType(req.Type),
		DayOfWeek: *req.DayOfWeek,
		Time:      req.Time,
	})
	c.Status(http.StatusCreated)
}

// DeleteEvent removes a schedule entry. The store ignores the request when
// its session is not a captain, so the handler confirms token and session
// agree before reporting success.
func (h *ScheduleHandler) DeleteEvent(c *gin.Context) {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid event id")
		return
	}
	if !requireCaptainSession(c, h.store) {
		return
	}
	h.store.DeleteScheduleEvent(eventID)
	c.Status(http.StatusNoContent)
}

// ListPlans returns the published training plans.
func (h *ScheduleHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.TrainingPlans())
}

// CreatePlan publishes a training plan. Focus areas arrive as one
// comma-separated string and are split into trimmed tags.
func (h *ScheduleHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.AddTrainingPlan(domain.TrainingPlan{
		Title:       req.Title,
		Description: req.Description,
		Focus:       domain.ParseFocusList(req.Focus),
	})
	c.Status(http.StatusCreated)
}
