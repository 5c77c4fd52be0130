package api

import (
	"net/http"
	"strconv"

	"stormfins/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves roster management and the transient alert banner.
type TeamHandler struct {
	store *store.Store
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(st *store.Store) *TeamHandler {
	return &TeamHandler{store: st}
}

// --- Request Structs ---

type AddSwimmerRequest struct {
	Name string `json:"name" binding:"required"`
}

type DeleteUserRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}

type BonusPointsRequest struct {
	Points int    `json:"points" binding:"required,gt=0"`
	PIN    string `json:"pin" binding:"required,len=4,numeric"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

type AlertRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- Handler Methods ---

// ListUsers returns the roster without credentials.
func (h *TeamHandler) ListUsers(c *gin.Context) {
	users := h.store.Users()
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = MapUserToResponse(u)
	}
	c.JSON(http.StatusOK, resp)
}

// AddSwimmer adds an inactive player to the roster. Duplicate names are a
// silent no-op in the store, so this always reports accepted.
func (h *TeamHandler) AddSwimmer(c *gin.Context) {
	var req AddSwimmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.AddSwimmer(req.Name)
	c.Status(http.StatusAccepted)
}

// DeleteUser removes a roster member. The PIN must be the calling captain's
// own stored PIN.
func (h *TeamHandler) DeleteUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !h.store.DeleteUser(userID, req.PIN) {
		abortWithError(c, http.StatusForbidden, "PIN confirmation failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// AwardBonusPoints adds bonus points to a user after PIN confirmation.
func (h *TeamHandler) AwardBonusPoints(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req BonusPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !h.store.AwardBonusPoints(userID, req.Points, req.PIN) {
		abortWithError(c, http.StatusForbidden, "PIN confirmation failed")
		return
	}
	c.Status(http.StatusOK)
}

// UpdateAvatar replaces a user's avatar payload. Users may only change
// their own avatar.
func (h *TeamHandler) UpdateAvatar(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	callerID, err := getUserIDFromContext(c)
	if err != nil || callerID != userID {
		abortWithError(c, http.StatusForbidden, "You can only change your own avatar")
		return
	}
	var req UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.UpdateUserAvatar(userID, req.Avatar)
	c.Status(http.StatusOK)
}

// GetAlert returns the current banner message, if any.
func (h *TeamHandler) GetAlert(c *gin.Context) {
	message, ok := h.store.Alert()
	c.JSON(http.StatusOK, gin.H{"message": message, "active": ok})
}

// SendAlert sets the banner message.
func (h *TeamHandler) SendAlert(c *gin.Context) {
	var req AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.store.SendAlert(req.Message)
	c.Status(http.StatusOK)
}

// DismissAlert clears the banner.
func (h *TeamHandler) DismissAlert(c *gin.Context) {
	h.store.DismissAlert()
	c.Status(http.StatusNoContent)
}

// parseIDParam reads a numeric id path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
