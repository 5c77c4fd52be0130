package api

import (
	"net/http"

	"stormfins/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// AwardHandler serves the award catalog, granted awards and challenges.
type AwardHandler struct {
	store *store.Store
}

// NewAwardHandler creates a new AwardHandler.
func NewAwardHandler(st *store.Store) *AwardHandler {
	return &AwardHandler{store: st}
}

// --- Request Structs ---

type GrantAwardRequest struct {
	UserID  int64  `json:"userId" binding:"required"`
	AwardID int64  `json:"awardId" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

type CreateChallengeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Points      int    `json:"points" binding:"required,gt=0"`
}

// --- Handler Methods ---

// Catalog returns the predefined award templates.
func (h *AwardHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AwardCatalog())
}

// ListGranted returns the award history.
func (h *AwardHandler) ListGranted(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GrantedAwards())
}

// Grant records a captain granting a catalog award to a user.
func (h *AwardHandler) Grant(c *gin.Context) {
	var req GrantAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !h.store.GrantAward(req.UserID, req.AwardID, req.Reason) {
		abortWithError(c, http.StatusForbidden, "Grant refused")
		return
	}
	c.Status(http.StatusCreated)
}

// ListChallenges returns the published challenges.
func (h *AwardHandler) ListChallenges(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Challenges())
}

// CreateChallenge publishes a challenge. The store ignores the request when
// its session is not a captain, so the handler confirms token and session
// agree before reporting success.
func (h *AwardHandler) CreateChallenge(c *gin.Context) {
	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !requireCaptainSession(c, h.store) {
		return
	}
	h.store.AddChallenge(req.Title, req.Description, req.Points)
	c.Status(http.StatusCreated)
}

// CompleteChallenge marks a challenge complete for the session user. A
// repeat completion is accepted but awards nothing.
func (h *AwardHandler) CompleteChallenge(c *gin.Context) {
	challengeID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid challenge id")
		return
	}
	if !h.store.CompleteChallenge(challengeID) {
		abortWithError(c, http.StatusNotFound, "Unknown challenge or no active session")
		return
	}
	c.Status(http.StatusOK)
}
