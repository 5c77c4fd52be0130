package api

import (
	"net/http"

	"stormfins/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves direct messaging.
type ChatHandler struct {
	store *store.Store
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(st *store.Store) *ChatHandler {
	return &ChatHandler{store: st}
}

// --- Request Structs ---

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

// --- Handler Methods ---

// ListConversations returns every message thread. Viewing the conversation
// list clears the caller's pending-message counter.
func (h *ChatHandler) ListConversations(c *gin.Context) {
	callerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify caller")
		return
	}
	h.store.ClearChatNotifications(callerID)
	c.JSON(http.StatusOK, h.store.Conversations())
}

// GetConversation returns the thread between the caller and another user.
func (h *ChatHandler) GetConversation(c *gin.Context) {
	otherID, err := parseIDParam(c, "userId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	callerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify caller")
		return
	}
	c.JSON(http.StatusOK, h.store.Conversation(callerID, otherID))
}

// SendMessage appends a direct message from the caller to the receiver.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	callerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify caller")
		return
	}
	h.store.SendDirectMessage(callerID, req.ReceiverID, req.Text)
	c.Status(http.StatusCreated)
}

// UnreadCounts returns the pending-message counters keyed by user id.
func (h *ChatHandler) UnreadCounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.UnreadCounts())
}
