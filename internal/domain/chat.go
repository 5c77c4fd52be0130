package domain

import (
	"fmt"
	"time"
)

// ChatMessage is one direct message. Sender name and avatar are denormalized
// at send time so old messages keep the look they were sent with.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationID derives the key for the conversation between two users.
// Participant ids are sorted ascending, so both directions of a pair land in
// the same thread.
func ConversationID(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}
