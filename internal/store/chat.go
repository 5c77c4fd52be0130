package store

import (
	"time"

	"stormfins/club-app/internal/domain"
)

// SendDirectMessage appends a message to the conversation between sender and
// receiver, creating the thread on first contact. The receiver's unread
// counter is incremented. Sender name and avatar are snapshotted onto the
// message. Silently no-ops when the sender does not exist.
func (s *Store) SendDirectMessage(senderID, receiverID int64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender := s.state.FindUserByID(senderID)
	if sender == nil {
		return
	}

	convID := domain.ConversationID(senderID, receiverID)
	msg := domain.ChatMessage{
		ID:        s.nextID(),
		UserID:    senderID,
		UserName:  sender.Name,
		Avatar:    sender.Avatar,
		Text:      text,
		Timestamp: time.Now(),
	}

	next := s.state.Clone()
	next.Conversations[convID] = append(next.Conversations[convID], msg)
	next.UnreadCounts[receiverID]++
	s.commit("sendDirectMessage", next)
}

// ClearChatNotifications removes the user's pending-message counter, called
// when the user views their conversation list.
func (s *Store) ClearChatNotifications(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	delete(next.UnreadCounts, userID)
	s.commit("clearChatNotifications", next)
}
