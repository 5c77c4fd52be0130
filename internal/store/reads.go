package store

import "stormfins/club-app/internal/domain"

// Snapshot returns a deep copy of the whole state. Consumers may hold onto
// it; it will never change underneath them.
func (s *Store) Snapshot() *domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Users returns a copy of the roster.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.state.Users...)
}

// Schedule returns a copy of the weekly schedule, sorted by day and time.
func (s *Store) Schedule() []domain.ScheduleEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ScheduleEvent(nil), s.state.Schedule...)
}

// TrainingPlans returns a copy of the published plans.
func (s *Store) TrainingPlans() []domain.TrainingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().TrainingPlans
}

// GrantedAwards returns a copy of the award history.
func (s *Store) GrantedAwards() []domain.GrantedAward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.GrantedAward(nil), s.state.GrantedAwards...)
}

// Challenges returns a copy of the published challenges.
func (s *Store) Challenges() []domain.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().Challenges
}

// Conversations returns a copy of all message threads.
func (s *Store) Conversations() map[string][]domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().Conversations
}

// Conversation returns a copy of the thread between two users, in send
// order. The pair order does not matter.
func (s *Store) Conversation(a, b int64) []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ChatMessage(nil), s.state.Conversations[domain.ConversationID(a, b)]...)
}

// UnreadCounts returns a copy of the pending-message counters keyed by user
// id.
func (s *Store) UnreadCounts() map[int64]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[int64]int, len(s.state.UnreadCounts))
	for id, n := range s.state.UnreadCounts {
		counts[id] = n
	}
	return counts
}
