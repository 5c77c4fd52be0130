package store

import (
	"time"

	"stormfins/club-app/internal/domain"
)

// predefinedAwards is the static award catalog. It is configuration, not
// user data: never persisted, never mutated.
var predefinedAwards = []domain.Award{
	{ID: 1, Title: "Iron Will", Description: "For pushing through an exceptionally tough training set.", Icon: domain.IconBolt, Points: 75},
	{ID: 2, Title: "Perfect Form", Description: "Demonstrated flawless technique during practice.", Icon: domain.IconStar, Points: 50},
	{ID: 3, Title: "Team Spirit", Description: "Showed great sportsmanship and motivated others.", Icon: domain.IconHeart, Points: 50},
	{ID: 4, Title: "Milestone Breaker", Description: "Achieved a new personal best or team record.", Icon: domain.IconTrophy, Points: 100},
	{ID: 5, Title: "Punctuality King/Queen", Description: "Perfect attendance and always on time.", Icon: domain.IconDashboard, Points: 25},
	{ID: 6, Title: "The Strategist", Description: "For smart racing or excellent strategic thinking.", Icon: domain.IconTeam, Points: 60},
	{ID: 7, Title: "Mentorship Award", Description: "Helped a teammate improve or learn a new skill.", Icon: domain.IconProfile, Points: 40},
	{ID: 8, Title: "Comeback Kid", Description: "Showed incredible resilience and recovery from a setback.", Icon: domain.IconLeaderboard, Points: 80},
}

// AwardCatalog returns a copy of the predefined award templates.
func (s *Store) AwardCatalog() []domain.Award {
	return append([]domain.Award(nil), predefinedAwards...)
}

// GrantAward records a captain granting a catalog award to a user and
// atomically adds the award's points to the recipient. The catalog entry is
// embedded as a snapshot so later catalog edits do not rewrite history.
// Returns false when the session is not a captain or the award id is
// unknown.
func (s *Store) GrantAward(userID, awardID int64, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCaptainSession() {
		return false
	}
	var award *domain.Award
	for i := range predefinedAwards {
		if predefinedAwards[i].ID == awardID {
			award = &predefinedAwards[i]
			break
		}
	}
	if award == nil {
		return false
	}

	next := s.state.Clone()
	next.GrantedAwards = append(next.GrantedAwards, domain.GrantedAward{
		ID:              s.nextID(),
		Award:           *award,
		UserID:          userID,
		Reason:          reason,
		GrantedByUserID: s.state.CurrentUser.ID,
		GrantedByName:   s.state.CurrentUser.Name,
		Timestamp:       time.Now(),
	})
	if u := next.FindUserByID(userID); u != nil {
		u.Points += award.Points
	}
	s.commit("grantAward", next)
	return true
}

// AddChallenge publishes a team challenge. Silently no-ops when the session
// is not a captain.
func (s *Store) AddChallenge(title, description string, points int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCaptainSession() {
		return
	}
	next := s.state.Clone()
	next.Challenges = append(next.Challenges, domain.Challenge{
		ID:                 s.nextID(),
		Title:              title,
		Description:        description,
		Points:             points,
		CompletedByUserIDs: []int64{},
	})
	s.commit("addChallenge", next)
}

// CompleteChallenge marks the challenge complete for the session user and
// awards its points. Completion is idempotent per user: a repeat call is a
// no-op and does not award points again. Returns false when nobody is
// logged in or the challenge id is unknown.
func (s *Store) CompleteChallenge(challengeID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return false
	}
	userID := s.state.CurrentUser.ID

	idx := -1
	for i := range s.state.Challenges {
		if s.state.Challenges[i].ID == challengeID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	if s.state.Challenges[idx].CompletedBy(userID) {
		return true
	}

	next := s.state.Clone()
	ch := &next.Challenges[idx]
	ch.CompletedByUserIDs = append(ch.CompletedByUserIDs, userID)
	if u := next.FindUserByID(userID); u != nil {
		u.Points += ch.Points
	}
	s.commit("completeChallenge", next)
	return true
}
