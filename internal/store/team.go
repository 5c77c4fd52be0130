package store

import (
	"strings"

	"stormfins/club-app/internal/domain"
)

// CreateCaptain registers a new active captain with the given credentials.
// Returns false when another user already holds the name (case-insensitive).
func (s *Store) CreateCaptain(name, pin, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(name)
	if findUserByName(s.state.Users, trimmed) != -1 {
		return false
	}
	next := s.state.Clone()
	next.Users = append(next.Users, domain.User{
		ID:       s.nextID(),
		Name:     trimmed,
		PIN:      pin,
		Password: password,
		Role:     domain.RoleCaptain,
		IsActive: true,
		Age:      30,
		Stats:    domain.Stats{},
		Points:   0,
	})
	s.commit("createCaptain", next)
	return true
}

// AddSwimmer adds an inactive player to the roster. The swimmer cannot log
// in until activated with a password. Silently no-ops on a duplicate name.
func (s *Store) AddSwimmer(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(name)
	if findUserByName(s.state.Users, trimmed) != -1 {
		return
	}
	next := s.state.Clone()
	next.Users = append(next.Users, domain.User{
		ID:       s.nextID(),
		Name:     trimmed,
		Role:     domain.RolePlayer,
		IsActive: false,
		Age:      18,
		Stats:    domain.Stats{},
		Points:   0,
	})
	s.commit("addSwimmer", next)
}

// ActivateSwimmer performs the one-time activation of an inactive player:
// sets the password and flips the active flag. Returns false when no
// inactive player with that name exists (including when it was already
// activated).
func (s *Store) ActivateSwimmer(name, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(name)
	idx := -1
	for i := range s.state.Users {
		u := &s.state.Users[i]
		if strings.EqualFold(u.Name, trimmed) && u.IsPlayer() && !u.IsActive {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	next := s.state.Clone()
	next.Users[idx].Password = password
	next.Users[idx].IsActive = true
	s.commit("activateSwimmer", next)
	return true
}

// DeleteUser removes a user from the roster. Only a captain session may
// delete, and the PIN must match the caller's own stored PIN.
func (s *Store) DeleteUser(userID int64, pin string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.captainPINMatches(pin) {
		return false
	}
	next := s.state.Clone()
	users := next.Users[:0]
	for _, u := range next.Users {
		if u.ID != userID {
			users = append(users, u)
		}
	}
	next.Users = users
	s.commit("deleteUser", next)
	return true
}

// AwardBonusPoints adds points to a user outside the award catalog. Captain
// session with matching own PIN required.
func (s *Store) AwardBonusPoints(userID int64, points int, pin string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.captainPINMatches(pin) {
		return false
	}
	next := s.state.Clone()
	if u := next.FindUserByID(userID); u != nil {
		u.Points += points
	}
	s.commit("awardBonusPoints", next)
	return true
}

// UpdateUserAvatar replaces a user's avatar payload (inline data URL or an
// object storage URL). When the user is the current session, the session
// snapshot is updated too so the UI reflects the change immediately.
func (s *Store) UpdateUserAvatar(userID int64, avatar string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if u := next.FindUserByID(userID); u != nil {
		u.Avatar = avatar
	}
	if next.CurrentUser != nil && next.CurrentUser.ID == userID {
		next.CurrentUser.Avatar = avatar
	}
	s.commit("updateUserAvatar", next)
}
