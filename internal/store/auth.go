package store

import (
	"strings"

	"stormfins/club-app/internal/domain"
)

// Login authenticates a user by name (case-insensitive) and role. Captains
// must present both their PIN and password; players only their password.
// Inactive users can never log in. On success the user becomes the store's
// current session. Credentials are stored and compared in plaintext for
// wire-compatibility with existing remote documents.
//
// The session is process-local state, so a successful login is not pushed to
// the persistence backends.
func (s *Store) Login(name, pinOrPassword string, role domain.Role, captainPassword string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(name)
	var user *domain.User
	for i := range s.state.Users {
		u := &s.state.Users[i]
		if strings.EqualFold(u.Name, trimmed) && u.Role == role {
			user = u
			break
		}
	}
	if user == nil || !user.IsActive {
		return false
	}

	var ok bool
	switch role {
	case domain.RoleCaptain:
		ok = user.PIN == pinOrPassword && user.Password == captainPassword
	case domain.RolePlayer:
		ok = user.Password == pinOrPassword
	default:
		return false
	}
	if !ok {
		return false
	}

	next := s.state.Clone()
	session := *next.FindUserByID(user.ID)
	next.CurrentUser = &session
	s.state = next
	return true
}

// Logout clears the current session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	next.CurrentUser = nil
	s.state = next
}

// CurrentUser returns a copy of the session user, or nil when nobody is
// logged in.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentUser == nil {
		return nil
	}
	u := *s.state.CurrentUser
	return &u
}

// SendAlert sets the transient banner message shown to the team. It lives
// outside the persisted state and vanishes on restart.
func (s *Store) SendAlert(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alert = message
}

// DismissAlert clears the banner.
func (s *Store) DismissAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alert = ""
}

// Alert returns the current banner message and whether one is set.
func (s *Store) Alert() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alert, s.alert != ""
}

// isCaptainSession reports whether the session user is a captain. Callers
// must hold s.mu.
func (s *Store) isCaptainSession() bool {
	return s.state.CurrentUser != nil && s.state.CurrentUser.IsCaptain()
}

// captainPINMatches re-checks the given PIN against the session captain's
// own stored PIN. This is a "confirm it's really you" step for the most
// sensitive mutations, not a per-target authorization check. Callers must
// hold s.mu.
func (s *Store) captainPINMatches(pin string) bool {
	return s.isCaptainSession() && s.state.CurrentUser.PIN == pin
}
