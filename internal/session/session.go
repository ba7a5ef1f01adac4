package session

import (
	"fmt"
	"sync"

	"github.com/NicolasCard/RAPZ/internal/models"
)

// Session holds the single-browser-session state that is not part of the
// order collection: the active role and the fixed profile behind each role.
// Nothing here is persisted.
type Session struct {
	mu       sync.Mutex
	role     models.Role
	profiles map[models.Role]models.UserProfile
}

// New starts a session in the rider role, matching the mobile app default.
func New(rider, store models.UserProfile) *Session {
	return &Session{
		role: models.RoleRider,
		profiles: map[models.Role]models.UserProfile{
			models.RoleRider: rider,
			models.RoleStore: store,
		},
	}
}

// Role returns the currently selected role.
func (s *Session) Role() models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SwitchRole selects the active role.
func (s *Session) SwitchRole(role models.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q", role)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
	return nil
}

// Profile returns the profile behind the currently selected role.
func (s *Session) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[s.role]
}

// ProfileFor returns the profile behind a specific role.
func (s *Session) ProfileFor(role models.Role) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[role]
}
