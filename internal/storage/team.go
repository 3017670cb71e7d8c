package storage

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"vakildesk/internal/models"
)

// TeamStore holds the firm's team roster.
type TeamStore struct {
	mu      sync.RWMutex
	members []models.TeamMember
}

func NewTeamStore(seed []models.TeamMember) *TeamStore {
	return &TeamStore{members: append([]models.TeamMember(nil), seed...)}
}

// All returns a copy of the roster.
func (s *TeamStore) All() []models.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TeamMember(nil), s.members...)
}

// Count returns the roster size, used for the free-plan seat limit.
func (s *TeamStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// Invite validates and appends an invited member. caseIDs only applies when
// access is "Assigned".
func (s *TeamStore) Invite(email string, role models.Role, access string, caseIDs []string) (models.TeamMember, error) {
	email = strings.TrimSpace(email)
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return models.TeamMember{}, ErrEmailRequired
	}
	if access != "All" {
		access = "Assigned"
	}

	member := models.TeamMember{
		ID:      uuid.New().String(),
		Name:    local,
		Email:   email,
		Role:    role,
		Access:  access,
		CaseIDs: append([]string(nil), caseIDs...),
		Status:  "Invited",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, member)
	return member, nil
}

// Remove drops a member from the roster.
func (s *TeamStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return nil
		}
	}
	return ErrMemberNotFound
}

// SetAccess replaces a member's access level and assigned cases.
func (s *TeamStore) SetAccess(id, access string, caseIDs []string) (models.TeamMember, error) {
	if access != "All" {
		access = "Assigned"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members[i].Access = access
			s.members[i].CaseIDs = append([]string(nil), caseIDs...)
			return s.members[i], nil
		}
	}
	return models.TeamMember{}, ErrMemberNotFound
}
