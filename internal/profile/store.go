// Package profile holds the expert profile projection: a per-email document
// seeded at expert registration and merged on PATCH.
package profile

import (
	"sync"

	"gomun/internal/apperr"
)

// defaultTitle is used when an expert registers without a specialty title.
const defaultTitle = "Expert"

// Store keeps profiles in memory, keyed by account email.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewStore creates an empty profile store
func NewStore() *Store {
	return &Store{
		profiles: make(map[string]*Profile),
	}
}

// Seed creates the initial projection for a freshly registered expert.
// Title falls back to the specialty, then to a generic label; all other
// optional fields start empty.
func (s *Store) Seed(email, name, specialty string) {
	title := specialty
	if title == "" {
		title = defaultTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[email] = &Profile{
		Name:  name,
		Title: title,
		Focus: specialty,
	}
}

// Get returns a copy of the profile stored under email.
func (s *Store) Get(email string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[email]
	if !ok {
		return Profile{}, apperr.NotFound("profile not found")
	}
	return *p, nil
}

// Update merges the non-nil fields of req into the stored profile and returns
// the result.
func (s *Store) Update(email string, req UpdateRequest) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[email]
	if !ok {
		return Profile{}, apperr.NotFound("profile not found")
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Region != nil {
		p.Region = *req.Region
	}
	if req.Focus != nil {
		p.Focus = *req.Focus
	}
	if req.Availability != nil {
		p.Availability = *req.Availability
	}
	if req.ResponseTime != nil {
		p.ResponseTime = *req.ResponseTime
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Website != nil {
		p.Website = *req.Website
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}

	return *p, nil
}
