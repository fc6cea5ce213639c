package ui

import (
	"sync"

	"github.com/drukschool/bulletin/core/user"
)

// Store holds the session state: the authenticated identity (or nil) and the
// active section. All navigation and auth transitions go through it; nothing
// else may mutate session state. A single logical actor drives transitions,
// but the web front end serves concurrent requests, hence the lock.
type Store struct {
	mu      sync.RWMutex
	usr     *user.Identity
	section Section
}

func NewStore() *Store {
	return &Store{section: SectionHome}
}

// SetAuthenticated replaces the current identity wholesale.
func (s *Store) SetAuthenticated(usr *user.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usr = usr
}

// Clear drops the identity and resets the active section to home.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usr = nil
	s.section = SectionHome
}

// Current returns the identity, or nil when unauthenticated.
func (s *Store) Current() *user.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usr
}

func (s *Store) ActiveSection() Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.section
}

func (s *Store) setActiveSection(sec Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.section = sec
}
