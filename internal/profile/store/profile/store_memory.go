package profile

import (
	"context"
	"fmt"
	"sync"

	"profiles/internal/profile/models"
	"profiles/internal/profile/ports"
	id "profiles/pkg/domain"
	"profiles/pkg/platform/sentinel"
)

// InMemoryStore keeps profile records in a map keyed by ID. It stores the
// record form, never the caller's *models.Profile, and decodes on read.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.ProfileID]record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[id.ProfileID]record)}
}

func (s *InMemoryStore) Save(ctx context.Context, p *models.Profile) error {
	if err := ctx.Err(); err != nil {
		return ports.UnknownError(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID()] = toRecord(p)
	return nil
}

// CreateIfAbsent inserts p unless its ID is already stored.
func (s *InMemoryStore) CreateIfAbsent(ctx context.Context, p *models.Profile) error {
	if err := ctx.Err(); err != nil {
		return ports.UnknownError(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[p.ID()]; ok {
		return ports.DatabaseError(fmt.Errorf("profile %s: %w", p.ID(), sentinel.ErrConflict))
	}
	s.profiles[p.ID()] = toRecord(p)
	return nil
}

func (s *InMemoryStore) GetProfileByID(ctx context.Context, profileID id.ProfileID) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, ports.UnknownError(err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.profiles[profileID]
	if !ok {
		return nil, nil
	}
	p, err := r.toProfile()
	if err != nil {
		return nil, ports.UnknownError(err)
	}
	return p, nil
}

// Count returns the number of stored profiles.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
