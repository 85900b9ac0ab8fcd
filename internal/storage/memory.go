package storage

import (
	"fmt"
	"sync"

	"github.com/julianstephens/koffee/internal/models"
)

// MemoryStore keeps the profile in memory.
type MemoryStore struct {
	mu      sync.Mutex
	profile *models.Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Load() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) GetProfile() (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.Profile{}, fmt.Errorf("profile not found")
	}
	return *s.profile, nil
}

func (s *MemoryStore) SaveProfile(p models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &p
	return nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
