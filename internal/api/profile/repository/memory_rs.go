package profileRepository

import (
	"context"
	"sync"

	"VoiceCommerce/internal/entity"
)

type memoryRepository struct {
	mu      sync.RWMutex
	profile entity.UserProfile
}

func NewMemory() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Profile(_ context.Context) (entity.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *memoryRepository) Save(_ context.Context, profile entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile
	return nil
}
