package profileRepository

import (
	"context"

	"VoiceCommerce/internal/entity"
)

// Repository is the durable user-profile store. The in-memory
// implementation backs tests and Redis-less runs; the Redis implementation
// is the persistent one.
type Repository interface {
	Profile(ctx context.Context) (entity.UserProfile, error)
	Save(ctx context.Context, profile entity.UserProfile) error
}
