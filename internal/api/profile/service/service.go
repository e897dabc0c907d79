package profileService

import (
	"context"

	"VoiceCommerce/internal/api/profile"
	profileRepository "VoiceCommerce/internal/api/profile/repository"
	"VoiceCommerce/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type IProfileService interface {
	Profile(ctx context.Context) (entity.UserProfile, error)
	Merge(ctx context.Context, update profile.ProfileUpdate) ([]string, error)
	Complete(p entity.UserProfile) bool
}

type profileService struct {
	log       *logrus.Logger
	repo      profileRepository.Repository
	validator *validator.Validate
}

func New(log *logrus.Logger, repo profileRepository.Repository, validate *validator.Validate) IProfileService {
	return &profileService{
		log:       log,
		repo:      repo,
		validator: validate,
	}
}
