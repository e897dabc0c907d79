package profileService

import (
	"context"

	"VoiceCommerce/internal/api/profile"
	"VoiceCommerce/internal/entity"
	"VoiceCommerce/pkg/log"
)

func (s *profileService) Profile(ctx context.Context) (entity.UserProfile, error) {
	return s.repo.Profile(ctx)
}

// Merge overwrites only the fields present in the update and returns
// human-readable labels for what changed. Format problems are logged, not
// rejected; presence is the contract here.
func (s *profileService) Merge(ctx context.Context, update profile.ProfileUpdate) ([]string, error) {
	if update.Empty() {
		return nil, profile.ErrNothingToUpdate
	}

	if err := s.validator.Struct(update); err != nil {
		s.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Warn("Profile update has fields with unexpected format, applying anyway")
	}

	current, err := s.repo.Profile(ctx)
	if err != nil {
		return nil, err
	}

	var updated []string
	apply := func(field *string, value *string, label string) {
		if value != nil && *value != "" {
			*field = *value
			updated = append(updated, label)
		}
	}

	apply(&current.Name, update.Name, "name")
	apply(&current.Email, update.Email, "email")
	apply(&current.Address, update.Address, "address")
	apply(&current.Phone, update.Phone, "phone")
	apply(&current.CardName, update.CardName, "name on card")
	apply(&current.CardNumber, update.CardNumber, "card number")
	apply(&current.ExpiryDate, update.ExpiryDate, "card expiry date")
	apply(&current.CVV, update.CVV, "security code")

	if len(updated) == 0 {
		return nil, profile.ErrNothingToUpdate
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return updated, nil
}

// Complete reports whether everything order submission needs is present.
func (s *profileService) Complete(p entity.UserProfile) bool {
	return p.Name != "" && p.Email != "" && p.Address != "" &&
		p.CardNumber != "" && p.ExpiryDate != "" && p.CVV != ""
}
