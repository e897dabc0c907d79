package assistantService

import (
	"context"
	"strings"
	"time"

	"VoiceCommerce/internal/api/assistant"
	"VoiceCommerce/internal/api/profile"
	"VoiceCommerce/internal/events"

	"github.com/sirupsen/logrus"
)

func (s *AssistantService) handleUserInfo(ctx context.Context, transcript string) (string, error) {
	raw, err := s.complete(ctx, userInfoUpdatePrompt, map[string]interface{}{
		"transcript": transcript,
	})
	if err != nil {
		return "", err
	}

	var extraction assistant.UserInfoExtraction
	if err := json.UnmarshalFromString(raw, &extraction); err != nil {
		s.log.WithFields(logrus.Fields{
			"error":    err.Error(),
			"response": raw,
		}).Warn("Failed to parse user info extraction")
		return "", assistant.ErrCommandNotRecognized
	}
	if !extraction.IsUserInfoUpdate {
		return "", assistant.ErrCommandNotRecognized
	}

	update := profile.ProfileUpdate{
		Name:       cleanExtracted(extraction.Name),
		Email:      cleanExtracted(extraction.Email),
		Address:    cleanExtracted(extraction.Address),
		Phone:      cleanExtracted(extraction.Phone),
		CardName:   cleanExtracted(extraction.CardName),
		CardNumber: cleanExtracted(extraction.CardNumber),
		ExpiryDate: cleanExtracted(extraction.ExpiryDate),
		CVV:        cleanExtracted(extraction.CVV),
	}

	labels, err := s.profile.Merge(ctx, update)
	if err != nil {
		return "", err
	}

	s.bus.Publish(events.Event{
		Topic:   events.TopicUserInfoUpdated,
		Message: "Profile updated",
		Fields:  labels,
		Success: true,
		At:      time.Now(),
	})
	return "Updated your " + strings.Join(labels, ", "), nil
}

// cleanExtracted drops the literal "null" the model sometimes emits in
// place of a JSON null.
func cleanExtracted(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return nil
	}
	return &trimmed
}
