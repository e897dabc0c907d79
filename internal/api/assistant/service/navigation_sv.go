package assistantService

import (
	"context"

	"VoiceCommerce/internal/api/assistant"
	"VoiceCommerce/internal/navigation"

	"github.com/sirupsen/logrus"
)

func (s *AssistantService) handleNavigation(ctx context.Context, transcript string) (string, error) {
	raw, err := s.complete(ctx, navigationPrompt, map[string]interface{}{
		"transcript": transcript,
	})
	if err != nil {
		return "", err
	}

	var result assistant.NavigationResult
	if err := json.UnmarshalFromString(raw, &result); err != nil {
		s.log.WithFields(logrus.Fields{
			"error":    err.Error(),
			"response": raw,
		}).Warn("Failed to parse navigation extraction")
		return "", assistant.ErrCommandNotRecognized
	}

	switch result.Action {
	case "back":
		s.nav.Back()
		return "Navigated back", nil
	case "home":
		s.nav.Go(navigation.RouteHome)
		return "Navigated to home page", nil
	default:
		return "", assistant.ErrCommandNotRecognized
	}
}
