package assistantService

import (
	"context"
	"strings"

	"VoiceCommerce/internal/api/assistant"
	"VoiceCommerce/internal/navigation"
)

func (s *AssistantService) handleCartNavigation(ctx context.Context, transcript string) (string, error) {
	raw, err := s.complete(ctx, cartNavigationPrompt, map[string]interface{}{
		"transcript": transcript,
	})
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(strings.TrimSpace(raw), "yes") {
		return "", assistant.ErrCommandNotRecognized
	}

	s.nav.Go(navigation.RouteCart)
	return "Opened your shopping cart", nil
}
