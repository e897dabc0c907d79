package assistantService

import (
	"context"
	"strings"

	"VoiceCommerce/internal/api/assistant"
	"VoiceCommerce/internal/navigation"
)

// Spoken category names map onto catalog category ids; "running" lives
// under the jogging category.
var categoryRoutes = map[string]string{
	"gym":     "gym",
	"yoga":    "yoga",
	"running": "jogging",
}

var categoryLabels = map[string]string{
	"gym":     "gym products",
	"yoga":    "yoga products",
	"running": "running gear",
}

func (s *AssistantService) handleCategoryNavigation(ctx context.Context, transcript string) (string, error) {
	raw, err := s.complete(ctx, categoryNavigationPrompt, map[string]interface{}{
		"transcript": transcript,
	})
	if err != nil {
		return "", err
	}

	category := strings.ToLower(strings.TrimSpace(raw))
	categoryID, ok := categoryRoutes[category]
	if !ok {
		return "", assistant.ErrCommandNotRecognized
	}

	s.nav.Go(navigation.ListingRoute(categoryID))
	return "Showing " + categoryLabels[category], nil
}
