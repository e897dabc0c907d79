package assistantService

import (
	"context"
	"strings"

	"VoiceCommerce/internal/api/assistant"
	"VoiceCommerce/internal/navigation"
)

// handleGeneralCommand is the fallback for anything the master classifier
// could not place: one more oracle call mapping the transcript onto a
// small fixed function set.
func (s *AssistantService) handleGeneralCommand(ctx context.Context, transcript string) (string, error) {
	raw, err := s.complete(ctx, generalCommandPrompt, map[string]interface{}{
		"transcript": transcript,
	})
	if err != nil {
		return "", err
	}

	switch strings.TrimSpace(raw) {
	case "showGymClothes":
		s.nav.Go(navigation.ListingRoute("gym"))
		return "Showing gym products", nil
	case "showYogaEquipment":
		s.nav.Go(navigation.ListingRoute("yoga"))
		return "Showing yoga products", nil
	case "showRunningGear":
		s.nav.Go(navigation.ListingRoute("jogging"))
		return "Showing running gear", nil
	case "goToCart":
		s.nav.Go(navigation.RouteCart)
		return "Opened your shopping cart", nil
	case "checkout":
		s.nav.Go(navigation.RoutePayment)
		return "Took you to checkout", nil
	case "applyFilters":
		return s.handleApplyFilter(ctx, transcript)
	case "clearFilters":
		return s.handleClearFilters()
	default:
		return "", assistant.ErrCommandNotRecognized
	}
}
