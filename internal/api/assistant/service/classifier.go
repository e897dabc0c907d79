package assistantService

import (
	"context"

	"VoiceCommerce/internal/api/assistant"

	"github.com/sirupsen/logrus"
)

// classifyIntent asks the oracle for the primary intent of a transcript.
// Unparseable or failed completions fall back to the general command
// intent so the command always reaches a handler.
func (s *AssistantService) classifyIntent(ctx context.Context, transcript string) assistant.Intent {
	pageContext := "User is browsing a listing page."
	if productID, ok := s.nav.CurrentProductID(); ok {
		pageContext = "User is on a product detail page."
		if product, found := s.catalog.ProductByID(productID); found {
			pageContext = "User is on a product detail page viewing: " + product.Name
		}
	}

	raw, err := s.complete(ctx, masterIntentPrompt, map[string]interface{}{
		"transcript": transcript,
		"context":    pageContext,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error":      err.Error(),
			"transcript": transcript,
		}).Warn("Intent classification failed, falling back to general command")
		return assistant.IntentGeneralCommand
	}

	intent := assistant.ParseIntent(raw)
	s.log.WithFields(logrus.Fields{
		"transcript": transcript,
		"intent":     string(intent),
	}).Debug("Classified voice command")

	return intent
}
