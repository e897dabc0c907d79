package assistantService

import (
	"context"
	"strings"

	"VoiceCommerce/internal/api/assistant"
	"VoiceCommerce/internal/navigation"

	"github.com/sirupsen/logrus"
)

// handleOrderCompletion walks the user through placing an order. Off the
// payment page it only navigates there; on it, submission requires a
// complete payment profile and at most one submission in flight.
func (s *AssistantService) handleOrderCompletion(ctx context.Context, transcript string) (string, error) {
	raw, err := s.complete(ctx, orderCompletionPrompt, map[string]interface{}{
		"transcript": transcript,
	})
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(strings.TrimSpace(raw), "yes") {
		return "", assistant.ErrCommandNotRecognized
	}

	if s.nav.Current() != navigation.RoutePayment {
		s.nav.Go(navigation.RoutePayment)
		return "Took you to the payment page to complete your order", nil
	}

	current, err := s.profile.Profile(ctx)
	if err != nil {
		return "", err
	}
	if !s.profile.Complete(current) {
		return "", assistant.ErrProfileIncomplete
	}

	s.mu.Lock()
	if s.submitInFlight {
		s.mu.Unlock()
		return "", assistant.ErrSubmissionInFlight
	}
	s.submitInFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitInFlight = false
		s.mu.Unlock()
	}()

	if err := s.caps.SubmitPaymentForm(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Order submission failed")
		return "", err
	}
	return "Order placed successfully", nil
}
