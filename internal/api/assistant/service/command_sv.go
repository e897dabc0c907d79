package assistantService

import (
	"context"
	"errors"
	"strings"
	"time"

	"VoiceCommerce/internal/api/assistant"
	"VoiceCommerce/internal/api/profile"
	contextPkg "VoiceCommerce/pkg/context"
	"VoiceCommerce/pkg/nlp"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// clearFilterPhrases short-circuit the classifier entirely: a clear
// request must work even when the oracle is down.
var clearFilterPhrases = []string{
	"clear filter",
	"clear all filter",
	"clear the filter",
	"reset filter",
	"reset all filter",
	"remove all filter",
	"start over",
}

// HandleTranscript runs one transcript through the full pipeline:
// literal fast paths, master intent classification, then the matching
// handler. Every outcome lands in the action log.
func (s *AssistantService) HandleTranscript(ctx context.Context, transcript string) error {
	transcript = strings.ToLower(strings.TrimSpace(transcript))
	if transcript == "" {
		return nil
	}

	commandID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		commandID = uuid.NewString()
	}
	ctx = contextPkg.WithCommandID(ctx, commandID)
	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	s.log.WithFields(logrus.Fields{
		"command_id": commandID,
		"transcript": transcript,
	}).Debug("Handling voice command")

	if nlp.ContainsAny(transcript, clearFilterPhrases) {
		message, _ := s.handleClearFilters()
		s.recordSuccess(message)
		return nil
	}

	intent := s.classifyIntent(ctx, transcript)

	message, err := s.dispatch(ctx, intent, transcript)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"command_id": commandID,
			"intent":     string(intent),
			"error":      err.Error(),
		}).Warn("Voice command failed")
		s.recordFailure(failureMessage(err))
		return err
	}

	s.recordSuccess(message)
	return nil
}

func (s *AssistantService) dispatch(ctx context.Context, intent assistant.Intent, transcript string) (string, error) {
	switch intent {
	case assistant.IntentNavigation:
		return s.handleNavigation(ctx, transcript)
	case assistant.IntentOrderCompletion:
		return s.handleOrderCompletion(ctx, transcript)
	case assistant.IntentUserInfo:
		return s.handleUserInfo(ctx, transcript)
	case assistant.IntentCart:
		return s.handleCartNavigation(ctx, transcript)
	case assistant.IntentProductAction:
		return s.handleProductAction(ctx, transcript)
	case assistant.IntentProductNavigation:
		return s.handleProductNavigation(ctx, transcript)
	case assistant.IntentRemoveFilter:
		return s.handleRemoveFilter(ctx, transcript)
	case assistant.IntentCategoryNavigation:
		return s.handleCategoryNavigation(ctx, transcript)
	case assistant.IntentApplyFilter:
		return s.handleApplyFilter(ctx, transcript)
	case assistant.IntentClearFilters:
		return s.handleClearFilters()
	default:
		return s.handleGeneralCommand(ctx, transcript)
	}
}

// failureMessage turns handler errors into the feedback shown to the
// shopper.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, assistant.ErrNoActiveProduct):
		return "You need to be viewing a product to do that"
	case errors.Is(err, assistant.ErrProfileIncomplete):
		return "Please fill in your payment details before placing your order"
	case errors.Is(err, assistant.ErrSubmissionInFlight):
		return "Your order is already being processed"
	case errors.Is(err, profile.ErrNothingToUpdate):
		return "I couldn't find any details to update"
	case errors.Is(err, assistant.ErrCommandNotRecognized):
		return "Sorry, I didn't understand that command"
	default:
		return "Something went wrong handling your command"
	}
}
