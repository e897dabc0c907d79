package assistantService

import (
	"context"
	"testing"

	browseService "VoiceCommerce/internal/api/browse/service"
	cartService "VoiceCommerce/internal/api/cart/service"
	catalogRepository "VoiceCommerce/internal/api/catalog/repository"
	catalogService "VoiceCommerce/internal/api/catalog/service"
	profileRepository "VoiceCommerce/internal/api/profile/repository"
	profileService "VoiceCommerce/internal/api/profile/service"
	"VoiceCommerce/internal/events"
	"VoiceCommerce/internal/navigation"
	"VoiceCommerce/pkg/gemini"
	"VoiceCommerce/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// respondFunc scripts the oracle for a test: it receives the prompt
// template so each scenario can answer per prompt.
type respondFunc func(template string, params map[string]interface{}) (string, error)

type stubOracle struct {
	respond respondFunc
}

func (o *stubOracle) Complete(_ context.Context, template string, params map[string]interface{}) (string, error) {
	return o.respond(template, params)
}

func (o *stubOracle) CompleteOrUnknown(ctx context.Context, template string, params map[string]interface{}) string {
	text, err := o.Complete(ctx, template, params)
	if err != nil {
		return gemini.Unknown
	}
	return text
}

type testEnv struct {
	svc       *AssistantService
	catalog   catalogService.ICatalogService
	filters   browseService.IFilterStore
	selection browseService.ISelectionStore
	profile   profileService.IProfileService
	cart      cartService.ICartService
	nav       navigation.INavigator
	bus       events.IBus
}

func newTestEnv(t *testing.T, respond respondFunc) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	catalog := catalogService.New(logger, catalogRepository.New(logger))
	filters := browseService.NewFilterStore(logger)
	selection := browseService.NewSelectionStore(logger)
	profile := profileService.New(logger, profileRepository.NewMemory(), validator.New())
	cart := cartService.New(logger)
	nav := navigation.New(logger)
	bus := events.NewBus(logger)

	svc := New(
		logger,
		&stubOracle{respond: respond},
		catalog,
		filters,
		selection,
		profile,
		cart,
		nav,
		bus,
		nil,
		utils.New(),
	)

	return &testEnv{
		svc:       svc,
		catalog:   catalog,
		filters:   filters,
		selection: selection,
		profile:   profile,
		cart:      cart,
		nav:       nav,
		bus:       bus,
	}
}

// respondWith scripts the master classifier plus one handler prompt.
func respondWith(t *testing.T, intent string, handlerAnswers map[string]string) respondFunc {
	t.Helper()
	return func(template string, params map[string]interface{}) (string, error) {
		if template == masterIntentPrompt {
			return intent, nil
		}
		if answer, ok := handlerAnswers[template]; ok {
			return answer, nil
		}
		t.Errorf("unexpected prompt: %.60q", template)
		return "", nil
	}
}
