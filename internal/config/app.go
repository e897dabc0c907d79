package config

import (
	"context"
	"fmt"
	"os"

	assistantService "VoiceCommerce/internal/api/assistant/service"
	browseService "VoiceCommerce/internal/api/browse/service"
	cartService "VoiceCommerce/internal/api/cart/service"
	catalogRepository "VoiceCommerce/internal/api/catalog/repository"
	catalogService "VoiceCommerce/internal/api/catalog/service"
	profileRepository "VoiceCommerce/internal/api/profile/repository"
	profileService "VoiceCommerce/internal/api/profile/service"
	"VoiceCommerce/internal/events"
	"VoiceCommerce/internal/navigation"
	"VoiceCommerce/pkg/gemini"
	"VoiceCommerce/pkg/transcribe"
	"VoiceCommerce/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type AppOption func(*App) error

// App assembles the storefront assistant: catalog, stores, navigator,
// event bus, oracle client and the listening session on top of them.
type App struct {
	log         *logrus.Logger
	validator   *validator.Validate
	utils       utils.IUtils
	oracle      gemini.IGemini
	profileRepo profileRepository.Repository
	source      transcribe.Source

	catalog   catalogService.ICatalogService
	filters   browseService.IFilterStore
	selection browseService.ISelectionStore
	profile   profileService.IProfileService
	cart      cartService.ICartService
	nav       navigation.INavigator
	bus       events.IBus

	assistant *assistantService.AssistantService
	listener  *assistantService.Listener
}

func NewApp(options ...AppOption) (*App, error) {
	app := &App{}

	for _, option := range options {
		if err := option(app); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if app.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if app.oracle == nil {
		return nil, fmt.Errorf("oracle client is required")
	}
	if app.source == nil {
		return nil, fmt.Errorf("transcript source is required")
	}

	return app, nil
}

func NewValidator() *validator.Validate {
	return validator.New()
}

func WithLogger(logger *logrus.Logger) AppOption {
	return func(a *App) error {
		a.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) AppOption {
	return func(a *App) error {
		a.validator = validator
		return nil
	}
}

func WithUtils() AppOption {
	return func(a *App) error {
		a.utils = utils.New()
		return nil
	}
}

func WithGeminiClient() AppOption {
	return func(a *App) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if a.log != nil {
				a.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		a.oracle = client
		return nil
	}
}

func WithOracle(oracle gemini.IGemini) AppOption {
	return func(a *App) error {
		a.oracle = oracle
		return nil
	}
}

// WithProfileRepository picks Redis when REDIS_ADDRESS is configured and
// falls back to the in-memory store otherwise.
func WithProfileRepository() AppOption {
	return func(a *App) error {
		if os.Getenv("REDIS_ADDRESS") != "" {
			a.profileRepo = profileRepository.NewRedis()
			return nil
		}
		a.profileRepo = profileRepository.NewMemory()
		return nil
	}
}

func WithTranscriptSource(source transcribe.Source) AppOption {
	return func(a *App) error {
		a.source = source
		return nil
	}
}

// RegisterServices wires every domain service and the assistant on top.
func (a *App) RegisterServices() {
	if a.validator == nil {
		a.validator = NewValidator()
	}
	if a.utils == nil {
		a.utils = utils.New()
	}
	if a.profileRepo == nil {
		a.profileRepo = profileRepository.NewMemory()
	}

	catalogRepo := catalogRepository.New(a.log)
	a.catalog = catalogService.New(a.log, catalogRepo)

	a.filters = browseService.NewFilterStore(a.log)
	a.selection = browseService.NewSelectionStore(a.log)
	a.profile = profileService.New(a.log, a.profileRepo, a.validator)
	a.cart = cartService.New(a.log)
	a.nav = navigation.New(a.log)
	a.bus = events.NewBus(a.log)

	a.assistant = assistantService.New(
		a.log,
		a.oracle,
		a.catalog,
		a.filters,
		a.selection,
		a.profile,
		a.cart,
		a.nav,
		a.bus,
		nil,
		a.utils,
	)
	a.listener = assistantService.NewListener(a.log, a.source, a.assistant)
}

func (a *App) Bus() events.IBus {
	return a.bus
}

func (a *App) Navigator() navigation.INavigator {
	return a.nav
}

func (a *App) Assistant() *assistantService.AssistantService {
	return a.assistant
}

// Run blocks driving the listening session until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.listener == nil {
		return fmt.Errorf("services are not registered")
	}
	return a.listener.Run(ctx)
}
